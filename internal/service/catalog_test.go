package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/notifier"
	"github.com/prontomx/delivery-service/internal/service"
	mocks "github.com/prontomx/delivery-service/internal/service/mocks"
	"github.com/prontomx/delivery-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCache() *cache.LRUCache {
	return cache.NewLRUCache(64, time.Minute)
}

func TestCatalogService_GetColonyByID(t *testing.T) {
	t.Run("second read hits the cache", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		bus := notifier.NewMemoryBus()
		defer bus.Close()

		repo.EXPECT().GetColonyByID(mock.Anything, "col-1").
			Once().Return(customerColony, nil)

		svc := service.NewCatalogService(newTestLogger(), repo, newTestCache(), bus)

		first, err := svc.GetColonyByID(context.Background(), "col-1")
		require.NoError(t, err)
		second, err := svc.GetColonyByID(context.Background(), "col-1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("miss propagates not found", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		bus := notifier.NewMemoryBus()
		defer bus.Close()

		repo.EXPECT().GetColonyByID(mock.Anything, "ghost").
			Return(entities.Colony{}, entities.ErrColonyNotFound)

		svc := service.NewCatalogService(newTestLogger(), repo, newTestCache(), bus)
		_, err := svc.GetColonyByID(context.Background(), "ghost")

		assert.ErrorIs(t, err, entities.ErrColonyNotFound)
	})
}

func TestCatalogService_UpdateColony_InvalidatesCache(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	bus := notifier.NewMemoryBus()
	defer bus.Close()

	stale := entities.Colony{ID: "col-1", Name: "Centro", Lat: 19.0, Lng: -99.0}
	moved := entities.Colony{ID: "col-1", Name: "Centro", Lat: 19.1, Lng: -99.1}

	repo.EXPECT().GetColonyByID(mock.Anything, "col-1").Once().Return(stale, nil)
	repo.EXPECT().UpdateColony(mock.Anything, moved).Return(moved, nil)
	repo.EXPECT().GetColonyByID(mock.Anything, "col-1").Once().Return(moved, nil)

	svc := service.NewCatalogService(newTestLogger(), repo, newTestCache(), bus)

	_, err := svc.GetColonyByID(context.Background(), "col-1")
	require.NoError(t, err)

	_, err = svc.UpdateColony(context.Background(), moved)
	require.NoError(t, err)

	got, err := svc.GetColonyByID(context.Background(), "col-1")
	require.NoError(t, err)
	assert.Equal(t, moved, got)
}

func TestCatalogService_Settings(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	bus := notifier.NewMemoryBus()
	defer bus.Close()
	sub := bus.Subscribe(4)

	repo.EXPECT().GetSettings(mock.Anything).Once().Return(testSettings, nil)
	updated := entities.Settings{BaseFee: 20, KmRate: 6}
	repo.EXPECT().UpdateSettings(mock.Anything, updated).Return(updated, nil)
	repo.EXPECT().GetSettings(mock.Anything).Once().Return(updated, nil)

	svc := service.NewCatalogService(newTestLogger(), repo, newTestCache(), bus)

	got, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testSettings, got)

	// Cached read, repo not consulted again.
	got, err = svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testSettings, got)

	_, err = svc.UpdateSettings(context.Background(), updated)
	require.NoError(t, err)

	ev := <-sub.C
	assert.Equal(t, notifier.TopicSettingsUpdate, ev.Topic)

	got, err = svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestCatalogService_CreateColony(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	bus := notifier.NewMemoryBus()
	defer bus.Close()
	sub := bus.Subscribe(4)

	repo.EXPECT().CreateColony(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewCatalogService(newTestLogger(), repo, newTestCache(), bus)
	colony, err := svc.CreateColony(context.Background(), "Roma Norte", 19.41, -99.16)

	require.NoError(t, err)
	assert.NotEmpty(t, colony.ID)
	assert.Equal(t, "Roma Norte", colony.Name)

	ev := <-sub.C
	assert.Equal(t, notifier.TopicColonyUpdate, ev.Topic)
}
