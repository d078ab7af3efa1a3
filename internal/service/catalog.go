package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/notifier"
	"github.com/prontomx/delivery-service/pkg/cache"

	"github.com/google/uuid"
)

const settingsCacheKey = "settings"

func colonyCacheKey(colonyID string) string {
	return "colony:" + colonyID
}

type CatalogRepo interface {
	GetColonyByID(ctx context.Context, colonyID string) (entities.Colony, error)
	ListColonies(ctx context.Context) ([]entities.Colony, error)
	CreateColony(ctx context.Context, c entities.Colony) error
	UpdateColony(ctx context.Context, c entities.Colony) (entities.Colony, error)
	DeleteColony(ctx context.Context, colonyID string) error

	GetSettings(ctx context.Context) (entities.Settings, error)
	UpdateSettings(ctx context.Context, s entities.Settings) (entities.Settings, error)

	GetProductsByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error)
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
}

// catalogService fronts read-mostly reference data with an in-process cache.
// Colonies and the tariff singleton sit on the order-creation hot path; users
// and products change too often to be worth caching.
type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
	cache  *cache.LRUCache
	bus    notifier.Bus
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo, c *cache.LRUCache, bus notifier.Bus) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  c,
		bus:    bus,
	}
}

func (s *catalogService) GetColonyByID(ctx context.Context, colonyID string) (entities.Colony, error) {
	if data, ok := s.cache.Get(colonyCacheKey(colonyID)); ok {
		var colony entities.Colony
		if err := json.Unmarshal(data, &colony); err == nil {
			return colony, nil
		}
	}

	colony, err := s.repo.GetColonyByID(ctx, colonyID)
	if err != nil {
		return entities.Colony{}, err
	}

	if data, err := json.Marshal(colony); err == nil {
		s.cache.Set(colonyCacheKey(colonyID), data)
	}
	return colony, nil
}

func (s *catalogService) ListColonies(ctx context.Context) ([]entities.Colony, error) {
	return s.repo.ListColonies(ctx)
}

func (s *catalogService) CreateColony(ctx context.Context, name string, lat, lng float64) (entities.Colony, error) {
	colony := entities.Colony{
		ID:   uuid.NewString(),
		Name: name,
		Lat:  lat,
		Lng:  lng,
	}
	if err := s.repo.CreateColony(ctx, colony); err != nil {
		return entities.Colony{}, err
	}

	s.publish(ctx, notifier.TopicColonyUpdate, colony)
	return colony, nil
}

func (s *catalogService) UpdateColony(ctx context.Context, colony entities.Colony) (entities.Colony, error) {
	updated, err := s.repo.UpdateColony(ctx, colony)
	if err != nil {
		return entities.Colony{}, err
	}
	s.cache.Delete(colonyCacheKey(colony.ID))

	s.publish(ctx, notifier.TopicColonyUpdate, updated)
	return updated, nil
}

func (s *catalogService) DeleteColony(ctx context.Context, colonyID string) error {
	if err := s.repo.DeleteColony(ctx, colonyID); err != nil {
		return err
	}
	s.cache.Delete(colonyCacheKey(colonyID))

	s.publish(ctx, notifier.TopicColonyDelete, map[string]string{"id": colonyID})
	return nil
}

func (s *catalogService) GetSettings(ctx context.Context) (entities.Settings, error) {
	if data, ok := s.cache.Get(settingsCacheKey); ok {
		var settings entities.Settings
		if err := json.Unmarshal(data, &settings); err == nil {
			return settings, nil
		}
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return entities.Settings{}, err
	}

	if data, err := json.Marshal(settings); err == nil {
		s.cache.Set(settingsCacheKey, data)
	}
	return settings, nil
}

// UpdateSettings changes the tariff for future orders only; fees already
// persisted on existing orders are never revised.
func (s *catalogService) UpdateSettings(ctx context.Context, settings entities.Settings) (entities.Settings, error) {
	updated, err := s.repo.UpdateSettings(ctx, settings)
	if err != nil {
		return entities.Settings{}, err
	}
	s.cache.Delete(settingsCacheKey)

	s.publish(ctx, notifier.TopicSettingsUpdate, updated)
	return updated, nil
}

func (s *catalogService) GetProductsByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error) {
	return s.repo.GetProductsByIDs(ctx, productIDs)
}

func (s *catalogService) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *catalogService) publish(ctx context.Context, topic notifier.Topic, payload any) {
	if err := s.bus.Broadcast(ctx, topic, payload); err != nil {
		publishFailures.WithLabelValues(string(topic)).Inc()
		s.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("topic", string(topic)), slog.Any("error", err))
	}
}
