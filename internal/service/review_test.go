package service_test

import (
	"context"
	"testing"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/notifier"
	"github.com/prontomx/delivery-service/internal/service"
	mocks "github.com/prontomx/delivery-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Submit(t *testing.T) {
	type MockBehavior func(repo *mocks.MockReviewRepo)

	deliveredOrder := entities.Order{
		ID: "ord-1", CustomerID: "cust-1", StoreID: "store-1",
		Status: entities.StatusDelivered,
	}

	cmd := service.SubmitReviewCommand{
		OrderID: "ord-1", CustomerID: "cust-1", Rating: 4, Comment: "rapido",
	}

	testCases := []struct {
		name         string
		cmd          service.SubmitReviewCommand
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "review folds into the store rating",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockReviewRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(deliveredOrder, nil)
				reviewed := deliveredOrder
				reviewed.IsReviewed = true
				repo.EXPECT().MarkOrderReviewed(mock.Anything, "ord-1").Return(reviewed, nil)
				repo.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(nil)
				repo.EXPECT().StoreRating(mock.Anything, "store-1").Return(4.25, 4, nil)
				repo.EXPECT().UpdateStoreRating(mock.Anything, "store-1", 4.25, 4).
					Return(entities.User{ID: "store-1", Role: entities.RoleStore, AverageRating: 4.25, RatingCount: 4}, nil)
			},
		},
		{
			name: "only the customer of the order may review",
			cmd: service.SubmitReviewCommand{
				OrderID: "ord-1", CustomerID: "cust-2", Rating: 1,
			},
			mockBehavior: func(repo *mocks.MockReviewRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(deliveredOrder, nil)
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name: "order not yet delivered",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockReviewRepo) {
				onWay := deliveredOrder
				onWay.Status = entities.StatusOnWay
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(onWay, nil)
			},
			wantErr: entities.ErrOrderNotDelivered,
		},
		{
			name: "second review is rejected",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockReviewRepo) {
				reviewed := deliveredOrder
				reviewed.IsReviewed = true
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(reviewed, nil)
			},
			wantErr: entities.ErrAlreadyReviewed,
		},
		{
			name: "concurrent duplicate loses on the conditional flip",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockReviewRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(deliveredOrder, nil)
				repo.EXPECT().MarkOrderReviewed(mock.Anything, "ord-1").
					Return(entities.Order{}, entities.ErrAlreadyReviewed)
			},
			wantErr: entities.ErrAlreadyReviewed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReviewRepo(t)
			bus := notifier.NewMemoryBus()
			defer bus.Close()

			tc.mockBehavior(repo)

			svc := service.NewReviewService(newTestLogger(), passthroughTx(t), repo, bus)
			review, err := svc.Submit(context.Background(), tc.cmd)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, review.ID)
			assert.Equal(t, "store-1", review.StoreID)
			assert.Equal(t, 4, review.Rating)
		})
	}
}

func TestReviewService_Submit_PublishesUpdates(t *testing.T) {
	repo := mocks.NewMockReviewRepo(t)
	bus := notifier.NewMemoryBus()
	defer bus.Close()
	sub := bus.Subscribe(4)

	order := entities.Order{
		ID: "ord-1", CustomerID: "cust-1", StoreID: "store-1",
		Status: entities.StatusDelivered,
	}
	repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(order, nil)
	reviewed := order
	reviewed.IsReviewed = true
	repo.EXPECT().MarkOrderReviewed(mock.Anything, "ord-1").Return(reviewed, nil)
	repo.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().StoreRating(mock.Anything, "store-1").Return(5.0, 1, nil)
	repo.EXPECT().UpdateStoreRating(mock.Anything, "store-1", 5.0, 1).
		Return(entities.User{ID: "store-1"}, nil)

	svc := service.NewReviewService(newTestLogger(), passthroughTx(t), repo, bus)
	_, err := svc.Submit(context.Background(), service.SubmitReviewCommand{
		OrderID: "ord-1", CustomerID: "cust-1", Rating: 5,
	})
	require.NoError(t, err)

	first := <-sub.C
	second := <-sub.C
	assert.Equal(t, notifier.TopicUserUpdate, first.Topic)
	assert.Equal(t, notifier.TopicOrderUpdate, second.Topic)
}
