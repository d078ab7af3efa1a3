package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/notifier"
	"github.com/prontomx/delivery-service/pkg/trm"

	"github.com/google/uuid"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, review entities.Review) error
	ListReviewsByStore(ctx context.Context, storeID string) ([]entities.Review, error)
	StoreRating(ctx context.Context, storeID string) (float64, int, error)

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	// MarkOrderReviewed flips the order's reviewed flag exactly once;
	// ErrAlreadyReviewed on a second attempt or on a non-delivered order.
	MarkOrderReviewed(ctx context.Context, orderID string) (entities.Order, error)
	UpdateStoreRating(ctx context.Context, storeID string, average float64, count int) (entities.User, error)
}

type reviewService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ReviewRepo
	bus       notifier.Bus
}

func NewReviewService(logger *slog.Logger, txManager trm.Manager, repo ReviewRepo, bus notifier.Bus) *reviewService {
	return &reviewService{
		logger:    logger.With(slog.String("service", "review")),
		txManager: txManager,
		repo:      repo,
		bus:       bus,
	}
}

type SubmitReviewCommand struct {
	OrderID    string
	CustomerID string
	Rating     int
	Comment    string
}

// Submit accepts one review per delivered order and folds it into the store's
// running rating. The reviewed flag flip and the rating recompute share a
// transaction, so a rejected review never moves the average.
func (s *reviewService) Submit(ctx context.Context, cmd SubmitReviewCommand) (entities.Review, error) {
	order, err := s.repo.GetOrderByID(ctx, cmd.OrderID)
	if err != nil {
		return entities.Review{}, err
	}
	if order.CustomerID != cmd.CustomerID {
		return entities.Review{}, entities.ErrUnauthorized
	}
	if order.Status != entities.StatusDelivered {
		return entities.Review{}, entities.ErrOrderNotDelivered
	}
	if order.IsReviewed {
		return entities.Review{}, entities.ErrAlreadyReviewed
	}

	review := entities.Review{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		StoreID:    order.StoreID,
		CustomerID: cmd.CustomerID,
		Rating:     cmd.Rating,
		Comment:    cmd.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	var store entities.User
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// The conditional flip is the real guard; the checks above only give
		// earlier, friendlier errors.
		updated, err := s.repo.MarkOrderReviewed(ctx, order.ID)
		if err != nil {
			return err
		}
		order = updated

		if err := s.repo.CreateReview(ctx, review); err != nil {
			return err
		}

		average, count, err := s.repo.StoreRating(ctx, order.StoreID)
		if err != nil {
			return err
		}
		store, err = s.repo.UpdateStoreRating(ctx, order.StoreID, average, count)
		if err != nil {
			return fmt.Errorf("failed to update store rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Review{}, err
	}

	reviewsAccepted.Inc()
	s.logger.InfoContext(ctx, "review accepted",
		slog.String("order_id", order.ID),
		slog.String("store_id", store.ID),
		slog.Int("rating", review.Rating),
	)

	s.publish(ctx, notifier.TopicUserUpdate, store)
	s.publish(ctx, notifier.TopicOrderUpdate, order)
	return review, nil
}

func (s *reviewService) ListByStore(ctx context.Context, storeID string) ([]entities.Review, error) {
	return s.repo.ListReviewsByStore(ctx, storeID)
}

func (s *reviewService) publish(ctx context.Context, topic notifier.Topic, payload any) {
	if err := s.bus.Broadcast(ctx, topic, payload); err != nil {
		publishFailures.WithLabelValues(string(topic)).Inc()
		s.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("topic", string(topic)), slog.Any("error", err))
	}
}
