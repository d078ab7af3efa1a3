package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/notifier"

	"github.com/google/uuid"
)

type MessageRepo interface {
	CreateMessage(ctx context.Context, m entities.Message) error
	ListMessagesByOrder(ctx context.Context, orderID string) ([]entities.Message, error)

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
}

type messageService struct {
	logger *slog.Logger
	repo   MessageRepo
	bus    notifier.Bus
}

func NewMessageService(logger *slog.Logger, repo MessageRepo, bus notifier.Bus) *messageService {
	return &messageService{
		logger: logger.With(slog.String("service", "message")),
		repo:   repo,
		bus:    bus,
	}
}

type SendMessageCommand struct {
	OrderID    string
	SenderID   string
	ReceiverID string
	Text       string
}

// Send delivers a chat line into an order's conversation room. Both ends must
// be participants of the order: the customer, the store, or the assigned
// driver.
func (s *messageService) Send(ctx context.Context, cmd SendMessageCommand) (entities.Message, error) {
	order, err := s.repo.GetOrderByID(ctx, cmd.OrderID)
	if err != nil {
		return entities.Message{}, err
	}
	if !isParticipant(order, cmd.SenderID) || !isParticipant(order, cmd.ReceiverID) {
		return entities.Message{}, entities.ErrNotParticipant
	}

	msg := entities.Message{
		ID:         uuid.NewString(),
		OrderID:    cmd.OrderID,
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		Text:       cmd.Text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return entities.Message{}, err
	}

	room := notifier.OrderRoom(cmd.OrderID)
	if err := s.bus.Room(ctx, room, notifier.TopicNewMessage, msg); err != nil {
		publishFailures.WithLabelValues(string(notifier.TopicNewMessage)).Inc()
		s.logger.ErrorContext(ctx, "failed to publish message",
			slog.String("order_id", cmd.OrderID), slog.Any("error", err))
	}

	return msg, nil
}

// History returns the conversation in send order. Only participants may read
// it.
func (s *messageService) History(ctx context.Context, orderID, requesterID string, requesterRole entities.Role) ([]entities.Message, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if requesterRole != entities.RoleMaster && !isParticipant(order, requesterID) {
		return nil, entities.ErrNotParticipant
	}

	return s.repo.ListMessagesByOrder(ctx, orderID)
}

func isParticipant(order entities.Order, userID string) bool {
	if userID == order.CustomerID || userID == order.StoreID {
		return true
	}
	return order.DriverID != nil && *order.DriverID == userID
}
