package entities

import (
	"errors"
	"time"
)

// Message is a chat line in an order's conversation room.
type Message struct {
	ID         string
	OrderID    string
	SenderID   string
	ReceiverID string
	Text       string
	CreatedAt  time.Time
}

// ErrNotParticipant is returned when the sender is neither the customer, the
// store, nor the assigned driver of the order.
var ErrNotParticipant = errors.New("sender is not a participant of the order")
