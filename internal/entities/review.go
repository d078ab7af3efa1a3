package entities

import (
	"errors"
	"time"
)

type Review struct {
	ID         string
	OrderID    string
	StoreID    string
	CustomerID string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

var (
	// ErrAlreadyReviewed guards the one-review-per-order rule; an order's
	// isReviewed flag flips false->true at most once.
	ErrAlreadyReviewed = errors.New("order already reviewed")
	// ErrOrderNotDelivered is returned when a review targets an order that has
	// not reached DELIVERED.
	ErrOrderNotDelivered = errors.New("order not delivered")
)
