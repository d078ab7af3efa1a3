package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusOnWay     OrderStatus = "ON_WAY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusRejected  OrderStatus = "REJECTED"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// ProductSnapshot is the immutable copy of a product embedded in an order
// at creation time, so historical orders survive catalog edits.
type ProductSnapshot struct {
	ID       string
	StoreID  string
	Name     string
	Price    int
	Category string
}

type OrderItem struct {
	Product  ProductSnapshot
	Quantity int
}

// Address is a snapshot of the delivery destination; ColonyID references the
// colony as it was at order time, not a live join.
type Address struct {
	Street    string
	Number    string
	ColonyID  string
	Reference string
}

type Order struct {
	ID         string
	CustomerID string
	StoreID    string
	// DriverID stays nil until the order is claimed; once set it never changes.
	DriverID *string

	Items  []OrderItem
	Status OrderStatus

	// All money fields are whole currency units, computed server-side.
	// Total = subtotal(items) + DeliveryFee, locked in at creation.
	// Platform commission = DeliveryFee - DriverFee.
	Total       int
	DeliveryFee int
	DriverFee   int
	// FeeDegraded marks orders whose fee fell back to zero because a colony
	// or the settings row could not be resolved; they need manual reconciliation.
	FeeDegraded bool

	PaymentMethod   PaymentMethod
	DeliveryAddress Address

	// Display snapshots, captured to avoid lookups in list views.
	StoreName    string
	CustomerName string
	DriverName   string

	IsReviewed bool
	CreatedAt  time.Time
}

// AllowedTransitions encodes the order state flow. Missing keys (DELIVERED,
// REJECTED) are terminal states.
var AllowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusRejected},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusOnWay},
	StatusOnWay:     {StatusDelivered},
}

func CanTransition(from, to OrderStatus) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusOnWay, StatusDelivered, StatusRejected:
		return true
	}
	return false
}

// OrderFilter narrows order listings to one party's view. Empty fields are
// ignored.
type OrderFilter struct {
	CustomerID string
	StoreID    string
	DriverID   string
}

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrEmptyOrder is returned when none of the submitted items resolve to a
	// live product.
	ErrEmptyOrder = errors.New("order has no valid items")
	// ErrInvalidTransition is returned when the requested status change is not
	// in the transition table for the order's current state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAlreadyClaimed is returned when a claim's conditional write matched
	// zero rows: another driver won, or the order left READY.
	ErrAlreadyClaimed = errors.New("order already claimed")
	// ErrStaleWrite is returned when a lifecycle conditional write matched zero
	// rows because the order changed under the caller.
	ErrStaleWrite = errors.New("order modified concurrently")
	// ErrUnauthorized is returned when the actor's role or ownership does not
	// match the transition's precondition.
	ErrUnauthorized = errors.New("actor not allowed")
)
