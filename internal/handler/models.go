package handler

import (
	"time"

	"github.com/prontomx/delivery-service/internal/entities"
)

// Order is the API representation of an order.
type Order struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	StoreID    string `json:"store_id"`
	DriverID   string `json:"driver_id,omitempty"`

	Items  []OrderItem `json:"items"`
	Status string      `json:"status"`

	Total       int  `json:"total"`
	DeliveryFee int  `json:"delivery_fee"`
	DriverFee   int  `json:"driver_fee"`
	FeeDegraded bool `json:"fee_degraded,omitempty"`

	PaymentMethod   string  `json:"payment_method"`
	DeliveryAddress Address `json:"delivery_address"`

	StoreName    string `json:"store_name,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	DriverName   string `json:"driver_name,omitempty"`

	IsReviewed bool      `json:"is_reviewed"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderItem is one order line with its product snapshot.
type OrderItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// ProductSnapshot is the product as it was at order time.
type ProductSnapshot struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category,omitempty"`
}

// Address is the delivery destination.
type Address struct {
	Street    string `json:"street"`
	Number    string `json:"number,omitempty"`
	ColonyID  string `json:"colony_id,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// Colony is a named geozone with coordinates.
type Colony struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Settings is the delivery tariff.
type Settings struct {
	BaseFee int `json:"base_fee"`
	KmRate  int `json:"km_rate"`
}

// Review is a customer review of a delivered order.
type Review struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	StoreID    string    `json:"store_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Message is one chat line in an order conversation.
type Message struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateOrderRequest is the order intent. Clients never send prices or
// totals; the server reads them from the catalog.
type CreateOrderRequest struct {
	StoreID         string                   `json:"store_id" validate:"required"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string                   `json:"payment_method" validate:"required,oneof=CASH CARD"`
	DeliveryAddress AddressRequest           `json:"delivery_address" validate:"required"`
}

type CreateOrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type AddressRequest struct {
	Street    string `json:"street" validate:"required"`
	Number    string `json:"number"`
	ColonyID  string `json:"colony_id"`
	Reference string `json:"reference"`
}

// UpdateStatusRequest moves an order to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	// DriverID is honoured only when a MASTER assigns ON_WAY on a driver's behalf.
	DriverID string `json:"driver_id,omitempty"`
}

// ColonyRequest creates or updates a colony.
type ColonyRequest struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// SettingsRequest overwrites the delivery tariff.
type SettingsRequest struct {
	BaseFee int `json:"base_fee" validate:"gte=0"`
	KmRate  int `json:"km_rate" validate:"gte=0"`
}

// ReviewRequest submits a review for a delivered order.
type ReviewRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// MessageRequest sends a chat line into an order conversation.
type MessageRequest struct {
	OrderID    string `json:"order_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	Text       string `json:"text" validate:"required,max=2000"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			Product: ProductSnapshot{
				ID:       it.Product.ID,
				StoreID:  it.Product.StoreID,
				Name:     it.Product.Name,
				Price:    it.Product.Price,
				Category: it.Product.Category,
			},
			Quantity: it.Quantity,
		})
	}

	order := Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		StoreID:       o.StoreID,
		Items:         items,
		Status:        string(o.Status),
		Total:         o.Total,
		DeliveryFee:   o.DeliveryFee,
		DriverFee:     o.DriverFee,
		FeeDegraded:   o.FeeDegraded,
		PaymentMethod: string(o.PaymentMethod),
		DeliveryAddress: Address{
			Street:    o.DeliveryAddress.Street,
			Number:    o.DeliveryAddress.Number,
			ColonyID:  o.DeliveryAddress.ColonyID,
			Reference: o.DeliveryAddress.Reference,
		},
		StoreName:    o.StoreName,
		CustomerName: o.CustomerName,
		DriverName:   o.DriverName,
		IsReviewed:   o.IsReviewed,
		CreatedAt:    o.CreatedAt,
	}
	if o.DriverID != nil {
		order.DriverID = *o.DriverID
	}
	return order
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func ColonyEntityToJSON(c entities.Colony) Colony {
	return Colony{ID: c.ID, Name: c.Name, Lat: c.Lat, Lng: c.Lng}
}

func SettingsEntityToJSON(s entities.Settings) Settings {
	return Settings{BaseFee: s.BaseFee, KmRate: s.KmRate}
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ID:         r.ID,
		OrderID:    r.OrderID,
		StoreID:    r.StoreID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func MessageEntityToJSON(m entities.Message) Message {
	return Message{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
	}
}
