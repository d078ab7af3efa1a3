package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prontomx/delivery-service/internal/entities"
)

// Order mirrors the orders table. Items are stored as a jsonb array of
// product snapshots taken at creation time.
type Order struct {
	ID         string         `db:"id"`
	CustomerID string         `db:"customer_id"`
	StoreID    string         `db:"store_id"`
	DriverID   sql.NullString `db:"driver_id"`

	Items  []byte `db:"items"`
	Status string `db:"status"`

	Total       int  `db:"total"`
	DeliveryFee int  `db:"delivery_fee"`
	DriverFee   int  `db:"driver_fee"`
	FeeDegraded bool `db:"fee_degraded"`

	PaymentMethod string `db:"payment_method"`

	AddrStreet    string         `db:"addr_street"`
	AddrNumber    string         `db:"addr_number"`
	AddrColonyID  string         `db:"addr_colony_id"`
	AddrReference sql.NullString `db:"addr_reference"`

	StoreName    sql.NullString `db:"store_name"`
	CustomerName sql.NullString `db:"customer_name"`
	DriverName   sql.NullString `db:"driver_name"`

	IsReviewed bool      `db:"is_reviewed"`
	CreatedAt  time.Time `db:"created_at"`
}

type orderItem struct {
	Product  productSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

type productSnapshot struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

func marshalItems(items []entities.OrderItem) ([]byte, error) {
	rows := make([]orderItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, orderItem{
			Product: productSnapshot{
				ID:       it.Product.ID,
				StoreID:  it.Product.StoreID,
				Name:     it.Product.Name,
				Price:    it.Product.Price,
				Category: it.Product.Category,
			},
			Quantity: it.Quantity,
		})
	}
	return json.Marshal(rows)
}

func unmarshalItems(data []byte) ([]entities.OrderItem, error) {
	var rows []orderItem
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	items := make([]entities.OrderItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, entities.OrderItem{
			Product: entities.ProductSnapshot{
				ID:       r.Product.ID,
				StoreID:  r.Product.StoreID,
				Name:     r.Product.Name,
				Price:    r.Product.Price,
				Category: r.Product.Category,
			},
			Quantity: r.Quantity,
		})
	}
	return items, nil
}

func OrderToEntity(o Order) (entities.Order, error) {
	items, err := unmarshalItems(o.Items)
	if err != nil {
		return entities.Order{}, err
	}

	ent := entities.Order{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		StoreID:     o.StoreID,
		Items:       items,
		Status:      entities.OrderStatus(o.Status),
		Total:       o.Total,
		DeliveryFee: o.DeliveryFee,
		DriverFee:   o.DriverFee,
		FeeDegraded: o.FeeDegraded,

		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		DeliveryAddress: entities.Address{
			Street:    o.AddrStreet,
			Number:    o.AddrNumber,
			ColonyID:  o.AddrColonyID,
			Reference: o.AddrReference.String,
		},

		StoreName:    o.StoreName.String,
		CustomerName: o.CustomerName.String,
		DriverName:   o.DriverName.String,

		IsReviewed: o.IsReviewed,
		CreatedAt:  o.CreatedAt,
	}
	if o.DriverID.Valid {
		d := o.DriverID.String
		ent.DriverID = &d
	}
	return ent, nil
}

type Colony struct {
	ID   string  `db:"id"`
	Name string  `db:"name"`
	Lat  float64 `db:"lat"`
	Lng  float64 `db:"lng"`
}

func ColonyToEntity(c Colony) entities.Colony {
	return entities.Colony{ID: c.ID, Name: c.Name, Lat: c.Lat, Lng: c.Lng}
}

type Settings struct {
	BaseFee int `db:"base_fee"`
	KmRate  int `db:"km_rate"`
}

type Product struct {
	ID       string `db:"id"`
	StoreID  string `db:"store_id"`
	Name     string `db:"name"`
	Price    int    `db:"price"`
	Category string `db:"category"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:       p.ID,
		StoreID:  p.StoreID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
	}
}

type User struct {
	ID        string `db:"id"`
	Role      string `db:"role"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	StoreName     sql.NullString  `db:"store_name"`
	StoreColonyID sql.NullString  `db:"store_colony_id"`
	AverageRating sql.NullFloat64 `db:"average_rating"`
	RatingCount   sql.NullInt32   `db:"rating_count"`
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:        u.ID,
		Role:      entities.Role(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,

		StoreName:     u.StoreName.String,
		StoreColonyID: u.StoreColonyID.String,
		AverageRating: u.AverageRating.Float64,
		RatingCount:   int(u.RatingCount.Int32),
	}
}

type Review struct {
	ID         string         `db:"id"`
	OrderID    string         `db:"order_id"`
	StoreID    string         `db:"store_id"`
	CustomerID string         `db:"customer_id"`
	Rating     int            `db:"rating"`
	Comment    sql.NullString `db:"comment"`
	CreatedAt  time.Time      `db:"created_at"`
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ID:         r.ID,
		OrderID:    r.OrderID,
		StoreID:    r.StoreID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment.String,
		CreatedAt:  r.CreatedAt,
	}
}

type Message struct {
	ID         string    `db:"id"`
	OrderID    string    `db:"order_id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Text       string    `db:"text"`
	CreatedAt  time.Time `db:"created_at"`
}

func MessageToEntity(m Message) entities.Message {
	return entities.Message{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
