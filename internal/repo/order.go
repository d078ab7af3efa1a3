package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/prontomx/delivery-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"id", "customer_id", "store_id", "driver_id", "items", "status",
	"total", "delivery_fee", "driver_fee", "fee_degraded", "payment_method",
	"addr_street", "addr_number", "addr_colony_id", "addr_reference",
	"store_name", "customer_name", "driver_name", "is_reviewed", "created_at",
}

func orderReturning() string {
	return "RETURNING " + strings.Join(orderColumns, ", ")
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	items, err := marshalItems(o.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	var driverID sql.NullString
	if o.DriverID != nil {
		driverID = sql.NullString{String: *o.DriverID, Valid: true}
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerID, o.StoreID, driverID, items, string(o.Status),
			o.Total, o.DeliveryFee, o.DriverFee, o.FeeDegraded, string(o.PaymentMethod),
			o.DeliveryAddress.Street, o.DeliveryAddress.Number, o.DeliveryAddress.ColonyID,
			nullString(o.DeliveryAddress.Reference),
			nullString(o.StoreName), nullString(o.CustomerName), nullString(o.DriverName),
			o.IsReviewed, o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(order)
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if filter.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.StoreID != "" {
		q = q.Where(sq.Eq{"store_id": filter.StoreID})
	}
	if filter.DriverID != "" {
		q = q.Where(sq.Eq{"driver_id": filter.DriverID})
	}

	query, args := q.MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return ordersToEntities(rows)
}

// ListAvailableOrders returns the driver pool: READY orders with no driver.
// The list is an unguarded read; the claim itself is the guarded step.
func (r *postgresRepo) ListAvailableOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(entities.StatusReady)}).
		Where("driver_id IS NULL").
		OrderBy("created_at ASC").
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select available orders: %w", err)
	}

	return ordersToEntities(rows)
}

// UpdateOrderStatus applies a guarded transition in a single statement: the
// write succeeds only while the order is still in the expected source status.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		Suffix(orderReturning()).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrStaleWrite
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}

	return OrderToEntity(order)
}

// ClaimOrder assigns a driver to a READY, unassigned order atomically. Zero
// matched rows means another driver won the race or the order left READY.
func (r *postgresRepo) ClaimOrder(ctx context.Context, orderID, driverID, driverName string) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusOnWay)).
		Set("driver_id", driverID).
		Set("driver_name", nullString(driverName)).
		Where(sq.Eq{"id": orderID, "status": string(entities.StatusReady)}).
		Where("driver_id IS NULL").
		Suffix(orderReturning()).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrAlreadyClaimed
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to claim order: %w", err)
	}

	return OrderToEntity(order)
}

// MarkOrderReviewed flips is_reviewed exactly once, and only on a delivered
// order. Zero matched rows means the guard failed.
func (r *postgresRepo) MarkOrderReviewed(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("is_reviewed", true).
		Where(sq.Eq{
			"id":          orderID,
			"status":      string(entities.StatusDelivered),
			"is_reviewed": false,
		}).
		Suffix(orderReturning()).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrAlreadyReviewed
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to mark order reviewed: %w", err)
	}

	return OrderToEntity(order)
}

func ordersToEntities(rows []Order) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		ent, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		result = append(result, ent)
	}
	return result, nil
}
