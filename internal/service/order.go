package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/fee"
	"github.com/prontomx/delivery-service/internal/notifier"
	"github.com/prontomx/delivery-service/pkg/trm"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	ListAvailableOrders(ctx context.Context) ([]entities.Order, error)

	// Conditional writes: zero matched rows come back as ErrStaleWrite /
	// ErrAlreadyClaimed respectively, with the stored order untouched.
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (entities.Order, error)
	ClaimOrder(ctx context.Context, orderID, driverID, driverName string) (entities.Order, error)
}

// ReferenceReader resolves the collaborator data an order needs at creation
// time: authoritative prices, colony coordinates, the tariff singleton, and
// parties' display data.
type ReferenceReader interface {
	GetColonyByID(ctx context.Context, colonyID string) (entities.Colony, error)
	GetSettings(ctx context.Context) (entities.Settings, error)
	GetProductsByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error)
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	refs      ReferenceReader
	bus       notifier.Bus
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, refs ReferenceReader, bus notifier.Bus) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		refs:      refs,
		bus:       bus,
	}
}

type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

type CreateOrderCommand struct {
	CustomerID      string
	StoreID         string
	Items           []CreateOrderItem
	PaymentMethod   entities.PaymentMethod
	DeliveryAddress entities.Address
}

type TransitionCommand struct {
	OrderID   string
	ActorID   string
	ActorRole entities.Role
	Target    entities.OrderStatus
	// DriverID is only honoured when a MASTER pushes an order to ON_WAY on a
	// driver's behalf; everyone else claims for themselves.
	DriverID string
}

// Create validates an order intent against authoritative data, prices it and
// persists it in PENDING. Client-supplied prices and fees are ignored
// entirely; unknown product ids are dropped the same way the catalog would
// have hidden them.
func (s *orderService) Create(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	customer, err := s.refs.GetUserByID(ctx, cmd.CustomerID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve customer: %w", err)
	}

	store, err := s.refs.GetUserByID(ctx, cmd.StoreID)
	if err != nil || store.Role != entities.RoleStore {
		return entities.Order{}, entities.ErrStoreNotFound
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		CustomerID:      cmd.CustomerID,
		StoreID:         cmd.StoreID,
		Status:          entities.StatusPending,
		PaymentMethod:   cmd.PaymentMethod,
		DeliveryAddress: cmd.DeliveryAddress,
		StoreName:       store.DisplayName(),
		CustomerName:    customer.DisplayName(),
		CreatedAt:       time.Now().UTC(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		items, err := s.snapshotItems(ctx, cmd.Items)
		if err != nil {
			return err
		}
		order.Items = items

		quote, degraded := s.quoteDelivery(ctx, cmd.DeliveryAddress.ColonyID, store.StoreColonyID)
		order.DriverFee = quote.DriverFee
		order.DeliveryFee = quote.DeliveryFee
		order.FeeDegraded = degraded
		order.Total = fee.Subtotal(items) + quote.DeliveryFee

		return s.repo.CreateOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	if order.FeeDegraded {
		ordersDegradedFee.Inc()
		s.logger.WarnContext(ctx, "order created with degraded fee",
			slog.String("order_id", order.ID),
			slog.String("colony_id", cmd.DeliveryAddress.ColonyID),
		)
	}

	s.publishOrder(ctx, order)
	return order, nil
}

// snapshotItems re-reads every product and embeds an immutable copy; the
// client's idea of a price never survives this step.
func (s *orderService) snapshotItems(ctx context.Context, items []CreateOrderItem) ([]entities.OrderItem, error) {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.refs.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	snapshots := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		snapshots = append(snapshots, entities.OrderItem{
			Product: entities.ProductSnapshot{
				ID:       p.ID,
				StoreID:  p.StoreID,
				Name:     p.Name,
				Price:    p.Price,
				Category: p.Category,
			},
			Quantity: it.Quantity,
		})
	}

	if len(snapshots) == 0 {
		return nil, entities.ErrEmptyOrder
	}
	return snapshots, nil
}

// quoteDelivery prices the trip, or falls back to zero fees when reference
// data cannot be resolved. The order still places; commerce does not stop on
// data-quality problems.
func (s *orderService) quoteDelivery(ctx context.Context, customerColonyID, storeColonyID string) (fee.Quote, bool) {
	if customerColonyID == "" || storeColonyID == "" {
		return fee.Quote{}, true
	}

	settings, err := s.refs.GetSettings(ctx)
	if err != nil {
		return fee.Quote{}, true
	}
	customerColony, err := s.refs.GetColonyByID(ctx, customerColonyID)
	if err != nil || !customerColony.Resolvable() {
		return fee.Quote{}, true
	}
	storeColony, err := s.refs.GetColonyByID(ctx, storeColonyID)
	if err != nil || !storeColony.Resolvable() {
		return fee.Quote{}, true
	}

	return fee.Calculate(customerColony, storeColony, settings), false
}

// Transition applies one step of the order state machine on behalf of an
// actor. The persistence write is conditional on the status the actor saw, so
// two legitimate actors racing on the same order resolve to one winner and
// one typed conflict.
func (s *orderService) Transition(ctx context.Context, cmd TransitionCommand) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, cmd.OrderID)
	if err != nil {
		return entities.Order{}, err
	}

	if !entities.ValidStatus(cmd.Target) || !entities.CanTransition(order.Status, cmd.Target) {
		transitionsRejected.WithLabelValues("invalid").Inc()
		return entities.Order{}, entities.ErrInvalidTransition
	}
	if err := authorizeTransition(cmd, order); err != nil {
		transitionsRejected.WithLabelValues("unauthorized").Inc()
		return entities.Order{}, err
	}

	// Assignment goes through the claim path so the driver_id guard applies.
	if cmd.Target == entities.StatusOnWay {
		driverID := cmd.ActorID
		if cmd.ActorRole == entities.RoleMaster && cmd.DriverID != "" {
			driverID = cmd.DriverID
		}
		return s.Claim(ctx, cmd.OrderID, driverID)
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, cmd.OrderID, order.Status, cmd.Target)
	if errors.Is(err, entities.ErrStaleWrite) {
		transitionsRejected.WithLabelValues("stale").Inc()
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, err
	}

	transitionsApplied.WithLabelValues(string(cmd.Target)).Inc()
	s.logger.InfoContext(ctx, "order transitioned",
		slog.String("order_id", updated.ID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(updated.Status)),
	)

	s.publishOrder(ctx, updated)
	return updated, nil
}

// authorizeTransition checks role and ownership for a transition the table
// already allows. MASTER overrides everything.
func authorizeTransition(cmd TransitionCommand, order entities.Order) error {
	if cmd.ActorRole == entities.RoleMaster {
		return nil
	}

	switch cmd.Target {
	case entities.StatusPreparing, entities.StatusReady:
		if cmd.ActorRole == entities.RoleStore && cmd.ActorID == order.StoreID {
			return nil
		}
	case entities.StatusRejected:
		if cmd.ActorRole == entities.RoleStore && cmd.ActorID == order.StoreID {
			return nil
		}
		if cmd.ActorRole == entities.RoleClient && cmd.ActorID == order.CustomerID {
			return nil
		}
	case entities.StatusOnWay:
		if cmd.ActorRole == entities.RoleDelivery {
			return nil
		}
	case entities.StatusDelivered:
		if cmd.ActorRole == entities.RoleDelivery &&
			order.DriverID != nil && *order.DriverID == cmd.ActorID {
			return nil
		}
	}
	return entities.ErrUnauthorized
}

// Claim resolves concurrent driver claims on one READY order to exactly one
// winner. It is single-shot: a loser gets ErrAlreadyClaimed and must re-fetch
// the available list; the service never retries on the driver's behalf.
func (s *orderService) Claim(ctx context.Context, orderID, driverID string) (entities.Order, error) {
	driver, err := s.refs.GetUserByID(ctx, driverID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve driver: %w", err)
	}
	if driver.Role != entities.RoleDelivery {
		return entities.Order{}, entities.ErrUnauthorized
	}

	order, err := s.repo.ClaimOrder(ctx, orderID, driverID, driver.DisplayName())
	if errors.Is(err, entities.ErrAlreadyClaimed) {
		claimsConflicted.Inc()
		// Distinguish a lost race from a claim on a nonexistent order.
		if _, getErr := s.repo.GetOrderByID(ctx, orderID); errors.Is(getErr, entities.ErrOrderNotFound) {
			return entities.Order{}, entities.ErrOrderNotFound
		}
		return entities.Order{}, entities.ErrAlreadyClaimed
	}
	if err != nil {
		return entities.Order{}, err
	}

	claimsWon.Inc()
	s.logger.InfoContext(ctx, "order claimed",
		slog.String("order_id", order.ID),
		slog.String("driver_id", driverID),
	)

	s.publishOrder(ctx, order)
	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *orderService) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

func (s *orderService) Available(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListAvailableOrders(ctx)
}

// publishOrder is best-effort: a failed broadcast never rolls back a
// committed transition, clients converge through re-fetch.
func (s *orderService) publishOrder(ctx context.Context, order entities.Order) {
	if err := s.bus.Broadcast(ctx, notifier.TopicOrderUpdate, order); err != nil {
		publishFailures.WithLabelValues(string(notifier.TopicOrderUpdate)).Inc()
		s.logger.ErrorContext(ctx, "failed to publish order update",
			slog.String("order_id", order.ID), slog.Any("error", err))
	}
}
