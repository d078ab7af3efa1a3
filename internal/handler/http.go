package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prontomx/delivery-service/internal/auth"
	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/service"
	"github.com/prontomx/delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	Create(ctx context.Context, cmd service.CreateOrderCommand) (entities.Order, error)
	Transition(ctx context.Context, cmd service.TransitionCommand) (entities.Order, error)
	Claim(ctx context.Context, orderID, driverID string) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Available(ctx context.Context) ([]entities.Order, error)
}

type CatalogService interface {
	ListColonies(ctx context.Context) ([]entities.Colony, error)
	CreateColony(ctx context.Context, name string, lat, lng float64) (entities.Colony, error)
	UpdateColony(ctx context.Context, colony entities.Colony) (entities.Colony, error)
	DeleteColony(ctx context.Context, colonyID string) error
	GetSettings(ctx context.Context) (entities.Settings, error)
	UpdateSettings(ctx context.Context, settings entities.Settings) (entities.Settings, error)
}

type ReviewService interface {
	Submit(ctx context.Context, cmd service.SubmitReviewCommand) (entities.Review, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Review, error)
}

type MessageService interface {
	Send(ctx context.Context, cmd service.SendMessageCommand) (entities.Message, error)
	History(ctx context.Context, orderID, requesterID string, requesterRole entities.Role) ([]entities.Message, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	jwtSecret string

	orders   OrderService
	catalog  CatalogService
	reviews  ReviewService
	messages MessageService
}

func NewHTTPHandler(
	logger *slog.Logger,
	jwtSecret string,
	orders OrderService,
	catalog CatalogService,
	reviews ReviewService,
	messages MessageService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		jwtSecret: jwtSecret,
		orders:    orders,
		catalog:   catalog,
		reviews:   reviews,
		messages:  messages,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtSecret))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/", h.ListOrders)
			r.Get("/available", h.ListAvailableOrders)
			r.Get("/{order_id}", h.GetOrderByID)
			r.Put("/{order_id}/status", h.UpdateOrderStatus)
			r.Post("/{order_id}/claim", h.ClaimOrder)
		})

		r.Route("/colonies", func(r chi.Router) {
			r.Get("/", h.ListColonies)
			r.Post("/", h.CreateColony)
			r.Put("/{colony_id}", h.UpdateColony)
			r.Delete("/{colony_id}", h.DeleteColony)
		})

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.UpdateSettings)

		r.Post("/reviews", h.CreateReview)
		r.Get("/reviews/{store_id}", h.ListReviews)

		r.Post("/messages", h.SendMessage)
		r.Get("/messages/{order_id}", h.ListMessages)
	})
}

// CreateOrder places a new order in PENDING.
// @Summary      Place an order
// @Description  Validates items against the catalog, computes fees server-side and persists the order in PENDING
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Order intent"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Store not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CreateOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.orders.Create(ctx, service.CreateOrderCommand{
		CustomerID:    principal.UserID,
		StoreID:       req.StoreID,
		Items:         items,
		PaymentMethod: entities.PaymentMethod(req.PaymentMethod),
		DeliveryAddress: entities.Address{
			Street:    req.DeliveryAddress.Street,
			Number:    req.DeliveryAddress.Number,
			ColonyID:  req.DeliveryAddress.ColonyID,
			Reference: req.DeliveryAddress.Reference,
		},
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID returns one order.
// @Summary      Get order by id
// @Tags         orders
// @Produce      json
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetByID(ctx, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders returns the caller's orders: customers see their purchases,
// stores their sales, drivers their assignments. MASTER sees everything and
// may narrow by query params.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        customer_id  query  string  false  "Filter by customer (MASTER only)"
// @Param        store_id     query  string  false  "Filter by store (MASTER only)"
// @Param        driver_id    query  string  false  "Filter by driver (MASTER only)"
// @Success      200  {array}  Order
// @Security     BearerAuth
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var filter entities.OrderFilter
	switch principal.Role {
	case entities.RoleClient:
		filter.CustomerID = principal.UserID
	case entities.RoleStore:
		filter.StoreID = principal.UserID
	case entities.RoleDelivery:
		filter.DriverID = principal.UserID
	case entities.RoleMaster:
		q := r.URL.Query()
		filter.CustomerID = q.Get("customer_id")
		filter.StoreID = q.Get("store_id")
		filter.DriverID = q.Get("driver_id")
	}

	orders, err := h.orders.List(ctx, filter)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ListAvailableOrders returns the unassigned READY pool for drivers.
// @Summary      List claimable orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/available [get]
func (h *HTTPHandler) ListAvailableOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok || (principal.Role != entities.RoleDelivery && principal.Role != entities.RoleMaster) {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	orders, err := h.orders.Available(ctx)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list available orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// UpdateOrderStatus applies one transition of the order state machine.
// @Summary      Transition an order
// @Description  Applies one step of the order lifecycle; the write is conditional on the status the caller saw
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path  string               true  "Order id"
// @Param        request   body  UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Actor not allowed"
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Illegal transition or concurrent update"
// @Security     BearerAuth
// @Router       /api/orders/{order_id}/status [put]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Transition(ctx, service.TransitionCommand{
		OrderID:   orderID,
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
		Target:    entities.OrderStatus(req.Status),
		DriverID:  req.DriverID,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to transition order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ClaimOrder lets a driver claim a READY order. Exactly one concurrent
// claimer wins; everyone else gets 409.
// @Summary      Claim an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Order already claimed"
// @Security     BearerAuth
// @Router       /api/orders/{order_id}/claim [post]
func (h *HTTPHandler) ClaimOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.Claim(ctx, orderID, principal.UserID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to claim order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListColonies returns all colonies.
// @Summary      List colonies
// @Tags         colonies
// @Produce      json
// @Success      200  {array}  Colony
// @Security     BearerAuth
// @Router       /api/colonies [get]
func (h *HTTPHandler) ListColonies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	colonies, err := h.catalog.ListColonies(ctx)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list colonies")
		return
	}

	result := make([]Colony, 0, len(colonies))
	for _, c := range colonies {
		result = append(result, ColonyEntityToJSON(c))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// CreateColony adds a colony (operator only).
// @Summary      Create colony
// @Tags         colonies
// @Accept       json
// @Produce      json
// @Param        request  body  ColonyRequest  true  "Colony"
// @Success      201  {object}  Colony
// @Failure      403  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/colonies [post]
func (h *HTTPHandler) CreateColony(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireMaster(w, r) {
		return
	}

	var req ColonyRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	colony, err := h.catalog.CreateColony(ctx, req.Name, req.Lat, req.Lng)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create colony")
		return
	}

	utils.WriteJSON(w, ColonyEntityToJSON(colony), http.StatusCreated)
}

// UpdateColony changes a colony's name or coordinates (operator only).
// @Summary      Update colony
// @Tags         colonies
// @Accept       json
// @Produce      json
// @Param        colony_id  path  string         true  "Colony id"
// @Param        request    body  ColonyRequest  true  "Colony"
// @Success      200  {object}  Colony
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/colonies/{colony_id} [put]
func (h *HTTPHandler) UpdateColony(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireMaster(w, r) {
		return
	}

	var req ColonyRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	colony, err := h.catalog.UpdateColony(ctx, entities.Colony{
		ID:   chi.URLParam(r, "colony_id"),
		Name: req.Name,
		Lat:  req.Lat,
		Lng:  req.Lng,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to update colony")
		return
	}

	utils.WriteJSON(w, ColonyEntityToJSON(colony), http.StatusOK)
}

// DeleteColony removes a colony (operator only).
// @Summary      Delete colony
// @Tags         colonies
// @Param        colony_id  path  string  true  "Colony id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/colonies/{colony_id} [delete]
func (h *HTTPHandler) DeleteColony(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireMaster(w, r) {
		return
	}

	if err := h.catalog.DeleteColony(ctx, chi.URLParam(r, "colony_id")); err != nil {
		h.writeDomainError(ctx, w, err, "failed to delete colony")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSettings returns the delivery tariff.
// @Summary      Get delivery tariff
// @Tags         settings
// @Produce      json
// @Success      200  {object}  Settings
// @Security     BearerAuth
// @Router       /api/settings [get]
func (h *HTTPHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.catalog.GetSettings(ctx)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get settings")
		return
	}

	utils.WriteJSON(w, SettingsEntityToJSON(settings), http.StatusOK)
}

// UpdateSettings overwrites the delivery tariff (operator only). Existing
// orders keep the fees they were created with.
// @Summary      Update delivery tariff
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body  SettingsRequest  true  "Tariff"
// @Success      200  {object}  Settings
// @Failure      403  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/settings [put]
func (h *HTTPHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireMaster(w, r) {
		return
	}

	var req SettingsRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	settings, err := h.catalog.UpdateSettings(ctx, entities.Settings{
		BaseFee: req.BaseFee,
		KmRate:  req.KmRate,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to update settings")
		return
	}

	utils.WriteJSON(w, SettingsEntityToJSON(settings), http.StatusOK)
}

// CreateReview submits a review for a delivered order.
// @Summary      Review a delivered order
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request  body  ReviewRequest  true  "Review"
// @Success      201  {object}  Review
// @Failure      400  {object}  utils.ErrorResponse "Order not delivered or already reviewed"
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reviews [post]
func (h *HTTPHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	review, err := h.reviews.Submit(ctx, service.SubmitReviewCommand{
		OrderID:    req.OrderID,
		CustomerID: principal.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create review")
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// ListReviews returns a store's reviews, newest first.
// @Summary      List store reviews
// @Tags         reviews
// @Produce      json
// @Param        store_id  path  string  true  "Store id"
// @Success      200  {array}  Review
// @Security     BearerAuth
// @Router       /api/reviews/{store_id} [get]
func (h *HTTPHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	reviews, err := h.reviews.ListByStore(ctx, storeID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list reviews")
		return
	}

	result := make([]Review, 0, len(reviews))
	for _, rev := range reviews {
		result = append(result, ReviewEntityToJSON(rev))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// SendMessage posts a chat line into an order's conversation room.
// @Summary      Send chat message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request  body  MessageRequest  true  "Message"
// @Success      201  {object}  Message
// @Failure      403  {object}  utils.ErrorResponse "Not a participant"
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /api/messages [post]
func (h *HTTPHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req MessageRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	msg, err := h.messages.Send(ctx, service.SendMessageCommand{
		OrderID:    req.OrderID,
		SenderID:   principal.UserID,
		ReceiverID: req.ReceiverID,
		Text:       req.Text,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to send message")
		return
	}

	utils.WriteJSON(w, MessageEntityToJSON(msg), http.StatusCreated)
}

// ListMessages returns an order's conversation history in send order.
// @Summary      Get chat history
// @Tags         messages
// @Produce      json
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {array}  Message
// @Failure      403  {object}  utils.ErrorResponse "Not a participant"
// @Security     BearerAuth
// @Router       /api/messages/{order_id} [get]
func (h *HTTPHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := auth.FromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	msgs, err := h.messages.History(ctx, orderID, principal.UserID, principal.Role)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list messages")
		return
	}

	result := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, MessageEntityToJSON(m))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *HTTPHandler) requireMaster(w http.ResponseWriter, r *http.Request) bool {
	principal, ok := auth.FromContext(r.Context())
	if !ok || principal.Role != entities.RoleMaster {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// writeDomainError maps typed domain errors to HTTP statuses. Conflicts are
// 409 so clients know to re-fetch and retry deliberately, never blindly.
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrColonyNotFound),
		errors.Is(err, entities.ErrSettingsNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrStoreNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrAlreadyClaimed),
		errors.Is(err, entities.ErrStaleWrite):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrUnauthorized),
		errors.Is(err, entities.ErrNotParticipant):
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrAlreadyReviewed),
		errors.Is(err, entities.ErrOrderNotDelivered):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, logMsg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
