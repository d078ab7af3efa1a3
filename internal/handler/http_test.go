package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/handler"
	mocks "github.com/prontomx/delivery-service/internal/handler/mocks"
	"github.com/prontomx/delivery-service/internal/service"
	"github.com/go-chi/chi/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testHandler struct {
	orders   *mocks.MockOrderService
	catalog  *mocks.MockCatalogService
	reviews  *mocks.MockReviewService
	messages *mocks.MockMessageService
	router   chi.Router
}

func newTestHandler(t *testing.T) *testHandler {
	th := &testHandler{
		orders:   mocks.NewMockOrderService(t),
		catalog:  mocks.NewMockCatalogService(t),
		reviews:  mocks.NewMockReviewService(t),
		messages: mocks.NewMockMessageService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, testSecret, th.orders, th.catalog, th.reviews, th.messages)

	th.router = chi.NewRouter()
	h.Init(th.router)
	return th
}

func bearerToken(t *testing.T, userID string, role entities.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(t *testing.T, router chi.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := map[string]any{
		"store_id":       "store-1",
		"payment_method": "CASH",
		"items": []map[string]any{
			{"product_id": "p-1", "quantity": 2},
		},
		"delivery_address": map[string]any{
			"street":    "Juarez",
			"number":    "12",
			"colony_id": "col-1",
		},
	}

	t.Run("created", func(t *testing.T) {
		th := newTestHandler(t)
		th.orders.EXPECT().
			Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, cmd service.CreateOrderCommand) (entities.Order, error) {
				assert.Equal(t, "cust-1", cmd.CustomerID)
				assert.Equal(t, "store-1", cmd.StoreID)
				return entities.Order{ID: "ord-1", Status: entities.StatusPending, Total: 294}, nil
			})

		rr := doRequest(t, th.router, http.MethodPost, "/api/orders",
			bearerToken(t, "cust-1", entities.RoleClient), validBody)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"ord-1"`)
		assert.Contains(t, rr.Body.String(), `"status":"PENDING"`)
	})

	t.Run("no token", func(t *testing.T) {
		th := newTestHandler(t)

		rr := doRequest(t, th.router, http.MethodPost, "/api/orders", "", validBody)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("client-set fees are rejected", func(t *testing.T) {
		th := newTestHandler(t)

		body := map[string]any{
			"store_id":       "store-1",
			"payment_method": "CASH",
			"delivery_fee":   0,
			"items": []map[string]any{
				{"product_id": "p-1", "quantity": 1},
			},
			"delivery_address": map[string]any{"street": "Juarez"},
		}
		rr := doRequest(t, th.router, http.MethodPost, "/api/orders",
			bearerToken(t, "cust-1", entities.RoleClient), body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing items", func(t *testing.T) {
		th := newTestHandler(t)

		body := map[string]any{
			"store_id":         "store-1",
			"payment_method":   "CASH",
			"items":            []map[string]any{},
			"delivery_address": map[string]any{"street": "Juarez"},
		}
		rr := doRequest(t, th.router, http.MethodPost, "/api/orders",
			bearerToken(t, "cust-1", entities.RoleClient), body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Items")
	})

	t.Run("store not found", func(t *testing.T) {
		th := newTestHandler(t)
		th.orders.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrStoreNotFound)

		rr := doRequest(t, th.router, http.MethodPost, "/api/orders",
			bearerToken(t, "cust-1", entities.RoleClient), validBody)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHTTPHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		token        string
		body         map[string]any
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "transition applied",
			body: map[string]any{"status": "PREPARING"},
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					Transition(mock.Anything, service.TransitionCommand{
						OrderID: "ord-1", ActorID: "store-1", ActorRole: entities.RoleStore,
						Target: entities.StatusPreparing,
					}).
					Return(entities.Order{ID: "ord-1", Status: entities.StatusPreparing}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "illegal transition",
			body: map[string]any{"status": "ON_WAY"},
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					Transition(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidTransition)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "lost conditional write",
			body: map[string]any{"status": "PREPARING"},
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					Transition(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrStaleWrite)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "actor not allowed",
			body: map[string]any{"status": "PREPARING"},
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					Transition(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrUnauthorized)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:         "missing status",
			body:         map[string]any{},
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			th := newTestHandler(t)
			tc.mockBehavior(th.orders)

			rr := doRequest(t, th.router, http.MethodPut, "/api/orders/ord-1/status",
				bearerToken(t, "store-1", entities.RoleStore), tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestHTTPHandler_ClaimOrder(t *testing.T) {
	t.Run("claim won", func(t *testing.T) {
		th := newTestHandler(t)
		driverID := "drv-1"
		th.orders.EXPECT().
			Claim(mock.Anything, "ord-1", "drv-1").
			Return(entities.Order{ID: "ord-1", Status: entities.StatusOnWay, DriverID: &driverID}, nil)

		rr := doRequest(t, th.router, http.MethodPost, "/api/orders/ord-1/claim",
			bearerToken(t, "drv-1", entities.RoleDelivery), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"driver_id":"drv-1"`)
	})

	t.Run("claim lost", func(t *testing.T) {
		th := newTestHandler(t)
		th.orders.EXPECT().
			Claim(mock.Anything, "ord-1", "drv-2").
			Return(entities.Order{}, entities.ErrAlreadyClaimed)

		rr := doRequest(t, th.router, http.MethodPost, "/api/orders/ord-1/claim",
			bearerToken(t, "drv-2", entities.RoleDelivery), nil)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("customer sees own orders", func(t *testing.T) {
		th := newTestHandler(t)
		th.orders.EXPECT().
			List(mock.Anything, entities.OrderFilter{CustomerID: "cust-1"}).
			Return([]entities.Order{{ID: "ord-1"}}, nil)

		rr := doRequest(t, th.router, http.MethodGet, "/api/orders",
			bearerToken(t, "cust-1", entities.RoleClient), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("master narrows by query", func(t *testing.T) {
		th := newTestHandler(t)
		th.orders.EXPECT().
			List(mock.Anything, entities.OrderFilter{StoreID: "store-1"}).
			Return([]entities.Order{}, nil)

		rr := doRequest(t, th.router, http.MethodGet, "/api/orders?store_id=store-1",
			bearerToken(t, "admin-1", entities.RoleMaster), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("available pool is driver-only", func(t *testing.T) {
		th := newTestHandler(t)

		rr := doRequest(t, th.router, http.MethodGet, "/api/orders/available",
			bearerToken(t, "cust-1", entities.RoleClient), nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("driver lists the pool", func(t *testing.T) {
		th := newTestHandler(t)
		th.orders.EXPECT().
			Available(mock.Anything).
			Return([]entities.Order{{ID: "ord-1", Status: entities.StatusReady}}, nil)

		rr := doRequest(t, th.router, http.MethodGet, "/api/orders/available",
			bearerToken(t, "drv-1", entities.RoleDelivery), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"READY"`)
	})
}

func TestHTTPHandler_Colonies(t *testing.T) {
	t.Run("create requires master", func(t *testing.T) {
		th := newTestHandler(t)

		rr := doRequest(t, th.router, http.MethodPost, "/api/colonies",
			bearerToken(t, "store-1", entities.RoleStore),
			map[string]any{"name": "Centro", "lat": 19.0, "lng": -99.0})

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("master creates a colony", func(t *testing.T) {
		th := newTestHandler(t)
		th.catalog.EXPECT().
			CreateColony(mock.Anything, "Centro", 19.0, -99.0).
			Return(entities.Colony{ID: "col-1", Name: "Centro", Lat: 19.0, Lng: -99.0}, nil)

		rr := doRequest(t, th.router, http.MethodPost, "/api/colonies",
			bearerToken(t, "admin-1", entities.RoleMaster),
			map[string]any{"name": "Centro", "lat": 19.0, "lng": -99.0})

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("delete missing colony", func(t *testing.T) {
		th := newTestHandler(t)
		th.catalog.EXPECT().
			DeleteColony(mock.Anything, "ghost").
			Return(entities.ErrColonyNotFound)

		rr := doRequest(t, th.router, http.MethodDelete, "/api/colonies/ghost",
			bearerToken(t, "admin-1", entities.RoleMaster), nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHTTPHandler_Settings(t *testing.T) {
	t.Run("anyone authenticated reads the tariff", func(t *testing.T) {
		th := newTestHandler(t)
		th.catalog.EXPECT().
			GetSettings(mock.Anything).
			Return(entities.Settings{BaseFee: 15, KmRate: 5}, nil)

		rr := doRequest(t, th.router, http.MethodGet, "/api/settings",
			bearerToken(t, "cust-1", entities.RoleClient), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"base_fee":15`)
	})

	t.Run("update requires master", func(t *testing.T) {
		th := newTestHandler(t)

		rr := doRequest(t, th.router, http.MethodPut, "/api/settings",
			bearerToken(t, "store-1", entities.RoleStore),
			map[string]any{"base_fee": 20, "km_rate": 6})

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHTTPHandler_Reviews(t *testing.T) {
	t.Run("review accepted", func(t *testing.T) {
		th := newTestHandler(t)
		th.reviews.EXPECT().
			Submit(mock.Anything, service.SubmitReviewCommand{
				OrderID: "ord-1", CustomerID: "cust-1", Rating: 5, Comment: "excelente",
			}).
			Return(entities.Review{ID: "rev-1", OrderID: "ord-1", Rating: 5}, nil)

		rr := doRequest(t, th.router, http.MethodPost, "/api/reviews",
			bearerToken(t, "cust-1", entities.RoleClient),
			map[string]any{"order_id": "ord-1", "rating": 5, "comment": "excelente"})

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("second review rejected", func(t *testing.T) {
		th := newTestHandler(t)
		th.reviews.EXPECT().
			Submit(mock.Anything, mock.Anything).
			Return(entities.Review{}, entities.ErrAlreadyReviewed)

		rr := doRequest(t, th.router, http.MethodPost, "/api/reviews",
			bearerToken(t, "cust-1", entities.RoleClient),
			map[string]any{"order_id": "ord-1", "rating": 5})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		th := newTestHandler(t)

		rr := doRequest(t, th.router, http.MethodPost, "/api/reviews",
			bearerToken(t, "cust-1", entities.RoleClient),
			map[string]any{"order_id": "ord-1", "rating": 6})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_Messages(t *testing.T) {
	t.Run("message sent", func(t *testing.T) {
		th := newTestHandler(t)
		th.messages.EXPECT().
			Send(mock.Anything, service.SendMessageCommand{
				OrderID: "ord-1", SenderID: "cust-1", ReceiverID: "store-1", Text: "hola",
			}).
			Return(entities.Message{ID: "m-1", OrderID: "ord-1", Text: "hola"}, nil)

		rr := doRequest(t, th.router, http.MethodPost, "/api/messages",
			bearerToken(t, "cust-1", entities.RoleClient),
			map[string]any{"order_id": "ord-1", "receiver_id": "store-1", "text": "hola"})

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("outsider is refused", func(t *testing.T) {
		th := newTestHandler(t)
		th.messages.EXPECT().
			Send(mock.Anything, mock.Anything).
			Return(entities.Message{}, entities.ErrNotParticipant)

		rr := doRequest(t, th.router, http.MethodPost, "/api/messages",
			bearerToken(t, "stranger", entities.RoleClient),
			map[string]any{"order_id": "ord-1", "receiver_id": "store-1", "text": "hola"})

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("history", func(t *testing.T) {
		th := newTestHandler(t)
		th.messages.EXPECT().
			History(mock.Anything, "ord-1", "cust-1", entities.RoleClient).
			Return([]entities.Message{{ID: "m-1"}}, nil)

		rr := doRequest(t, th.router, http.MethodGet, "/api/messages/ord-1",
			bearerToken(t, "cust-1", entities.RoleClient), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("internal error is opaque", func(t *testing.T) {
		th := newTestHandler(t)
		th.messages.EXPECT().
			History(mock.Anything, "ord-1", "cust-1", entities.RoleClient).
			Return(nil, errors.New("db error"))

		rr := doRequest(t, th.router, http.MethodGet, "/api/messages/ord-1",
			bearerToken(t, "cust-1", entities.RoleClient), nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "internal server error")
	})
}
