package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/prontomx/delivery-service/internal/entities"
	"github.com/prontomx/delivery-service/internal/notifier"
	"github.com/prontomx/delivery-service/internal/service"
	mocks "github.com/prontomx/delivery-service/internal/service/mocks"
	txMocks "github.com/prontomx/delivery-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testCustomer = entities.User{ID: "cust-1", Role: entities.RoleClient, FirstName: "Ana", LastName: "Lopez"}
	testStore    = entities.User{ID: "store-1", Role: entities.RoleStore, StoreName: "Taqueria Centro", StoreColonyID: "col-store"}
	testDriver   = entities.User{ID: "drv-1", Role: entities.RoleDelivery, FirstName: "Luis"}

	customerColony = entities.Colony{ID: "col-cust", Name: "Centro", Lat: 19.0, Lng: -99.0}
	storeColony    = entities.Colony{ID: "col-store", Name: "Norte", Lat: 19.05, Lng: -99.05}
	testSettings   = entities.Settings{BaseFee: 15, KmRate: 5}
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func TestOrderService_Create(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader)

	products := []entities.Product{
		{ID: "p-1", StoreID: "store-1", Name: "Tacos al pastor", Price: 120, Category: "food"},
		{ID: "p-2", StoreID: "store-1", Name: "Agua de horchata", Price: 80, Category: "drinks"},
	}

	cmd := service.CreateOrderCommand{
		CustomerID:    "cust-1",
		StoreID:       "store-1",
		PaymentMethod: entities.PaymentCash,
		Items: []service.CreateOrderItem{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-2", Quantity: 1},
		},
		DeliveryAddress: entities.Address{Street: "Juarez", Number: "12", ColonyID: "col-cust"},
	}

	testCases := []struct {
		name         string
		cmd          service.CreateOrderCommand
		mockBehavior MockBehavior
		check        func(t *testing.T, order entities.Order)
		wantErr      error
	}{
		{
			name: "prices from catalog, fees from tariff",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				refs.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(testCustomer, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "store-1").Return(testStore, nil)
				refs.EXPECT().GetProductsByIDs(mock.Anything, []string{"p-1", "p-2"}).Return(products, nil)
				refs.EXPECT().GetSettings(mock.Anything).Return(testSettings, nil)
				refs.EXPECT().GetColonyByID(mock.Anything, "col-cust").Return(customerColony, nil)
				refs.EXPECT().GetColonyByID(mock.Anything, "col-store").Return(storeColony, nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, order entities.Order) {
				// 7.65 km between the colonies: ceil(7.65*5)=39, +15 base.
				assert.Equal(t, 39, order.DriverFee)
				assert.Equal(t, 54, order.DeliveryFee)
				assert.Equal(t, 2*120+80+54, order.Total)
				assert.False(t, order.FeeDegraded)
				assert.Equal(t, entities.StatusPending, order.Status)
				assert.Equal(t, "Taqueria Centro", order.StoreName)
				assert.Equal(t, "Ana Lopez", order.CustomerName)
				assert.Nil(t, order.DriverID)
			},
		},
		{
			name: "unknown products dropped from the order",
			cmd: service.CreateOrderCommand{
				CustomerID: "cust-1", StoreID: "store-1",
				Items: []service.CreateOrderItem{
					{ProductID: "p-1", Quantity: 1},
					{ProductID: "ghost", Quantity: 5},
				},
				DeliveryAddress: entities.Address{ColonyID: "col-cust"},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				refs.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(testCustomer, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "store-1").Return(testStore, nil)
				refs.EXPECT().GetProductsByIDs(mock.Anything, []string{"p-1", "ghost"}).
					Return(products[:1], nil)
				refs.EXPECT().GetSettings(mock.Anything).Return(testSettings, nil)
				refs.EXPECT().GetColonyByID(mock.Anything, "col-cust").Return(customerColony, nil)
				refs.EXPECT().GetColonyByID(mock.Anything, "col-store").Return(storeColony, nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, order entities.Order) {
				require.Len(t, order.Items, 1)
				assert.Equal(t, "p-1", order.Items[0].Product.ID)
				assert.Equal(t, 120+54, order.Total)
			},
		},
		{
			name: "no resolvable items rejects the order",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				refs.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(testCustomer, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "store-1").Return(testStore, nil)
				refs.EXPECT().GetProductsByIDs(mock.Anything, mock.Anything).
					Return([]entities.Product{}, nil)
			},
			wantErr: entities.ErrEmptyOrder,
		},
		{
			name: "unresolvable colony degrades the fee to zero",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				refs.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(testCustomer, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "store-1").Return(testStore, nil)
				refs.EXPECT().GetProductsByIDs(mock.Anything, mock.Anything).Return(products, nil)
				refs.EXPECT().GetSettings(mock.Anything).Return(testSettings, nil)
				refs.EXPECT().GetColonyByID(mock.Anything, "col-cust").
					Return(entities.Colony{}, entities.ErrColonyNotFound)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, order entities.Order) {
				assert.True(t, order.FeeDegraded)
				assert.Zero(t, order.DriverFee)
				assert.Zero(t, order.DeliveryFee)
				assert.Equal(t, 2*120+80, order.Total)
			},
		},
		{
			name: "placeholder coordinates degrade the fee",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				refs.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(testCustomer, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "store-1").Return(testStore, nil)
				refs.EXPECT().GetProductsByIDs(mock.Anything, mock.Anything).Return(products, nil)
				refs.EXPECT().GetSettings(mock.Anything).Return(testSettings, nil)
				refs.EXPECT().GetColonyByID(mock.Anything, "col-cust").
					Return(entities.Colony{ID: "col-cust", Name: "Centro"}, nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, order entities.Order) {
				assert.True(t, order.FeeDegraded)
				assert.Zero(t, order.DeliveryFee)
			},
		},
		{
			name: "store id pointing at a non-store account",
			cmd:  cmd,
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				refs.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(testCustomer, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "store-1").Return(testDriver, nil)
			},
			wantErr: entities.ErrStoreNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			refs := mocks.NewMockReferenceReader(t)
			bus := notifier.NewMemoryBus()
			defer bus.Close()

			tc.mockBehavior(repo, refs)

			svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo, refs, bus)
			order, err := svc.Create(context.Background(), tc.cmd)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			tc.check(t, order)
		})
	}
}

func TestOrderService_Transition(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader)

	pendingOrder := entities.Order{
		ID: "ord-1", CustomerID: "cust-1", StoreID: "store-1",
		Status: entities.StatusPending,
	}
	driverID := "drv-1"
	onWayOrder := entities.Order{
		ID: "ord-1", CustomerID: "cust-1", StoreID: "store-1",
		Status: entities.StatusOnWay, DriverID: &driverID,
	}

	testCases := []struct {
		name         string
		cmd          service.TransitionCommand
		mockBehavior MockBehavior
		wantStatus   entities.OrderStatus
		wantErr      error
	}{
		{
			name: "store accepts a pending order",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "store-1", ActorRole: entities.RoleStore,
				Target: entities.StatusPreparing,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(pendingOrder, nil)
				updated := pendingOrder
				updated.Status = entities.StatusPreparing
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "ord-1", entities.StatusPending, entities.StatusPreparing).
					Return(updated, nil)
			},
			wantStatus: entities.StatusPreparing,
		},
		{
			name: "customer cancels while still pending",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "cust-1", ActorRole: entities.RoleClient,
				Target: entities.StatusRejected,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(pendingOrder, nil)
				updated := pendingOrder
				updated.Status = entities.StatusRejected
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "ord-1", entities.StatusPending, entities.StatusRejected).
					Return(updated, nil)
			},
			wantStatus: entities.StatusRejected,
		},
		{
			name: "skipping steps is rejected",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "store-1", ActorRole: entities.RoleStore,
				Target: entities.StatusOnWay,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(pendingOrder, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "delivered is terminal",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "store-1", ActorRole: entities.RoleStore,
				Target: entities.StatusPreparing,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				delivered := pendingOrder
				delivered.Status = entities.StatusDelivered
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(delivered, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "unknown target status",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "store-1", ActorRole: entities.RoleStore,
				Target: entities.OrderStatus("SHIPPED"),
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(pendingOrder, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "customer cannot accept their own order",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "cust-1", ActorRole: entities.RoleClient,
				Target: entities.StatusPreparing,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(pendingOrder, nil)
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name: "another store cannot touch the order",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "store-2", ActorRole: entities.RoleStore,
				Target: entities.StatusPreparing,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(pendingOrder, nil)
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name: "only the assigned driver can deliver",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "drv-2", ActorRole: entities.RoleDelivery,
				Target: entities.StatusDelivered,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(onWayOrder, nil)
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name: "assigned driver completes delivery",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "drv-1", ActorRole: entities.RoleDelivery,
				Target: entities.StatusDelivered,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(onWayOrder, nil)
				updated := onWayOrder
				updated.Status = entities.StatusDelivered
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "ord-1", entities.StatusOnWay, entities.StatusDelivered).
					Return(updated, nil)
			},
			wantStatus: entities.StatusDelivered,
		},
		{
			name: "concurrent actor loses the conditional write",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "store-1", ActorRole: entities.RoleStore,
				Target: entities.StatusPreparing,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(pendingOrder, nil)
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "ord-1", entities.StatusPending, entities.StatusPreparing).
					Return(entities.Order{}, entities.ErrStaleWrite)
			},
			wantErr: entities.ErrStaleWrite,
		},
		{
			name: "driver moving to on_way goes through the claim guard",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "drv-1", ActorRole: entities.RoleDelivery,
				Target: entities.StatusOnWay,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				ready := pendingOrder
				ready.Status = entities.StatusReady
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(ready, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "drv-1").Return(testDriver, nil)
				repo.EXPECT().ClaimOrder(mock.Anything, "ord-1", "drv-1", "Luis").
					Return(onWayOrder, nil)
			},
			wantStatus: entities.StatusOnWay,
		},
		{
			name: "master assigns a specific driver",
			cmd: service.TransitionCommand{
				OrderID: "ord-1", ActorID: "admin-1", ActorRole: entities.RoleMaster,
				Target: entities.StatusOnWay, DriverID: "drv-1",
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, refs *mocks.MockReferenceReader) {
				ready := pendingOrder
				ready.Status = entities.StatusReady
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(ready, nil)
				refs.EXPECT().GetUserByID(mock.Anything, "drv-1").Return(testDriver, nil)
				repo.EXPECT().ClaimOrder(mock.Anything, "ord-1", "drv-1", "Luis").
					Return(onWayOrder, nil)
			},
			wantStatus: entities.StatusOnWay,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			refs := mocks.NewMockReferenceReader(t)
			bus := notifier.NewMemoryBus()
			defer bus.Close()

			tc.mockBehavior(repo, refs)

			svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo, refs, bus)
			order, err := svc.Transition(context.Background(), tc.cmd)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
		})
	}
}

func TestOrderService_Claim(t *testing.T) {
	driverID := "drv-1"
	claimed := entities.Order{
		ID: "ord-1", Status: entities.StatusOnWay,
		DriverID: &driverID, DriverName: "Luis",
	}

	t.Run("winner gets the order", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		refs := mocks.NewMockReferenceReader(t)
		bus := notifier.NewMemoryBus()
		defer bus.Close()

		refs.EXPECT().GetUserByID(mock.Anything, "drv-1").Return(testDriver, nil)
		repo.EXPECT().ClaimOrder(mock.Anything, "ord-1", "drv-1", "Luis").Return(claimed, nil)

		svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo, refs, bus)
		order, err := svc.Claim(context.Background(), "ord-1", "drv-1")

		require.NoError(t, err)
		require.NotNil(t, order.DriverID)
		assert.Equal(t, "drv-1", *order.DriverID)
	})

	t.Run("loser gets a claim conflict", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		refs := mocks.NewMockReferenceReader(t)
		bus := notifier.NewMemoryBus()
		defer bus.Close()

		refs.EXPECT().GetUserByID(mock.Anything, "drv-1").Return(testDriver, nil)
		repo.EXPECT().ClaimOrder(mock.Anything, "ord-1", "drv-1", "Luis").
			Return(entities.Order{}, entities.ErrAlreadyClaimed)
		repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(claimed, nil)

		svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo, refs, bus)
		_, err := svc.Claim(context.Background(), "ord-1", "drv-1")

		assert.ErrorIs(t, err, entities.ErrAlreadyClaimed)
	})

	t.Run("claim on a missing order", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		refs := mocks.NewMockReferenceReader(t)
		bus := notifier.NewMemoryBus()
		defer bus.Close()

		refs.EXPECT().GetUserByID(mock.Anything, "drv-1").Return(testDriver, nil)
		repo.EXPECT().ClaimOrder(mock.Anything, "ghost", "drv-1", "Luis").
			Return(entities.Order{}, entities.ErrAlreadyClaimed)
		repo.EXPECT().GetOrderByID(mock.Anything, "ghost").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo, refs, bus)
		_, err := svc.Claim(context.Background(), "ghost", "drv-1")

		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("non-driver cannot claim", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		refs := mocks.NewMockReferenceReader(t)
		bus := notifier.NewMemoryBus()
		defer bus.Close()

		refs.EXPECT().GetUserByID(mock.Anything, "cust-1").Return(testCustomer, nil)

		svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo, refs, bus)
		_, err := svc.Claim(context.Background(), "ord-1", "cust-1")

		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})
}

// claimArbiterRepo reproduces the conditional-write semantics of the claim
// in memory, so the race below exercises the real arbitration contract.
type claimArbiterRepo struct {
	mocks.MockOrderRepo

	mu    sync.Mutex
	order entities.Order
}

func (r *claimArbiterRepo) ClaimOrder(_ context.Context, orderID, driverID, driverName string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.order.ID != orderID || r.order.Status != entities.StatusReady || r.order.DriverID != nil {
		return entities.Order{}, entities.ErrAlreadyClaimed
	}
	r.order.Status = entities.StatusOnWay
	r.order.DriverID = &driverID
	r.order.DriverName = driverName
	return r.order, nil
}

func (r *claimArbiterRepo) GetOrderByID(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.order.ID != orderID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.order, nil
}

func TestOrderService_Claim_SingleWinner(t *testing.T) {
	const drivers = 32

	repo := &claimArbiterRepo{order: entities.Order{ID: "ord-1", Status: entities.StatusReady}}
	refs := mocks.NewMockReferenceReader(t)
	bus := notifier.NewMemoryBus()
	defer bus.Close()

	refs.EXPECT().
		GetUserByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, userID string) (entities.User, error) {
			return entities.User{ID: userID, Role: entities.RoleDelivery, FirstName: userID}, nil
		})

	svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo, refs, bus)

	start := make(chan struct{})
	results := make(chan error, drivers)
	var wg sync.WaitGroup
	for i := 0; i < drivers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-start
			_, err := svc.Claim(context.Background(), "ord-1", fmt.Sprintf("drv-%d", id))
			results <- err
		}(i)
	}
	close(start)
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, entities.ErrAlreadyClaimed):
			lost++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, drivers-1, lost)

	final, err := repo.GetOrderByID(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusOnWay, final.Status)
	require.NotNil(t, final.DriverID)
}
