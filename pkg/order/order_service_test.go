package order

import (
	"context"
	"spice-garden/domain"
	"spice-garden/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockOrderRepository struct {
	carts  map[string][]*entities.CartItem // by user id
	orders map[string]*entities.Order
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{
		carts:  map[string][]*entities.CartItem{},
		orders: map[string]*entities.Order{},
	}
}

func (m *mockOrderRepository) Checkout(ctx context.Context, userID string, build BuildOrder) (*entities.Order, error) {
	items, ok := m.carts[userID]
	if !ok {
		return nil, domain.ErrCartEmpty
	}
	order, err := build(&entities.Cart{ID: uuid.New()}, items)
	if err != nil {
		return nil, err
	}
	m.orders[order.ID.String()] = order
	delete(m.carts, userID)
	return order, nil
}

func (m *mockOrderRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	for _, o := range m.orders {
		if o.UserID.String() == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepository) GetOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	for _, o := range m.orders {
		if status == "" || o.OrderStatus == status {
			orders = append(orders, o)
		}
	}
	return orders, int64(len(orders)), nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	o, ok := m.orders[id]
	if !ok || o.OrderStatus != string(from) {
		return domain.ErrIllegalOrderTransition
	}
	o.OrderStatus = string(to)
	return nil
}

type stubAddresses map[string]string

func (s stubAddresses) ResolveSnapshot(ctx context.Context, userID string, id string) (string, error) {
	text, ok := s[userID+"/"+id]
	if !ok {
		return "", domain.ErrSavedAddressNotFound
	}
	return text, nil
}

func line(qty int, price float64) *entities.CartItem {
	return &entities.CartItem{ID: uuid.New(), MenuItemID: uuid.New(), Quantity: qty, UnitPrice: price, OptionIDs: "[]"}
}

func TestPlaceOrderTotals(t *testing.T) {
	repo := newMockOrderRepository()
	svc := NewOrderService(repo, stubAddresses{}, nil, "")
	userID := uuid.NewString()
	repo.carts[userID] = []*entities.CartItem{line(2, 500), line(1, 300)}

	res, err := svc.PlaceOrder(context.Background(), userID, domain.PlaceOrderRequest{Address: "12 Palm Rd"})
	require.NoError(t, err)

	assert.Equal(t, 1300.0, res.Subtotal)
	assert.Equal(t, 130.0, res.Tax)
	assert.Equal(t, 200.0, res.DeliveryFee)
	assert.Equal(t, 1630.0, res.TotalAmount)
	assert.Equal(t, string(domain.OrderStatusPending), res.OrderStatus)
	assert.Equal(t, domain.PaymentStatusPending, res.PaymentStatus)
	assert.Equal(t, "12 Palm Rd", res.Address)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 500.0, res.Items[0].Price)
	assert.Equal(t, 2, res.Items[0].Quantity)

	_, stillThere := repo.carts[userID]
	assert.False(t, stillThere)
}

func TestPlaceOrderKeepsClientPaymentStatusAndPromo(t *testing.T) {
	repo := newMockOrderRepository()
	svc := NewOrderService(repo, stubAddresses{}, nil, "")
	userID := uuid.NewString()
	repo.carts[userID] = []*entities.CartItem{line(1, 100)}
	promo := "WELCOME10"

	res, err := svc.PlaceOrder(context.Background(), userID, domain.PlaceOrderRequest{
		Address:       "12 Palm Rd",
		PaymentStatus: "paid",
		PromoCodeID:   &promo,
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", res.PaymentStatus)
	require.NotNil(t, res.PromoCodeID)
	assert.Equal(t, promo, *res.PromoCodeID)
	assert.Equal(t, 310.0, res.TotalAmount, "promo codes are stored, not applied")
}

func TestPlaceOrderRejections(t *testing.T) {
	userID := uuid.NewString()
	addressID := uuid.NewString()
	addresses := stubAddresses{userID + "/" + addressID: "1 Main, Bandung 40111"}

	t.Run("empty cart", func(t *testing.T) {
		repo := newMockOrderRepository()
		repo.carts[userID] = []*entities.CartItem{}
		svc := NewOrderService(repo, addresses, nil, "")

		_, err := svc.PlaceOrder(context.Background(), userID, domain.PlaceOrderRequest{Address: "12 Palm Rd"})
		assert.ErrorIs(t, err, domain.ErrCartEmpty)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.Empty(t, repo.orders)
	})

	t.Run("missing cart", func(t *testing.T) {
		repo := newMockOrderRepository()
		svc := NewOrderService(repo, addresses, nil, "")

		_, err := svc.PlaceOrder(context.Background(), userID, domain.PlaceOrderRequest{Address: "12 Palm Rd"})
		assert.ErrorIs(t, err, domain.ErrCartEmpty)
		assert.Empty(t, repo.orders)
	})

	t.Run("no address", func(t *testing.T) {
		repo := newMockOrderRepository()
		repo.carts[userID] = []*entities.CartItem{line(1, 100)}
		svc := NewOrderService(repo, addresses, nil, "")

		_, err := svc.PlaceOrder(context.Background(), userID, domain.PlaceOrderRequest{Address: "   "})
		assert.ErrorIs(t, err, domain.ErrAddressRequired)
		assert.Len(t, repo.carts[userID], 1)
	})

	t.Run("foreign saved address", func(t *testing.T) {
		repo := newMockOrderRepository()
		repo.carts[userID] = []*entities.CartItem{line(1, 100)}
		svc := NewOrderService(repo, addresses, nil, "")

		_, err := svc.PlaceOrder(context.Background(), userID, domain.PlaceOrderRequest{AddressID: uuid.NewString()})
		assert.ErrorIs(t, err, domain.ErrSavedAddressNotFound)
		assert.Empty(t, repo.orders)
	})

	t.Run("saved address snapshot", func(t *testing.T) {
		repo := newMockOrderRepository()
		repo.carts[userID] = []*entities.CartItem{line(1, 100)}
		svc := NewOrderService(repo, addresses, nil, "")

		res, err := svc.PlaceOrder(context.Background(), userID, domain.PlaceOrderRequest{AddressID: addressID, Address: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, "1 Main, Bandung 40111", res.Address)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	repo := newMockOrderRepository()
	svc := NewOrderService(repo, stubAddresses{}, nil, "")
	ctx := context.Background()
	userID := uuid.NewString()
	repo.carts[userID] = []*entities.CartItem{line(1, 100)}

	placed, err := svc.PlaceOrder(ctx, userID, domain.PlaceOrderRequest{Address: "12 Palm Rd"})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(ctx, placed.ID, domain.UpdateOrderStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.UpdateOrderStatus(ctx, placed.ID, domain.UpdateOrderStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrIllegalOrderTransition, "no-op")

	res, err := svc.UpdateOrderStatus(ctx, placed.ID, domain.UpdateOrderStatusRequest{Status: "preparing"})
	require.NoError(t, err)
	assert.Equal(t, "preparing", res.OrderStatus)

	_, err = svc.UpdateOrderStatus(ctx, placed.ID, domain.UpdateOrderStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrIllegalOrderTransition, "regression")
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	_, err = svc.UpdateOrderStatus(ctx, placed.ID, domain.UpdateOrderStatusRequest{Status: "delivered"})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(ctx, placed.ID, domain.UpdateOrderStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrIllegalOrderTransition, "terminal")

	_, err = svc.UpdateOrderStatus(ctx, uuid.NewString(), domain.UpdateOrderStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetUserOrderHidesForeignOrders(t *testing.T) {
	repo := newMockOrderRepository()
	svc := NewOrderService(repo, stubAddresses{}, nil, "")
	ctx := context.Background()
	owner := uuid.NewString()
	repo.carts[owner] = []*entities.CartItem{line(1, 100)}

	placed, err := svc.PlaceOrder(ctx, owner, domain.PlaceOrderRequest{Address: "12 Palm Rd"})
	require.NoError(t, err)

	_, err = svc.GetUserOrder(ctx, uuid.NewString(), placed.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	got, err := svc.GetUserOrder(ctx, owner, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, got.ID)

	_, err = svc.GetUserOrder(ctx, owner, "garbage")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetOrdersValidatesStatusFilter(t *testing.T) {
	svc := NewOrderService(newMockOrderRepository(), stubAddresses{}, nil, "")

	_, _, err := svc.GetOrders(context.Background(), "lost", 1, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)

	_, _, err = svc.GetOrders(context.Background(), "all", 1, 20)
	assert.NoError(t, err)
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to domain.OrderStatus
		allowed  bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusPreparing, true},
		{domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPreparing, domain.OrderStatusOutForDelivery, true},
		{domain.OrderStatusOutForDelivery, domain.OrderStatusDelivered, true},
		{domain.OrderStatusOutForDelivery, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPending, domain.OrderStatusDelivered, true},
		{domain.OrderStatusPreparing, domain.OrderStatusPending, false},
		{domain.OrderStatusPreparing, domain.OrderStatusPreparing, false},
		{domain.OrderStatusDelivered, domain.OrderStatusCancelled, false},
		{domain.OrderStatusCancelled, domain.OrderStatusPending, false},
	}
	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to))
		})
	}
}
