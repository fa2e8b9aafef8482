package admin

import (
	"context"
	"errors"
	"spice-garden/domain"
	"spice-garden/entities"
	"spice-garden/internal/testdb"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	user := testdb.CreateCustomer(t, db, "a@example.com")
	testdb.CreateUser(t, db, "boss@example.com", domain.RoleAdmin)
	category := testdb.CreateCategory(t, db, "Mains")
	rendang := testdb.CreateMenuItem(t, db, category, "Rendang", 500)
	sate := testdb.CreateMenuItem(t, db, category, "Sate", 300)
	testdb.CreateMenuItem(t, db, category, "Soto", 200)

	place := func(status domain.OrderStatus, total float64, items ...*entities.OrderItem) *entities.Order {
		order := &entities.Order{
			UserID:        user.ID,
			Address:       "12 Palm Rd",
			TotalAmount:   total,
			OrderStatus:   string(status),
			PaymentStatus: domain.PaymentStatusPending,
			Items:         items,
		}
		require.NoError(t, db.Create(order).Error)
		return order
	}

	place(domain.OrderStatusPending, 1630, &entities.OrderItem{MenuItemID: rendang.ID, Quantity: 2, Price: 500}, &entities.OrderItem{MenuItemID: sate.ID, Quantity: 1, Price: 300})
	place(domain.OrderStatusDelivered, 530, &entities.OrderItem{MenuItemID: sate.ID, Quantity: 4, Price: 300})
	old := place(domain.OrderStatusDelivered, 750, &entities.OrderItem{MenuItemID: rendang.ID, Quantity: 1, Price: 500})
	require.NoError(t, db.Model(old).Update("created_at", time.Now().AddDate(0, 0, -3)).Error)

	stats, err := NewAdminService(NewAdminRepository(db)).GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.EqualValues(t, 2, stats.TodayOrders)
	assert.Equal(t, 2910.0, stats.TotalRevenue)
	assert.Equal(t, 2160.0, stats.TodayRevenue)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 3, stats.TotalMenuItems)
	assert.EqualValues(t, 1, stats.PendingOrders)

	require.Len(t, stats.PopularItems, 2)
	assert.Equal(t, "Sate", stats.PopularItems[0].Name)
	assert.EqualValues(t, 5, stats.PopularItems[0].TotalQuantity)
	assert.Equal(t, "Rendang", stats.PopularItems[1].Name)
	assert.EqualValues(t, 3, stats.PopularItems[1].TotalQuantity)
}

func TestGetDashboardStatsEmptyStore(t *testing.T) {
	stats, err := NewAdminService(NewAdminRepository(testdb.New(t))).GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRevenue)
	assert.NotNil(t, stats.PopularItems)
	assert.Empty(t, stats.PopularItems)
}

type failingRepository struct {
	AdminRepository
}

func (failingRepository) CountUsers(ctx context.Context) (int64, error) {
	return 0, errors.New("db down")
}

func TestGetDashboardStatsFailsWhenAnyQueryFails(t *testing.T) {
	repo := failingRepository{AdminRepository: NewAdminRepository(testdb.New(t))}

	_, err := NewAdminService(repo).GetDashboardStats(context.Background())
	assert.EqualError(t, err, "db down")
}
