package admin

import (
	"context"
	"spice-garden/domain"
	"spice-garden/entities"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		CountOrders(ctx context.Context, since *time.Time) (int64, error)
		SumRevenue(ctx context.Context, since *time.Time) (float64, error)
		CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
		CountUsers(ctx context.Context) (int64, error)
		CountMenuItems(ctx context.Context) (int64, error)
		PopularItems(ctx context.Context, limit int) ([]*PopularItem, error)
	}

	PopularItem struct {
		MenuItemID    uuid.UUID
		Name          string
		TotalQuantity int64
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CountOrders(ctx context.Context, since *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	err := query.Count(&count).Error
	return count, err
}

// SumRevenue adds up total_amount over all orders, cancelled ones included.
func (r *adminRepository) SumRevenue(ctx context.Context, since *time.Time) (float64, error) {
	var total float64
	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	return total, err
}

func (r *adminRepository) CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).Where("order_status = ?", string(status)).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountMenuItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) PopularItems(ctx context.Context, limit int) ([]*PopularItem, error) {
	var items []*PopularItem
	err := r.db.WithContext(ctx).Model(&entities.OrderItem{}).
		Select("order_items.menu_item_id, menu_items.name, SUM(order_items.quantity) AS total_quantity").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Group("order_items.menu_item_id, menu_items.name").
		Order("total_quantity desc").
		Limit(limit).
		Scan(&items).Error
	return items, err
}
