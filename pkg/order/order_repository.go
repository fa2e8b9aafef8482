package order

import (
	"context"
	"errors"
	"spice-garden/domain"
	"spice-garden/entities"

	"gorm.io/gorm"
)

// BuildOrder turns the lines of a cart into the order that replaces it.
type BuildOrder func(cart *entities.Cart, items []*entities.CartItem) (*entities.Order, error)

type (
	OrderRepository interface {
		Checkout(ctx context.Context, userID string, build BuildOrder) (*entities.Order, error)
		GetOrdersByUserID(ctx context.Context, userID string) ([]*entities.Order, error)
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error)
		UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Checkout reads the cart, writes the order with its items and deletes the
// cart in one transaction. The cart delete has to hit exactly one row; a
// second checkout racing on the same cart rolls back with ErrCartEmpty.
func (r *orderRepository) Checkout(ctx context.Context, userID string, build BuildOrder) (*entities.Order, error) {
	var order *entities.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart entities.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCartEmpty
			}
			return err
		}

		var items []*entities.CartItem
		if err := tx.Preload("MenuItem").Where("cart_id = ?", cart.ID).Order("created_at asc").Find(&items).Error; err != nil {
			return err
		}

		built, err := build(&cart, items)
		if err != nil {
			return err
		}

		if err := tx.Create(built).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&entities.CartItem{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", cart.ID).Delete(&entities.Cart{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return domain.ErrCartEmpty
		}

		order = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.MenuItem").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if status != "" {
		query = query.Where("order_status = ?", status)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("User").
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

// UpdateStatus only writes when the row still has the status the caller
// validated against.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ? AND order_status = ?", id, string(from)).
		Update("order_status", string(to))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrIllegalOrderTransition
	}
	return nil
}
