package cart

import (
	"context"
	"spice-garden/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CartRepository interface {
		GetCartByUserID(ctx context.Context, userID string) (*entities.Cart, error)
		EnsureCart(ctx context.Context, userID uuid.UUID) (*entities.Cart, error)
		GetCartItems(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error)
		GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error)
		AddCartItem(ctx context.Context, item *entities.CartItem) error
		UpdateCartItemQuantity(ctx context.Context, id string, quantity int) error
		DeleteCartItem(ctx context.Context, id string) error
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID string) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// EnsureCart inserts a cart unless the user already has one and then reads
// whichever row won. Concurrent callers end up with the same cart.
func (r *cartRepository) EnsureCart(ctx context.Context, userID uuid.UUID) (*entities.Cart, error) {
	cart := &entities.Cart{UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(cart).Error
	if err != nil {
		return nil, err
	}
	return r.GetCartByUserID(ctx, userID.String())
}

func (r *cartRepository) GetCartItems(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	err := r.db.WithContext(ctx).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		Preload("MenuItem.Options").
		Where("cart_id = ?", cartID).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

func (r *cartRepository) GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).Preload("Cart").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) AddCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

// UpdateCartItemQuantity touches the quantity column only; the unit price
// captured when the line was added stays as it is.
func (r *cartRepository) UpdateCartItemQuantity(ctx context.Context, id string, quantity int) error {
	res := r.db.WithContext(ctx).Model(&entities.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
