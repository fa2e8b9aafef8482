package cart

import (
	"context"
	"errors"
	"spice-garden/domain"
	"spice-garden/entities"
	"spice-garden/pkg/catalog"
	"spice-garden/pkg/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		EnsureCart(ctx context.Context, userID string) (domain.CartResponse, error)
		GetCurrentCart(ctx context.Context, userID string) (domain.CartSummaryResponse, error)
		AddCartItem(ctx context.Context, userID string, req domain.AddCartItemRequest) (domain.CartItemResponse, error)
		// UpdateCartItem returns nil when a quantity of zero or less removed the line.
		UpdateCartItem(ctx context.Context, userID string, itemID string, quantity int) (*domain.CartItemResponse, error)
		RemoveCartItem(ctx context.Context, userID string, itemID string) error
	}

	cartService struct {
		cartRepository CartRepository
	}
)

func NewCartService(cartRepository CartRepository) CartService {
	return &cartService{cartRepository: cartRepository}
}

func toCartItemResponse(item *entities.CartItem) domain.CartItemResponse {
	res := domain.CartItemResponse{
		ID:         item.ID.String(),
		MenuItemID: item.MenuItemID.String(),
		OptionIDs:  entities.DecodeOptionIDs(item.OptionIDs),
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
	}
	if item.MenuItem != nil {
		menuItem := catalog.ToMenuItemResponse(item.MenuItem)
		res.MenuItem = &menuItem
	}
	return res
}

func emptyCart() domain.CartSummaryResponse {
	return domain.CartSummaryResponse{
		CartID: nil,
		Items:  []domain.CartItemResponse{},
	}
}

func (s *cartService) EnsureCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartResponse{}, domain.ErrParseUUID
	}

	cart, err := s.cartRepository.EnsureCart(ctx, userUUID)
	if err != nil {
		return domain.CartResponse{}, err
	}
	return domain.CartResponse{ID: cart.ID.String(), UserID: cart.UserID.String()}, nil
}

// GetCurrentCart never fails for a user without a cart; it returns the empty
// summary instead.
func (s *cartService) GetCurrentCart(ctx context.Context, userID string) (domain.CartSummaryResponse, error) {
	cart, err := s.cartRepository.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyCart(), nil
		}
		return domain.CartSummaryResponse{}, err
	}

	items, err := s.cartRepository.GetCartItems(ctx, cart.ID)
	if err != nil {
		return domain.CartSummaryResponse{}, err
	}

	lines := make([]pricing.Line, 0, len(items))
	res := make([]domain.CartItemResponse, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
		res = append(res, toCartItemResponse(item))
	}

	cartID := cart.ID.String()
	totalQuantity, totalPrice := pricing.CartTotals(lines)
	return domain.CartSummaryResponse{
		CartID:        &cartID,
		Items:         res,
		TotalQuantity: totalQuantity,
		TotalPrice:    totalPrice,
	}, nil
}

// AddCartItem always appends a new line, even when the same item with the
// same options is already in the cart.
func (s *cartService) AddCartItem(ctx context.Context, userID string, req domain.AddCartItemRequest) (domain.CartItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartItemResponse{}, domain.ErrParseUUID
	}
	if _, err := uuid.Parse(req.MenuItemID); err != nil {
		return domain.CartItemResponse{}, domain.ErrMenuItemNotFound
	}

	menuItem, err := s.cartRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.CartItemResponse{}, err
	}
	if !menuItem.IsAvailable {
		return domain.CartItemResponse{}, domain.ErrMenuItemUnavailable
	}

	cart, err := s.cartRepository.EnsureCart(ctx, userUUID)
	if err != nil {
		return domain.CartItemResponse{}, err
	}

	item := &entities.CartItem{
		ID:         uuid.New(),
		CartID:     cart.ID,
		MenuItemID: menuItem.ID,
		OptionIDs:  entities.EncodeOptionIDs(req.OptionIDs),
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
	}
	if err := s.cartRepository.AddCartItem(ctx, item); err != nil {
		return domain.CartItemResponse{}, err
	}

	return toCartItemResponse(item), nil
}

func (s *cartService) getOwnedItem(ctx context.Context, userID string, itemID string) (*entities.CartItem, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	item, err := s.cartRepository.GetCartItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	if item.Cart == nil || item.Cart.UserID.String() != userID {
		return nil, domain.ErrCartItemForbidden
	}
	return item, nil
}

func (s *cartService) UpdateCartItem(ctx context.Context, userID string, itemID string, quantity int) (*domain.CartItemResponse, error) {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.cartRepository.DeleteCartItem(ctx, itemID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, nil
	}

	if err := s.cartRepository.UpdateCartItemQuantity(ctx, itemID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}

	item.Quantity = quantity
	res := toCartItemResponse(item)
	return &res, nil
}

func (s *cartService) RemoveCartItem(ctx context.Context, userID string, itemID string) error {
	if _, err := s.getOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}
	if err := s.cartRepository.DeleteCartItem(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}
	return nil
}
