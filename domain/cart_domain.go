package domain

var (
	MessageSuccessEnsureCart     = "cart ready"
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddCartItem    = "item added to cart"
	MessageSuccessUpdateCartItem = "cart item updated"
	MessageSuccessRemoveCartItem = "cart item removed"

	MessageFailedEnsureCart     = "failed to get or create cart"
	MessageFailedGetCart        = "failed to get cart"
	MessageFailedAddCartItem    = "failed to add item to cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove cart item"

	ErrCartItemNotFound    = NewError(KindNotFound, "cart item not found")
	ErrCartItemForbidden   = NewError(KindForbidden, "cart item does not belong to you")
	ErrMenuItemUnavailable = NewError(KindValidation, "menu item is not available")
)

type (
	AddCartItemRequest struct {
		MenuItemID string   `json:"menu_item_id" validate:"required,uuid"`
		OptionIDs  []string `json:"option_ids" validate:"omitempty,dive,required"`
		Quantity   int      `json:"quantity" validate:"required,min=1"`
		UnitPrice  float64  `json:"unit_price" validate:"gte=0"`
	}

	UpdateCartItemRequest struct {
		Quantity *int `json:"quantity" validate:"required"`
	}

	CartResponse struct {
		ID     string `json:"id"`
		UserID string `json:"user_id"`
	}

	CartItemResponse struct {
		ID         string            `json:"id"`
		MenuItemID string            `json:"menu_item_id"`
		OptionIDs  []string          `json:"option_ids"`
		Quantity   int               `json:"quantity"`
		UnitPrice  float64           `json:"unit_price"`
		MenuItem   *MenuItemResponse `json:"menu_item,omitempty"`
	}

	// CartSummaryResponse is returned for the current cart. CartID is nil
	// when the user has no cart yet.
	CartSummaryResponse struct {
		CartID        *string            `json:"cart_id"`
		Items         []CartItemResponse `json:"items"`
		TotalQuantity int                `json:"total_quantity"`
		TotalPrice    float64            `json:"total_price"`
	}
)
