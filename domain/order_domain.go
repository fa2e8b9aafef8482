package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"

	PaymentStatusPending = "pending"
	DeliveryFee          = 200
)

// orderStatusRank orders the forward path. Cancelled sits outside it.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusPreparing:      1,
	OrderStatusOutForDelivery: 2,
	OrderStatusDelivered:      3,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := orderStatusRank[status]; ok || status == OrderStatusCancelled {
		return status, nil
	}
	return "", ErrInvalidOrderStatus
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo allows forward moves along the delivery path and
// cancellation of any order that is not finished yet.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || s == next {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	return ok && to > from
}

var (
	MessageSuccessPlaceOrder        = "order placed successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"

	MessageFailedPlaceOrder        = "failed to place order"
	MessageFailedGetOrders         = "failed to get orders"
	MessageFailedGetOrder          = "failed to get order"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrCartEmpty              = NewError(KindValidation, "cart is empty")
	ErrAddressRequired        = NewError(KindValidation, "delivery address is required")
	ErrSavedAddressNotFound   = NewError(KindValidation, "saved address not found")
	ErrOrderNotFound          = NewError(KindNotFound, "order not found")
	ErrInvalidOrderStatus     = NewError(KindValidation, "invalid status, must be one of pending, preparing, out_for_delivery, delivered, cancelled")
	ErrIllegalOrderTransition = NewError(KindConflict, "order status cannot change that way")
)

type (
	PlaceOrderRequest struct {
		Address       string  `json:"address" validate:"omitempty"`
		AddressID     string  `json:"address_id" validate:"omitempty,uuid"`
		PaymentStatus string  `json:"payment_status" validate:"omitempty"`
		PromoCodeID   *string `json:"promo_code_id" validate:"omitempty"`
		Notes         string  `json:"notes" validate:"omitempty"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	OrderItemResponse struct {
		ID         string   `json:"id"`
		MenuItemID string   `json:"menu_item_id"`
		Name       string   `json:"name,omitempty"`
		OptionIDs  []string `json:"option_ids"`
		Quantity   int      `json:"quantity"`
		Price      float64  `json:"price"`
	}

	OrderResponse struct {
		ID            string              `json:"id"`
		UserID        string              `json:"user_id"`
		Customer      *UserResponse       `json:"customer,omitempty"`
		Address       string              `json:"address"`
		Notes         string              `json:"notes,omitempty"`
		Subtotal      float64             `json:"subtotal"`
		Tax           float64             `json:"tax"`
		DeliveryFee   float64             `json:"delivery_fee"`
		TotalAmount   float64             `json:"total_amount"`
		OrderStatus   string              `json:"order_status"`
		PaymentStatus string              `json:"payment_status"`
		PromoCodeID   *string             `json:"promo_code_id,omitempty"`
		Items         []OrderItemResponse `json:"items"`
		CreatedAt     time.Time           `json:"created_at"`
	}
)
