package order

import (
	"context"
	"errors"
	"spice-garden/domain"
	"spice-garden/entities"
	"spice-garden/internal/utils/mailing"
	"spice-garden/pkg/pricing"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, userID string, req domain.PlaceOrderRequest) (domain.OrderResponse, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetUserOrder(ctx context.Context, userID string, orderID string) (domain.OrderResponse, error)

		GetOrders(ctx context.Context, status string, page, limit int) ([]domain.OrderResponse, int64, error)
		GetOrder(ctx context.Context, orderID string) (domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error)
	}

	// AddressResolver turns a saved address id into the text stored on an order.
	AddressResolver interface {
		ResolveSnapshot(ctx context.Context, userID string, id string) (string, error)
	}

	orderService struct {
		orderRepository OrderRepository
		addresses       AddressResolver
		mailer          mailing.Mailer
		appURL          string
	}
)

func NewOrderService(orderRepository OrderRepository, addresses AddressResolver, mailer mailing.Mailer, appURL string) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		addresses:       addresses,
		mailer:          mailer,
		appURL:          appURL,
	}
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:            order.ID.String(),
		UserID:        order.UserID.String(),
		Address:       order.Address,
		Notes:         order.Notes,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		DeliveryFee:   order.DeliveryFee,
		TotalAmount:   order.TotalAmount,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
		PromoCodeID:   order.PromoCodeID,
		Items:         make([]domain.OrderItemResponse, 0, len(order.Items)),
		CreatedAt:     order.CreatedAt,
	}
	if order.User != nil {
		res.Customer = &domain.UserResponse{
			ID:    order.User.ID.String(),
			Name:  order.User.Name,
			Email: order.User.Email,
			Phone: order.User.Phone,
			Role:  order.User.Role,
		}
	}
	for _, item := range order.Items {
		line := domain.OrderItemResponse{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			OptionIDs:  entities.DecodeOptionIDs(item.OptionIDs),
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
		if item.MenuItem != nil {
			line.Name = item.MenuItem.Name
		}
		res.Items = append(res.Items, line)
	}
	return res
}

func (s *orderService) resolveAddress(ctx context.Context, userID string, req domain.PlaceOrderRequest) (string, error) {
	if req.AddressID != "" {
		return s.addresses.ResolveSnapshot(ctx, userID, req.AddressID)
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return "", domain.ErrAddressRequired
	}
	return address, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, userID string, req domain.PlaceOrderRequest) (domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	// resolved before anything is written
	address, err := s.resolveAddress(ctx, userID, req)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	paymentStatus := strings.TrimSpace(req.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = domain.PaymentStatusPending
	}

	order, err := s.orderRepository.Checkout(ctx, userID, func(cart *entities.Cart, items []*entities.CartItem) (*entities.Order, error) {
		if len(items) == 0 {
			return nil, domain.ErrCartEmpty
		}

		lines := make([]pricing.Line, 0, len(items))
		orderItems := make([]*entities.OrderItem, 0, len(items))
		for _, item := range items {
			lines = append(lines, pricing.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
			orderItems = append(orderItems, &entities.OrderItem{
				ID:         uuid.New(),
				MenuItemID: item.MenuItemID,
				OptionIDs:  item.OptionIDs,
				Quantity:   item.Quantity,
				Price:      item.UnitPrice,
			})
		}
		totals := pricing.OrderTotals(lines)

		return &entities.Order{
			ID:            uuid.New(),
			UserID:        userUUID,
			Address:       address,
			Notes:         strings.TrimSpace(req.Notes),
			Subtotal:      totals.Subtotal.InexactFloat64(),
			Tax:           totals.Tax.InexactFloat64(),
			DeliveryFee:   totals.DeliveryFee.InexactFloat64(),
			TotalAmount:   totals.Total.InexactFloat64(),
			OrderStatus:   string(domain.OrderStatusPending),
			PaymentStatus: paymentStatus,
			PromoCodeID:   req.PromoCodeID,
			Items:         orderItems,
		}, nil
	})
	if err != nil {
		return domain.OrderResponse{}, err
	}

	s.notifyPlaced(order.ID.String())
	return toOrderResponse(order), nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, toOrderResponse(o))
	}
	return res, nil
}

func (s *orderService) getOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, domain.ErrOrderNotFound
	}
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetUserOrder hides orders of other users behind not found.
func (s *orderService) GetUserOrder(ctx context.Context, userID string, orderID string) (domain.OrderResponse, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if order.UserID.String() != userID {
		return domain.OrderResponse{}, domain.ErrOrderNotFound
	}
	return toOrderResponse(order), nil
}

func (s *orderService) GetOrders(ctx context.Context, status string, page, limit int) ([]domain.OrderResponse, int64, error) {
	if status == "all" {
		status = ""
	}
	if status != "" {
		if _, err := domain.ParseOrderStatus(status); err != nil {
			return nil, 0, err
		}
	}

	orders, count, err := s.orderRepository.GetOrders(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, toOrderResponse(o))
	}
	return res, count, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (domain.OrderResponse, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error) {
	next, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	current := domain.OrderStatus(order.OrderStatus)
	if !current.CanTransitionTo(next) {
		return domain.OrderResponse{}, domain.ErrIllegalOrderTransition
	}

	if err := s.orderRepository.UpdateStatus(ctx, orderID, current, next); err != nil {
		return domain.OrderResponse{}, err
	}

	order.OrderStatus = string(next)
	s.notifyStatus(order)
	return toOrderResponse(order), nil
}
