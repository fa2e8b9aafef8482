package order

import (
	"context"
	"spice-garden/entities"
	"spice-garden/internal/utils/mailing"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const notifyTimeout = 30 * time.Second

func (s *orderService) mailEnabled() bool {
	return s.mailer != nil && s.mailer.Enabled()
}

// notifyPlaced mails the order confirmation in the background. The request
// has already succeeded, so failures are only logged.
func (s *orderService) notifyPlaced(orderID string) {
	if !s.mailEnabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		order, err := s.orderRepository.GetOrderByID(ctx, orderID)
		if err != nil || order.User == nil {
			log.Warnf("order %s: cannot load order for confirmation mail: %v", orderID, err)
			return
		}

		data := mailing.OrderPlacedMail{
			Name:        order.User.Name,
			OrderID:     orderID,
			Tax:         order.Tax,
			DeliveryFee: order.DeliveryFee,
			Total:       order.TotalAmount,
			Address:     order.Address,
		}
		for _, item := range order.Items {
			data.Items = append(data.Items, mailing.OrderMailItem{
				Name:     itemName(item),
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}

		body, err := mailing.RenderOrderPlaced(data)
		if err != nil {
			log.Warnf("order %s: render confirmation mail: %v", orderID, err)
			return
		}
		if err := s.mailer.SendMail(order.User.Email, "Your Spice Garden order", body); err != nil {
			log.Warnf("order %s: send confirmation mail: %v", orderID, err)
		}
	}()
}

func (s *orderService) notifyStatus(order *entities.Order) {
	if !s.mailEnabled() || order.User == nil {
		return
	}

	data := mailing.OrderStatusMail{
		Name:    order.User.Name,
		OrderID: order.ID.String(),
		Status:  order.OrderStatus,
		AppURL:  s.appURL,
	}
	email := order.User.Email

	go func() {
		body, err := mailing.RenderOrderStatus(data)
		if err != nil {
			log.Warnf("order %s: render status mail: %v", data.OrderID, err)
			return
		}
		if err := s.mailer.SendMail(email, "Order update: "+data.Status, body); err != nil {
			log.Warnf("order %s: send status mail: %v", data.OrderID, err)
		}
	}()
}

func itemName(item *entities.OrderItem) string {
	if item.MenuItem != nil {
		return item.MenuItem.Name
	}
	return item.MenuItemID.String()
}
