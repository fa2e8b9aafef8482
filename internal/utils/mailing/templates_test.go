package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderPlaced(t *testing.T) {
	body, err := RenderOrderPlaced(OrderPlacedMail{
		Name:        "Rani",
		OrderID:     "ord-1",
		Items:       []OrderMailItem{{Name: "Rendang", Quantity: 2, Price: 500}},
		Tax:         100,
		DeliveryFee: 200,
		Total:       1300,
		Address:     "12 Palm Rd",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "ord-1")
	assert.Contains(t, body, "2 x Rendang")
	assert.Contains(t, body, "Total: 1300.00")
	assert.Contains(t, body, "12 Palm Rd")
}

func TestRenderOrderStatusEscapesInput(t *testing.T) {
	body, err := RenderOrderStatus(OrderStatusMail{Name: "<b>x</b>", OrderID: "ord-2", Status: "preparing"})
	require.NoError(t, err)

	assert.Contains(t, body, "preparing")
	assert.NotContains(t, body, "<b>x</b>")
	assert.NotContains(t, body, "View order")
}

func TestMailerDisabledWithoutHost(t *testing.T) {
	m := NewMailer(MailConfig{})
	assert.False(t, m.Enabled())
	assert.NoError(t, m.SendMail("a@b.c", "s", "b"))
}
