package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotals(t *testing.T) {
	t.Run("sums quantity and price", func(t *testing.T) {
		qty, price := CartTotals([]Line{{Quantity: 2, UnitPrice: 500}, {Quantity: 1, UnitPrice: 300}})
		assert.Equal(t, 3, qty)
		assert.Equal(t, 1300.0, price)
	})

	t.Run("rounds to cents without float drift", func(t *testing.T) {
		qty, price := CartTotals([]Line{{Quantity: 3, UnitPrice: 0.1}, {Quantity: 1, UnitPrice: 0.2}})
		assert.Equal(t, 4, qty)
		assert.Equal(t, 0.5, price)
	})

	t.Run("empty", func(t *testing.T) {
		qty, price := CartTotals(nil)
		assert.Zero(t, qty)
		assert.Zero(t, price)
	})
}

func TestOrderTotals(t *testing.T) {
	totals := OrderTotals([]Line{{Quantity: 2, UnitPrice: 500}, {Quantity: 1, UnitPrice: 300}})

	assert.Equal(t, "1300", totals.Subtotal.String())
	assert.Equal(t, "130", totals.Tax.String())
	assert.Equal(t, "200", totals.DeliveryFee.String())
	assert.Equal(t, "1630", totals.Total.String())
}

func TestOrderTotalsRoundsTax(t *testing.T) {
	totals := OrderTotals([]Line{{Quantity: 1, UnitPrice: 12.35}})

	assert.Equal(t, "1.24", totals.Tax.StringFixed(2))
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax).Add(totals.DeliveryFee)))
}
