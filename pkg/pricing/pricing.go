// Package pricing holds the money arithmetic shared by carts and checkout.
// Amounts are carried as decimals and only converted to float64 at the edges.
package pricing

import (
	"spice-garden/domain"

	"github.com/shopspring/decimal"
)

var taxRate = decimal.RequireFromString("0.10")

type Line struct {
	Quantity  int
	UnitPrice float64
}

type Totals struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// CartTotals returns the summed quantity and the price rounded to cents.
func CartTotals(lines []Line) (int, float64) {
	qty := 0
	for _, l := range lines {
		qty += l.Quantity
	}
	return qty, Subtotal(lines).Round(2).InexactFloat64()
}

func OrderTotals(lines []Line) Totals {
	subtotal := Subtotal(lines).Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	fee := decimal.NewFromInt(domain.DeliveryFee)
	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
	}
}
