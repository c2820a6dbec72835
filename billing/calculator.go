// Package billing holds the invoice arithmetic: line item amounts, subtotals,
// tax, totals, and the dashboard roll-up over a collection of invoices.
//
// Every function here is pure. Rates are kept at full precision; amounts are
// carried in minor units and products are rounded half away from zero to the
// nearest minor unit, which for the non-negative values accepted here is
// round-half-up. Values too large for Money are treated like bad input and
// become zero; sums saturate at models.MaxMoney.
package billing

import (
	"math"
	"strings"

	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Field names an editable line item field.
type Field string

const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldRate        Field = "rate"
)

// parseNonNegative parses raw as a decimal. Parse failures and negative
// values become zero.
func parseNonNegative(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseQuantity converts form input into a quantity, coercing bad input to 0.
func ParseQuantity(raw string) float64 {
	return ClampQuantity(parseNonNegative(raw).InexactFloat64())
}

// ParseRate converts form input in major units into a rate, coercing bad
// input to 0. A rate whose minor units do not fit in Money is also 0.
func ParseRate(raw string) decimal.Decimal {
	return ClampRate(parseNonNegative(raw))
}

// ClampQuantity returns q, or 0 when q is negative or not finite.
func ClampQuantity(q float64) float64 {
	if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}

// ClampRate returns r, or 0 when r is negative or out of Money's range.
func ClampRate(r decimal.Decimal) decimal.Decimal {
	if r.IsNegative() {
		return decimal.Zero
	}
	if _, ok := models.MoneyFromDecimal(r); !ok {
		return decimal.Zero
	}
	return r
}

// LineAmount returns quantity × rate rounded to the minor unit. Negative or
// non-finite operands count as zero, as does a product too large for Money.
func LineAmount(quantity float64, rate decimal.Decimal) models.Money {
	if ClampQuantity(quantity) == 0 || !rate.IsPositive() {
		return 0
	}
	amount, ok := models.MoneyFromDecimal(decimal.NewFromFloat(quantity).Mul(rate))
	if !ok {
		return 0
	}
	return amount
}

// Normalize coerces a negative or out-of-range quantity or rate to 0 and
// re-derives the amount. Use it on rows that did not come through Recompute.
func Normalize(item models.LineItem) models.LineItem {
	item.Quantity = ClampQuantity(item.Quantity)
	item.Rate = ClampRate(item.Rate)
	item.Amount = LineAmount(item.Quantity, item.Rate)
	return item
}

// Recompute applies one field edit to item. Quantity and rate edits refresh
// the amount; description edits leave it untouched. Unknown fields return
// the item unchanged.
func Recompute(item models.LineItem, field Field, value string) models.LineItem {
	switch field {
	case FieldDescription:
		item.Description = value
		return item
	case FieldQuantity:
		item.Quantity = ParseQuantity(value)
	case FieldRate:
		item.Rate = ParseRate(value)
	default:
		return item
	}
	item.Amount = LineAmount(item.Quantity, item.Rate)
	return item
}

// Subtotal sums item amounts in sequence order.
func Subtotal(items []models.LineItem) models.Money {
	return lo.Reduce(items, func(sum models.Money, item models.LineItem, _ int) models.Money {
		return sum.Add(item.Amount)
	}, 0)
}

// FilterBlank drops items whose description is empty after trimming.
func FilterBlank(items []models.LineItem) []models.LineItem {
	return lo.Filter(items, func(item models.LineItem, _ int) bool {
		return strings.TrimSpace(item.Description) != ""
	})
}

// ItemsFromInput converts submitted rows into line items with derived
// amounts. Rows without an ID get one from ids.
func ItemsFromInput(inputs []models.LineItemInput, ids IDGenerator) []models.LineItem {
	return lo.Map(inputs, func(in models.LineItemInput, _ int) models.LineItem {
		item := models.LineItem{ID: in.ID, Description: in.Description}
		if item.ID == "" {
			item.ID = ids.NewID()
		}
		item = Recompute(item, FieldQuantity, string(in.Quantity))
		return Recompute(item, FieldRate, string(in.Rate))
	})
}
