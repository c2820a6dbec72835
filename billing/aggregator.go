package billing

import (
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the 18% GST rate applied when no rate is configured.
var DefaultTaxRate = decimal.RequireFromString("0.18")

// Totals is the derived money snapshot of an invoice.
type Totals struct {
	Subtotal models.Money `json:"subtotal"`
	Tax      models.Money `json:"tax"`
	Total    models.Money `json:"total"`
}

// TaxAndTotal returns subtotal × rate rounded to the minor unit, and subtotal + tax.
// Both saturate at models.MaxMoney.
func TaxAndTotal(subtotal models.Money, rate decimal.Decimal) (tax, total models.Money) {
	tax, ok := models.MoneyFromDecimal(subtotal.Decimal().Mul(rate))
	if !ok {
		tax = models.MaxMoney
	}
	return tax, subtotal.Add(tax)
}

// ComputeTotals derives subtotal, tax and total for items.
func ComputeTotals(items []models.LineItem, rate decimal.Decimal) Totals {
	subtotal := Subtotal(items)
	tax, total := TaxAndTotal(subtotal, rate)
	return Totals{Subtotal: subtotal, Tax: tax, Total: total}
}

// Metrics summarizes a collection of invoices for the dashboard.
type Metrics struct {
	TotalRevenue  models.Money `json:"total_revenue"`  // paid invoices
	PendingAmount models.Money `json:"pending_amount"` // sent invoices
	OverdueCount  int          `json:"overdue_count"`
	TotalInvoices int          `json:"total_invoices"`
}

// Summarize folds invoices into Metrics. It keeps no state between calls.
func Summarize(invoices []models.Invoice) Metrics {
	sumTotals := func(status models.InvoiceStatus) models.Money {
		return lo.Reduce(withStatus(invoices, status), func(sum models.Money, inv models.Invoice, _ int) models.Money {
			return sum.Add(inv.Total)
		}, 0)
	}
	return Metrics{
		TotalRevenue:  sumTotals(models.StatusPaid),
		PendingAmount: sumTotals(models.StatusSent),
		OverdueCount:  len(withStatus(invoices, models.StatusOverdue)),
		TotalInvoices: len(invoices),
	}
}

func withStatus(invoices []models.Invoice, status models.InvoiceStatus) []models.Invoice {
	return lo.Filter(invoices, func(inv models.Invoice, _ int) bool {
		return inv.Status == status
	})
}

// Recent returns the first n invoices of the collection.
func Recent(invoices []models.Invoice, n int) []models.Invoice {
	if n < 0 {
		n = 0
	}
	return lo.Subset(invoices, 0, uint(n))
}
