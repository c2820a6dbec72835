package billing

import (
	"strings"
	"time"

	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/shopspring/decimal"
)

// Builder turns validated client input into invoices with a consistent
// derived snapshot (amounts, subtotal, tax, total).
type Builder struct {
	IDs     IDGenerator
	Numbers NumberGenerator
	TaxRate decimal.Decimal
	Now     func() time.Time
}

// NewBuilder returns a Builder using UUIDs, clock-derived invoice numbers and
// the given tax rate.
func NewBuilder(taxRate decimal.Decimal) *Builder {
	return &Builder{
		IDs:     UUIDGenerator{},
		Numbers: ClockNumberGenerator{},
		TaxRate: taxRate,
		Now:     time.Now,
	}
}

// Finalize converts submitted rows into line items, drops blank rows and
// derives totals.
func (b *Builder) Finalize(inputs []models.LineItemInput) ([]models.LineItem, Totals) {
	items := FilterBlank(ItemsFromInput(inputs, b.IDs))
	return items, ComputeTotals(items, b.TaxRate)
}

// Build assembles an invoice from input that already passed Validate. The
// store assigns the ID.
func (b *Builder) Build(in models.InvoiceInput) models.Invoice {
	items, totals := b.Finalize(in.Items)
	inv := models.Invoice{
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		ClientName:    strings.TrimSpace(in.ClientName),
		ClientEmail:   strings.TrimSpace(in.ClientEmail),
		ClientAddress: strings.TrimSpace(in.ClientAddress),
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        in.Status,
		Notes:         in.Notes,
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = b.Numbers.NextNumber()
	}
	if inv.IssueDate == "" {
		inv.IssueDate = b.Now().UTC().Format(models.DateLayout)
	}
	if inv.Status == "" {
		inv.Status = models.StatusDraft
	}
	return inv
}

// Replace builds the patch that overwrites every field of an existing
// invoice. An empty invoice number or issue date keeps the stored value.
func (b *Builder) Replace(in models.InvoiceInput) models.InvoicePatch {
	inv := b.Build(in)
	p := models.InvoicePatch{
		InvoiceNumber: &inv.InvoiceNumber,
		ClientName:    &inv.ClientName,
		ClientEmail:   &inv.ClientEmail,
		ClientAddress: &inv.ClientAddress,
		IssueDate:     &inv.IssueDate,
		DueDate:       &inv.DueDate,
		Items:         &inv.Items,
		Subtotal:      &inv.Subtotal,
		Tax:           &inv.Tax,
		Total:         &inv.Total,
		Status:        &inv.Status,
		Notes:         &inv.Notes,
	}
	if strings.TrimSpace(in.InvoiceNumber) == "" {
		p.InvoiceNumber = nil
	}
	if in.IssueDate == "" {
		p.IssueDate = nil
	}
	return p
}

// Patch converts a partial update. When items are present they are
// finalized and the totals are refreshed with them.
func (b *Builder) Patch(in models.InvoicePatchInput) models.InvoicePatch {
	p := models.InvoicePatch{
		InvoiceNumber: in.InvoiceNumber,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
		ClientAddress: in.ClientAddress,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Status:        in.Status,
		Notes:         in.Notes,
	}
	if in.Items != nil {
		items, totals := b.Finalize(*in.Items)
		p.Items = &items
		p.Subtotal = &totals.Subtotal
		p.Tax = &totals.Tax
		p.Total = &totals.Total
	}
	return p
}
