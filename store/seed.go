package store

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/shopspring/decimal"
)

// SeedInvoices returns the demonstration invoices the application starts with.
func SeedInvoices() []models.Invoice {
	return []models.Invoice{
		{
			InvoiceNumber: "INV-001",
			ClientName:    "Acme Corporation",
			ClientEmail:   "contact@acme.com",
			ClientAddress: "123 Business St, City, State 12345",
			IssueDate:     "2024-01-15",
			DueDate:       "2024-02-15",
			Items: []models.LineItem{
				{ID: "1", Description: "Web Development Services", Quantity: 40, Rate: decimal.NewFromInt(75), Amount: 300000},
			},
			Subtotal: 300000,
			Tax:      24000,
			Total:    324000,
			Status:   models.StatusSent,
			Notes:    "Thank you for your business!",
		},
		{
			InvoiceNumber: "INV-002",
			ClientName:    "Tech Solutions Inc",
			ClientEmail:   "billing@techsolutions.com",
			ClientAddress: "456 Tech Ave, Innovation City, State 67890",
			IssueDate:     "2024-01-20",
			DueDate:       "2024-02-20",
			Items: []models.LineItem{
				{ID: "1", Description: "UI/UX Design", Quantity: 20, Rate: decimal.NewFromInt(85), Amount: 170000},
			},
			Subtotal: 170000,
			Tax:      13600,
			Total:    183600,
			Status:   models.StatusPaid,
		},
	}
}

// Seed adds the demonstration invoices to s.
func Seed(ctx context.Context, s InvoiceStore) error {
	for _, inv := range SeedInvoices() {
		added, err := s.Add(ctx, inv)
		if err != nil {
			return errors.Wrapf(err, "seeding %s", inv.InvoiceNumber)
		}
		slog.Debug("seeded invoice", "id", added.ID, "invoice_number", added.InvoiceNumber)
	}
	return nil
}
