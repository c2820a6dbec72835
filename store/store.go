// Package store holds the invoice collection behind the InvoiceStore interface.
package store

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/models"
)

// ErrNotFound is returned when no invoice has the requested ID.
var ErrNotFound = errors.New("invoice not found")

// ListFilter narrows List results. Zero values match everything.
type ListFilter struct {
	Status models.InvoiceStatus
	// Search matches invoice number, client name or notes, case-insensitively.
	Search string
}

// Match reports whether inv passes the filter. Both stores filter with it,
// so search folds Unicode case and treats % and _ literally.
func (f ListFilter) Match(inv models.Invoice) bool {
	if f.Status != "" && inv.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, field := range []string{inv.InvoiceNumber, inv.ClientName, inv.Notes} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// InvoiceStore owns the invoice collection. Implementations return copies,
// so callers never observe a partially applied mutation.
type InvoiceStore interface {
	// Add assigns an ID and timestamps and stores the invoice.
	Add(ctx context.Context, inv models.Invoice) (models.Invoice, error)
	// Update overwrites the patched fields of the invoice with the given ID.
	// Every check runs against the stored invoice in the same critical
	// section as the write; the first error aborts the update.
	Update(ctx context.Context, id string, patch models.InvoicePatch, checks ...Check) (models.Invoice, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Invoice, error)
	// List returns invoices in insertion order.
	List(ctx context.Context, filter ListFilter) ([]models.Invoice, error)
}

// Check inspects the stored invoice before an update is applied.
type Check func(current models.Invoice) error

func runChecks(current models.Invoice, checks []Check) error {
	for _, check := range checks {
		if err := check(current); err != nil {
			return err
		}
	}
	return nil
}

func notFound(id string) error {
	return errors.Wrapf(ErrNotFound, "invoice %q", id)
}
