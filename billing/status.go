package billing

import (
	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/models"
)

// ValidateTransition checks a status change. Unknown target statuses are
// always refused. In non-strict mode any known status may follow any other;
// strict mode freezes paid invoices and forbids returning to draft once an
// invoice has left it.
func ValidateTransition(from, to models.InvoiceStatus, strict bool) error {
	if !to.Valid() {
		return errors.WithHintf(errors.Mark(errors.Newf("unknown status %q", to), ErrInvalidTransition),
			"status must be one of: draft, sent, paid, overdue")
	}
	if !strict || from == to {
		return nil
	}
	switch {
	case from == models.StatusPaid:
		return transitionError(from, to, "paid invoices cannot change status")
	case to == models.StatusDraft && from != models.StatusDraft:
		return transitionError(from, to, "an invoice cannot return to draft once sent")
	}
	return nil
}

func transitionError(from, to models.InvoiceStatus, hint string) error {
	err := errors.Newf("status %s -> %s not allowed", from, to)
	return errors.WithHint(errors.Mark(err, ErrInvalidTransition), hint)
}
