package billing

import (
	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Draft is the line item state of an invoice while it is being edited.
// Blank rows are allowed until Finalize.
type Draft struct {
	items []models.LineItem
	ids   IDGenerator
}

// NewDraft starts a draft from existing items. Each row is passed through
// Normalize, so amounts are re-derived from quantity and rate. A draft with no
// items gets one blank row so there is always something to edit.
func NewDraft(items []models.LineItem, ids IDGenerator) *Draft {
	d := &Draft{ids: ids, items: lo.Map(items, func(item models.LineItem, _ int) models.LineItem {
		return Normalize(item)
	})}
	if len(d.items) == 0 {
		d.AddItem()
	}
	return d
}

// Items returns a copy of the current rows.
func (d *Draft) Items() []models.LineItem {
	out := make([]models.LineItem, len(d.items))
	copy(out, d.items)
	return out
}

// AddItem appends a blank row with quantity 1 and rate 0.
func (d *Draft) AddItem() models.LineItem {
	item := models.LineItem{ID: d.ids.NewID(), Quantity: 1}
	d.items = append(d.items, item)
	return item
}

// UpdateItem applies one field edit to the row with the given ID.
func (d *Draft) UpdateItem(id string, field Field, value string) (models.LineItem, error) {
	for i := range d.items {
		if d.items[i].ID == id {
			d.items[i] = Recompute(d.items[i], field, value)
			return d.items[i], nil
		}
	}
	return models.LineItem{}, errors.Wrapf(ErrItemNotFound, "line item %q", id)
}

// RemoveItem deletes the row with the given ID. The last remaining row
// cannot be removed.
func (d *Draft) RemoveItem(id string) error {
	idx := -1
	for i := range d.items {
		if d.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.Wrapf(ErrItemNotFound, "line item %q", id)
	}
	if len(d.items) <= 1 {
		return errors.WithHint(errors.WithStack(ErrLastLineItem), "add another line item before removing this one")
	}
	d.items = append(d.items[:idx], d.items[idx+1:]...)
	return nil
}

// Totals derives totals over the current rows, blank ones included.
func (d *Draft) Totals(rate decimal.Decimal) Totals {
	return ComputeTotals(d.items, rate)
}

// Finalize drops blank rows and derives totals over what remains.
func (d *Draft) Finalize(rate decimal.Decimal) ([]models.LineItem, Totals) {
	items := FilterBlank(d.items)
	return items, ComputeTotals(items, rate)
}
