package billing

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftStartsWithBlankRow(t *testing.T) {
	d := NewDraft(nil, &seqIDs{})

	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.LineItem{ID: "item-1", Quantity: 1}, items[0])
}

func TestDraftEditing(t *testing.T) {
	d := NewDraft(nil, &seqIDs{})

	_, err := d.UpdateItem("item-1", FieldDescription, "Dev")
	require.NoError(t, err)
	_, err = d.UpdateItem("item-1", FieldQuantity, "40")
	require.NoError(t, err)
	item, err := d.UpdateItem("item-1", FieldRate, "75")
	require.NoError(t, err)
	assert.Equal(t, models.Money(300000), item.Amount)

	blank := d.AddItem()
	_, err = d.UpdateItem(blank.ID, FieldRate, "10")
	require.NoError(t, err)

	// Blank rows count while editing but are dropped on finalize.
	assert.Equal(t, models.Money(301000), d.Totals(DefaultTaxRate).Subtotal)

	items, totals := d.Finalize(DefaultTaxRate)
	require.Len(t, items, 1)
	assert.Equal(t, "Dev", items[0].Description)
	assert.Equal(t, Totals{Subtotal: 300000, Tax: 54000, Total: 354000}, totals)
}

func TestDraftRemoveItem(t *testing.T) {
	d := NewDraft([]models.LineItem{{ID: "a"}, {ID: "b"}}, &seqIDs{})

	require.NoError(t, d.RemoveItem("a"))
	assert.Equal(t, []models.LineItem{{ID: "b"}}, d.Items())

	err := d.RemoveItem("b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLastLineItem))
	assert.Len(t, d.Items(), 1)
}

func TestDraftUnknownItem(t *testing.T) {
	d := NewDraft([]models.LineItem{{ID: "a"}, {ID: "b"}}, &seqIDs{})

	_, err := d.UpdateItem("zzz", FieldQuantity, "1")
	assert.True(t, errors.Is(err, ErrItemNotFound))
	assert.True(t, errors.Is(d.RemoveItem("zzz"), ErrItemNotFound))
}

func TestDraftDoesNotAliasInput(t *testing.T) {
	in := []models.LineItem{{ID: "a", Description: "Dev"}}
	d := NewDraft(in, &seqIDs{})

	_, err := d.UpdateItem("a", FieldDescription, "Design")
	require.NoError(t, err)
	assert.Equal(t, "Dev", in[0].Description)
}

func TestFinalizeAllBlank(t *testing.T) {
	d := NewDraft(nil, &seqIDs{})
	_, err := d.UpdateItem("item-1", FieldRate, "500")
	require.NoError(t, err)

	items, totals := d.Finalize(DefaultTaxRate)
	assert.Empty(t, items)
	assert.Equal(t, Totals{}, totals)
}

func TestNewDraftNormalizesRows(t *testing.T) {
	d := NewDraft([]models.LineItem{
		{ID: "a", Description: "Dev", Quantity: -3, Rate: decimal.RequireFromString("75"), Amount: -22500},
		{ID: "b", Description: "QA", Quantity: 2, Rate: decimal.RequireFromString("-50"), Amount: 12345},
		{ID: "c", Description: "Ops", Quantity: 2, Rate: decimal.RequireFromString("0.125"), Amount: 99},
	}, &seqIDs{})

	items := d.Items()
	assert.Equal(t, 0.0, items[0].Quantity)
	assert.Equal(t, models.Money(0), items[0].Amount)
	assert.True(t, items[1].Rate.IsZero())
	assert.Equal(t, models.Money(0), items[1].Amount)
	assert.Equal(t, models.Money(25), items[2].Amount)
	assert.Equal(t, models.Money(25), d.Totals(DefaultTaxRate).Subtotal)
}
