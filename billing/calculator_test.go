package billing

import (
	"math"
	"strconv"
	"testing"

	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return "item-" + strconv.Itoa(g.n)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecompute(t *testing.T) {
	base := models.LineItem{ID: "1", Description: "Dev", Quantity: 2, Rate: dec("50"), Amount: 10000}

	tests := []struct {
		name  string
		field Field
		value string
		want  models.LineItem
	}{
		{
			name:  "quantity change refreshes amount",
			field: FieldQuantity,
			value: "40",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 40, Rate: dec("50"), Amount: 200000},
		},
		{
			name:  "rate change refreshes amount",
			field: FieldRate,
			value: "75",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 2, Rate: dec("75"), Amount: 15000},
		},
		{
			name:  "fractional quantity rounds to minor unit",
			field: FieldQuantity,
			value: "1.333",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 1.333, Rate: dec("50"), Amount: 6665},
		},
		{
			name:  "non-numeric quantity becomes zero",
			field: FieldQuantity,
			value: "abc",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 0, Rate: dec("50"), Amount: 0},
		},
		{
			name:  "negative rate becomes zero",
			field: FieldRate,
			value: "-10",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 2, Rate: decimal.Zero, Amount: 0},
		},
		{
			name:  "empty quantity becomes zero",
			field: FieldQuantity,
			value: "",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 0, Rate: dec("50"), Amount: 0},
		},
		{
			name:  "fractional paise rate is kept exactly",
			field: FieldRate,
			value: "0.125",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 2, Rate: dec("0.125"), Amount: 25},
		},
		{
			name:  "rate beyond money range becomes zero",
			field: FieldRate,
			value: "1e18",
			want:  models.LineItem{ID: "1", Description: "Dev", Quantity: 2, Rate: decimal.Zero, Amount: 0},
		},
		{
			name:  "description change keeps amount",
			field: FieldDescription,
			value: "Design",
			want:  models.LineItem{ID: "1", Description: "Design", Quantity: 2, Rate: dec("50"), Amount: 10000},
		},
		{
			name:  "unknown field is ignored",
			field: Field("discount"),
			value: "10",
			want:  base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recompute(base, tt.field, tt.value))
		})
	}
}

func TestRecomputeDescriptionKeepsStaleAmount(t *testing.T) {
	// Only quantity and rate edits touch the amount.
	item := models.LineItem{Quantity: 3, Rate: dec("1"), Amount: 999}
	got := Recompute(item, FieldDescription, "x")
	assert.Equal(t, models.Money(999), got.Amount)
}

func TestLineAmountMatchesProduct(t *testing.T) {
	for _, q := range []float64{0, 1, 2.5, 40, 1000} {
		for _, r := range []string{"0", "0.01", "0.125", "75", "85", "1234.56"} {
			want, ok := models.MoneyFromDecimal(dec(r).Mul(decimal.NewFromFloat(q)))
			require.True(t, ok)
			assert.Equal(t, want, LineAmount(q, dec(r)), "q=%v r=%v", q, r)
		}
	}
	assert.Equal(t, models.Money(0), LineAmount(-1, dec("100")))
	assert.Equal(t, models.Money(0), LineAmount(1, dec("-100")))
}

func TestLineAmountRoundsOnlyTheProduct(t *testing.T) {
	item := Recompute(models.LineItem{Description: "Bolts", Quantity: 1000}, FieldRate, "0.125")
	assert.Equal(t, "0.125", item.Rate.String())
	assert.Equal(t, models.Money(12500), item.Amount)

	assert.Equal(t, models.Money(4), LineAmount(3, dec("0.0125")))
}

func TestLineAmountOutOfRange(t *testing.T) {
	assert.Equal(t, models.Money(0), LineAmount(1e15, dec("1e10")))
	assert.Equal(t, models.Money(0), LineAmount(math.MaxFloat64, dec("2")))

	assert.True(t, ParseRate("1e18").IsZero())
	assert.Equal(t, "92233720368547758.07", ParseRate("92233720368547758.07").String())
	assert.Equal(t, 0.0, ParseQuantity("1e400"))
}

func TestNormalize(t *testing.T) {
	got := Normalize(models.LineItem{ID: "1", Description: "Dev", Quantity: -4, Rate: dec("75"), Amount: -30000})
	assert.Equal(t, 0.0, got.Quantity)
	assert.Equal(t, models.Money(0), got.Amount)

	got = Normalize(models.LineItem{ID: "2", Quantity: 2, Rate: dec("-75"), Amount: 999})
	assert.True(t, got.Rate.IsZero())
	assert.Equal(t, models.Money(0), got.Amount)

	got = Normalize(models.LineItem{ID: "3", Quantity: 2, Rate: dec("75"), Amount: 1})
	assert.Equal(t, models.Money(15000), got.Amount)
}

func TestSubtotalSaturates(t *testing.T) {
	items := []models.LineItem{{Amount: models.MaxMoney - 1}, {Amount: 10}}
	assert.Equal(t, models.MaxMoney, Subtotal(items))
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, models.Money(0), Subtotal(nil))
	assert.Equal(t, models.Money(0), Subtotal([]models.LineItem{}))

	items := []models.LineItem{{Amount: 300000}, {Amount: 170000}, {Amount: 1}}
	assert.Equal(t, models.Money(470001), Subtotal(items))
}

func TestFilterBlank(t *testing.T) {
	items := []models.LineItem{
		{ID: "1", Description: "Dev", Amount: 100},
		{ID: "2", Description: "   ", Amount: 50},
		{ID: "3", Description: "", Amount: 0},
		{ID: "4", Description: " Support ", Amount: 25},
	}
	got := FilterBlank(items)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestItemsFromInput(t *testing.T) {
	ids := &seqIDs{}
	got := ItemsFromInput([]models.LineItemInput{
		{ID: "keep", Description: "Dev", Quantity: "40", Rate: "75"},
		{Description: "Bad", Quantity: "lots", Rate: "10"},
	}, ids)

	require.Len(t, got, 2)
	assert.Equal(t, models.LineItem{ID: "keep", Description: "Dev", Quantity: 40, Rate: dec("75"), Amount: 300000}, got[0])
	assert.Equal(t, "item-1", got[1].ID)
	assert.Equal(t, models.Money(0), got[1].Amount)
}

// A non-numeric quantity edit drops the row's contribution.
func TestNonNumericEditIsReflectedInSubtotal(t *testing.T) {
	items := []models.LineItem{
		{ID: "1", Description: "Dev", Quantity: 40, Rate: dec("75"), Amount: 300000},
		{ID: "2", Description: "QA", Quantity: 10, Rate: dec("50"), Amount: 50000},
	}
	require.Equal(t, models.Money(350000), Subtotal(items))

	items[0] = Recompute(items[0], FieldQuantity, "forty")
	assert.Equal(t, models.Money(0), items[0].Amount)
	assert.Equal(t, models.Money(50000), Subtotal(items))
}
