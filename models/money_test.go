package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"0", 0},
		{"75", 7500},
		{"3540", 354000},
		{"0.005", 1},
		{"0.004", 0},
		{"12.345", 1235},
		{"-1.005", -101},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := MoneyFromDecimal(decimal.RequireFromString(tt.in))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyFromDecimalRange(t *testing.T) {
	got, ok := MoneyFromDecimal(decimal.RequireFromString("92233720368547758.07"))
	require.True(t, ok)
	assert.Equal(t, MaxMoney, got)

	for _, in := range []string{"92233720368547758.08", "1e18", "-1e18", "1e25"} {
		_, ok := MoneyFromDecimal(decimal.RequireFromString(in))
		assert.False(t, ok, in)
	}
}

func TestMoneyAddSaturates(t *testing.T) {
	assert.Equal(t, Money(300), Money(100).Add(200))
	assert.Equal(t, MaxMoney, (MaxMoney - 5).Add(10))
	assert.Equal(t, MaxMoney, MaxMoney.Add(MaxMoney))
	assert.Equal(t, Money(-5), Money(5).Add(-10))
}

func TestMoneyJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Total Money `json:"total"`
	}{Total: 354000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 3540.00}`, string(out))

	var got struct {
		A Money `json:"a"`
		B Money `json:"b"`
		C Money `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 18.5, "b": "1836", "c": null}`), &got))
	assert.Equal(t, Money(1850), got.A)
	assert.Equal(t, Money(183600), got.B)
	assert.Equal(t, Money(0), got.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a": "lots"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1e18}`), &got))
}

func TestFormValueJSON(t *testing.T) {
	var got struct {
		A FormValue `json:"a"`
		B FormValue `json:"b"`
		C FormValue `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 40, "b": "abc", "c": null}`), &got))
	assert.Equal(t, FormValue("40"), got.A)
	assert.Equal(t, FormValue("abc"), got.B)
	assert.Equal(t, FormValue(""), got.C)
}
