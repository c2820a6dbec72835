package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceInputValidate(t *testing.T) {
	tests := []struct {
		name  string
		input InvoiceInput
		want  string
	}{
		{
			name:  "both required fields missing",
			input: InvoiceInput{ClientName: "  "},
			want:  "missing required fields: client_name, due_date",
		},
		{
			name:  "due date missing",
			input: InvoiceInput{ClientName: "Acme"},
			want:  "missing required fields: due_date",
		},
		{
			name:  "bad due date",
			input: InvoiceInput{ClientName: "Acme", DueDate: "15/02/2024"},
			want:  "due_date must be a date (YYYY-MM-DD)",
		},
		{
			name:  "bad issue date",
			input: InvoiceInput{ClientName: "Acme", DueDate: "2024-02-15", IssueDate: "yesterday"},
			want:  "issue_date must be a date (YYYY-MM-DD)",
		},
		{
			name:  "unknown status",
			input: InvoiceInput{ClientName: "Acme", DueDate: "2024-02-15", Status: "void"},
			want:  "status must be one of: draft, sent, paid, overdue",
		},
		{
			name:  "due before issue is accepted",
			input: InvoiceInput{ClientName: "Acme", IssueDate: "2024-03-01", DueDate: "2024-02-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Validate())
		})
	}
}

func TestInvoiceInputValidateDefaultsStatus(t *testing.T) {
	in := InvoiceInput{ClientName: "Acme", DueDate: "2024-02-15"}
	require.Empty(t, in.Validate())
	assert.Equal(t, StatusDraft, in.Status)
}

func TestInvoicePatchInputValidate(t *testing.T) {
	blank := ""
	bad := InvoiceStatus("void")
	sent := StatusSent

	assert.Empty(t, (&InvoicePatchInput{}).Validate())
	assert.Empty(t, (&InvoicePatchInput{Status: &sent}).Validate())
	assert.Equal(t, "missing required fields: client_name, due_date",
		(&InvoicePatchInput{ClientName: &blank, DueDate: &blank}).Validate())
	assert.Equal(t, "status must be one of: draft, sent, paid, overdue",
		(&InvoicePatchInput{Status: &bad}).Validate())
}

func TestInvoiceApply(t *testing.T) {
	inv := Invoice{
		ID:         "1",
		ClientName: "Acme",
		Items:      []LineItem{{ID: "a", Amount: 100}},
		Subtotal:   100,
		Status:     StatusDraft,
	}
	paid := StatusPaid
	items := []LineItem{{ID: "b", Amount: 200}}
	subtotal := Money(200)

	got := inv.Apply(InvoicePatch{Status: &paid, Items: &items, Subtotal: &subtotal})

	assert.Equal(t, "Acme", got.ClientName)
	assert.Equal(t, StatusPaid, got.Status)
	assert.Equal(t, Money(200), got.Subtotal)
	assert.Equal(t, []LineItem{{ID: "b", Amount: 200}}, got.Items)

	// The receiver and the patch are left untouched.
	assert.Equal(t, StatusDraft, inv.Status)
	items[0].ID = "changed"
	assert.Equal(t, "b", got.Items[0].ID)
}

func TestInvoiceClone(t *testing.T) {
	inv := Invoice{Items: []LineItem{{ID: "a"}}}
	c := inv.Clone()
	c.Items[0].ID = "b"
	assert.Equal(t, "a", inv.Items[0].ID)
}
