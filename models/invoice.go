package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for issue and due dates.
const DateLayout = "2006-01-02"

// InvoiceStatus is the caller-controlled lifecycle label of an invoice.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// Valid reports whether s is one of the known statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// LineItem is one billable row on an invoice.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	// Rate is the unit price in major units, kept at full precision.
	Rate   decimal.Decimal `json:"rate" swaggertype:"string" example:"0.125"`
	Amount Money           `json:"amount"` // quantity × rate, rounded to the minor unit
}

// Invoice is a finalized invoice held by the store.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ClientName    string        `json:"client_name"`
	ClientEmail   string        `json:"client_email"`
	ClientAddress string        `json:"client_address"`
	IssueDate     string        `json:"issue_date"`
	DueDate       string        `json:"due_date"`
	Items         []LineItem    `json:"items"`
	Subtotal      Money         `json:"subtotal"`
	Tax           Money         `json:"tax"`
	Total         Money         `json:"total"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Clone returns a copy of the invoice that shares no line item storage.
func (inv Invoice) Clone() Invoice {
	if inv.Items != nil {
		items := make([]LineItem, len(inv.Items))
		copy(items, inv.Items)
		inv.Items = items
	}
	return inv
}

// Apply overwrites every field set in the patch and returns the result.
func (inv Invoice) Apply(p InvoicePatch) Invoice {
	out := inv.Clone()
	if p.InvoiceNumber != nil {
		out.InvoiceNumber = *p.InvoiceNumber
	}
	if p.ClientName != nil {
		out.ClientName = *p.ClientName
	}
	if p.ClientEmail != nil {
		out.ClientEmail = *p.ClientEmail
	}
	if p.ClientAddress != nil {
		out.ClientAddress = *p.ClientAddress
	}
	if p.IssueDate != nil {
		out.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		out.DueDate = *p.DueDate
	}
	if p.Items != nil {
		out.Items = make([]LineItem, len(*p.Items))
		copy(out.Items, *p.Items)
	}
	if p.Subtotal != nil {
		out.Subtotal = *p.Subtotal
	}
	if p.Tax != nil {
		out.Tax = *p.Tax
	}
	if p.Total != nil {
		out.Total = *p.Total
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	return out
}

// InvoicePatch carries the fields an update overwrites. Nil fields are left alone.
type InvoicePatch struct {
	InvoiceNumber *string
	ClientName    *string
	ClientEmail   *string
	ClientAddress *string
	IssueDate     *string
	DueDate       *string
	Items         *[]LineItem
	Subtotal      *Money
	Tax           *Money
	Total         *Money
	Status        *InvoiceStatus
	Notes         *string
}

// LineItemInput is a line item as submitted by a client form.
type LineItemInput struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Quantity    FormValue `json:"quantity" swaggertype:"string"`
	Rate        FormValue `json:"rate" swaggertype:"string"`
}

// InvoiceInput is used for creating/replacing invoices.
type InvoiceInput struct {
	InvoiceNumber string          `json:"invoice_number"`
	ClientName    string          `json:"client_name"`
	ClientEmail   string          `json:"client_email"`
	ClientAddress string          `json:"client_address"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	Items         []LineItemInput `json:"items"`
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes"`
}

// Validate checks required fields and defaults the status to draft. It
// returns an empty string when the input is acceptable.
func (i *InvoiceInput) Validate() string {
	var missing []string
	if strings.TrimSpace(i.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if strings.TrimSpace(i.DueDate) == "" {
		missing = append(missing, "due_date")
	}
	if len(missing) > 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}
	if msg := validateDates(i.IssueDate, i.DueDate); msg != "" {
		return msg
	}
	if i.Status == "" {
		i.Status = StatusDraft
	}
	if !i.Status.Valid() {
		return "status must be one of: draft, sent, paid, overdue"
	}
	return ""
}

// InvoicePatchInput is used for partial updates. Only the fields present in
// the request body are changed.
type InvoicePatchInput struct {
	InvoiceNumber *string          `json:"invoice_number"`
	ClientName    *string          `json:"client_name"`
	ClientEmail   *string          `json:"client_email"`
	ClientAddress *string          `json:"client_address"`
	IssueDate     *string          `json:"issue_date"`
	DueDate       *string          `json:"due_date"`
	Items         *[]LineItemInput `json:"items"`
	Status        *InvoiceStatus   `json:"status"`
	Notes         *string          `json:"notes"`
}

func (p *InvoicePatchInput) Validate() string {
	var missing []string
	if p.ClientName != nil && strings.TrimSpace(*p.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if p.DueDate != nil && strings.TrimSpace(*p.DueDate) == "" {
		missing = append(missing, "due_date")
	}
	if len(missing) > 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}
	var issue, due string
	if p.IssueDate != nil {
		issue = *p.IssueDate
	}
	if p.DueDate != nil {
		due = *p.DueDate
	}
	if msg := validateDates(issue, due); msg != "" {
		return msg
	}
	if p.Status != nil && !p.Status.Valid() {
		return "status must be one of: draft, sent, paid, overdue"
	}
	return ""
}

// validateDates checks the format of non-empty dates. Ordering between issue
// and due date is not enforced.
func validateDates(issue, due string) string {
	if issue != "" {
		if _, err := time.Parse(DateLayout, issue); err != nil {
			return "issue_date must be a date (YYYY-MM-DD)"
		}
	}
	if due != "" {
		if _, err := time.Parse(DateLayout, due); err != nil {
			return "due_date must be a date (YYYY-MM-DD)"
		}
	}
	return ""
}
