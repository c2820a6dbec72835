package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jagravi04/easy-bill-creator-app/billing"
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/jagravi04/easy-bill-creator-app/store"
)

// InvoicePreview is the derived snapshot for an invoice that is not stored.
type InvoicePreview struct {
	Items []models.LineItem `json:"items"`
	billing.Totals
}

// ListInvoices lists all invoices
// @Summary      List invoices
// @Description  Get all invoices in creation order.
// @Tags         invoices
// @Produce      json
// @Param        status  query     string  false  "Filter by status (draft/sent/paid/overdue)"
// @Param        search  query     string  false  "Search by invoice number, client name, or notes"
// @Success      200     {object}  Response{data=[]models.Invoice}
// @Failure      400     {object}  Response{error=string}
// @Router       /invoices [get]
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	filter := store.ListFilter{
		Status: models.InvoiceStatus(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeError(w, http.StatusBadRequest, "status must be one of: draft, sent, paid, overdue")
		return
	}

	invoices, err := h.Store.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

// GetInvoice retrieves a single invoice by ID
// @Summary      Get invoice
// @Description  Get a specific invoice with its line items and totals.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=models.Invoice}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [get]
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// CreateInvoice creates a new invoice
// @Summary      Create invoice
// @Description  Create an invoice. Blank line items are dropped and totals are derived.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.InvoiceInput  true  "Invoice contents"
// @Success      201      {object}  Response{data=models.Invoice}
// @Failure      400      {object}  Response{error=string}
// @Router       /invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	inv, err := h.Store.Add(r.Context(), h.Builder.Build(input))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// PreviewInvoice computes an invoice's totals without storing it
// @Summary      Preview invoice totals
// @Description  Finalize line items and derive subtotal, tax, and total without creating an invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.InvoiceInput  true  "Invoice contents"
// @Success      200      {object}  Response{data=InvoicePreview}
// @Failure      400      {object}  Response{error=string}
// @Router       /invoices/preview [post]
func (h *Handler) PreviewInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	items, totals := h.Builder.Finalize(input.Items)
	writeJSON(w, http.StatusOK, InvoicePreview{Items: items, Totals: totals})
}

// UpdateInvoice replaces an existing invoice
// @Summary      Replace invoice
// @Description  Overwrite every field of an existing invoice and re-derive its totals.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Invoice ID"
// @Param        invoice  body      models.InvoiceInput  true  "Updated invoice contents"
// @Success      200      {object}  Response{data=models.Invoice}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Failure      422      {object}  Response{error=string}
// @Router       /invoices/{id} [put]
func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	h.applyPatch(w, r, h.Builder.Replace(input))
}

// PatchInvoice updates selected fields of an invoice
// @Summary      Patch invoice
// @Description  Change only the fields present in the body. Sending items re-derives the totals.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id     path      string                    true  "Invoice ID"
// @Param        patch  body      models.InvoicePatchInput  true  "Fields to change"
// @Success      200    {object}  Response{data=models.Invoice}
// @Failure      400    {object}  Response{error=string}
// @Failure      404    {object}  Response{error=string}
// @Failure      422    {object}  Response{error=string}
// @Router       /invoices/{id} [patch]
func (h *Handler) PatchInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoicePatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	h.applyPatch(w, r, h.Builder.Patch(input))
}

func (h *Handler) applyPatch(w http.ResponseWriter, r *http.Request, patch models.InvoicePatch) {
	var checks []store.Check
	if patch.Status != nil {
		to := *patch.Status
		checks = append(checks, func(current models.Invoice) error {
			return billing.ValidateTransition(current.Status, to, h.StrictStatus)
		})
	}

	inv, err := h.Store.Update(r.Context(), chi.URLParam(r, "id"), patch, checks...)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// DeleteInvoice deletes an invoice
// @Summary      Delete invoice
// @Description  Remove an invoice.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [delete]
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
