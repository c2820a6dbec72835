package handlers

import (
	"net/http"

	"github.com/jagravi04/easy-bill-creator-app/billing"
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/jagravi04/easy-bill-creator-app/store"
)

const recentInvoiceCount = 5

type dashboardData struct {
	billing.Metrics
	RecentInvoices []models.Invoice `json:"recent_invoices"`
}

// GetDashboard retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Get revenue (paid), pending amount (sent), overdue and total counts, and the first five invoices.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Store.List(r.Context(), store.ListFilter{})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	d := dashboardData{
		Metrics:        billing.Summarize(invoices),
		RecentInvoices: billing.Recent(invoices, recentInvoiceCount),
	}
	if d.RecentInvoices == nil {
		d.RecentInvoices = []models.Invoice{}
	}
	writeJSON(w, http.StatusOK, d)
}
