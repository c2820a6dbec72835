package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/jagravi04/easy-bill-creator-app/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires the API routes onto a chi router.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Invoices
		r.Get("/invoices", h.ListInvoices)
		r.Post("/invoices", h.CreateInvoice)
		r.Post("/invoices/preview", h.PreviewInvoice)
		r.Get("/invoices/{id}", h.GetInvoice)
		r.Put("/invoices/{id}", h.UpdateInvoice)
		r.Patch("/invoices/{id}", h.PatchInvoice)
		r.Delete("/invoices/{id}", h.DeleteInvoice)

		// Line item editing
		r.Post("/drafts/edit", h.EditDraft)

		// Dashboard
		r.Get("/dashboard", h.GetDashboard)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
