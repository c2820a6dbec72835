package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/billing"
	"github.com/jagravi04/easy-bill-creator-app/store"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// Handler serves the invoice API over an injected store.
type Handler struct {
	Store   store.InvoiceStore
	Builder *billing.Builder
	// StrictStatus enables the status transition guard on updates.
	StrictStatus bool
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeDomainError maps known domain errors to a status code and a
// client-facing message; anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "invoice not found")
		return
	case errors.Is(err, billing.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "line item not found")
		return
	case errors.Is(err, billing.ErrLastLineItem):
		status = http.StatusConflict
	case errors.Is(err, billing.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	msg := err.Error()
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		msg = strings.Join(hints, "; ")
	}
	writeError(w, status, msg)
}
