package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jagravi04/easy-bill-creator-app/billing"
	"github.com/jagravi04/easy-bill-creator-app/models"
)

// DraftEditInput is one edit applied to the line items of an invoice form.
type DraftEditInput struct {
	Items  []models.LineItem `json:"items"`
	Action string            `json:"action" enums:"add,update,remove"`
	ItemID string            `json:"item_id"`
	Field  billing.Field     `json:"field" enums:"description,quantity,rate"`
	Value  models.FormValue  `json:"value" swaggertype:"string"`
}

// DraftState is the line item state after an edit, with live totals over
// every row (blank rows included).
type DraftState struct {
	Items []models.LineItem `json:"items"`
	billing.Totals
}

// EditDraft applies a single line item edit
// @Summary      Edit draft line items
// @Description  Add, update, or remove one line item of an invoice being edited and return the recomputed rows and totals. The last row cannot be removed.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        edit  body      DraftEditInput  true  "Current rows and the edit to apply"
// @Success      200   {object}  Response{data=DraftState}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Failure      409   {object}  Response{error=string}
// @Router       /drafts/edit [post]
func (h *Handler) EditDraft(w http.ResponseWriter, r *http.Request) {
	var input DraftEditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// Client rows are normalized; their amounts are never trusted.
	draft := billing.NewDraft(input.Items, h.Builder.IDs)

	var err error
	switch input.Action {
	case "add":
		draft.AddItem()
	case "update":
		_, err = draft.UpdateItem(input.ItemID, input.Field, string(input.Value))
	case "remove":
		err = draft.RemoveItem(input.ItemID)
	default:
		writeError(w, http.StatusBadRequest, "action must be one of: add, update, remove")
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DraftState{
		Items:  draft.Items(),
		Totals: draft.Totals(h.Builder.TaxRate),
	})
}
