package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/convene/pkg/auth"
	"github.com/ghuser/convene/pkg/errhttp"
	appsvcs "github.com/ghuser/convene/services/agenda/application/services"
)

// DeleteAgendaItemHandler handles DELETE /agenda-items/{itemID} requests.
type DeleteAgendaItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteAgendaItemHandler returns a DeleteAgendaItemHandler backed by the given services.
func NewDeleteAgendaItemHandler(svc *appsvcs.Services) *DeleteAgendaItemHandler {
	return &DeleteAgendaItemHandler{svc: svc}
}

// Execute deletes an agenda item.
//
//	@Summary		Delete agenda item
//	@Description	Deletes an agenda item by ID
//	@Tags			agenda-items
//	@Param			itemID	path	string	true	"Agenda item ID"
//	@Success		204
//	@Failure		400	{object}	errhttp.ErrorBody
//	@Failure		401	{object}	errhttp.ErrorBody
//	@Failure		403	{object}	errhttp.ErrorBody
//	@Failure		404	{object}	errhttp.ErrorBody
//	@Router			/agenda-items/{itemID} [delete]
func (h *DeleteAgendaItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromCtx(r.Context())
	err := h.svc.Agenda.DeleteItem(r.Context(), caller, appsvcs.DeleteAgendaItemInput{
		ID: chi.URLParam(r, "itemID"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
