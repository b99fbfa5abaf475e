package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/convene/pkg/auth"
	"github.com/ghuser/convene/pkg/errhttp"
	"github.com/ghuser/convene/pkg/httpx"
	appsvcs "github.com/ghuser/convene/services/agenda/application/services"
)

// GetAgendaItemHandler handles GET /agenda-folders/{folderID}/items/{itemID} requests.
type GetAgendaItemHandler struct {
	svc *appsvcs.Services
}

// NewGetAgendaItemHandler returns a GetAgendaItemHandler backed by the given services.
func NewGetAgendaItemHandler(svc *appsvcs.Services) *GetAgendaItemHandler {
	return &GetAgendaItemHandler{svc: svc}
}

// Execute retrieves an agenda item scoped to its folder.
//
//	@Summary		Get agenda item
//	@Description	Retrieves an agenda item by ID within a folder
//	@Tags			agenda-items
//	@Produce		json
//	@Param			folderID	path		string	true	"Agenda folder ID"
//	@Param			itemID		path		string	true	"Agenda item ID"
//	@Success		200			{object}	AgendaItemResponse
//	@Failure		400			{object}	errhttp.ErrorBody
//	@Failure		401			{object}	errhttp.ErrorBody
//	@Failure		403			{object}	errhttp.ErrorBody
//	@Failure		404			{object}	errhttp.ErrorBody
//	@Router			/agenda-folders/{folderID}/items/{itemID} [get]
func (h *GetAgendaItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	folderID, err := uuid.Parse(chi.URLParam(r, "folderID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid folder id")
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	caller := auth.CallerFromCtx(r.Context())
	item, err := h.svc.Agenda.GetItem(r.Context(), caller, folderID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AgendaItemResponse{
		ID:        item.ID,
		FolderID:  item.FolderID,
		CreatorID: item.CreatorID,
		Name:      item.Name.String(),
		Type:      item.Type.String(),
		CreatedAt: item.CreatedAt,
	})
}
