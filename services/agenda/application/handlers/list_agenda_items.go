package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/convene/pkg/auth"
	"github.com/ghuser/convene/pkg/errhttp"
	"github.com/ghuser/convene/pkg/httpx"
	appsvcs "github.com/ghuser/convene/services/agenda/application/services"
	"github.com/ghuser/convene/services/agenda/domain/repositories"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ListAgendaItemsResponse is the paginated listing response.
type ListAgendaItemsResponse struct {
	Items  []AgendaItemResponse `json:"items"`
	Total  int                  `json:"total"  example:"42"`
	Limit  int                  `json:"limit"  example:"50"`
	Offset int                  `json:"offset" example:"0"`
} // @name ListAgendaItemsResponse

// ListAgendaItemsHandler handles GET /agenda-folders/{folderID}/items requests.
type ListAgendaItemsHandler struct {
	svc *appsvcs.Services
}

// NewListAgendaItemsHandler returns a ListAgendaItemsHandler backed by the given services.
func NewListAgendaItemsHandler(svc *appsvcs.Services) *ListAgendaItemsHandler {
	return &ListAgendaItemsHandler{svc: svc}
}

// Execute lists agenda items in a folder, newest first.
//
//	@Summary		List agenda items
//	@Description	Lists agenda items in a folder with limit/offset pagination
//	@Tags			agenda-items
//	@Produce		json
//	@Param			folderID	path		string	true	"Agenda folder ID"
//	@Param			limit		query		int		false	"Page size (max 200)"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	ListAgendaItemsResponse
//	@Failure		400			{object}	errhttp.ErrorBody
//	@Failure		401			{object}	errhttp.ErrorBody
//	@Failure		403			{object}	errhttp.ErrorBody
//	@Failure		404			{object}	errhttp.ErrorBody
//	@Router			/agenda-folders/{folderID}/items [get]
func (h *ListAgendaItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	folderID, err := uuid.Parse(chi.URLParam(r, "folderID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid folder id")
		return
	}
	opts := queryOpts(r)

	caller := auth.CallerFromCtx(r.Context())
	items, total, err := h.svc.Agenda.ListItems(r.Context(), caller, folderID, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListAgendaItemsResponse{
		Items:  make([]AgendaItemResponse, 0, len(items)),
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, AgendaItemResponse{
			ID:        item.ID,
			FolderID:  item.FolderID,
			CreatorID: item.CreatorID,
			Name:      item.Name.String(),
			Type:      item.Type.String(),
			CreatedAt: item.CreatedAt,
		})
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func queryOpts(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: defaultPageLimit}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		opts.Limit = min(v, maxPageLimit)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}
