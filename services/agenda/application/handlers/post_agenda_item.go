package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/convene/pkg/auth"
	"github.com/ghuser/convene/pkg/errhttp"
	"github.com/ghuser/convene/pkg/httpx"
	pkgvalidator "github.com/ghuser/convene/pkg/validator"
	appsvcs "github.com/ghuser/convene/services/agenda/application/services"
)

// CreateAgendaItemRequest is the request body for POST /agenda-items.
type CreateAgendaItemRequest struct {
	FolderID string `json:"folderId" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name     string `json:"name"     example:"Opening remarks"`
	Type     string `json:"type"     example:"general" enums:"general,note,scripture,song"`
} // @name CreateAgendaItemRequest

// AgendaItemResponse is the wire representation of an agenda item.
type AgendaItemResponse struct {
	ID        uuid.UUID `json:"id"        example:"550e8400-e29b-41d4-a716-446655440000"`
	FolderID  uuid.UUID `json:"folderId"  example:"123e4567-e89b-12d3-a456-426614174000"`
	CreatorID uuid.UUID `json:"creatorId" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	Name      string    `json:"name"      example:"Opening remarks"`
	Type      string    `json:"type"      example:"general"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
} // @name AgendaItemResponse

// PostAgendaItemHandler handles POST /agenda-items requests.
type PostAgendaItemHandler struct {
	svc *appsvcs.Services
}

// NewPostAgendaItemHandler returns a PostAgendaItemHandler backed by the given services.
func NewPostAgendaItemHandler(svc *appsvcs.Services) *PostAgendaItemHandler {
	return &PostAgendaItemHandler{svc: svc}
}

// Execute creates a new agenda item.
//
// The handler only decodes the body; all argument validation runs inside the
// service so that authentication is always checked before validation.
//
//	@Summary		Create agenda item
//	@Description	Creates a new agenda item inside an agenda item folder
//	@Tags			agenda-items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateAgendaItemRequest	true	"Agenda item creation request"
//	@Success		201		{object}	AgendaItemResponse
//	@Failure		400		{object}	errhttp.ErrorBody
//	@Failure		401		{object}	errhttp.ErrorBody
//	@Failure		403		{object}	errhttp.ErrorBody
//	@Failure		404		{object}	errhttp.ErrorBody
//	@Router			/agenda-items [post]
func (h *PostAgendaItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[CreateAgendaItemRequest](w, r)
	if !ok {
		return
	}

	caller := auth.CallerFromCtx(r.Context())
	item, err := h.svc.Agenda.CreateItem(r.Context(), caller, appsvcs.CreateAgendaItemInput{
		FolderID: req.FolderID,
		Name:     req.Name,
		Type:     req.Type,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, AgendaItemResponse{
		ID:        item.ID,
		FolderID:  item.FolderID,
		CreatorID: item.CreatorID,
		Name:      item.Name.String(),
		Type:      item.Type.String(),
		CreatedAt: item.CreatedAt,
	})
}
