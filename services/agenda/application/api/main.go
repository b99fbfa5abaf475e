package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/convene/pkg/app"
	"github.com/ghuser/convene/services/agenda/application/handlers"
	appsvcs "github.com/ghuser/convene/services/agenda/application/services"
)

// AgendaRoutes registers agenda endpoints on the provided chi router.
func AgendaRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/agenda-items", func(r chi.Router) {
			r.Post("/", handlers.NewPostAgendaItemHandler(svcs).Execute)
			r.Delete("/{itemID}", handlers.NewDeleteAgendaItemHandler(svcs).Execute)
		})
		r.Route("/agenda-folders/{folderID}/items", func(r chi.Router) {
			r.Get("/", handlers.NewListAgendaItemsHandler(svcs).Execute)
			r.Get("/{itemID}", handlers.NewGetAgendaItemHandler(svcs).Execute)
		})
	})
}
