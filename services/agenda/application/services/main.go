package services

import (
	"github.com/ghuser/convene/pkg/app"
	"github.com/ghuser/convene/pkg/cache"
	"github.com/ghuser/convene/services/agenda/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Agenda *AgendaService
}

// New wires all agenda application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	users := postgres.NewUserRepository(a.Db)
	folders := postgres.NewFolderRepository(a.Db)
	items := postgres.NewAgendaItemRepository(a.Db, a.EventBus)
	itemCache := cache.NewAgendaItemCache(a.Redis)
	return &Services{
		Agenda: NewAgendaService(users, folders, items, itemCache),
	}
}
