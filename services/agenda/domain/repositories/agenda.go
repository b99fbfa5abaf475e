package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/convene/services/agenda/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// FolderAccess is the joined read shape for one authorization decision:
// the folder, the organization that owns its event, and the caller's
// membership in that organization (if any). Resolved in a single query so
// multi-step read consistency is the store's responsibility, not ad hoc
// nested lookups.
type FolderAccess struct {
	Folder       models.AgendaFolder
	Organization models.Organization

	// Membership is nil when the caller has no membership in the owning
	// organization.
	Membership *models.Membership
}

// UserRepository resolves acting identities. The domain layer owns this
// interface; infrastructure implements it.
type UserRepository interface {
	// GetByID returns domain.ErrUserNotFound when no user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// FolderRepository resolves agenda folders together with the organization
// context needed for authorization.
type FolderRepository interface {
	// GetFolderAccess returns domain.ErrFolderNotFound when no folder exists.
	GetFolderAccess(ctx context.Context, folderID, userID uuid.UUID) (*FolderAccess, error)
}

// AgendaItemRepository is the persistence interface for the AgendaItem aggregate.
type AgendaItemRepository interface {
	// Create inserts the item and returns the stored row. Returns
	// domain.ErrNoRowReturned if the insert yields no row.
	Create(ctx context.Context, item *models.AgendaItem) (*models.AgendaItem, error)

	// GetByID returns domain.ErrItemNotFound when no item exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.AgendaItem, error)

	// FindByFolderID retrieves a paginated list of items for the given folder.
	// Returns the items slice and the total count (ignoring pagination).
	FindByFolderID(ctx context.Context, folderID uuid.UUID, opts QueryOpts) ([]*models.AgendaItem, int, error)

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
