package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/convene/pkg/database"
	agendadomain "github.com/ghuser/convene/services/agenda/domain"
	"github.com/ghuser/convene/services/agenda/domain/models"
	"github.com/ghuser/convene/services/agenda/domain/repositories"
	"github.com/ghuser/convene/services/agenda/infrastructure/persistence/postgres/db"
)

// FolderRepository implements repositories.FolderRepository against PostgreSQL.
type FolderRepository struct {
	db *database.Database
}

// NewFolderRepository returns a FolderRepository backed by the given connection pool.
func NewFolderRepository(database *database.Database) *FolderRepository {
	return &FolderRepository{db: database}
}

// GetFolderAccess resolves the folder together with its owning organization
// and the given user's membership in one joined query, so the whole
// authorization read is a single consistent snapshot.
// Returns ErrFolderNotFound when no folder row exists.
func (r *FolderRepository) GetFolderAccess(ctx context.Context, folderID, userID uuid.UUID) (*repositories.FolderAccess, error) {
	q := db.New(r.db.DB())
	row, err := q.GetFolderAccess(ctx, db.GetFolderAccessParams{
		ID:     folderID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, agendadomain.ErrFolderNotFound
		}
		return nil, fmt.Errorf("query folder access: %w", err)
	}

	access := &repositories.FolderAccess{
		Folder: models.AgendaFolder{
			ID:                 row.ID,
			EventID:            row.EventID,
			Name:               row.Name,
			IsAgendaItemFolder: row.IsAgendaItemFolder,
		},
		Organization: models.Organization{
			ID:          row.OrganizationID,
			Name:        row.OrganizationName,
			CountryCode: row.CountryCode,
		},
	}

	if row.MembershipRole.Valid {
		role, err := models.NewRole(row.MembershipRole.String)
		if err != nil {
			return nil, fmt.Errorf("membership for folder %s: %w", folderID, err)
		}
		access.Membership = &models.Membership{
			OrganizationID: row.OrganizationID,
			UserID:         userID,
			Role:           role,
		}
	}

	return access, nil
}
