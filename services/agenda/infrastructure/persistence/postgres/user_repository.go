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
	"github.com/ghuser/convene/services/agenda/infrastructure/persistence/postgres/db"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(database *database.Database) *UserRepository {
	return &UserRepository{db: database}
}

// GetByID resolves a user by ID. Returns ErrUserNotFound when no row exists.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	q := db.New(r.db.DB())
	row, err := q.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, agendadomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	role, err := models.NewRole(row.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}

	return &models.User{
		ID:   row.ID,
		Name: row.Name,
		Role: role,
	}, nil
}
