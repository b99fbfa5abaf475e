package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/convene/pkg/database"
	"github.com/ghuser/convene/pkg/events"
	agendadomain "github.com/ghuser/convene/services/agenda/domain"
	domainevents "github.com/ghuser/convene/services/agenda/domain/events"
	"github.com/ghuser/convene/services/agenda/domain/models"
	"github.com/ghuser/convene/services/agenda/domain/repositories"
	"github.com/ghuser/convene/services/agenda/infrastructure/persistence/postgres/db"
)

// AgendaItemRepository implements repositories.AgendaItemRepository against PostgreSQL.
type AgendaItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewAgendaItemRepository returns an AgendaItemRepository backed by the given
// connection pool and event bus. The bus is used to publish
// AgendaItemCreatedEvents in the same transaction as the insert.
func NewAgendaItemRepository(database *database.Database, bus *events.EventBus) *AgendaItemRepository {
	return &AgendaItemRepository{db: database, bus: bus}
}

// Create inserts the item with RETURNING and publishes an
// AgendaItemCreatedEvent within the same transaction. The stored row is
// returned; an insert that yields no row surfaces ErrNoRowReturned.
func (r *AgendaItemRepository) Create(ctx context.Context, item *models.AgendaItem) (*models.AgendaItem, error) {
	var created *models.AgendaItem

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.InsertAgendaItem(ctx, db.InsertAgendaItemParams{
			ID:        item.ID,
			FolderID:  item.FolderID,
			CreatorID: item.CreatorID,
			Name:      item.Name.String(),
			Type:      item.Type.String(),
			CreatedAt: item.CreatedAt,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return agendadomain.ErrNoRowReturned
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				// Folder deleted between the access check and the insert.
				return agendadomain.ErrFolderNotFound
			}
			return fmt.Errorf("insert agenda item: %w", err)
		}

		created, err = rowToAgendaItem(row)
		if err != nil {
			return err
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, created); err != nil {
				return fmt.Errorf("publish agenda item created: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID retrieves an agenda item by ID. Returns ErrItemNotFound if not found.
func (r *AgendaItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AgendaItem, error) {
	q := db.New(r.db.DB())
	row, err := q.GetAgendaItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, agendadomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query agenda item: %w", err)
	}
	return rowToAgendaItem(row)
}

// FindByFolderID retrieves a paginated list of items and total count for the given folder.
func (r *AgendaItemRepository) FindByFolderID(ctx context.Context, folderID uuid.UUID, opts repositories.QueryOpts) ([]*models.AgendaItem, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindAgendaItemsByFolderID(ctx, db.FindAgendaItemsByFolderIDParams{
		FolderID: folderID,
		Limit:    int32(opts.Limit),
		Offset:   int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query agenda items: %w", err)
	}

	total, err := q.CountAgendaItemsByFolderID(ctx, folderID)
	if err != nil {
		return nil, 0, fmt.Errorf("count agenda items: %w", err)
	}

	items := make([]*models.AgendaItem, len(rows))
	for i, row := range rows {
		item, err := rowToAgendaItem(row)
		if err != nil {
			return nil, 0, err
		}
		items[i] = item
	}
	return items, int(total), nil
}

// Delete removes an agenda item by ID.
func (r *AgendaItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := db.New(r.db.DB())
	if err := q.DeleteAgendaItem(ctx, id); err != nil {
		return fmt.Errorf("delete agenda item: %w", err)
	}
	return nil
}

func (r *AgendaItemRepository) publishCreated(tx *sql.Tx, item *models.AgendaItem) error {
	event := domainevents.AgendaItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		FolderID:   item.FolderID,
		CreatorID:  item.CreatorID,
		Name:       item.Name.String(),
		Type:       item.Type.String(),
		OccurredAt: item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicAgendaItemCreated, msg)
}

// rowToAgendaItem maps a db.AgendaItem to a domain models.AgendaItem.
func rowToAgendaItem(row db.AgendaItem) (*models.AgendaItem, error) {
	itemType, err := models.NewItemType(row.Type)
	if err != nil {
		return nil, fmt.Errorf("agenda item %s: %w", row.ID, err)
	}
	return &models.AgendaItem{
		ID:        row.ID,
		FolderID:  row.FolderID,
		CreatorID: row.CreatorID,
		Name:      models.ItemName(row.Name),
		Type:      itemType,
		CreatedAt: row.CreatedAt,
	}, nil
}
