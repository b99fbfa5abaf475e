package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/convene/pkg/auth"
	pkgcache "github.com/ghuser/convene/pkg/cache"
	pkgvalidator "github.com/ghuser/convene/pkg/validator"
	agendadomain "github.com/ghuser/convene/services/agenda/domain"
	"github.com/ghuser/convene/services/agenda/domain/models"
	"github.com/ghuser/convene/services/agenda/domain/repositories"
	domainsvcs "github.com/ghuser/convene/services/agenda/domain/services"
)

// inputRoot is the argument name all issue paths are rooted at.
const inputRoot = "input"

// CreateAgendaItemInput is the payload for AgendaService.CreateItem.
type CreateAgendaItemInput struct {
	FolderID string `json:"folderId" validate:"required,uuid"`
	Name     string `json:"name" validate:"required,min=1,max=256"`
	Type     string `json:"type" validate:"required,oneof=general note scripture song"`
}

// DeleteAgendaItemInput is the payload for AgendaService.DeleteItem.
type DeleteAgendaItemInput struct {
	ID string `json:"id" validate:"required,uuid"`
}

// AgendaService orchestrates agenda item mutations and reads.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
//
// Every mutation runs the same ordered, short-circuiting decision procedure:
// authenticate → validate input → resolve caller → resolve folder access →
// authorize → mutate. The first failing check wins and every failure is
// terminal for the request; there is no retry or recovery anywhere in the
// pipeline.
type AgendaService struct {
	users   repositories.UserRepository
	folders repositories.FolderRepository
	items   repositories.AgendaItemRepository
	cache   *pkgcache.AgendaItemCache
}

// NewAgendaService returns an AgendaService wired with the given repositories
// and cache. A nil cache disables read-through caching.
func NewAgendaService(
	users repositories.UserRepository,
	folders repositories.FolderRepository,
	items repositories.AgendaItemRepository,
	itemCache *pkgcache.AgendaItemCache,
) *AgendaService {
	return &AgendaService{users: users, folders: folders, items: items, cache: itemCache}
}

// CreateItem validates and persists an AgendaItem under the given folder.
// The repository publishes AgendaItemCreatedEvent in the insert transaction.
//
// Failure modes, in check order:
//   - unauthenticated: caller not authenticated, or the caller's user row no
//     longer exists (a stale session is indistinguishable from an invalid one)
//   - invalid_arguments: malformed folder id, empty/oversized name, unknown
//     type, or a name violating the domain name policy; always decided
//     before any data-store lookup
//   - arguments_associated_resources_not_found: no such folder
//   - forbidden_action_on_arguments_associated_resources: the folder exists
//     but cannot host agenda items
//   - unauthorized_action_on_arguments_associated_resources: caller is
//     neither a global administrator nor an administrator member of the
//     owning organization
//   - unexpected: the insert returned no row
func (s *AgendaService) CreateItem(ctx context.Context, caller auth.Caller, input CreateAgendaItemInput) (*models.AgendaItem, error) {
	if !caller.Authenticated {
		return nil, agendadomain.NewUnauthenticated()
	}

	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, agendadomain.NewInvalidArguments(toDomainIssues(err)...)
	}
	name, err := models.NewItemName(input.Name)
	if err != nil {
		return nil, agendadomain.NewInvalidArguments(issueAt(err, inputRoot, "name"))
	}
	if err := domainsvcs.ValidateName(name); err != nil {
		return nil, agendadomain.NewInvalidArguments(issueAt(err, inputRoot, "name"))
	}
	itemType, err := models.NewItemType(input.Type)
	if err != nil {
		return nil, agendadomain.NewInvalidArguments(issueAt(err, inputRoot, "type"))
	}
	folderID, err := uuid.Parse(input.FolderID)
	if err != nil {
		return nil, agendadomain.NewInvalidArguments(issueAt(err, inputRoot, "folderId"))
	}

	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return nil, err
	}

	access, err := s.folders.GetFolderAccess(ctx, folderID, user.ID)
	if err != nil {
		if errors.Is(err, agendadomain.ErrFolderNotFound) {
			return nil, agendadomain.NewResourceNotFound(inputRoot, "id")
		}
		return nil, fmt.Errorf("resolve folder: %w", err)
	}

	if !access.Folder.IsAgendaItemFolder {
		return nil, agendadomain.NewForbiddenAction(
			[]string{inputRoot, "folderId"},
			"this resource cannot host agenda items",
		)
	}

	if !isAdministrator(user, access) {
		return nil, agendadomain.NewUnauthorizedAction(inputRoot, "id")
	}

	item, err := models.NewAgendaItem(folderID, user.ID, name, itemType)
	if err != nil {
		return nil, fmt.Errorf("create agenda item: %w", err)
	}
	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("create agenda item: %w", err)
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		switch {
		case errors.Is(err, agendadomain.ErrNoRowReturned):
			return nil, agendadomain.NewUnexpected()
		case errors.Is(err, agendadomain.ErrFolderNotFound):
			// Folder vanished between the access check and the insert.
			return nil, agendadomain.NewResourceNotFound(inputRoot, "id")
		default:
			return nil, fmt.Errorf("insert agenda item: %w", err)
		}
	}
	return created, nil
}

// GetItem retrieves an AgendaItem scoped to the given folder, after the same
// authentication and authorization checks as mutations (reads require any
// membership in the owning organization, or a global administrator role).
//
// Reads use a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *AgendaService) GetItem(ctx context.Context, caller auth.Caller, folderID, itemID uuid.UUID) (*models.AgendaItem, error) {
	if !caller.Authenticated {
		return nil, agendadomain.NewUnauthenticated()
	}

	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return nil, err
	}

	access, err := s.folders.GetFolderAccess(ctx, folderID, user.ID)
	if err != nil {
		if errors.Is(err, agendadomain.ErrFolderNotFound) {
			return nil, agendadomain.NewResourceNotFound(inputRoot, "folderId")
		}
		return nil, fmt.Errorf("resolve folder: %w", err)
	}

	if !canRead(user, access) {
		return nil, agendadomain.NewUnauthorizedAction(inputRoot, "folderId")
	}

	if s.cache != nil {
		// Cache miss and cache errors both fall through to Postgres.
		if cached, err := s.cache.Get(ctx, folderID, itemID); err == nil {
			return cachedToItem(cached)
		}
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, agendadomain.ErrItemNotFound) {
			return nil, agendadomain.NewResourceNotFound(inputRoot, "id")
		}
		return nil, fmt.Errorf("get agenda item: %w", err)
	}
	if item.FolderID != folderID {
		// Existing items from other folders are indistinguishable from absent ones.
		return nil, agendadomain.NewResourceNotFound(inputRoot, "id")
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}

	return item, nil
}

// ListItems returns a paginated slice of items in the folder plus total
// count, gated by the same read authorization as GetItem.
func (s *AgendaService) ListItems(ctx context.Context, caller auth.Caller, folderID uuid.UUID, opts repositories.QueryOpts) ([]*models.AgendaItem, int, error) {
	if !caller.Authenticated {
		return nil, 0, agendadomain.NewUnauthenticated()
	}

	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return nil, 0, err
	}

	access, err := s.folders.GetFolderAccess(ctx, folderID, user.ID)
	if err != nil {
		if errors.Is(err, agendadomain.ErrFolderNotFound) {
			return nil, 0, agendadomain.NewResourceNotFound(inputRoot, "folderId")
		}
		return nil, 0, fmt.Errorf("resolve folder: %w", err)
	}

	if !canRead(user, access) {
		return nil, 0, agendadomain.NewUnauthorizedAction(inputRoot, "folderId")
	}

	items, total, err := s.items.FindByFolderID(ctx, folderID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list agenda items: %w", err)
	}
	return items, total, nil
}

// DeleteItem removes an AgendaItem through the same ordered pipeline shape
// as CreateItem; the folder is resolved from the stored item rather than
// from the input.
func (s *AgendaService) DeleteItem(ctx context.Context, caller auth.Caller, input DeleteAgendaItemInput) error {
	if !caller.Authenticated {
		return agendadomain.NewUnauthenticated()
	}

	if err := pkgvalidator.Validate(&input); err != nil {
		return agendadomain.NewInvalidArguments(toDomainIssues(err)...)
	}
	itemID, err := uuid.Parse(input.ID)
	if err != nil {
		return agendadomain.NewInvalidArguments(issueAt(err, inputRoot, "id"))
	}

	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, agendadomain.ErrItemNotFound) {
			return agendadomain.NewResourceNotFound(inputRoot, "id")
		}
		return fmt.Errorf("get agenda item: %w", err)
	}

	access, err := s.folders.GetFolderAccess(ctx, item.FolderID, user.ID)
	if err != nil {
		if errors.Is(err, agendadomain.ErrFolderNotFound) {
			// An item row without its folder is a broken referential invariant.
			return agendadomain.NewUnexpected()
		}
		return fmt.Errorf("resolve folder: %w", err)
	}

	if !isAdministrator(user, access) {
		return agendadomain.NewUnauthorizedAction(inputRoot, "id")
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete agenda item: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), item.FolderID, item.ID)
	}
	return nil
}

// resolveCaller looks up the User row behind an authenticated caller.
// A caller id with no user row is treated as a stale session, not a
// not-found case: identity-store divergence from the token is
// indistinguishable from an invalid session.
func (s *AgendaService) resolveCaller(ctx context.Context, caller auth.Caller) (*models.User, error) {
	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, agendadomain.ErrUserNotFound) {
			return nil, agendadomain.NewUnauthenticated()
		}
		return nil, fmt.Errorf("resolve caller: %w", err)
	}
	return user, nil
}

// isAdministrator reports whether the user may mutate agenda items under the
// folder: global administrators always may; otherwise an administrator
// membership in the owning organization is required. A caller with no
// membership is treated identically to a non-admin member.
func isAdministrator(user *models.User, access *repositories.FolderAccess) bool {
	if user.Role.IsAdministrator() {
		return true
	}
	return access.Membership != nil && access.Membership.Role.IsAdministrator()
}

// canRead reports whether the user may read agenda items under the folder:
// any membership in the owning organization, or a global administrator role.
func canRead(user *models.User, access *repositories.FolderAccess) bool {
	return user.Role.IsAdministrator() || access.Membership != nil
}

func toDomainIssues(err error) []agendadomain.Issue {
	issues := pkgvalidator.Issues(err, inputRoot)
	out := make([]agendadomain.Issue, len(issues))
	for i, iss := range issues {
		out[i] = agendadomain.Issue{ArgumentPath: iss.ArgumentPath, Message: iss.Message}
	}
	return out
}

func issueAt(err error, path ...string) agendadomain.Issue {
	return agendadomain.Issue{ArgumentPath: path, Message: err.Error()}
}

func itemToCached(item *models.AgendaItem) *pkgcache.CachedAgendaItem {
	return &pkgcache.CachedAgendaItem{
		ID:        item.ID,
		FolderID:  item.FolderID,
		CreatorID: item.CreatorID,
		Name:      item.Name.String(),
		Type:      item.Type.String(),
		CreatedAt: item.CreatedAt,
	}
}

func cachedToItem(cached *pkgcache.CachedAgendaItem) (*models.AgendaItem, error) {
	itemType, err := models.NewItemType(cached.Type)
	if err != nil {
		return nil, fmt.Errorf("cached agenda item %s: %w", cached.ID, err)
	}
	return &models.AgendaItem{
		ID:        cached.ID,
		FolderID:  cached.FolderID,
		CreatorID: cached.CreatorID,
		Name:      models.ItemName(cached.Name),
		Type:      itemType,
		CreatedAt: cached.CreatedAt,
	}, nil
}
