// Package tag implements the Tag repository using PostgreSQL.
// Tags live either in the global namespace (community_id IS NULL) or in
// the namespace of one community.
package tag

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

const table = "tags"

var columns = []string{"id", "name", "status", "created_by", "community_id", "created_at", "updated_at"}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Status      string     `db:"status"`
	CreatedBy   *uuid.UUID `db:"created_by"`
	CommunityID *uuid.UUID `db:"community_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.CatalogEntity {
	return &domain.CatalogEntity{
		ID:          r.ID,
		Kind:        domain.EntityKindTag,
		Name:        r.Name,
		Status:      domain.EntityStatus(r.Status),
		CreatedBy:   r.CreatedBy,
		CommunityID: r.CommunityID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// scope restricts a query to one tag namespace.
func scope(ns domain.Namespace) sq.Sqlizer {
	if ns.IsGlobal() {
		return sq.Eq{"community_id": nil}
	}
	return sq.Eq{"community_id": *ns.CommunityID}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error) {
	return r.get(ctx, postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}), id)
}

// GetByIDForUpdate returns a tag and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.get(ctx, stmt, id)
}

// FindByName returns the tag in ns whose name matches case-insensitively.
func (r *Repo) FindByName(ctx context.Context, ns domain.Namespace, name string) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(scope(ns)).
		Where(sq.Expr("lower(name) = lower(?)", name))
	return r.get(ctx, stmt, name)
}

// ListPending returns pending tags of one namespace, oldest first.
func (r *Repo) ListPending(ctx context.Context, ns domain.Namespace, limit int) ([]domain.CatalogEntity, error) {
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(scope(ns)).
		Where(sq.Eq{"status": string(domain.EntityStatusPending)}).
		OrderBy("created_at", "id")
	if limit > 0 {
		stmt = stmt.Limit(uint64(limit))
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "tag", "pending")
	}

	out := make([]domain.CatalogEntity, len(rows))
	for i, rw := range rows {
		out[i] = *rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new tag and returns the stored row.
func (r *Repo) Create(ctx context.Context, e domain.CatalogEntity) (*domain.CatalogEntity, error) {
	now := time.Now().UTC()
	stmt := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(e.ID, e.Name, string(e.Status), e.CreatedBy, e.CommunityID, now, now).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.get(ctx, stmt, e.ID)
}

// UpdateName stores a new name and bumps updated_at.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Update(table).
		Set("name", name).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.get(ctx, stmt, id)
}

// Approve moves a tag to APPROVED under the given name.
func (r *Repo) Approve(ctx context.Context, id uuid.UUID, name string) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Update(table).
		Set("name", name).
		Set("status", string(domain.EntityStatusApproved)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.get(ctx, stmt, id)
}

// Delete hard-deletes a tag. Associations must be removed first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}
	if n == 0 {
		return fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) get(ctx context.Context, stmt sq.Sqlizer, id any) (*domain.CatalogEntity, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return rw.toDomain(), nil
}
