// Package ingredient implements the Ingredient repository using PostgreSQL.
// All ingredients share one global namespace; name uniqueness is enforced
// case-insensitively by the ux_ingredients_name index.
package ingredient

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

const table = "ingredients"

var columns = []string{"id", "name", "status", "created_by", "default_unit_id", "created_at", "updated_at"}

// Repo provides ingredient persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ingredient repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	Status        string     `db:"status"`
	CreatedBy     *uuid.UUID `db:"created_by"`
	DefaultUnitID *uuid.UUID `db:"default_unit_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.CatalogEntity {
	return &domain.CatalogEntity{
		ID:            r.ID,
		Kind:          domain.EntityKindIngredient,
		Name:          r.Name,
		Status:        domain.EntityStatus(r.Status),
		CreatedBy:     r.CreatedBy,
		DefaultUnitID: r.DefaultUnitID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an ingredient by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error) {
	return r.get(ctx, postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}), id)
}

// GetByIDForUpdate returns an ingredient and locks its row until the
// surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.get(ctx, stmt, id)
}

// FindByName returns the ingredient whose name matches case-insensitively.
// The namespace community is ignored: ingredients are always global.
func (r *Repo) FindByName(ctx context.Context, _ domain.Namespace, name string) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(sq.Expr("lower(name) = lower(?)", name))
	return r.get(ctx, stmt, name)
}

// ListPending returns pending ingredients, oldest first.
func (r *Repo) ListPending(ctx context.Context, _ domain.Namespace, limit int) ([]domain.CatalogEntity, error) {
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"status": string(domain.EntityStatusPending)}).
		OrderBy("created_at", "id")
	if limit > 0 {
		stmt = stmt.Limit(uint64(limit))
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "ingredient", "pending")
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

// Create inserts a new ingredient and returns the stored row.
func (r *Repo) Create(ctx context.Context, e domain.CatalogEntity) (*domain.CatalogEntity, error) {
	now := time.Now().UTC()
	stmt := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(e.ID, e.Name, string(e.Status), e.CreatedBy, e.DefaultUnitID, now, now).
		Suffix("RETURNING " + returning())
	return r.get(ctx, stmt, e.ID)
}

// UpdateName stores a new name and bumps updated_at.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Update(table).
		Set("name", name).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning())
	return r.get(ctx, stmt, id)
}

// Approve moves an ingredient to APPROVED under the given name.
func (r *Repo) Approve(ctx context.Context, id uuid.UUID, name string) (*domain.CatalogEntity, error) {
	stmt := postgres.Builder().Update(table).
		Set("name", name).
		Set("status", string(domain.EntityStatusApproved)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning())
	return r.get(ctx, stmt, id)
}

// Delete hard-deletes an ingredient. Associations must be removed first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "ingredient", id)
	}
	if n == 0 {
		return fmt.Errorf("ingredient %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) get(ctx context.Context, stmt sq.Sqlizer, id any) (*domain.CatalogEntity, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "ingredient", id)
	}
	return rw.toDomain(), nil
}

func returning() string {
	return strings.Join(columns, ", ")
}
