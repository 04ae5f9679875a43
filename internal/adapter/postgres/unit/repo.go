// Package unit implements the measurement Unit repository using PostgreSQL.
package unit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

const table = "units"

var columns = []string{"id", "name", "abbreviation", "created_at"}

// countUsagesSQL counts every reference to a unit: ingredient defaults and
// ingredient associations on recipes and proposals.
const countUsagesSQL = `
SELECT
    (SELECT count(*) FROM ingredients WHERE default_unit_id = $1)
  + (SELECT count(*) FROM recipe_ingredients WHERE unit_id = $1)
  + (SELECT count(*) FROM proposal_ingredients WHERE unit_id = $1)`

// Repo provides unit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new unit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Abbreviation *string   `db:"abbreviation"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Unit {
	return &domain.Unit{ID: r.ID, Name: r.Name, Abbreviation: r.Abbreviation, CreatedAt: r.CreatedAt}
}

// GetByID returns a unit by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	var rw row
	stmt := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "unit", id)
	}
	return rw.toDomain(), nil
}

// FindByName returns the unit whose name matches case-insensitively.
func (r *Repo) FindByName(ctx context.Context, name string) (*domain.Unit, error) {
	var rw row
	stmt := postgres.Builder().Select(columns...).From(table).Where(sq.Expr("lower(name) = lower(?)", name))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "unit", name)
	}
	return rw.toDomain(), nil
}

// List returns all units ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Unit, error) {
	var rows []row
	stmt := postgres.Builder().Select(columns...).From(table).OrderBy("name")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "unit", "all")
	}

	units := make([]domain.Unit, len(rows))
	for i, rw := range rows {
		units[i] = *rw.toDomain()
	}
	return units, nil
}

// CountUsages returns how many ingredients and associations reference the unit.
func (r *Repo) CountUsages(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countUsagesSQL, id).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "unit usages", id)
	}
	return n, nil
}

// Create inserts a new unit.
func (r *Repo) Create(ctx context.Context, u domain.Unit) (*domain.Unit, error) {
	var rw row
	stmt := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(u.ID, u.Name, u.Abbreviation, time.Now().UTC()).
		Suffix("RETURNING id, name, abbreviation, created_at")
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "unit", u.ID)
	}
	return rw.toDomain(), nil
}

// Delete removes a unit. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "unit", id)
	}
	if n == 0 {
		return fmt.Errorf("unit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
