// Package association implements the join-table repositories that bind
// catalog entities to content items (recipes and proposals).
//
// IngredientRepo spans recipe_ingredients and proposal_ingredients and
// carries the quantity/unit/position payload. TagRepo spans recipe_tags and
// carries no payload. Both expose the same capability set so that the
// moderation and merge services can stay kind-agnostic.
package association

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// joinTable describes one association table.
type joinTable struct {
	kind       domain.ContentKind
	name       string
	contentCol string
	entityCol  string
	payload    bool
}

// repo is the shared implementation behind IngredientRepo and TagRepo.
type repo struct {
	pool   *pgxpool.Pool
	entity string
	tables []joinTable
}

type row struct {
	ContentID uuid.UUID  `db:"content_id"`
	EntityID  uuid.UUID  `db:"entity_id"`
	Quantity  *float64   `db:"quantity"`
	UnitID    *uuid.UUID `db:"unit_id"`
	Position  int        `db:"position"`
}

func (r *repo) table(kind domain.ContentKind) (joinTable, error) {
	for _, t := range r.tables {
		if t.kind == kind {
			return t, nil
		}
	}
	return joinTable{}, fmt.Errorf("%s association for %s: %w", r.entity, kind, domain.ErrValidation)
}

func (t joinTable) selectColumns() []string {
	cols := []string{t.contentCol + " AS content_id", t.entityCol + " AS entity_id"}
	if t.payload {
		cols = append(cols, "quantity", "unit_id", "position")
	} else {
		cols = append(cols, "NULL::numeric AS quantity", "NULL::uuid AS unit_id", "0 AS position")
	}
	return cols
}

// ListByEntity returns every association of the entity across all content
// kinds, recipes first, each group ordered by content id.
func (r *repo) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.Association, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out []domain.Association
	for _, t := range r.tables {
		var rows []row
		stmt := postgres.Builder().Select(t.selectColumns()...).
			From(t.name).
			Where(sq.Eq{t.entityCol: entityID}).
			OrderBy(t.contentCol)
		if err := postgres.Select(ctx, q, &rows, stmt); err != nil {
			return nil, postgres.MapError(err, t.name, entityID)
		}
		for _, rw := range rows {
			out = append(out, domain.Association{
				ContentKind: t.kind,
				ContentID:   rw.ContentID,
				EntityID:    rw.EntityID,
				Quantity:    rw.Quantity,
				UnitID:      rw.UnitID,
				Position:    rw.Position,
			})
		}
	}
	return out, nil
}

// CountByEntity returns the number of associations referencing the entity.
func (r *repo) CountByEntity(ctx context.Context, entityID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	total := 0
	for _, t := range r.tables {
		var n int
		stmt := postgres.Builder().Select("count(*)").From(t.name).Where(sq.Eq{t.entityCol: entityID})
		if err := postgres.Get(ctx, q, &n, stmt); err != nil {
			return 0, postgres.MapError(err, t.name, entityID)
		}
		total += n
	}
	return total, nil
}

// Exists reports whether the (content item, entity) pair is already bound.
func (r *repo) Exists(ctx context.Context, key domain.AssociationKey) (bool, error) {
	t, err := r.table(key.ContentKind)
	if err != nil {
		return false, err
	}

	var exists bool
	stmt := postgres.Builder().Select("1").Prefix("SELECT EXISTS (").
		From(t.name).
		Where(sq.Eq{t.contentCol: key.ContentID, t.entityCol: key.EntityID}).
		Suffix(")")
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &exists, stmt); err != nil {
		return false, postgres.MapError(err, t.name, key.ContentID)
	}
	return exists, nil
}

// Repoint moves an association to targetID, keeping its payload.
func (r *repo) Repoint(ctx context.Context, a domain.Association, targetID uuid.UUID) error {
	t, err := r.table(a.ContentKind)
	if err != nil {
		return err
	}

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Update(t.name).
			Set(t.entityCol, targetID).
			Where(sq.Eq{t.contentCol: a.ContentID, t.entityCol: a.EntityID}))
	if err != nil {
		return postgres.MapError(err, t.name, a.ContentID)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", t.name, a.ContentID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes one association.
func (r *repo) Delete(ctx context.Context, key domain.AssociationKey) error {
	t, err := r.table(key.ContentKind)
	if err != nil {
		return err
	}

	_, err = postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(t.name).
			Where(sq.Eq{t.contentCol: key.ContentID, t.entityCol: key.EntityID}))
	if err != nil {
		return postgres.MapError(err, t.name, key.ContentID)
	}
	return nil
}

// DeleteByEntity removes every association of the entity and returns the
// number of rows deleted.
func (r *repo) DeleteByEntity(ctx context.Context, entityID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	for _, t := range r.tables {
		n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(t.name).Where(sq.Eq{t.entityCol: entityID}))
		if err != nil {
			return 0, postgres.MapError(err, t.name, entityID)
		}
		total += n
	}
	return total, nil
}
