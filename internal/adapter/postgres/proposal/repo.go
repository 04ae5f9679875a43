// Package proposal implements the recipe edit Proposal repository using
// PostgreSQL.
package proposal

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

const table = "proposals"

var columns = []string{
	"id", "recipe_id", "proposer_id", "proposed_title", "proposed_content",
	"status", "decided_at", "created_at", "deleted_at",
}

// Repo provides proposal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new proposal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID              uuid.UUID  `db:"id"`
	RecipeID        uuid.UUID  `db:"recipe_id"`
	ProposerID      uuid.UUID  `db:"proposer_id"`
	ProposedTitle   string     `db:"proposed_title"`
	ProposedContent string     `db:"proposed_content"`
	Status          string     `db:"status"`
	DecidedAt       *time.Time `db:"decided_at"`
	CreatedAt       time.Time  `db:"created_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

func (r row) toDomain() domain.Proposal {
	return domain.Proposal{
		ID:              r.ID,
		RecipeID:        r.RecipeID,
		ProposerID:      r.ProposerID,
		ProposedTitle:   r.ProposedTitle,
		ProposedContent: r.ProposedContent,
		Status:          domain.ProposalStatus(r.Status),
		DecidedAt:       r.DecidedAt,
		CreatedAt:       r.CreatedAt,
		DeletedAt:       r.DeletedAt,
	}
}

// ListPendingByRecipeIDs returns the PENDING, non-deleted proposals of the
// given recipes ordered by creation time. The rows are locked until the
// surrounding transaction ends so that a concurrent decision cannot race
// the caller.
func (r *Repo) ListPendingByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.Proposal, error) {
	if len(recipeIDs) == 0 {
		return []domain.Proposal{}, nil
	}

	var rows []row
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"recipe_id": recipeIDs, "status": string(domain.ProposalStatusPending), "deleted_at": nil}).
		OrderBy("created_at", "id").
		Suffix("FOR UPDATE")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "proposals of recipes", recipeIDs)
	}

	proposals := make([]domain.Proposal, len(rows))
	for i, rw := range rows {
		proposals[i] = rw.toDomain()
	}
	return proposals, nil
}

// Reject marks a pending proposal REJECTED at decidedAt.
// Returns domain.ErrInvalidState if the proposal is no longer pending.
func (r *Repo) Reject(ctx context.Context, id uuid.UUID, decidedAt time.Time) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Update(table).
			Set("status", string(domain.ProposalStatusRejected)).
			Set("decided_at", decidedAt).
			Where(sq.Eq{"id": id, "status": string(domain.ProposalStatusPending)}))
	if err != nil {
		return postgres.MapError(err, "proposal", id)
	}
	if n == 0 {
		return fmt.Errorf("proposal %s: %w", id, domain.ErrInvalidState)
	}
	return nil
}
