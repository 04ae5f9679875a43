// Package membership implements the community membership repository using
// PostgreSQL.
package membership

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

const table = "community_members"

var columns = []string{"community_id", "user_id", "role", "joined_at"}

// Repo provides membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new membership repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	CommunityID uuid.UUID `db:"community_id"`
	UserID      uuid.UUID `db:"user_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}

// Get returns the membership of userID in communityID.
// Returns domain.ErrNotFound if the user is not a member.
func (r *Repo) Get(ctx context.Context, communityID, userID uuid.UUID) (*domain.Membership, error) {
	var rw row
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"community_id": communityID, "user_id": userID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return &domain.Membership{
		CommunityID: rw.CommunityID,
		UserID:      rw.UserID,
		Role:        domain.MemberRole(rw.Role),
		JoinedAt:    rw.JoinedAt,
	}, nil
}

// Delete ends a membership. Returns domain.ErrNotFound if none existed.
func (r *Repo) Delete(ctx context.Context, communityID, userID uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(sq.Eq{"community_id": communityID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "membership", userID)
	}
	if n == 0 {
		return fmt.Errorf("membership %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}
