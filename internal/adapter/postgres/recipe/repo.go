// Package recipe implements the Recipe repository using PostgreSQL.
// Only the operations the catalog services need are exposed: listing a
// contributor's live recipes and forking variants.
package recipe

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

const table = "recipes"

var columns = []string{
	"id", "community_id", "author_id", "title", "content", "image_url",
	"is_variant", "origin_recipe_id", "created_at", "updated_at", "deleted_at",
}

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	CommunityID    uuid.UUID  `db:"community_id"`
	AuthorID       uuid.UUID  `db:"author_id"`
	Title          string     `db:"title"`
	Content        string     `db:"content"`
	ImageURL       *string    `db:"image_url"`
	IsVariant      bool       `db:"is_variant"`
	OriginRecipeID *uuid.UUID `db:"origin_recipe_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (r row) toDomain() domain.Recipe {
	return domain.Recipe{
		ID:             r.ID,
		CommunityID:    r.CommunityID,
		AuthorID:       r.AuthorID,
		Title:          r.Title,
		Content:        r.Content,
		ImageURL:       r.ImageURL,
		IsVariant:      r.IsVariant,
		OriginRecipeID: r.OriginRecipeID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		DeletedAt:      r.DeletedAt,
	}
}

// ListActiveByAuthorInCommunity returns the author's non-deleted recipes in
// the community, oldest first.
func (r *Repo) ListActiveByAuthorInCommunity(ctx context.Context, authorID, communityID uuid.UUID) ([]domain.Recipe, error) {
	var rows []row
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"author_id": authorID, "community_id": communityID, "deleted_at": nil}).
		OrderBy("created_at", "id")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "recipes of author", authorID)
	}

	recipes := make([]domain.Recipe, len(rows))
	for i, rw := range rows {
		recipes[i] = rw.toDomain()
	}
	return recipes, nil
}

// Create inserts a recipe (typically a freshly forked variant).
func (r *Repo) Create(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error) {
	now := time.Now().UTC()
	var rw row
	stmt := postgres.Builder().Insert(table).
		Columns("id", "community_id", "author_id", "title", "content", "image_url",
			"is_variant", "origin_recipe_id", "created_at", "updated_at").
		Values(rec.ID, rec.CommunityID, rec.AuthorID, rec.Title, rec.Content, rec.ImageURL,
			rec.IsVariant, rec.OriginRecipeID, now, now).
		Suffix("RETURNING id, community_id, author_id, title, content, image_url, " +
			"is_variant, origin_recipe_id, created_at, updated_at, deleted_at")
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}
	created := rw.toDomain()
	return &created, nil
}
