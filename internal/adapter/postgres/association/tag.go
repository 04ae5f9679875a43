package association

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// TagRepo manages tag associations on recipes. Tags carry no payload.
type TagRepo struct {
	repo
}

// NewTagRepo creates a new tag association repository.
func NewTagRepo(pool *pgxpool.Pool) *TagRepo {
	return &TagRepo{repo{
		pool:   pool,
		entity: "tag",
		tables: []joinTable{
			{kind: domain.ContentKindRecipe, name: "recipe_tags", contentCol: "recipe_id", entityCol: "tag_id"},
		},
	}}
}
