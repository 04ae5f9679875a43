package association

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

const copyProposalToRecipeSQL = `
INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit_id, position)
SELECT $2, ingredient_id, quantity, unit_id, position
FROM proposal_ingredients
WHERE proposal_id = $1
ON CONFLICT (recipe_id, ingredient_id) DO NOTHING`

// IngredientRepo manages ingredient associations on recipes and proposals.
type IngredientRepo struct {
	repo
}

// NewIngredientRepo creates a new ingredient association repository.
func NewIngredientRepo(pool *pgxpool.Pool) *IngredientRepo {
	return &IngredientRepo{repo{
		pool:   pool,
		entity: "ingredient",
		tables: []joinTable{
			{kind: domain.ContentKindRecipe, name: "recipe_ingredients", contentCol: "recipe_id", entityCol: "ingredient_id", payload: true},
			{kind: domain.ContentKindProposal, name: "proposal_ingredients", contentCol: "proposal_id", entityCol: "ingredient_id", payload: true},
		},
	}}
}

// CopyProposalToRecipe copies a proposal's ingredient list onto a recipe,
// keeping quantities, units and positions. Returns the number of rows copied.
func (r *IngredientRepo) CopyProposalToRecipe(ctx context.Context, proposalID, recipeID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, copyProposalToRecipeSQL, proposalID, recipeID)
	if err != nil {
		return 0, fmt.Errorf("copy proposal %s ingredients: %w", proposalID, postgres.MapError(err, "recipe", recipeID))
	}
	return tag.RowsAffected(), nil
}
