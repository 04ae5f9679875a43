package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// UniqueName returns prefix plus a short unique suffix, for names that must
// not collide across parallel tests sharing one database.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCommunity creates a community and returns its ID.
func SeedCommunity(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO communities (id, name) VALUES ($1, $2)`,
		id, UniqueName("community"),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCommunity: %v", err)
	}
	return id
}

// SeedMember adds userID to the community with the given role.
func SeedMember(t *testing.T, pool *pgxpool.Pool, communityID, userID uuid.UUID, role domain.MemberRole) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO community_members (community_id, user_id, role) VALUES ($1, $2, $3)`,
		communityID, userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
}

// SeedUnit creates a unit with a unique name.
func SeedUnit(t *testing.T, pool *pgxpool.Pool) domain.Unit {
	t.Helper()

	u := domain.Unit{ID: uuid.New(), Name: UniqueName("unit"), CreatedAt: now()}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO units (id, name, created_at) VALUES ($1, $2, $3)`,
		u.ID, u.Name, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUnit: %v", err)
	}
	return u
}

// SeedIngredient creates an ingredient with the given name and status.
func SeedIngredient(t *testing.T, pool *pgxpool.Pool, name string, status domain.EntityStatus, createdBy *uuid.UUID) domain.CatalogEntity {
	t.Helper()

	ts := now()
	e := domain.CatalogEntity{
		ID:        uuid.New(),
		Kind:      domain.EntityKindIngredient,
		Name:      domain.NormalizeName(name),
		Status:    status,
		CreatedBy: createdBy,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO ingredients (id, name, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Name, string(e.Status), e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIngredient %q: %v", name, err)
	}
	return e
}

// SeedTag creates a tag; communityID nil means the global namespace.
func SeedTag(t *testing.T, pool *pgxpool.Pool, name string, status domain.EntityStatus, createdBy, communityID *uuid.UUID) domain.CatalogEntity {
	t.Helper()

	ts := now()
	e := domain.CatalogEntity{
		ID:          uuid.New(),
		Kind:        domain.EntityKindTag,
		Name:        domain.NormalizeName(name),
		Status:      status,
		CreatedBy:   createdBy,
		CommunityID: communityID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, name, status, created_by, community_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Name, string(e.Status), e.CreatedBy, e.CommunityID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag %q: %v", name, err)
	}
	return e
}

// SeedRecipe creates a recipe authored by authorID in the community.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, communityID, authorID uuid.UUID) domain.Recipe {
	t.Helper()

	img := "https://img.example.com/" + uuid.New().String()[:8] + ".jpg"
	ts := now()
	r := domain.Recipe{
		ID:          uuid.New(),
		CommunityID: communityID,
		AuthorID:    authorID,
		Title:       UniqueName("recipe"),
		Content:     "mix and bake",
		ImageURL:    &img,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO recipes (id, community_id, author_id, title, content, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.CommunityID, r.AuthorID, r.Title, r.Content, r.ImageURL, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe: %v", err)
	}
	return r
}

// SeedProposal creates a proposal for recipeID with the given status.
func SeedProposal(t *testing.T, pool *pgxpool.Pool, recipeID, proposerID uuid.UUID, status domain.ProposalStatus) domain.Proposal {
	t.Helper()

	p := domain.Proposal{
		ID:              uuid.New(),
		RecipeID:        recipeID,
		ProposerID:      proposerID,
		ProposedTitle:   UniqueName("proposal"),
		ProposedContent: "less sugar",
		Status:          status,
		CreatedAt:       now(),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO proposals (id, recipe_id, proposer_id, proposed_title, proposed_content, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.RecipeID, p.ProposerID, p.ProposedTitle, p.ProposedContent, string(p.Status), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProposal: %v", err)
	}
	return p
}

// SeedRecipeIngredient links an ingredient to a recipe.
func SeedRecipeIngredient(t *testing.T, pool *pgxpool.Pool, recipeID, ingredientID uuid.UUID, quantity float64, unitID *uuid.UUID, position int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit_id, position)
		 VALUES ($1, $2, $3, $4, $5)`,
		recipeID, ingredientID, quantity, unitID, position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipeIngredient: %v", err)
	}
}

// SeedProposalIngredient links an ingredient to a proposal.
func SeedProposalIngredient(t *testing.T, pool *pgxpool.Pool, proposalID, ingredientID uuid.UUID, quantity float64, unitID *uuid.UUID, position int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO proposal_ingredients (proposal_id, ingredient_id, quantity, unit_id, position)
		 VALUES ($1, $2, $3, $4, $5)`,
		proposalID, ingredientID, quantity, unitID, position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProposalIngredient: %v", err)
	}
}

// SeedRecipeTag links a tag to a recipe.
func SeedRecipeTag(t *testing.T, pool *pgxpool.Pool, recipeID, tagID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`,
		recipeID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipeTag: %v", err)
	}
}

// CountRows runs a COUNT(*) query and returns the result.
func CountRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows: %v", err)
	}
	return n
}
