package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a piece of community content. Variants are forks that keep a
// link to their origin recipe.
type Recipe struct {
	ID             uuid.UUID
	CommunityID    uuid.UUID
	AuthorID       uuid.UUID
	Title          string
	Content        string
	ImageURL       *string
	IsVariant      bool
	OriginRecipeID *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsDeleted returns true if the recipe has been soft-deleted.
func (r *Recipe) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Proposal is a pending edit to a recipe submitted by another member.
type Proposal struct {
	ID              uuid.UUID
	RecipeID        uuid.UUID
	ProposerID      uuid.UUID
	ProposedTitle   string
	ProposedContent string
	Status          ProposalStatus
	DecidedAt       *time.Time
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

// IsPending reports whether the proposal is still open.
func (p *Proposal) IsPending() bool {
	return p.Status == ProposalStatusPending && p.DeletedAt == nil
}

// NewVariant forks origin into a variant owned by the proposer, carrying the
// proposal's title and content and the origin's image.
func NewVariant(origin Recipe, p Proposal) Recipe {
	originID := origin.ID
	return Recipe{
		ID:             uuid.New(),
		CommunityID:    origin.CommunityID,
		AuthorID:       p.ProposerID,
		Title:          p.ProposedTitle,
		Content:        p.ProposedContent,
		ImageURL:       origin.ImageURL,
		IsVariant:      true,
		OriginRecipeID: &originID,
	}
}

// Membership is a user's membership in a community.
type Membership struct {
	CommunityID uuid.UUID
	UserID      uuid.UUID
	Role        MemberRole
	JoinedAt    time.Time
}
