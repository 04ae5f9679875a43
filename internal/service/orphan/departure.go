package orphan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// DepartureInput identifies the contributor leaving a community.
type DepartureInput struct {
	ContributorID uuid.UUID
	CommunityID   uuid.UUID
}

// Validate checks that both ids are set.
func (i DepartureInput) Validate() error {
	var errs []domain.FieldError
	if i.ContributorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contributor_id", Message: "required"})
	}
	if i.CommunityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "community_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DepartureResult summarizes one cascade run.
type DepartureResult struct {
	ProcessedRecipes      int
	AutoRejectedProposals int
	CreatedVariants       int
}

// HandleDeparture converts every pending proposal on the contributor's
// active recipes in the community into a variant recipe owned by the
// proposer and rejects the proposal. Proposals are handled oldest first.
// The cascade joins a transaction already present in ctx.
func (s *Service) HandleDeparture(ctx context.Context, input DepartureInput) (DepartureResult, error) {
	if err := input.Validate(); err != nil {
		return DepartureResult{}, err
	}

	var result DepartureResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		recipes, err := s.recipes.ListActiveByAuthorInCommunity(txCtx, input.ContributorID, input.CommunityID)
		if err != nil {
			return fmt.Errorf("list recipes: %w", err)
		}
		result.ProcessedRecipes = len(recipes)
		if len(recipes) == 0 {
			return nil
		}

		byID := make(map[uuid.UUID]domain.Recipe, len(recipes))
		ids := make([]uuid.UUID, 0, len(recipes))
		for _, r := range recipes {
			byID[r.ID] = r
			ids = append(ids, r.ID)
		}

		proposals, err := s.proposals.ListPendingByRecipeIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("list pending proposals: %w", err)
		}

		decidedAt := timeNow()
		for _, p := range proposals {
			origin, ok := byID[p.RecipeID]
			if !ok {
				continue
			}
			if err := s.convert(txCtx, origin, p, decidedAt); err != nil {
				return err
			}
			result.CreatedVariants++
			result.AutoRejectedProposals++
		}
		return nil
	})
	if err != nil {
		return DepartureResult{}, err
	}

	s.log.InfoContext(ctx, "contributor departure handled",
		slog.String("contributor_id", input.ContributorID.String()),
		slog.String("community_id", input.CommunityID.String()),
		slog.Int("recipes", result.ProcessedRecipes),
		slog.Int("rejected_proposals", result.AutoRejectedProposals),
		slog.Int("variants", result.CreatedVariants),
	)

	return result, nil
}

// convert forks origin into a variant carrying the proposal's content and
// ingredient list, then rejects the proposal.
func (s *Service) convert(ctx context.Context, origin domain.Recipe, p domain.Proposal, decidedAt time.Time) error {
	variant, err := s.recipes.Create(ctx, domain.NewVariant(origin, p))
	if err != nil {
		return fmt.Errorf("create variant for proposal %s: %w", p.ID, err)
	}

	if _, err := s.ingredients.CopyProposalToRecipe(ctx, p.ID, variant.ID); err != nil {
		return fmt.Errorf("copy proposal ingredients: %w", err)
	}

	if err := s.proposals.Reject(ctx, p.ID, decidedAt); err != nil {
		return fmt.Errorf("reject proposal %s: %w", p.ID, err)
	}

	proposerID := p.ProposerID
	err = s.audit.Log(ctx, domain.AuditLogEntry{
		Type:       domain.AuditTypeVariantCreated,
		ActorID:    &proposerID,
		TargetType: domain.TargetTypeRecipe,
		TargetID:   variant.ID,
		Metadata: map[string]any{
			"proposalId":     p.ID.String(),
			"originRecipeId": origin.ID.String(),
			"reason":         domain.ReasonOrphanAutoReject,
		},
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
