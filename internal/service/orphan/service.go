// Package orphan resolves the pending proposals left behind when a
// contributor leaves a community. Each such proposal is auto-rejected and
// its content is preserved as a variant recipe owned by the proposer.
package orphan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

//go:generate moq -out recipe_repo_mock_test.go -pkg orphan . recipeRepo
//go:generate moq -out proposal_repo_mock_test.go -pkg orphan . proposalRepo
//go:generate moq -out ingredient_copier_mock_test.go -pkg orphan . ingredientCopier
//go:generate moq -out audit_logger_mock_test.go -pkg orphan . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg orphan . txManager

type recipeRepo interface {
	ListActiveByAuthorInCommunity(ctx context.Context, authorID, communityID uuid.UUID) ([]domain.Recipe, error)
	Create(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error)
}

type proposalRepo interface {
	ListPendingByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.Proposal, error)
	Reject(ctx context.Context, id uuid.UUID, decidedAt time.Time) error
}

type ingredientCopier interface {
	CopyProposalToRecipe(ctx context.Context, proposalID, recipeID uuid.UUID) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditLogEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var timeNow = func() time.Time { return time.Now().UTC() }

// Service runs the orphan cascade.
type Service struct {
	recipes     recipeRepo
	proposals   proposalRepo
	ingredients ingredientCopier
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new orphan cascade service.
func NewService(
	log *slog.Logger,
	recipes recipeRepo,
	proposals proposalRepo,
	ingredients ingredientCopier,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		recipes:     recipes,
		proposals:   proposals,
		ingredients: ingredients,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "orphan"),
	}
}
