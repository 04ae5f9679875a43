package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

// Get returns an entity by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.entities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.kind, err)
	}
	return e, nil
}

// ListPending returns the moderation queue of one namespace, oldest first.
// Only moderators of that namespace may read it.
func (s *Service) ListPending(ctx context.Context, input ListPendingInput) ([]domain.CatalogEntity, error) {
	ns := domain.Namespace{Kind: s.kind, CommunityID: input.CommunityID}
	if _, err := s.requireModerator(ctx, ns); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > s.cfg.PendingPageSize {
		limit = s.cfg.PendingPageSize
	}

	entities, err := s.entities.ListPending(ctx, ns, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending %s: %w", s.kind, err)
	}
	return entities, nil
}
