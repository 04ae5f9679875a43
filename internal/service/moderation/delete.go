package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// Delete unconditionally removes an entity in any status, together with
// its associations.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	return s.delete(ctx, input, false)
}

// RemoveIfUnused removes an entity only when no content references it.
// Returns domain.ErrInUse otherwise.
func (s *Service) RemoveIfUnused(ctx context.Context, input DeleteInput) error {
	return s.delete(ctx, input, true)
}

func (s *Service) delete(ctx context.Context, input DeleteInput, onlyUnused bool) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var (
		actorID uuid.UUID
		deleted *domain.CatalogEntity
		removed int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entities.GetByIDForUpdate(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get %s: %w", s.kind, err)
		}

		actorID, err = s.requireModerator(txCtx, current.Namespace())
		if err != nil {
			return err
		}

		if onlyUnused {
			n, err := s.assocs.CountByEntity(txCtx, current.ID)
			if err != nil {
				return fmt.Errorf("count associations: %w", err)
			}
			if n > 0 {
				return fmt.Errorf("%s %s has %d associations: %w", s.kind, current.ID, n, domain.ErrInUse)
			}
		}

		removed, err = s.removeEntity(txCtx, current.ID)
		if err != nil {
			return err
		}
		deleted = current

		return s.writeAudit(txCtx, domain.AuditTypeEntityDeleted, actorID, current.ID, map[string]any{
			"name":         current.Name,
			"status":       current.Status.String(),
			"associations": removed,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entity deleted",
		slog.String("actor_id", actorID.String()),
		slog.String("entity_id", deleted.ID.String()),
		slog.String("name", deleted.Name),
		slog.Int64("associations", removed),
	)

	return nil
}
