package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// Reject hard-deletes a PENDING entity together with every association that
// references it. The reason is mandatory and is recorded in the audit log
// and sent to the creator, if any.
func (s *Service) Reject(ctx context.Context, input RejectInput) error {
	if err := input.Validate(s.cfg.MaxReasonLength); err != nil {
		return err
	}

	reason := strings.TrimSpace(input.Reason)

	var (
		actorID  uuid.UUID
		rejected *domain.CatalogEntity
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

		if !current.IsPending() {
			return fmt.Errorf("reject %s %s in status %s: %w", s.kind, current.ID, current.Status, domain.ErrInvalidState)
		}
		if reason == "" {
			return domain.ErrMissingReason
		}

		if _, err := s.removeEntity(txCtx, current.ID); err != nil {
			return err
		}
		rejected = current

		return s.writeAudit(txCtx, domain.AuditTypeEntityRejected, actorID, current.ID, map[string]any{
			"name":        current.Name,
			"reason":      reason,
			"createdById": createdByString(current.CreatedBy),
		})
	})
	if err != nil {
		return err
	}

	s.notifyCreator(ctx, rejected, domain.EventEntityRejected, actorID, map[string]any{
		"entityName": rejected.Name,
		"kind":       s.kind.String(),
		"reason":     reason,
	})

	s.log.InfoContext(ctx, "entity rejected",
		slog.String("actor_id", actorID.String()),
		slog.String("entity_id", rejected.ID.String()),
		slog.String("name", rejected.Name),
	)

	return nil
}
