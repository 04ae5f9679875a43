package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// Approve moves a PENDING entity to APPROVED, optionally renaming it in the
// same transition. The creator, if any, receives exactly one event:
// ENTITY_MODIFIED when the name changed, ENTITY_APPROVED otherwise.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*domain.CatalogEntity, error) {
	if err := input.Validate(s.cfg.MaxNameLength); err != nil {
		return nil, err
	}

	var (
		actorID  uuid.UUID
		approved *domain.CatalogEntity
		oldName  string
		renamed  bool
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
			return fmt.Errorf("approve %s %s in status %s: %w", s.kind, current.ID, current.Status, domain.ErrInvalidState)
		}

		name := current.Name
		if input.NewName != nil {
			name = domain.NormalizeName(*input.NewName)
		}
		oldName = current.Name
		renamed = name != current.Name
		if renamed {
			if err := s.ensureNameFree(txCtx, current.Namespace(), name, current.ID); err != nil {
				return err
			}
		}

		approved, err = s.entities.Approve(txCtx, current.ID, name)
		if err != nil {
			return fmt.Errorf("approve %s: %w", s.kind, err)
		}

		if renamed {
			return s.writeAudit(txCtx, domain.AuditTypeEntityModified, actorID, approved.ID, map[string]any{
				"oldName":  oldName,
				"newName":  approved.Name,
				"approved": true,
			})
		}
		return s.writeAudit(txCtx, domain.AuditTypeEntityApproved, actorID, approved.ID, map[string]any{
			"name": approved.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	evType := domain.EventEntityApproved
	meta := map[string]any{"entityName": approved.Name, "kind": s.kind.String()}
	if renamed {
		evType = domain.EventEntityModified
		meta["oldName"] = oldName
	}
	s.notifyCreator(ctx, approved, evType, actorID, meta)

	s.log.InfoContext(ctx, "entity approved",
		slog.String("actor_id", actorID.String()),
		slog.String("entity_id", approved.ID.String()),
		slog.String("name", approved.Name),
		slog.Bool("renamed", renamed),
	)

	return approved, nil
}
