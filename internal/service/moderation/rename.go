package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// Rename changes an entity's name. Renaming to the same normalized name is
// a no-op and writes no audit entry. Rename publishes no event.
func (s *Service) Rename(ctx context.Context, input RenameInput) (*domain.CatalogEntity, error) {
	if err := input.Validate(s.cfg.MaxNameLength); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)

	var (
		result  *domain.CatalogEntity
		oldName string
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entities.GetByIDForUpdate(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get %s: %w", s.kind, err)
		}

		actorID, err := s.requireModerator(txCtx, current.Namespace())
		if err != nil {
			return err
		}

		if current.Name == name {
			result = current
			return nil
		}

		if err := s.ensureNameFree(txCtx, current.Namespace(), name, current.ID); err != nil {
			return err
		}

		result, err = s.entities.UpdateName(txCtx, current.ID, name)
		if err != nil {
			return fmt.Errorf("rename %s: %w", s.kind, err)
		}
		oldName = current.Name
		changed = true

		return s.writeAudit(txCtx, domain.AuditTypeEntityModified, actorID, current.ID, map[string]any{
			"oldName": oldName,
			"newName": name,
		})
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "entity renamed",
			slog.String("entity_id", result.ID.String()),
			slog.String("old_name", oldName),
			slog.String("new_name", result.Name),
		)
	}

	return result, nil
}
