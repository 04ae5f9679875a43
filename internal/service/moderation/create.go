package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

// Create adds a new catalog entity. Entities created by an admin are
// APPROVED and have no creator. Entities created by a community moderator
// inside their community are APPROVED and keep the moderator as creator.
// Everyone else contributes a PENDING entity owned by them.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.CatalogEntity, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.kind, s.cfg.MaxNameLength); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)
	ns := domain.Namespace{Kind: s.kind, CommunityID: input.CommunityID}

	isAdmin := ctxutil.IsAdminCtx(ctx)
	privileged, err := s.canModerate(ctx, actorID, ns)
	if err != nil {
		return nil, err
	}
	if !ns.IsGlobal() && !privileged {
		if _, err := s.members.Get(ctx, *ns.CommunityID, actorID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, fmt.Errorf("get membership: %w", err)
		}
	}

	entity := domain.CatalogEntity{
		ID:            uuid.New(),
		Kind:          s.kind,
		Name:          name,
		Status:        domain.EntityStatusPending,
		CreatedBy:     &actorID,
		CommunityID:   input.CommunityID,
		DefaultUnitID: input.DefaultUnitID,
	}
	if privileged {
		entity.Status = domain.EntityStatusApproved
	}
	if isAdmin {
		entity.CreatedBy = nil
	}

	var created *domain.CatalogEntity
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureNameFree(txCtx, ns, name, uuid.Nil); err != nil {
			return err
		}

		if input.DefaultUnitID != nil {
			if _, err := s.units.GetByID(txCtx, *input.DefaultUnitID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("default unit %s: %w", *input.DefaultUnitID, domain.ErrInvalidReference)
				}
				return fmt.Errorf("get unit: %w", err)
			}
		}

		var createErr error
		created, createErr = s.entities.Create(txCtx, entity)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", s.kind, createErr)
		}

		return s.writeAudit(txCtx, domain.AuditTypeEntityCreated, actorID, created.ID, map[string]any{
			"name":   created.Name,
			"status": created.Status.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entity created",
		slog.String("actor_id", actorID.String()),
		slog.String("entity_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
