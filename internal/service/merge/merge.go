package merge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

// Merge folds input.SourceID into input.TargetID. Source and target may be
// in any status. The source's creator, if any, is notified after commit.
func (s *Service) Merge(ctx context.Context, input MergeInput) (*MergeResult, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		source *domain.CatalogEntity
		result MergeResult
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		source, result.Target, err = s.lockPair(txCtx, input.SourceID, input.TargetID)
		if err != nil {
			return err
		}

		if err := s.authorize(txCtx, actorID, source.Namespace(), result.Target.Namespace()); err != nil {
			return err
		}

		assocs, err := s.assocs.ListByEntity(txCtx, source.ID)
		if err != nil {
			return fmt.Errorf("list source associations: %w", err)
		}

		for _, a := range assocs {
			key := domain.AssociationKey{ContentKind: a.ContentKind, ContentID: a.ContentID, EntityID: result.Target.ID}
			exists, err := s.assocs.Exists(txCtx, key)
			if err != nil {
				return fmt.Errorf("check target association: %w", err)
			}
			if exists {
				if err := s.assocs.Delete(txCtx, a.Key()); err != nil {
					return fmt.Errorf("drop duplicate association: %w", err)
				}
				result.Deduplicated++
				continue
			}
			if err := s.assocs.Repoint(txCtx, a, result.Target.ID); err != nil {
				return fmt.Errorf("repoint association: %w", err)
			}
			result.Migrated++
		}

		if _, err := s.assocs.DeleteByEntity(txCtx, source.ID); err != nil {
			return fmt.Errorf("delete remaining associations: %w", err)
		}
		if err := s.entities.Delete(txCtx, source.ID); err != nil {
			return fmt.Errorf("delete source: %w", err)
		}

		err = s.audit.Log(txCtx, domain.AuditLogEntry{
			Type:       domain.AuditTypeEntityMerged,
			ActorID:    &actorID,
			TargetType: domain.TargetTypeFor(s.kind),
			TargetID:   result.Target.ID,
			Metadata: map[string]any{
				"sourceId":     source.ID.String(),
				"sourceName":   source.Name,
				"targetName":   result.Target.Name,
				"migrated":     result.Migrated,
				"deduplicated": result.Deduplicated,
			},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if source.CreatedBy != nil {
		s.events.Publish(ctx, domain.DomainEvent{
			Type:          domain.EventEntityMerged,
			ActorID:       actorID,
			ScopeID:       source.CommunityID,
			TargetUserIDs: []uuid.UUID{*source.CreatedBy},
			Metadata: map[string]any{
				"entityName": source.Name,
				"targetName": result.Target.Name,
			},
			OccurredAt: timeNow(),
		})
	}

	s.log.InfoContext(ctx, "entities merged",
		slog.String("actor_id", actorID.String()),
		slog.String("source_id", source.ID.String()),
		slog.String("target_id", result.Target.ID.String()),
		slog.Int("migrated", result.Migrated),
		slog.Int("deduplicated", result.Deduplicated),
	)

	return &result, nil
}

// lockPair locks both rows in ascending ID order so that concurrent merges
// touching the same pair cannot deadlock. A merge that lost the race for
// the source finds it gone and fails with ErrSourceNotFound.
func (s *Service) lockPair(ctx context.Context, sourceID, targetID uuid.UUID) (source, target *domain.CatalogEntity, err error) {
	var sourceErr, targetErr error
	lockSource := func() { source, sourceErr = s.entities.GetByIDForUpdate(ctx, sourceID) }
	lockTarget := func() { target, targetErr = s.entities.GetByIDForUpdate(ctx, targetID) }

	if bytes.Compare(sourceID[:], targetID[:]) < 0 {
		lockSource()
		lockTarget()
	} else {
		lockTarget()
		lockSource()
	}

	switch {
	case errors.Is(sourceErr, domain.ErrNotFound):
		return nil, nil, domain.ErrSourceNotFound
	case sourceErr != nil:
		return nil, nil, fmt.Errorf("lock source: %w", sourceErr)
	case errors.Is(targetErr, domain.ErrNotFound):
		return nil, nil, domain.ErrTargetNotFound
	case targetErr != nil:
		return nil, nil, fmt.Errorf("lock target: %w", targetErr)
	}
	return source, target, nil
}
