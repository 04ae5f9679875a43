// Package membership ends community memberships. Ending a membership runs
// the orphan cascade for the departing contributor in the same transaction.
package membership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/internal/service/orphan"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

//go:generate moq -out member_repo_mock_test.go -pkg membership . memberRepo
//go:generate moq -out departure_handler_mock_test.go -pkg membership . departureHandler
//go:generate moq -out audit_logger_mock_test.go -pkg membership . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg membership . txManager

type memberRepo interface {
	Get(ctx context.Context, communityID, userID uuid.UUID) (*domain.Membership, error)
	Delete(ctx context.Context, communityID, userID uuid.UUID) error
}

type departureHandler interface {
	HandleDeparture(ctx context.Context, input orphan.DepartureInput) (orphan.DepartureResult, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditLogEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages membership departures.
type Service struct {
	members   memberRepo
	departure departureHandler
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new membership Service.
func NewService(log *slog.Logger, members memberRepo, departure departureHandler, audit auditLogger, tx txManager) *Service {
	return &Service{
		members:   members,
		departure: departure,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "membership"),
	}
}

// Leave ends the acting user's membership in communityID. Owners cannot
// leave their own community.
func (s *Service) Leave(ctx context.Context, communityID uuid.UUID) (orphan.DepartureResult, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return orphan.DepartureResult{}, domain.ErrUnauthorized
	}
	return s.end(ctx, actorID, communityID, actorID, false)
}

// RemoveMember ends userID's membership in communityID. The actor must be
// an admin or a moderator/owner of the community. The owner cannot be
// removed.
func (s *Service) RemoveMember(ctx context.Context, communityID, userID uuid.UUID) (orphan.DepartureResult, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return orphan.DepartureResult{}, domain.ErrUnauthorized
	}
	if userID == uuid.Nil {
		return orphan.DepartureResult{}, domain.NewValidationError("user_id", "required")
	}
	return s.end(ctx, actorID, communityID, userID, true)
}

func (s *Service) end(ctx context.Context, actorID, communityID, userID uuid.UUID, removal bool) (orphan.DepartureResult, error) {
	if communityID == uuid.Nil {
		return orphan.DepartureResult{}, domain.NewValidationError("community_id", "required")
	}

	var result orphan.DepartureResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if removal {
			if err := s.authorizeRemoval(txCtx, actorID, communityID); err != nil {
				return err
			}
		}

		m, err := s.members.Get(txCtx, communityID, userID)
		if err != nil {
			return fmt.Errorf("get membership: %w", err)
		}
		if m.Role == domain.MemberRoleOwner {
			return fmt.Errorf("owner cannot leave community %s: %w", communityID, domain.ErrInvalidState)
		}

		if err := s.members.Delete(txCtx, communityID, userID); err != nil {
			return fmt.Errorf("delete membership: %w", err)
		}

		result, err = s.departure.HandleDeparture(txCtx, orphan.DepartureInput{ContributorID: userID, CommunityID: communityID})
		if err != nil {
			return fmt.Errorf("orphan cascade: %w", err)
		}

		err = s.audit.Log(txCtx, domain.AuditLogEntry{
			Type:       domain.AuditTypeMemberRemoved,
			ActorID:    &actorID,
			TargetType: domain.TargetTypeMembership,
			TargetID:   userID,
			Metadata: map[string]any{
				"communityId":     communityID.String(),
				"role":            m.Role.String(),
				"voluntary":       !removal,
				"createdVariants": result.CreatedVariants,
			},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return orphan.DepartureResult{}, err
	}

	s.log.InfoContext(ctx, "membership ended",
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", userID.String()),
		slog.String("community_id", communityID.String()),
		slog.Int("created_variants", result.CreatedVariants),
	)

	return result, nil
}

func (s *Service) authorizeRemoval(ctx context.Context, actorID, communityID uuid.UUID) error {
	if ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	m, err := s.members.Get(ctx, communityID, actorID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("get actor membership: %w", err)
	}
	if !m.Role.CanModerate() {
		return domain.ErrForbidden
	}
	return nil
}
