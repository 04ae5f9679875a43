// Package merge folds a duplicate catalog entity (the source) into the
// entity that survives (the target). Every content item that referenced the
// source ends up referencing the target exactly once, and the source is
// deleted. The whole merge runs in one transaction.
package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

//go:generate moq -out entity_repo_mock_test.go -pkg merge . entityRepo
//go:generate moq -out association_repo_mock_test.go -pkg merge . associationRepo
//go:generate moq -out member_repo_mock_test.go -pkg merge . memberRepo
//go:generate moq -out audit_logger_mock_test.go -pkg merge . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg merge . txManager

type entityRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type associationRepo interface {
	ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.Association, error)
	Exists(ctx context.Context, key domain.AssociationKey) (bool, error)
	Repoint(ctx context.Context, a domain.Association, targetID uuid.UUID) error
	Delete(ctx context.Context, key domain.AssociationKey) error
	DeleteByEntity(ctx context.Context, entityID uuid.UUID) (int64, error)
}

type memberRepo interface {
	Get(ctx context.Context, communityID, userID uuid.UUID) (*domain.Membership, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditLogEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, ev domain.DomainEvent)
}

var timeNow = func() time.Time { return time.Now().UTC() }

// Service merges catalog entities of one kind.
type Service struct {
	kind     domain.EntityKind
	entities entityRepo
	assocs   associationRepo
	members  memberRepo
	audit    auditLogger
	tx       txManager
	events   publisher
	log      *slog.Logger
}

// NewService creates a merge Service for kind. members may be nil for kinds
// that have no community scope.
func NewService(
	log *slog.Logger,
	kind domain.EntityKind,
	entities entityRepo,
	assocs associationRepo,
	members memberRepo,
	audit auditLogger,
	tx txManager,
	events publisher,
) *Service {
	return &Service{
		kind:     kind,
		entities: entities,
		assocs:   assocs,
		members:  members,
		audit:    audit,
		tx:       tx,
		events:   events,
		log:      log.With("service", "merge", "kind", kind.String()),
	}
}

// authorize checks that the actor may moderate both namespaces. Admins
// always may; a community moderator may merge entities of their own
// community only.
func (s *Service) authorize(ctx context.Context, actorID uuid.UUID, namespaces ...domain.Namespace) error {
	if ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	for _, ns := range namespaces {
		if ns.IsGlobal() || s.members == nil {
			return domain.ErrForbidden
		}
		m, err := s.members.Get(ctx, *ns.CommunityID, actorID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		if err != nil {
			return fmt.Errorf("get membership: %w", err)
		}
		if !m.Role.CanModerate() {
			return domain.ErrForbidden
		}
	}
	return nil
}
