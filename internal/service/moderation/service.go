// Package moderation implements the catalog moderation state machine shared
// by ingredients and tags:
//
//	PENDING --approve--> APPROVED
//	PENDING --reject---> deleted
//
// APPROVED entities only leave the catalog through a merge (as source) or an
// unconditional admin delete. One Service is constructed per entity kind;
// the kind-specific behaviour lives entirely in the injected repositories.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/config"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

//go:generate moq -out entity_repo_mock_test.go -pkg moderation . entityRepo
//go:generate moq -out association_repo_mock_test.go -pkg moderation . associationRepo
//go:generate moq -out unit_repo_mock_test.go -pkg moderation . unitRepo
//go:generate moq -out member_repo_mock_test.go -pkg moderation . memberRepo
//go:generate moq -out audit_logger_mock_test.go -pkg moderation . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg moderation . txManager

type entityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error)
	FindByName(ctx context.Context, ns domain.Namespace, name string) (*domain.CatalogEntity, error)
	ListPending(ctx context.Context, ns domain.Namespace, limit int) ([]domain.CatalogEntity, error)
	Create(ctx context.Context, e domain.CatalogEntity) (*domain.CatalogEntity, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.CatalogEntity, error)
	Approve(ctx context.Context, id uuid.UUID, name string) (*domain.CatalogEntity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type associationRepo interface {
	CountByEntity(ctx context.Context, entityID uuid.UUID) (int, error)
	DeleteByEntity(ctx context.Context, entityID uuid.UUID) (int64, error)
}

type unitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
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

// Service moderates catalog entities of one kind.
type Service struct {
	kind     domain.EntityKind
	entities entityRepo
	assocs   associationRepo
	units    unitRepo
	members  memberRepo
	audit    auditLogger
	tx       txManager
	events   publisher
	cfg      config.ModerationConfig
	log      *slog.Logger
}

// NewService creates a moderation Service for kind. units may be nil for
// kinds without a default unit.
func NewService(
	log *slog.Logger,
	kind domain.EntityKind,
	entities entityRepo,
	assocs associationRepo,
	units unitRepo,
	members memberRepo,
	audit auditLogger,
	tx txManager,
	events publisher,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		kind:     kind,
		entities: entities,
		assocs:   assocs,
		units:    units,
		members:  members,
		audit:    audit,
		tx:       tx,
		events:   events,
		cfg:      cfg,
		log:      log.With("service", "moderation", "kind", kind.String()),
	}
}

// Kind returns the entity kind this service moderates.
func (s *Service) Kind() domain.EntityKind {
	return s.kind
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// canModerate reports whether the actor may moderate entities in ns.
// Admins moderate every namespace; community moderators and owners also
// moderate their community's tags.
func (s *Service) canModerate(ctx context.Context, actorID uuid.UUID, ns domain.Namespace) (bool, error) {
	if ctxutil.IsAdminCtx(ctx) {
		return true, nil
	}
	if ns.IsGlobal() || s.members == nil {
		return false, nil
	}

	m, err := s.members.Get(ctx, *ns.CommunityID, actorID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get membership: %w", err)
	}
	return m.Role.CanModerate(), nil
}

// requireModerator returns the acting user's ID, or ErrUnauthorized /
// ErrForbidden when the actor may not moderate ns.
func (s *Service) requireModerator(ctx context.Context, ns domain.Namespace) (uuid.UUID, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	allowed, err := s.canModerate(ctx, actorID, ns)
	if err != nil {
		return uuid.Nil, err
	}
	if !allowed {
		return uuid.Nil, domain.ErrForbidden
	}
	return actorID, nil
}

// ensureNameFree fails with ErrDuplicateName when another entity in ns
// already uses name.
func (s *Service) ensureNameFree(ctx context.Context, ns domain.Namespace, name string, self uuid.UUID) error {
	existing, err := s.entities.FindByName(ctx, ns, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find by name: %w", err)
	}
	if existing.ID != self {
		return fmt.Errorf("%s %q: %w", s.kind, name, domain.ErrDuplicateName)
	}
	return nil
}

// removeEntity deletes the entity's associations and then the entity.
// Returns the number of associations removed.
func (s *Service) removeEntity(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.assocs.DeleteByEntity(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete associations: %w", err)
	}
	if err := s.entities.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete %s: %w", s.kind, err)
	}
	return n, nil
}

func (s *Service) writeAudit(ctx context.Context, typ domain.AuditType, actorID uuid.UUID, targetID uuid.UUID, metadata map[string]any) error {
	err := s.audit.Log(ctx, domain.AuditLogEntry{
		Type:       typ,
		ActorID:    &actorID,
		TargetType: domain.TargetTypeFor(s.kind),
		TargetID:   targetID,
		Metadata:   metadata,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// notifyCreator publishes ev to the entity's creator. Entities without a
// creator produce no event.
func (s *Service) notifyCreator(ctx context.Context, e *domain.CatalogEntity, typ domain.EventType, actorID uuid.UUID, metadata map[string]any) {
	if e.CreatedBy == nil {
		return
	}
	s.events.Publish(ctx, domain.DomainEvent{
		Type:          typ,
		ActorID:       actorID,
		ScopeID:       e.CommunityID,
		TargetUserIDs: []uuid.UUID{*e.CreatedBy},
		Metadata:      metadata,
		OccurredAt:    timeNow(),
	})
}

func createdByString(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
