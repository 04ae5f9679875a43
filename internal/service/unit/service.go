// Package unit administers measurement units. Units are admin-managed and
// cannot be removed while any ingredient or association references them.
package unit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

//go:generate moq -out unit_repo_mock_test.go -pkg unit . unitRepo
//go:generate moq -out audit_logger_mock_test.go -pkg unit . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg unit . txManager

type unitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	FindByName(ctx context.Context, name string) (*domain.Unit, error)
	List(ctx context.Context) ([]domain.Unit, error)
	CountUsages(ctx context.Context, id uuid.UUID) (int, error)
	Create(ctx context.Context, u domain.Unit) (*domain.Unit, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditLogEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	maxNameLength         = 50
	maxAbbreviationLength = 10
)

// Service administers units.
type Service struct {
	units unitRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new unit Service.
func NewService(log *slog.Logger, units unitRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		units: units,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "unit"),
	}
}

// CreateInput holds the parameters for creating a unit.
type CreateInput struct {
	Name         string
	Abbreviation *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := domain.NormalizeName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}
	if i.Abbreviation != nil {
		abbr := strings.TrimSpace(*i.Abbreviation)
		if abbr == "" {
			errs = append(errs, domain.FieldError{Field: "abbreviation", Message: "must not be blank"})
		} else if utf8.RuneCountInString(abbr) > maxAbbreviationLength {
			errs = append(errs, domain.FieldError{Field: "abbreviation", Message: fmt.Sprintf("max %d characters", maxAbbreviationLength)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns all units ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Unit, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}

// Create adds a unit. Admin only.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Unit, error) {
	actorID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u := domain.Unit{
		ID:   uuid.New(),
		Name: domain.NormalizeName(input.Name),
	}
	if input.Abbreviation != nil {
		abbr := strings.TrimSpace(*input.Abbreviation)
		u.Abbreviation = &abbr
	}

	var created *domain.Unit
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.units.FindByName(txCtx, u.Name)
		switch {
		case err == nil:
			return fmt.Errorf("unit %q: %w", u.Name, domain.ErrDuplicateName)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("find unit: %w", err)
		}

		created, err = s.units.Create(txCtx, u)
		if err != nil {
			return fmt.Errorf("create unit: %w", err)
		}

		return s.writeAudit(txCtx, domain.AuditTypeEntityCreated, actorID, created.ID, map[string]any{
			"name": created.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "unit created",
		slog.String("unit_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// RemoveIfUnused deletes a unit that nothing references.
// Returns domain.ErrInUse otherwise. Admin only.
func (s *Service) RemoveIfUnused(ctx context.Context, id uuid.UUID) error {
	actorID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	var name string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.units.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get unit: %w", err)
		}
		name = u.Name

		n, err := s.units.CountUsages(txCtx, id)
		if err != nil {
			return fmt.Errorf("count usages: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("unit %q referenced %d times: %w", u.Name, n, domain.ErrInUse)
		}

		if err := s.units.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete unit: %w", err)
		}

		return s.writeAudit(txCtx, domain.AuditTypeEntityDeleted, actorID, id, map[string]any{
			"name": u.Name,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "unit removed",
		slog.String("unit_id", id.String()),
		slog.String("name", name),
	)

	return nil
}

func (s *Service) writeAudit(ctx context.Context, typ domain.AuditType, actorID, unitID uuid.UUID, metadata map[string]any) error {
	err := s.audit.Log(ctx, domain.AuditLogEntry{
		Type:       typ,
		ActorID:    &actorID,
		TargetType: domain.TargetTypeUnit,
		TargetID:   unitID,
		Metadata:   metadata,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return actorID, nil
}
