package moderation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// CreateInput holds the parameters for creating a catalog entity.
type CreateInput struct {
	Name string
	// CommunityID scopes a tag to one community; nil means global.
	CommunityID *uuid.UUID
	// DefaultUnitID is accepted for ingredients only.
	DefaultUnitID *uuid.UUID
}

// RenameInput holds the parameters for renaming a catalog entity.
type RenameInput struct {
	ID   uuid.UUID
	Name string
}

// ApproveInput holds the parameters for approving a pending entity.
// NewName, when set, renames the entity in the same transition.
type ApproveInput struct {
	ID      uuid.UUID
	NewName *string
}

// RejectInput holds the parameters for rejecting a pending entity.
type RejectInput struct {
	ID     uuid.UUID
	Reason string
}

// DeleteInput identifies an entity for the administrative delete variants.
type DeleteInput struct {
	ID uuid.UUID
}

// ListPendingInput selects the namespace whose moderation queue is listed.
type ListPendingInput struct {
	CommunityID *uuid.UUID
	Limit       int
}

// validateName normalizes name and checks it against maxLen.
func validateName(field, name string, maxLen int) (string, *domain.FieldError) {
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return "", &domain.FieldError{Field: field, Message: "required"}
	}
	if utf8.RuneCountInString(normalized) > maxLen {
		return "", &domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)}
	}
	return normalized, nil
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate(kind domain.EntityKind, maxNameLen int) error {
	var errs []domain.FieldError

	if _, fe := validateName("name", i.Name, maxNameLen); fe != nil {
		errs = append(errs, *fe)
	}
	if kind == domain.EntityKindIngredient && i.CommunityID != nil {
		errs = append(errs, domain.FieldError{Field: "community_id", Message: "ingredients are always global"})
	}
	if kind == domain.EntityKindTag && i.DefaultUnitID != nil {
		errs = append(errs, domain.FieldError{Field: "default_unit_id", Message: "tags have no unit"})
	}
	if i.CommunityID != nil && *i.CommunityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "community_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate(maxNameLen int) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if _, fe := validateName("name", i.Name, maxNameLen); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate(maxNameLen int) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.NewName != nil {
		if _, fe := validateName("new_name", *i.NewName, maxNameLen); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Validate checks the id and the reason length. An empty reason is reported
// as domain.ErrMissingReason by Reject itself, after the state checks.
func (i RejectInput) Validate(maxReasonLen int) error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Reason)) > maxReasonLen {
		return domain.NewValidationError("reason", fmt.Sprintf("max %d characters", maxReasonLen))
	}
	return nil
}

// Validate checks the id.
func (i DeleteInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
