package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// CatalogEntity is a shared-namespace catalog item (ingredient or tag)
// subject to moderation.
type CatalogEntity struct {
	ID        uuid.UUID
	Kind      EntityKind
	Name      string
	Status    EntityStatus
	CreatedBy *uuid.UUID

	// CommunityID is set only for community-scoped tags.
	CommunityID *uuid.UUID
	// DefaultUnitID is set only for ingredients.
	DefaultUnitID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the entity still awaits moderation.
func (e *CatalogEntity) IsPending() bool {
	return e.Status == EntityStatusPending
}

// Namespace returns the uniqueness scope of the entity's name.
func (e *CatalogEntity) Namespace() Namespace {
	return Namespace{Kind: e.Kind, CommunityID: e.CommunityID}
}

// Namespace is the scope inside which catalog names are unique.
// Ingredients always use the global namespace; tags are global when
// CommunityID is nil and community-scoped otherwise.
type Namespace struct {
	Kind        EntityKind
	CommunityID *uuid.UUID
}

// IsGlobal reports whether the namespace is platform-wide.
func (n Namespace) IsGlobal() bool {
	return n.CommunityID == nil
}

// Unit is a measurement unit referenced by ingredients and ingredient
// associations.
type Unit struct {
	ID           uuid.UUID
	Name         string
	Abbreviation *string
	CreatedAt    time.Time
}

// Association binds a catalog entity to a content item. Quantity, UnitID
// and Position are meaningful for ingredients only.
type Association struct {
	ContentKind ContentKind
	ContentID   uuid.UUID
	EntityID    uuid.UUID

	Quantity *float64
	UnitID   *uuid.UUID
	Position int
}

// AssociationKey identifies the (content item, entity) pair that must stay
// unique.
type AssociationKey struct {
	ContentKind ContentKind
	ContentID   uuid.UUID
	EntityID    uuid.UUID
}

// Key returns the uniqueness key of the association.
func (a Association) Key() AssociationKey {
	return AssociationKey{ContentKind: a.ContentKind, ContentID: a.ContentID, EntityID: a.EntityID}
}

// NormalizeName prepares a catalog name for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses runs of whitespace into one space
//   - composes combining marks (NFC), so "crème" matches however it was typed
func NormalizeName(name string) string {
	return norm.NFC.String(strings.ToLower(strings.Join(strings.Fields(name), " ")))
}
