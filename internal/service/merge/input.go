package merge

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// MergeInput names the entity to remove and the entity that absorbs it.
type MergeInput struct {
	SourceID uuid.UUID
	TargetID uuid.UUID
}

// Validate rejects a missing target and a self-merge. A missing source is
// reported as domain.ErrSourceNotFound once the rows are locked.
func (i MergeInput) Validate() error {
	if i.TargetID == uuid.Nil {
		return domain.ErrMissingTarget
	}
	if i.SourceID == i.TargetID {
		return domain.ErrSelfMerge
	}
	return nil
}

// MergeResult reports the surviving target and what happened to the
// source's associations.
type MergeResult struct {
	Target *domain.CatalogEntity
	// Migrated counts associations re-pointed to the target.
	Migrated int
	// Deduplicated counts associations dropped because the target was
	// already bound to the same content item.
	Deduplicated int
}
