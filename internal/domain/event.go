package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event.
type EventType string

const (
	EventEntityApproved EventType = "ENTITY_APPROVED"
	EventEntityModified EventType = "ENTITY_MODIFIED"
	EventEntityRejected EventType = "ENTITY_REJECTED"
	EventEntityMerged   EventType = "ENTITY_MERGED"
)

func (t EventType) String() string { return string(t) }

// DomainEvent describes a committed state transition for whoever wants to
// notify users about it. It is never persisted.
type DomainEvent struct {
	Type          EventType
	ActorID       uuid.UUID
	ScopeID       *uuid.UUID
	TargetUserIDs []uuid.UUID
	Metadata      map[string]any
	OccurredAt    time.Time
}
