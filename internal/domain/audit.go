package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogEntry is an immutable record of a completed state change.
// ActorID is nil for system-initiated changes.
type AuditLogEntry struct {
	ID         uuid.UUID
	Type       AuditType
	ActorID    *uuid.UUID
	TargetType TargetType
	TargetID   uuid.UUID
	Metadata   map[string]any
	CreatedAt  time.Time
}

// Orphan cascade audit reason.
const ReasonOrphanAutoReject = "ORPHAN_AUTO_REJECT"
