// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log entries; the table
// itself rejects UPDATE and DELETE.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "type", "actor_id", "target_type", "target_id", "metadata", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	Type       string     `db:"type"`
	ActorID    *uuid.UUID `db:"actor_id"`
	TargetType string     `db:"target_type"`
	TargetID   uuid.UUID  `db:"target_id"`
	Metadata   []byte     `db:"metadata"`
	CreatedAt  time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit entry and returns the persisted entry.
// A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, entry domain.AuditLogEntry) (domain.AuditLogEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.Metadata == nil {
		entry.Metadata = map[string]any{}
	}

	metadataJSON, err := json.Marshal(entry.Metadata)
	if err != nil {
		return domain.AuditLogEntry{}, fmt.Errorf("audit_log marshal metadata: %w", err)
	}

	var rw row
	stmt := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(entry.ID, string(entry.Type), entry.ActorID, string(entry.TargetType), entry.TargetID, metadataJSON, entry.CreatedAt).
		Suffix("RETURNING id, type, actor_id, target_type, target_id, metadata, created_at")
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, stmt); err != nil {
		return domain.AuditLogEntry{}, postgres.MapError(err, "audit_log", entry.ID)
	}

	return toDomain(rw)
}

// Log creates an audit entry without returning it.
// Satisfies the auditLogger interface of every catalog service.
func (r *Repo) Log(ctx context.Context, entry domain.AuditLogEntry) error {
	_, err := r.Create(ctx, entry)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByTarget returns the history of one target, newest first.
func (r *Repo) ListByTarget(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID, limit int) ([]domain.AuditLogEntry, error) {
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"target_type": string(targetType), "target_id": targetID}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		stmt = stmt.Limit(uint64(limit))
	}
	return r.list(ctx, stmt, "by target")
}

// ListByActor returns entries written on behalf of an actor, newest first,
// with offset pagination.
func (r *Repo) ListByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditLogEntry, error) {
	stmt := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"actor_id": actorID}).
		OrderBy("created_at DESC", "id").
		Offset(uint64(offset))
	if limit > 0 {
		stmt = stmt.Limit(uint64(limit))
	}
	return r.list(ctx, stmt, "by actor")
}

func (r *Repo) list(ctx context.Context, stmt sq.Sqlizer, op string) ([]domain.AuditLogEntry, error) {
	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "audit_log", op)
	}

	entries := make([]domain.AuditLogEntry, len(rows))
	for i, rw := range rows {
		e, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}

// toDomain converts a row into a domain.AuditLogEntry.
func toDomain(rw row) (domain.AuditLogEntry, error) {
	entry := domain.AuditLogEntry{
		ID:         rw.ID,
		Type:       domain.AuditType(rw.Type),
		ActorID:    rw.ActorID,
		TargetType: domain.TargetType(rw.TargetType),
		TargetID:   rw.TargetID,
		Metadata:   map[string]any{},
		CreatedAt:  rw.CreatedAt,
	}

	// metadata: JSONB -> map[string]any
	if len(rw.Metadata) > 0 {
		if err := json.Unmarshal(rw.Metadata, &entry.Metadata); err != nil {
			return domain.AuditLogEntry{}, fmt.Errorf("audit_log %s unmarshal metadata: %w", rw.ID, err)
		}
	}

	return entry, nil
}
