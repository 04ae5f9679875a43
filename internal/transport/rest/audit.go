package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

//go:generate moq -out audit_reader_mock_test.go -pkg rest . auditReader

type auditReader interface {
	ListByTarget(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID, limit int) ([]domain.AuditLogEntry, error)
	ListByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditLogEntry, error)
}

const defaultAuditLimit = 50

// AuditHandler serves read-only audit log queries for admins.
type AuditHandler struct {
	audit auditReader
	log   *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(audit auditReader, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, log: logger.With("handler", "audit")}
}

// List handles
//
//	GET /admin/audit?targetType=TAG&targetId=...&limit=50
//	GET /admin/audit?actorId=...&limit=50&offset=0
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return
	}

	q := r.URL.Query()
	limit, err := queryInt(r, "limit", defaultAuditLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var entries []domain.AuditLogEntry
	switch {
	case q.Get("targetId") != "":
		targetID, perr := uuid.Parse(q.Get("targetId"))
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("targetId", "invalid id"))
			return
		}
		entries, err = h.audit.ListByTarget(r.Context(), domain.TargetType(q.Get("targetType")), targetID, limit)
	case q.Get("actorId") != "":
		actorID, perr := uuid.Parse(q.Get("actorId"))
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("actorId", "invalid id"))
			return
		}
		offset, qerr := queryInt(r, "offset", 0)
		if qerr != nil {
			handleError(h.log, w, r, qerr)
			return
		}
		entries, err = h.audit.ListByActor(r.Context(), actorID, limit, offset)
	default:
		handleError(h.log, w, r, domain.NewValidationError("targetId", "targetId or actorId is required"))
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]auditResponse, len(entries))
	for i, e := range entries {
		resp[i] = toAuditResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}
