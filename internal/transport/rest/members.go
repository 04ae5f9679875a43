package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/service/orphan"
)

//go:generate moq -out membership_service_mock_test.go -pkg rest . membershipService

type membershipService interface {
	Leave(ctx context.Context, communityID uuid.UUID) (orphan.DepartureResult, error)
	RemoveMember(ctx context.Context, communityID, userID uuid.UUID) (orphan.DepartureResult, error)
}

// MemberHandler serves membership endpoints that trigger the orphan cascade.
type MemberHandler struct {
	svc membershipService
	log *slog.Logger
}

// NewMemberHandler creates a MemberHandler.
func NewMemberHandler(svc membershipService, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, log: logger.With("handler", "members")}
}

// Leave handles DELETE /communities/{communityID}/members/me.
func (h *MemberHandler) Leave(w http.ResponseWriter, r *http.Request) {
	communityID, err := pathUUID(r, "communityID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.Leave(r.Context(), communityID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartureResponse(res))
}

// Remove handles DELETE /communities/{communityID}/members/{userID}.
func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	communityID, err := pathUUID(r, "communityID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.RemoveMember(r.Context(), communityID, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartureResponse(res))
}

// Register mounts the membership routes.
func (h *MemberHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("DELETE /communities/{communityID}/members/me", h.Leave)
	mux.HandleFunc("DELETE /communities/{communityID}/members/{userID}", h.Remove)
}
