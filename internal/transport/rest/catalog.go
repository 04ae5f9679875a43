package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/internal/service/merge"
	"github.com/heartmarshall/cookbook-backend/internal/service/moderation"
)

//go:generate moq -out moderator_mock_test.go -pkg rest . moderator
//go:generate moq -out merger_mock_test.go -pkg rest . merger

type moderator interface {
	Create(ctx context.Context, input moderation.CreateInput) (*domain.CatalogEntity, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.CatalogEntity, error)
	ListPending(ctx context.Context, input moderation.ListPendingInput) ([]domain.CatalogEntity, error)
	Rename(ctx context.Context, input moderation.RenameInput) (*domain.CatalogEntity, error)
	Approve(ctx context.Context, input moderation.ApproveInput) (*domain.CatalogEntity, error)
	Reject(ctx context.Context, input moderation.RejectInput) error
	Delete(ctx context.Context, input moderation.DeleteInput) error
	RemoveIfUnused(ctx context.Context, input moderation.DeleteInput) error
}

type merger interface {
	Merge(ctx context.Context, input merge.MergeInput) (*merge.MergeResult, error)
}

// CatalogHandler serves the moderation endpoints of one entity kind.
type CatalogHandler struct {
	mod   moderator
	merge merger
	log   *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(mod moderator, m merger, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{mod: mod, merge: m, log: logger.With("handler", "catalog")}
}

type createRequest struct {
	Name          string     `json:"name"`
	DefaultUnitID *uuid.UUID `json:"defaultUnitId"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type approveRequest struct {
	NewName *string `json:"newName"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type mergeRequest struct {
	TargetID uuid.UUID `json:"targetId"`
}

// Create handles POST {prefix} and POST /communities/{communityID}/tags.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decode(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	communityID, err := optionalCommunity(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.mod.Create(r.Context(), moderation.CreateInput{
		Name:          req.Name,
		CommunityID:   communityID,
		DefaultUnitID: req.DefaultUnitID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntityResponse(e))
}

// Pending handles GET {prefix}/pending?limit=N.
func (h *CatalogHandler) Pending(w http.ResponseWriter, r *http.Request) {
	communityID, err := optionalCommunity(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.mod.ListPending(r.Context(), moderation.ListPendingInput{CommunityID: communityID, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]entityResponse, len(items))
	for i := range items {
		resp[i] = toEntityResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET {prefix}/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	e, err := h.mod.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e))
}

// Rename handles PATCH {prefix}/{id}.
func (h *CatalogHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req renameRequest
	if err := decode(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	e, err := h.mod.Rename(r.Context(), moderation.RenameInput{ID: id, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e))
}

// Approve handles POST {prefix}/{id}/approve. The body is optional.
func (h *CatalogHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req approveRequest
	if err := decodeOptional(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	e, err := h.mod.Approve(r.Context(), moderation.ApproveInput{ID: id, NewName: req.NewName})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e))
}

// Reject handles POST {prefix}/{id}/reject.
func (h *CatalogHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req rejectRequest
	if err := decode(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.mod.Reject(r.Context(), moderation.RejectInput{ID: id, Reason: req.Reason}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE {prefix}/{id}. With ?unused=true the entity is only
// removed when nothing references it.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input := moderation.DeleteInput{ID: id}
	if r.URL.Query().Get("unused") == "true" {
		err = h.mod.RemoveIfUnused(r.Context(), input)
	} else {
		err = h.mod.Delete(r.Context(), input)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Merge handles POST {prefix}/{id}/merge, folding {id} into the target.
func (h *CatalogHandler) Merge(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req mergeRequest
	if err := decode(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.merge.Merge(r.Context(), merge.MergeInput{SourceID: id, TargetID: req.TargetID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMergeResponse(res))
}

// Register mounts the handler under prefix.
func (h *CatalogHandler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("POST "+prefix, h.Create)
	mux.HandleFunc("GET "+prefix+"/pending", h.Pending)
	mux.HandleFunc("GET "+prefix+"/{id}", h.Get)
	mux.HandleFunc("PATCH "+prefix+"/{id}", h.Rename)
	mux.HandleFunc("DELETE "+prefix+"/{id}", h.Delete)
	mux.HandleFunc("POST "+prefix+"/{id}/approve", h.Approve)
	mux.HandleFunc("POST "+prefix+"/{id}/reject", h.Reject)
	mux.HandleFunc("POST "+prefix+"/{id}/merge", h.Merge)
}

// RegisterCommunity mounts the community-scoped tag routes.
func (h *CatalogHandler) RegisterCommunity(mux *http.ServeMux) {
	mux.HandleFunc("POST /communities/{communityID}/tags", h.Create)
	mux.HandleFunc("GET /communities/{communityID}/tags/pending", h.Pending)
}

// optionalCommunity returns the {communityID} path value when the route has one.
func optionalCommunity(r *http.Request) (*uuid.UUID, error) {
	if r.PathValue("communityID") == "" {
		return nil, nil
	}
	id, err := pathUUID(r, "communityID")
	if err != nil {
		return nil, err
	}
	return &id, nil
}
