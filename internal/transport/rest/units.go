package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/internal/service/unit"
)

//go:generate moq -out unit_service_mock_test.go -pkg rest . unitService

type unitService interface {
	List(ctx context.Context) ([]domain.Unit, error)
	Create(ctx context.Context, input unit.CreateInput) (*domain.Unit, error)
	RemoveIfUnused(ctx context.Context, id uuid.UUID) error
}

// UnitHandler serves /admin/units.
type UnitHandler struct {
	svc unitService
	log *slog.Logger
}

// NewUnitHandler creates a UnitHandler.
func NewUnitHandler(svc unitService, logger *slog.Logger) *UnitHandler {
	return &UnitHandler{svc: svc, log: logger.With("handler", "units")}
}

type createUnitRequest struct {
	Name         string  `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

func (h *UnitHandler) list(w http.ResponseWriter, r *http.Request) {
	units, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := make([]unitResponse, len(units))
	for i, u := range units {
		resp[i] = toUnitResponse(u)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *UnitHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createUnitRequest
	if err := decode(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.svc.Create(r.Context(), unit.CreateInput{Name: req.Name, Abbreviation: req.Abbreviation})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUnitResponse(*u))
}

func (h *UnitHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.RemoveIfUnused(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register mounts the unit routes.
func (h *UnitHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/units", h.list)
	mux.HandleFunc("POST /admin/units", h.create)
	mux.HandleFunc("DELETE /admin/units/{id}", h.remove)
}
