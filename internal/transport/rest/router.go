package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Ingredients *CatalogHandler
	Tags        *CatalogHandler
	Units       *UnitHandler
	Members     *MemberHandler
	Audit       *AuditHandler
}

// NewRouter builds the API mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	h.Ingredients.Register(mux, "/admin/ingredients")
	h.Tags.Register(mux, "/admin/tags")
	h.Tags.RegisterCommunity(mux)
	h.Units.Register(mux)
	h.Members.Register(mux)
	mux.HandleFunc("GET /admin/audit", h.Audit.List)

	return mux
}
