package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Entity   *EntityHandler
	Comment  *CommentHandler
	FollowUp *FollowUpHandler
	Stats    *StatsHandler
	Me       *MeHandler
}

// NewRouter registers all routes. Literal segments take precedence over
// {module}, so /api/comments and /api/me never reach the entity engine.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/me", h.Me.Me)
	mux.HandleFunc("GET /api/stats/opportunities", h.Stats.Opportunities)

	mux.HandleFunc("GET /api/comments/{entityType}/{entityId}", h.Comment.List)
	mux.HandleFunc("POST /api/comments", h.Comment.Post)

	mux.HandleFunc("GET /api/follow-ups/{entityType}/{entityId}", h.FollowUp.List)
	mux.HandleFunc("POST /api/follow-ups", h.FollowUp.Post)

	mux.HandleFunc("GET /api/{module}", h.Entity.List)
	mux.HandleFunc("POST /api/{module}", h.Entity.Create)
	mux.HandleFunc("GET /api/{module}/{id}", h.Entity.Get)
	mux.HandleFunc("PUT /api/{module}/{id}", h.Entity.Update)
	mux.HandleFunc("DELETE /api/{module}/{id}", h.Entity.Delete)
	mux.HandleFunc("POST /api/{module}/{id}/restore", h.Entity.Restore)

	return mux
}
