package http

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"explorewithme/internal/delivery/http/controllers"
	"explorewithme/internal/delivery/http/middleware"
	"explorewithme/internal/domain"
)

// Controllers groups the handlers served by the main service.
type Controllers struct {
	Users          *controllers.UserController
	Categories     *controllers.CategoryController
	Events         *controllers.EventController
	Participations *controllers.ParticipationController
	Comments       *controllers.CommentController
	Compilations   *controllers.CompilationController
}

// RouterConfig carries the cross-cutting settings of the main router.
type RouterConfig struct {
	// Verifier guards /admin. Nil leaves the admin API open.
	Verifier       domain.TokenVerifier
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(logger *slog.Logger, cfg RouterConfig, c Controllers) http.Handler {
	mux := http.NewServeMux()

	requireAdmin := middleware.RequireRole(cfg.Verifier, domain.RoleAdmin, logger)
	admin := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, requireAdmin(h))
	}
	limit := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)
	public := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, limit(h))
	}

	// Admin API
	admin("POST /admin/users", c.Users.CreateUser)
	admin("GET /admin/users", c.Users.ListUsers)
	admin("DELETE /admin/users/{userId}", c.Users.DeleteUser)

	admin("POST /admin/categories", c.Categories.CreateCategory)
	admin("PATCH /admin/categories/{catId}", c.Categories.UpdateCategory)
	admin("DELETE /admin/categories/{catId}", c.Categories.DeleteCategory)

	admin("GET /admin/events", c.Events.SearchEventsAdmin)
	admin("PATCH /admin/events/{eventId}", c.Events.UpdateEventAdmin)

	admin("POST /admin/compilations", c.Compilations.CreateCompilation)
	admin("PATCH /admin/compilations/{compId}", c.Compilations.UpdateCompilation)
	admin("DELETE /admin/compilations/{compId}", c.Compilations.DeleteCompilation)

	admin("GET /admin/comments", c.Comments.SearchComments)
	admin("GET /admin/comments/{commentId}", c.Comments.GetCommentAdmin)
	admin("DELETE /admin/comments/{commentId}", c.Comments.DeleteCommentAdmin)

	// Private API
	mux.HandleFunc("POST /users/{userId}/events", c.Events.CreateEvent)
	mux.HandleFunc("GET /users/{userId}/events", c.Events.ListUserEvents)
	mux.HandleFunc("GET /users/{userId}/events/{eventId}", c.Events.GetUserEvent)
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}", c.Events.UpdateUserEvent)

	mux.HandleFunc("GET /users/{userId}/events/{eventId}/requests", c.Participations.ListEventRequests)
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}/requests", c.Participations.UpdateRequestStatuses)
	mux.HandleFunc("GET /users/{userId}/requests", c.Participations.ListUserRequests)
	mux.HandleFunc("POST /users/{userId}/requests", c.Participations.CreateRequest)
	mux.HandleFunc("PATCH /users/{userId}/requests/{requestId}/cancel", c.Participations.CancelRequest)

	mux.HandleFunc("POST /users/{userId}/events/{eventId}/comments", c.Comments.CreateComment)
	mux.HandleFunc("PATCH /users/{userId}/comments/{commentId}", c.Comments.UpdateComment)
	mux.HandleFunc("DELETE /users/{userId}/comments/{commentId}", c.Comments.DeleteComment)

	// Public API
	public("GET /categories", c.Categories.ListCategories)
	public("GET /categories/{catId}", c.Categories.GetCategory)
	public("GET /events", c.Events.SearchEvents)
	public("GET /events/{id}", c.Events.GetEvent)
	public("GET /events/{eventId}/comments", c.Comments.ListEventComments)
	public("GET /compilations", c.Compilations.ListCompilations)
	public("GET /compilations/{compId}", c.Compilations.GetCompilation)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return wrap(logger, cfg.AllowedOrigins, mux)
}

// NewStatsRouter initializes the router of the stats server.
func NewStatsRouter(logger *slog.Logger, stats *controllers.StatsController, rps float64, burst int) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /hit", middleware.RateLimit(rps, burst)(http.HandlerFunc(stats.SaveHit)))
	mux.HandleFunc("GET /stats", stats.GetStats)
	return wrap(logger, nil, mux)
}

// wrap applies the middleware shared by both servers. CORS runs first and Recoverer last.
func wrap(logger *slog.Logger, allowedOrigins []string, h http.Handler) http.Handler {
	h = chimw.Recoverer(h)
	h = middleware.LoggingMiddleware(logger, h)
	h = chimw.RealIP(h)
	h = chimw.RequestID(h)
	if len(allowedOrigins) > 0 {
		h = middleware.CORS(allowedOrigins, h)
	}
	return h
}
