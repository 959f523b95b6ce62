package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/idea-box/internal/activity"
	"github.com/frahmantamala/idea-box/internal/admin"
	"github.com/frahmantamala/idea-box/internal/auth"
	"github.com/frahmantamala/idea-box/internal/category"
	"github.com/frahmantamala/idea-box/internal/comment"
	"github.com/frahmantamala/idea-box/internal/dashboard"
	"github.com/frahmantamala/idea-box/internal/idea"
	"github.com/frahmantamala/idea-box/internal/transport/middleware"
	"github.com/frahmantamala/idea-box/internal/transport/swagger"
	"github.com/frahmantamala/idea-box/internal/user"
	"github.com/frahmantamala/idea-box/internal/vote"
	"github.com/go-chi/chi/v5"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	User      *user.Handler
	Idea      *idea.Handler
	Vote      *vote.Handler
	Comment   *comment.Handler
	Activity  *activity.Handler
	Dashboard *dashboard.Handler
	Admin     *admin.Handler
	Category  *category.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
		})

		// Public reads: listings, single ideas, votes, comments, categories
		r.Get("/idea", h.Idea.ListIdeas)
		r.Get("/idea/{id}", h.Idea.GetIdea)
		r.Get("/vote/{ideaId}", h.Vote.ListVotes)
		r.Get("/vote/{ideaId}/count", h.Vote.GetVoteCounts)
		r.Get("/comment/{ideaId}", h.Comment.ListComments)
		r.Get("/categories", h.Category.ListCategories)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)
			pr.Get("/users/{id}/activity", h.User.GetUserActivity)

			pr.Post("/idea", h.Idea.CreateIdea)
			pr.Patch("/idea/{id}", h.Idea.UpdateIdea)
			pr.Delete("/idea/{id}", h.Idea.DeleteIdea)

			pr.Post("/vote/{ideaId}", h.Vote.CastVote)
			pr.Get("/vote/{ideaId}/user", h.Vote.GetUserVote)

			pr.Post("/comment/{ideaId}", h.Comment.CreateComment)

			pr.Get("/dashboard/progress", h.Dashboard.GetProgress)
			pr.Get("/dashboard/metrics", h.Dashboard.GetMetrics)

			// Admin routes: status transitions, activity feed, panel listings
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireAdmin)

				ar.Patch("/idea/{id}/approve", h.Idea.ApproveIdea)
				ar.Patch("/idea/{id}/reject", h.Idea.RejectIdea)
				ar.Patch("/idea/{id}/implemented", h.Idea.MarkImplemented)

				ar.Route("/admin", func(am chi.Router) {
					am.Get("/activity", h.Activity.RecentActivity)
					am.Get("/activity/user/{userId}", h.Activity.ActivityByUser)
					am.Get("/activity/idea/{ideaId}", h.Activity.ActivityByIdea)
					am.Get("/activity/type/{type}", h.Activity.ActivityByType)

					am.Get("/ideas", h.Admin.ListIdeas)
					am.Get("/votes", h.Admin.ListVotes)
					am.Get("/comments", h.Admin.ListComments)
					am.Get("/users", h.Admin.ListUsers)
					am.Get("/counts", h.Admin.GetCounts)
					am.Get("/stats", h.Admin.GetStats)
				})
			})
		})
	})
}
