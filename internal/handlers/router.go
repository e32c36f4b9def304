package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ukydev/garage-service/internal/middleware"
	"github.com/ukydev/garage-service/internal/models"
)

// NewRouter wires the role-gated HTTP surface. Login, health and metrics
// are public; everything else requires a valid bearer token, with admins
// passing every role gate.
func NewRouter(authMW *middleware.AuthMiddleware, rateMW *middleware.RateLimitMiddleware, authH *AuthHandler, jobH *JobHandler, partsH *PartsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.With(rateMW.RateLimit(10, 60)).Post("/api/auth/login", authH.Login)

	r.Group(func(pr chi.Router) {
		pr.Use(authMW.Authenticate)

		// customer surface
		pr.With(authMW.RequireRole(models.RoleCustomer)).Post("/api/jobs", jobH.Create)
		pr.With(authMW.RequireRole(models.RoleCustomer)).Get("/api/jobs/mine", jobH.Mine)

		// mechanic surface
		pr.With(authMW.RequireRole(models.RoleMechanic)).Get("/api/jobs/assigned", jobH.Assigned)
		pr.With(authMW.RequireRole(models.RoleMechanic)).Put("/api/jobs/{jobID}/status", jobH.UpdateStatus)
		pr.With(authMW.RequireRole(models.RoleMechanic)).Post("/api/jobs/{jobID}/parts", jobH.LogPart)
		pr.With(authMW.RequireRole(models.RoleMechanic)).Get("/api/parts", partsH.List)

		// admin surface
		pr.With(authMW.RequireRole(models.RoleAdmin)).Get("/api/admin/dashboard", jobH.Dashboard)
		pr.With(authMW.RequireRole(models.RoleAdmin)).Put("/api/jobs/{jobID}/assign", jobH.Assign)
		pr.With(authMW.RequireRole(models.RoleAdmin)).Post("/api/auth/register", authH.Register)
	})

	return r
}
