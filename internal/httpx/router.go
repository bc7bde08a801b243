package httpx

import (
	"net/http"
	"time"

	"trackline-be/internal/logger"
	"trackline-be/internal/metrics"
	appmw "trackline-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Gate    *appmw.Gate
	Devices *DeviceHandler
	Orders  *OrderHandler
	Users   *UserHandler
	Assets  *AssetHandler
	Access  *AccessHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(appmw.AuthMiddleware)
	r.Use(appmw.RateLimitMiddleware)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":       "ok",
			"requests":     metrics.Requests.Load(),
			"serverErrors": metrics.ServerErrors.Load(),
			"throttled":    metrics.Throttled.Load(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/public", func(r chi.Router) {
			r.Get("/devices", deps.Devices.List)
			r.Post("/order-access", deps.Access.Verify)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(deps.Gate.RequireAuth).Post("/sync", deps.Users.Sync)
			r.With(deps.Gate.RequireAuth).Post("/link-order", deps.Users.LinkOrder)

			r.Group(func(r chi.Router) {
				r.Use(deps.Gate.RequireAdmin)
				r.Get("/", deps.Users.List)
				r.Put("/{id}/role", deps.Users.UpdateRole)
			})
		})

		r.Route("/devices", func(r chi.Router) {
			r.Use(deps.Gate.RequireAdmin)
			r.Get("/", deps.Devices.List)
			r.Post("/", deps.Devices.Create)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(deps.Gate.RequireAdmin)
			r.Get("/", deps.Orders.List)
			r.Post("/", deps.Orders.Create)
			r.Put("/{id}", deps.Orders.Update)
			r.Post("/{id}/events", deps.Orders.AddEvent)
		})

		r.Route("/assets", func(r chi.Router) {
			r.Use(deps.Gate.RequireAdmin)
			r.Post("/upload", deps.Assets.Upload)
			r.Get("/", deps.Assets.List)
			r.Delete("/{id}", deps.Assets.Delete)
		})
	})

	return r
}
