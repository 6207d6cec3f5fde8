package routes

import (
	"careerhub/internal/delivery/http/handler"
	"careerhub/internal/delivery/http/routes/v1"
	"careerhub/internal/infrastructure/cache"
	"careerhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry mounts every HTTP surface the server exposes: health, the
// versioned REST API and the notification websocket.
type Registry struct {
	deps  v1.Deps
	cache *cache.Redis
	wsh   *ws.Handler
}

func NewRegistry(deps v1.Deps, cache *cache.Redis, wsHandler *ws.Handler) *Registry {
	return &Registry{deps: deps, cache: cache, wsh: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	h := handler.NewHealthHandler(r.deps.DB, r.cache)
	app.Get("/health", h.Health)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.wsh == nil {
		return
	}
	app.Get("/ws/notifications", r.wsh.HandleNotificationsWS)
}
