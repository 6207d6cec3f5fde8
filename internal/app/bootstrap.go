package app

import (
	"context"
	"fmt"

	"careerhub/internal/config"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/delivery/http/routes"
	"careerhub/internal/delivery/http/routes/v1"
	"careerhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// App bundles the fiber instance with the container it was built from.
type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap loads infrastructure, starts the websocket hub and mounts every
// route. The returned App is ready to Listen.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, error) {
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	go c.Hub.Run()

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	deps := v1.Deps{
		Config: cfg,
		DB:     c.DB,
		JWT:    c.JWT,
		Cache:  c.Cache,
		AI:     c.AI,
		Pusher: ws.NewNotifier(c.Hub),
		Logger: c.Logger,
	}
	wsHandler := ws.NewHandler(c.Hub, c.JWT, c.Logger)
	routes.NewRegistry(deps, c.Cache, wsHandler).Register(f)

	return &App{Fiber: f, Container: c}, nil
}

// ListenAddr builds the bind address from config.
func ListenAddr(cfg config.Config) string {
	return fmt.Sprintf(":%s", cfg.App.HTTPPort)
}
