package handler

import (
	"context"
	"time"

	"careerhub/internal/database"
	"careerhub/internal/infrastructure/cache"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health reports the process plus its two backing stores. The cache is
// best-effort so a missing Redis degrades the status without failing the
// endpoint.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "down"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "down"
	}

	data := fiber.Map{
		"database": dbStatus,
		"cache":    cacheStatus,
	}

	if dbStatus != "ok" {
		return response.Error(c, fiber.StatusServiceUnavailable, "Service unhealthy", data)
	}
	return response.Success(c, fiber.StatusOK, "Service healthy", data)
}
