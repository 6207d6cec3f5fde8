package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"careerhub/internal/config"
	"careerhub/internal/database"
	dbpostgres "careerhub/internal/database/postgres"
	"careerhub/internal/infrastructure/ai"
	"careerhub/internal/infrastructure/cache"
	"careerhub/internal/pkg/jwt"
	"careerhub/internal/ws"
)

// Container owns the process-wide dependencies and their lifecycles.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	AI    *ai.Client
	JWT   jwt.Service
	Hub   *ws.Hub
}

func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		AI:     ai.NewClient(cfg.AI, logger),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
		Hub: ws.NewHub(logger),
	}
	return c, nil
}

func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && c.Logger != nil {
			c.Logger.Printf("DB close error | error=%v", err)
		}
	}
}
