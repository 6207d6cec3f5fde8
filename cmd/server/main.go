package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerhub/internal/app"
	"careerhub/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error | error=%v", err)
	}

	ctx := context.Background()
	application, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error | error=%v", err)
	}
	defer application.Container.Close()

	addr := app.ListenAddr(cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error | error=%v", err)
		}
	case sig := <-quit:
		log.Printf("shutdown signal received | signal=%s", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown error | error=%v", err)
	}
}
