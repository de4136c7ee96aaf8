package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forkful/forkful-backend/config"
	"github.com/forkful/forkful-backend/internal/database"
	"github.com/forkful/forkful-backend/internal/server"
	"github.com/forkful/forkful-backend/internal/service"
	"github.com/forkful/forkful-backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	// Redis only backs rate limiting; run without it if unavailable.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: failed to connect to Redis, rate limiting disabled: %v", err)
		redisClient = nil
	}

	// S3 only backs image uploads; run without it if unconfigured.
	var imageService service.IImageService
	if s3Config, err := config.NewS3Config(ctx, cfg); err != nil {
		log.Printf("Warning: S3 not configured, image uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	srv := server.New(cfg, store.NewMongo(client.Database(cfg.MongoDB)), redisClient, imageService)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s...", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
