package main

import (
	"context"
	"log"
	"time"

	"github.com/RohitDev96/profile/config"
	"github.com/RohitDev96/profile/helpers"
	"github.com/RohitDev96/profile/routes"
	"github.com/RohitDev96/profile/services"
)

func main() {
	log.Println("Starting MindMetrics profile service...")

	cfg := config.Load()

	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Mongo disconnect: %v", err)
		}
	}()

	db := client.Database(cfg.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = services.EnsureCollections(ctx, db)
	cancel()
	if err != nil {
		log.Fatalf("Failed to bootstrap collections: %v", err)
	}

	if cfg.RequireAuth {
		helpers.SetJWTKey(cfg.JWTSecret)
	}

	r := routes.SetupRouter(routes.Dependencies{
		Config:      cfg,
		Profiles:    services.NewProfileService(db),
		Predictions: services.NewPredictionService(db),
	})

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
