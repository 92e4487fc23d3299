package main

import (
	"log"
	"os"

	"litoral-prime/internal/auth"
	"litoral-prime/internal/config"
	"litoral-prime/internal/database"
	"litoral-prime/internal/handlers"
	"litoral-prime/internal/listing"
	"litoral-prime/internal/mailer"
	"litoral-prime/internal/media"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.Database.Type, err)
	}
	defer db.Close()
	log.Printf("Connected to %s database", cfg.Database.Type)

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	hashed, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	if err := db.EnsureAdminUser(cfg.Auth.AdminUsername, hashed, cfg.Auth.ResetAdminPassword); err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}
	if err := db.EnsureHero(); err != nil {
		log.Fatalf("Failed to ensure hero row: %v", err)
	}

	store, err := media.NewStore(cfg.Uploads)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}
	log.Printf("Uploads stored in %s (served at %s)", cfg.Uploads.Dir, cfg.Uploads.PublicPrefix)

	sender := mailer.FromConfig(cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		log.Println("SMTP not configured; outbound mail disabled")
	}

	svc := listing.NewService(db, store, sender, cfg.SMTP.NotifyTo)
	tokens := auth.NewTokenManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL())

	r := handlers.NewRouter(cfg, db, svc, tokens)

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getConfigPath() string {
	// CONFIG_PATH is optional; defaults are usable for local development.
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}
