package main

import (
	"log"
	"net/http"

	"AniSong/config"
	"AniSong/database"
	"AniSong/handlers"
	"AniSong/logger"
	"AniSong/middleware"
	"AniSong/services"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.DatabaseDriver); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedRoles(db); err != nil {
		log.Fatal("Failed to seed roles:", err)
	}
	if err := database.SeedAdminUser(db, cfg); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	sessions := services.NewSessionManager(cfg)
	identity := services.NewIdentityService(db)
	catalog := services.NewCatalogService(db)
	requests := services.NewRequestService(db, catalog)

	h, err := handlers.New(sessions, identity, catalog, requests)
	if err != nil {
		log.Fatal("Failed to build handlers:", err)
	}

	auth := &middleware.Auth{Sessions: sessions, Identity: identity}
	r := h.Routes(auth)

	addr := ":" + cfg.ServerPort
	log.Printf("AniSong is starting on %s", addr)
	log.Printf("Environment: %s", cfg.Environment)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
