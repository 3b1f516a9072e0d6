package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/student-council/goodness-api/internal/auth"
	"github.com/student-council/goodness-api/internal/config"
	"github.com/student-council/goodness-api/internal/database"
	"github.com/student-council/goodness-api/internal/handlers"
	"github.com/student-council/goodness-api/internal/notifier"
	"github.com/student-council/goodness-api/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)
	if err := database.Seed(db, cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	st := store.New(db)

	// Initialize Notifier
	var councilNotifier notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordAnnouncementsChannelID)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		councilNotifier = discordNotifier
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, st)
	userHandler := handlers.NewUserHandler(st, authHandler)
	announcementHandler := handlers.NewAnnouncementHandler(st, authHandler, councilNotifier)
	goodnessHandler := handlers.NewGoodnessHandler(st, authHandler, councilNotifier)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, userHandler, announcementHandler, goodnessHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
