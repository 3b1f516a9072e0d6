package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/student-council/goodness-api/internal/auth"
	"github.com/student-council/goodness-api/internal/config"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, authHandler *auth.AuthHandler, userHandler *UserHandler, announcementHandler *AnnouncementHandler, goodnessHandler *GoodnessHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(corsMiddleware)
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Student Council Goodness API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.TokenCookieName,
		},
	}
	api := humachi.New(r, humaConfig)

	withAuth := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}
	created := func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	}

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	huma.Post(api, "/api/auth/login", authHandler.HandleLogin)
	huma.Post(api, "/api/auth/signup", authHandler.HandleSignup, created)
	huma.Post(api, "/api/auth/logout", authHandler.HandleLogout, withAuth)
	huma.Get(api, "/api/auth/me", authHandler.HandleMe, withAuth)

	// Users (admin)
	huma.Get(api, "/api/users", userHandler.HandleList, withAuth)
	huma.Put(api, "/api/users/{id}", userHandler.HandleUpdate, withAuth)

	// Announcements (public read, admin write)
	huma.Get(api, "/api/announcements", announcementHandler.HandleList)
	huma.Post(api, "/api/announcements", announcementHandler.HandleCreate, withAuth, created)
	huma.Put(api, "/api/announcements/{id}", announcementHandler.HandleUpdate, withAuth)
	huma.Delete(api, "/api/announcements/{id}", announcementHandler.HandleDelete, withAuth, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusNoContent
	})

	// Goodness records
	huma.Get(api, "/api/goodness", goodnessHandler.HandleList, withAuth)
	huma.Post(api, "/api/goodness", goodnessHandler.HandleCreate, withAuth, created)
	huma.Patch(api, "/api/goodness/{id}/review", goodnessHandler.HandleReview, withAuth)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Cookie")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
