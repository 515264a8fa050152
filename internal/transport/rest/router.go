package rest

import (
	"bondhu/internal/metrics"
	"bondhu/internal/service"
	"bondhu/internal/transport/rest/handler"
	"bondhu/internal/transport/rest/middleware"
	"bondhu/internal/transport/ws"
	"net/http"

	"github.com/gorilla/mux"
)

// CORSConfig holds the CORS response headers
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	PersonalityService *service.PersonalityService
	Metrics            *metrics.Collector
	WSHub              *ws.Hub
	CORS               CORSConfig
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	personalityHandler := handler.NewPersonalityHandler(c.PersonalityService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	if c.Metrics != nil {
		r.Handle("/metrics", c.Metrics.Handler()).Methods("GET")
	}

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/personality/questions", personalityHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/personality/preview", personalityHandler.Preview).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	if c.WSHub != nil {
		wsHandler := ws.NewHandler(c.WSHub, c.AuthService)
		v1.HandleFunc("/ws/profile", wsHandler.ProfileWS).Methods("GET")
	}

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/personality/assessments", personalityHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/personality/profile", personalityHandler.Profile).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/personality/context", personalityHandler.Context).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/personality/history", personalityHandler.History).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg CORSConfig) mux.MiddlewareFunc {
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}
	if cfg.AllowedMethods == "" {
		cfg.AllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	}
	if cfg.AllowedHeaders == "" {
		cfg.AllowedHeaders = "Content-Type, Authorization"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
