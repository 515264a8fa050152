package main

import (
	"bondhu/internal/app"
	"bondhu/internal/config"
	"bondhu/internal/transport/rest"
	"bondhu/internal/transport/ws"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title Bondhu Personality API
// @version 1.0
// @description Big Five questionnaire scoring and LLM personality context
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to start:", err)
	}
	defer application.Close(context.Background())

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	defer wsHub.Close()
	log.Println("WebSocket hub started")

	// Inject broadcaster (wsHub implements service.Broadcaster)
	application.PersonalityService.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:        application.AuthService,
		PersonalityService: application.PersonalityService,
		Metrics:            application.Metrics,
		WSHub:              wsHub,
		CORS: rest.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
		},
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Server.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/personality/questions")
		log.Println("  POST /v1/personality/preview")
		log.Println("  POST /v1/personality/assessments")
		log.Println("  GET  /v1/personality/profile")
		log.Println("  GET  /v1/personality/context")
		log.Println("  GET  /v1/personality/history")
		log.Println("  WS   /v1/ws/profile")
		log.Println("  GET  /metrics")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
