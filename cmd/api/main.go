// Package main starts an HTTP server that provides endpoints for health
// checks and TextRank keyword ranking. It uses the internal handlers
// package to process incoming requests and return JSON responses.
package main

import (
	"log"
	"net/http"

	"github.com/jhrcook/textrank/cmd/api/middleware"
	"github.com/jhrcook/textrank/internal/config"
	"github.com/jhrcook/textrank/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/rank", handlers.RankHandler(cfg))

	handler := middleware.RequestID(middleware.Cors(cfg.CORSAllowedOrigin, mux))

	log.Printf("🚀 Server starting on %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, handler))
}
