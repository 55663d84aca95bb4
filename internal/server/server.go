// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-optimizer/internal/extract"
	"github.com/jonathan/resume-optimizer/internal/optimize"
	"github.com/jonathan/resume-optimizer/internal/staging"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       *staging.Store
	optimizer   optimize.Client
	extractText func(path, fileType string) (string, error)
	maxUpload   int64
	cleanupAge  time.Duration
}

// Config holds server configuration.
type Config struct {
	Port        int
	UploadDir   string
	OutputDir   string
	MaxUploadMB int64
	CleanupMins int
}

// New creates a new server instance around the given optimization client.
func New(cfg Config, optimizer optimize.Client) (*Server, error) {
	store, err := staging.New(cfg.UploadDir, cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging store: %w", err)
	}

	s := &Server{
		store:       store,
		optimizer:   optimizer,
		extractText: extract.Text,
		maxUpload:   cfg.MaxUploadMB << 20,
		cleanupAge:  time.Duration(cfg.CleanupMins) * time.Minute,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/optimize", s.handleOptimize)
	mux.HandleFunc("GET /api/download/{filename}", s.handleDownload)
	mux.HandleFunc("POST /api/cleanup", s.handleCleanup)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.withCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then drains connections.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the frontend.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// errorResponse writes a JSON error body.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
