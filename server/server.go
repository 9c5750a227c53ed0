// Package server exposes trip statistics and raw rows over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	bikeshare "github.com/theoremus-urban-solutions/bikeshare-explorer"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
)

// Server owns the HTTP listener.
type Server struct {
	httpServer *http.Server
}

// New builds a server listening on the configured port.
func New(cfg config.ServerConfig, analyzer *bikeshare.Analyzer) *Server {
	return &Server{httpServer: &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           SetupRouter(analyzer),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Printf("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Printf("server shut down successfully")
	return nil
}
