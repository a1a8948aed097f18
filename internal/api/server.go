// Package api exposes the match engine over HTTP. It is deliberately thin:
// parameter parsing and validation live here, everything else is delegated
// to the services.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Server struct {
	httpServer *http.Server
	limiter    *rate.Limiter
}

func NewServer(port int, handlers *Handlers) *Server {

	s := &Server{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /talents/{id}/matches", handlers.GetMatches)
	mux.HandleFunc("POST /jobs", handlers.AddJob)
	mux.HandleFunc("POST /talents", handlers.AddTalent)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.rateLimit(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) SetRateLimit(maxRequestsPerSecond float32) {
	s.limiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), int(maxRequestsPerSecond)+1)
}

func (s *Server) Run() {
	log.Infof("api server listening on %v", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("api server failed: %v", err)
	}
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
