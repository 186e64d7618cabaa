// Command kmerfreq-server provides a REST API for k-mer frequency
// analysis.
//
// Usage:
//
//	kmerfreq-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/genomica-lab/kmerfreq/api/handlers"
	"github.com/genomica-lab/kmerfreq/api/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateHandler)
			r.Post("/composition", handlers.CompositionHandler)
		})

		r.Route("/kmer", func(r chi.Router) {
			r.Post("/count", handlers.CountHandler)
			r.Post("/top", handlers.TopHandler)
		})
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "kmerfreq API")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "POST /api/sequence/validate     {\"sequence\": \"atcgatcg\"}")
		fmt.Fprintln(w, "POST /api/sequence/composition  {\"sequence\": \"ATCGNATCG\"}")
		fmt.Fprintln(w, "POST /api/kmer/count            {\"sequence\": \"ATCGATCG\", \"k\": 2, \"sort\": \"frequency\"}")
		fmt.Fprintln(w, "POST /api/kmer/top              {\"sequence\": \"ATCGATCG\", \"k\": 2, \"n\": 3}")
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("kmerfreq API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
