// Package middleware provides HTTP middleware for the kmerfreq API.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: request id, method, path, status
// and duration. It expects chi's RequestID middleware to run first.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		reqID := chimiddleware.GetReqID(r.Context())
		log.Printf("[%s] %s %s %d %s", reqID, r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
