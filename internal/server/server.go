// Package server implements the HTTP/JSON API for the medspeak relay.
//
// It exposes the translation and speech endpoints consumed by the clinician
// web UI. All errors cross this boundary as structured JSON bodies carrying
// a short machine-usable category and a human-readable message; nothing is
// thrown past it — mid-request panics degrade to a 500 response instead of
// crashing the process.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/kwanly/medspeak/internal/relay"
	"github.com/kwanly/medspeak/internal/speech"
	"github.com/kwanly/medspeak/internal/translate"
)

// maxBodyBytes bounds request bodies well above the relay's own text limits.
const maxBodyBytes = 1 << 20

// Server is the relay's HTTP API server.
type Server struct {
	port        int
	translator  translate.Translator
	synthesizer speech.Synthesizer
	server      *http.Server
}

// New creates a new API server wired to the given backends.
func New(port int, translator translate.Translator, synthesizer speech.Synthesizer) *Server {
	return &Server{port: port, translator: translator, synthesizer: synthesizer}
}

// Handler builds the full middleware-wrapped route set. Exposed so tests can
// drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/voices", s.handleVoices)
	mux.HandleFunc("POST /api/translate", s.handleTranslate)
	mux.HandleFunc("POST /api/audio", s.handleAudio)

	// Swagger UI — serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return recoverPanic(logRequests(mux))
}

// Listen starts the HTTP server. It blocks until the context is cancelled or
// the listener fails.
func (s *Server) Listen(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("api server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		slog.Info("api server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("api listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// --- Middleware ---

// statusWriter captures the response status for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request with a generated request id.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		slog.Info("request",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// recoverPanic converts a handler panic into a 500 response.
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("handler panic", "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, errorBody{
					Error:   "internal_error",
					Message: "internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// --- Response helpers ---

// errorBody is the wire shape of every relay error.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, relay.HTTPStatus(err), errorBody{
		Error:   string(relay.CategoryOf(err)),
		Message: relay.DetailOf(err),
	})
}
