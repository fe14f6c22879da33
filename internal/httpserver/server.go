// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solve session endpoints: POST /solve/new, POST /solve/step,
//     GET /solve/{id}, POST /suggest (routes_solve.go).
//   - Token issuance and gated benchmark endpoints (auth.go, routes_bench.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Solve sessions live in an in-memory store and die with the process.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/liliblazquez/wordlesolver/internal/bench"
	"github.com/liliblazquez/wordlesolver/internal/solver"
	"github.com/liliblazquez/wordlesolver/internal/store"
	"github.com/liliblazquez/wordlesolver/internal/words"
)

// Server bundles router, solver, session store, and benchmark store.
type Server struct {
	r      *chi.Mux
	sv     *solver.Solver
	store  store.Store
	bench  *bench.Store // nil when no database is configured
	pwHash []byte       // bcrypt hash of the admin password
}

// New constructs a Server, installs middleware, and registers routes.
// benchStore may be nil; the benchmark endpoints then report 503.
func New(sv *solver.Solver, st store.Store, benchStore *bench.Store) *Server {
	s := &Server{r: chi.NewRouter(), sv: sv, store: st, bench: benchStore}
	s.pwHash = adminHash()

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(jsonContentType) // default JSON responses
	s.r.Use(corsFromEnv)     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"wordlesolver","endpoints":["/health","POST /solve/new","POST /solve/step","GET /solve/{id}","POST /suggest","POST /auth/token","POST /bench/run","GET /bench/hardest"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/debug/words", func(w http.ResponseWriter, req *http.Request) {
			a, g := words.Stats()
			_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
		})

		// Solve sessions + stateless suggestions
		r.Post("/solve/new", s.handleNewSolve)
		r.Post("/solve/step", s.handleSolveStep)
		r.Get("/solve/{id}", s.handleSolveGet)
		r.Post("/suggest", s.handleSuggest)

		// Token issuance
		r.Post("/auth/token", s.handleToken)

		// Gated benchmark report
		r.With(s.requireAuth()).Get("/bench/hardest", s.handleBenchHardest)
	})

	// Benchmark trigger gets a wide timeout; a full-vocabulary run is slow.
	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(5 * time.Minute))
		r.With(s.requireAuth()).Post("/bench/run", s.handleBenchRun)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+req.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
