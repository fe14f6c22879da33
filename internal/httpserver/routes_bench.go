// internal/httpserver/routes_bench.go
//
// Gated benchmark endpoints: trigger a run over the answer vocabulary and
// report the hardest words recorded so far. Both require an admin token and
// a configured database.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/liliblazquez/wordlesolver/internal/bench"
	"github.com/liliblazquez/wordlesolver/internal/words"
)

// benchRunReq payload for POST /bench/run.
type benchRunReq struct {
	Limit int `json:"limit"` // play only the first N answers; 0 = all
}

// handleBenchRun plays the solver over the answer vocabulary and records
// results. Synchronous; the route carries a wide timeout.
func (s *Server) handleBenchRun(w http.ResponseWriter, r *http.Request) {
	if s.bench == nil {
		http.Error(w, `{"error":"no database configured"}`, http.StatusServiceUnavailable)
		return
	}
	var req benchRunReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	answers := words.Answers()
	if req.Limit > 0 && req.Limit < len(answers) {
		answers = answers[:req.Limit]
	}

	sum, err := bench.Run(r.Context(), s.sv, answers, s.bench, false)
	if err != nil {
		log.Error().Err(err).Msg("benchmark run aborted")
		http.Error(w, `{"error":"run_aborted"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(sum)
}

// handleBenchHardest reports the words the solver struggled with most.
func (s *Server) handleBenchHardest(w http.ResponseWriter, r *http.Request) {
	if s.bench == nil {
		http.Error(w, `{"error":"no database configured"}`, http.StatusServiceUnavailable)
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	rows, err := s.bench.Hardest(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("hardest query")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []bench.HardRow{}
	}
	_ = json.NewEncoder(w).Encode(rows)
}
