// internal/httpserver/routes_solve.go
//
// Solve session endpoints: create a session against a hidden answer, step it
// one round at a time, snapshot it, and the stateless /suggest endpoint for
// assisting a game played elsewhere.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/liliblazquez/wordlesolver/internal/game"
	"github.com/liliblazquez/wordlesolver/internal/solver"
	"github.com/liliblazquez/wordlesolver/internal/store"
	"github.com/liliblazquez/wordlesolver/internal/words"
)

// newSolveReq/Res payloads for POST /solve/new.
type newSolveReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing/demo)
}
type newSolveRes struct {
	SessionID string `json:"sessionId"`
	Opening   string `json:"opening"`
	MaxRounds int    `json:"maxRounds"`
}

// handleNewSolve creates a solve session: a fresh run against a local game
// with a random (or caller-fixed) hidden answer.
func (s *Server) handleNewSolve(w http.ResponseWriter, r *http.Request) {
	var req newSolveReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	answer := strings.ToLower(strings.TrimSpace(req.Answer))
	if answer == "" {
		answer = words.RandomAnswer()
	} else if !words.IsAllowed(answer) {
		http.Error(w, `{"error":"answer not in word list"}`, http.StatusBadRequest)
		return
	}

	client := game.NewLocal(answer)
	sess := &store.Session{
		ID:     client.Game().ID,
		Run:    s.sv.NewRun(),
		Client: client,
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newSolveRes{
		SessionID: sess.ID,
		Opening:   sess.Run.Guess(),
		MaxRounds: s.sv.MaxRounds(),
	})
}

// stepReq/Res payloads for POST /solve/step.
type stepReq struct {
	SessionID string `json:"sessionId"`
}
type stepRes struct {
	Guess     string          `json:"guess"`
	Feedback  solver.Feedback `json:"feedback,omitempty"`
	State     solver.State    `json:"state"`
	Round     int             `json:"round"`
	Remaining int             `json:"remaining"`
	Answer    string          `json:"answer,omitempty"` // revealed once terminal
}

// handleSolveStep plays exactly one round of a session: submit the current
// guess to the local game, read its feedback, advance the run.
func (s *Server) handleSolveStep(w http.ResponseWriter, r *http.Request) {
	var req stepReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	run := sess.Run
	if run.State() != solver.StateGuessing {
		http.Error(w, `{"error":"session finished","state":"`+string(run.State())+`"}`, http.StatusConflict)
		return
	}

	guess := run.Guess()
	fb, err := stepOnce(r, sess, guess)
	if err != nil {
		// Collaborator fault or inconsistent feedback: terminal, not a crash.
		log.Warn().Err(err).Str("sessionId", sess.ID).Msg("solve step stuck")
	}

	res := stepRes{
		Guess:     guess,
		Feedback:  fb,
		State:     run.State(),
		Round:     run.Round(),
		Remaining: run.Remaining(),
	}
	if run.State() != solver.StateGuessing {
		res.Answer = sess.Client.Game().Answer
	}
	_ = json.NewEncoder(w).Encode(res)
}

// stepOnce submits one guess and folds the feedback into the run. Any
// failure marks the run stuck and is returned for logging.
func stepOnce(r *http.Request, sess *store.Session, guess string) (solver.Feedback, error) {
	run := sess.Run
	if err := sess.Client.Submit(r.Context(), guess); err != nil {
		run.MarkStuck()
		return "", err
	}
	fb, err := sess.Client.ObserveFeedback(r.Context(), run.Round())
	if err != nil {
		run.MarkStuck()
		return "", err
	}
	if err := run.Advance(fb); err != nil {
		run.MarkStuck()
		return fb, err
	}
	return fb, nil
}

// solveSnapshot is the GET /solve/{id} payload.
type solveSnapshot struct {
	SessionID string          `json:"sessionId"`
	State     solver.State    `json:"state"`
	Round     int             `json:"round"`
	Remaining int             `json:"remaining"`
	NextGuess string          `json:"nextGuess,omitempty"`
	History   []solver.Round  `json:"history"`
	Answer    string          `json:"answer,omitempty"`
}

// handleSolveGet snapshots a session. The hidden answer is only revealed
// once the session is terminal.
func (s *Server) handleSolveGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	run := sess.Run
	snap := solveSnapshot{
		SessionID: sess.ID,
		State:     run.State(),
		Round:     run.Round(),
		Remaining: run.Remaining(),
		History:   run.History(),
	}
	if run.State() == solver.StateGuessing {
		snap.NextGuess = run.Guess()
	} else {
		snap.Answer = sess.Client.Game().Answer
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// suggestReq/Res payloads for POST /suggest.
type suggestReq struct {
	History []struct {
		Guess    string          `json:"guess"`
		Feedback solver.Feedback `json:"feedback"`
	} `json:"history"`
}
type suggestRes struct {
	Guess     string       `json:"guess,omitempty"`
	State     solver.State `json:"state"`
	Remaining int          `json:"remaining"`
}

// handleSuggest replays a caller-supplied history (guesses they played in a
// real game, with the feedback it showed) and returns the next best guess.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	run := s.sv.NewRun()
	for _, step := range req.History {
		guess := strings.ToLower(strings.TrimSpace(step.Guess))
		if err := run.AdvanceGuess(guess, step.Feedback); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		if run.State() != solver.StateGuessing {
			break
		}
	}

	res := suggestRes{State: run.State(), Remaining: run.Remaining()}
	if run.State() == solver.StateGuessing {
		res.Guess = run.Guess()
	}
	_ = json.NewEncoder(w).Encode(res)
}
