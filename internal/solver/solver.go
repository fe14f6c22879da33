// internal/solver/solver.go
//
// Game loop for one solving session.
// Responsibilities:
//   - Validate the vocabularies once at construction (fixed length,
//     answers ⊆ allowed) — violations are configuration errors.
//   - Drive rounds: propose a guess, fold feedback into constraint state,
//     narrow the candidate set, recompute the legal pool, select the next
//     guess by entropy.
//   - Terminal states: solved, exhausted (round cap), stuck (no legal
//     guesses left, or feedback unobtainable/inconsistent).
//
// The Run type exposes the loop stepwise (used by the HTTP solve sessions
// and the assist mode); Play drives a full game against a Client.

package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	defaultMaxRounds = 6
	defaultOpening   = "grain" // precomputed high-entropy seed
)

// State is the game loop state. A fresh Run is guessing; the other three
// states are terminal.
type State string

const (
	StateGuessing  State = "guessing"
	StateSolved    State = "solved"
	StateExhausted State = "exhausted"
	StateStuck     State = "stuck"
)

// Client is the external collaborator that carries guesses to a real game
// and reads its feedback. Implementations: game.Local (in-memory engine),
// the stdin prompt in assist mode, or anything driving a real board.
type Client interface {
	// Submit delivers a guess to the game.
	Submit(ctx context.Context, guess string) error

	// ObserveFeedback returns the feedback for the guess submitted at the
	// given round index. Any error means feedback could not be obtained and
	// ends the game as stuck.
	ObserveFeedback(ctx context.Context, round int) (Feedback, error)
}

var (
	// ErrRunFinished is returned by Advance on a run already in a terminal state.
	ErrRunFinished = errors.New("solver: run already finished")

	// ErrBadFeedback is returned by Advance for feedback of the wrong length
	// or with glyphs outside {G, Y, .}. The run stays in its current state so
	// an interactive caller can retry with corrected input.
	ErrBadFeedback = errors.New("solver: malformed feedback code")
)

// Solver holds the two read-only vocabularies and tuning. Safe to share
// across concurrent games; all mutable per-game state lives in a Run.
type Solver struct {
	answers   []string
	allowed   []string
	length    int
	maxRounds int
	opening   string
}

// Option tunes a Solver at construction.
type Option func(*Solver)

// WithMaxRounds overrides the round cap (default 6).
func WithMaxRounds(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

// WithOpening overrides the fixed opening guess. Must be in the allowed
// vocabulary; New rejects it otherwise.
func WithOpening(w string) Option {
	return func(s *Solver) { s.opening = w }
}

// New validates the vocabularies and builds a Solver.
//
// Startup preconditions (configuration errors, never runtime ones):
//   - both lists non-empty, every word the same fixed length;
//   - answers must be a subset of allowed.
//
// The opening guess defaults to "grain" when the allowed list contains it;
// otherwise it is computed once by entropy over the full vocabularies.
func New(answers, allowed []string, opts ...Option) (*Solver, error) {
	if len(answers) == 0 || len(allowed) == 0 {
		return nil, errors.New("solver: empty vocabulary")
	}
	s := &Solver{
		answers:   answers,
		allowed:   allowed,
		length:    len(answers[0]),
		maxRounds: defaultMaxRounds,
	}
	for _, w := range answers {
		if len(w) != s.length {
			return nil, fmt.Errorf("solver: answer %q is not %d letters", w, s.length)
		}
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, w := range allowed {
		if len(w) != s.length {
			return nil, fmt.Errorf("solver: guess %q is not %d letters", w, s.length)
		}
		allowedSet[w] = struct{}{}
	}
	for _, w := range answers {
		if _, ok := allowedSet[w]; !ok {
			return nil, fmt.Errorf("solver: answer %q missing from allowed guesses", w)
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.opening != "":
		if _, ok := allowedSet[s.opening]; !ok {
			return nil, fmt.Errorf("solver: opening guess %q not in allowed guesses", s.opening)
		}
	default:
		if _, ok := allowedSet[defaultOpening]; ok && s.length == len(defaultOpening) {
			s.opening = defaultOpening
		} else {
			s.opening = Select(s.allowed, s.answers)
		}
	}
	return s, nil
}

// Length returns the fixed word length.
func (s *Solver) Length() int { return s.length }

// MaxRounds returns the round cap.
func (s *Solver) MaxRounds() int { return s.maxRounds }

// Opening returns the fixed first guess.
func (s *Solver) Opening() string { return s.opening }

// Round records one completed round of a run.
type Round struct {
	Guess     string   `json:"guess"`
	Feedback  Feedback `json:"feedback"`
	Remaining int      `json:"remaining"` // candidates left after narrowing
}

// Result summarizes a finished (or abandoned) run.
type Result struct {
	Outcome State   `json:"outcome"`
	Rounds  int     `json:"rounds"`
	History []Round `json:"history"`
}

// Run is the per-game state machine. Not safe for concurrent use; each game
// owns exactly one Run, discarded when the game ends.
type Run struct {
	s          *Solver
	cons       *Constraints
	candidates []string
	guess      string
	round      int
	state      State
	history    []Round
}

// NewRun starts a game seeded with the opening guess and the full answer
// list as candidates.
func (s *Solver) NewRun() *Run {
	return &Run{
		s:          s,
		cons:       NewConstraints(),
		candidates: append([]string(nil), s.answers...),
		guess:      s.opening,
		state:      StateGuessing,
	}
}

// State returns the current loop state.
func (r *Run) State() State { return r.state }

// Round returns the number of completed rounds.
func (r *Run) Round() int { return r.round }

// Guess returns the guess the solver proposes for the current round.
func (r *Run) Guess() string { return r.guess }

// Remaining returns the current candidate count.
func (r *Run) Remaining() int { return len(r.candidates) }

// Candidates returns a copy of the current candidate set.
func (r *Run) Candidates() []string { return append([]string(nil), r.candidates...) }

// History returns the completed rounds so far.
func (r *Run) History() []Round { return r.history }

// Result snapshots the run.
func (r *Run) Result() *Result {
	return &Result{
		Outcome: r.state,
		Rounds:  r.round,
		History: append([]Round(nil), r.history...),
	}
}

// MarkStuck forces the stuck terminal state; used when the external
// collaborator fails to deliver feedback.
func (r *Run) MarkStuck() {
	if r.state == StateGuessing {
		r.state = StateStuck
	}
}

// Advance applies feedback for the solver's own current guess.
func (r *Run) Advance(fb Feedback) error {
	return r.AdvanceGuess(r.guess, fb)
}

// AdvanceGuess applies feedback for an arbitrary guess — the assist paths
// accept guesses the user played on their own, which need not come from the
// solver's pool. One call completes one round of the loop.
func (r *Run) AdvanceGuess(guess string, fb Feedback) error {
	if r.state != StateGuessing {
		return ErrRunFinished
	}
	if len(guess) != r.s.length || !fb.Valid(r.s.length) {
		return ErrBadFeedback
	}

	if err := r.cons.Observe(guess, fb); err != nil {
		r.state = StateStuck
		return err
	}
	r.candidates = Filter(r.candidates, guess, fb)
	r.round++
	r.history = append(r.history, Round{Guess: guess, Feedback: fb, Remaining: len(r.candidates)})

	if fb.Solved() {
		r.state = StateSolved
		return nil
	}
	if r.round >= r.s.maxRounds {
		r.state = StateExhausted
		return nil
	}

	pool := r.cons.Pool(r.s.allowed)
	if len(pool) == 0 {
		r.state = StateStuck
		return nil
	}
	r.guess = Select(pool, r.candidates)
	return nil
}

// Play drives a full game against client, up to the round cap. It returns
// the result for every terminal state; the error is non-nil only for
// collaborator faults or inconsistent feedback, and in those cases the
// result outcome is stuck.
func (s *Solver) Play(ctx context.Context, client Client) (*Result, error) {
	r := s.NewRun()
	for r.state == StateGuessing {
		guess := r.guess
		if err := client.Submit(ctx, guess); err != nil {
			r.MarkStuck()
			return r.Result(), fmt.Errorf("submit %q: %w", guess, err)
		}
		fb, err := client.ObserveFeedback(ctx, r.round)
		if err != nil {
			r.MarkStuck()
			return r.Result(), fmt.Errorf("observe feedback for round %d: %w", r.round, err)
		}
		if err := r.Advance(fb); err != nil {
			r.MarkStuck()
			return r.Result(), err
		}
		log.Debug().
			Int("round", r.round).
			Str("guess", guess).
			Str("feedback", string(fb)).
			Int("remaining", r.Remaining()).
			Msg("round played")
	}
	return r.Result(), nil
}
