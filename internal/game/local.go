// internal/game/local.go
//
// Local implements solver.Client against an in-process Game: submitted
// guesses are scored immediately and feedback is read back by round index.
// This is the deterministic replacement for driving a real browser board,
// and the collaborator used by play mode, the HTTP solve sessions, and the
// benchmark runner.

package game

import (
	"context"
	"fmt"

	"github.com/liliblazquez/wordlesolver/internal/solver"
)

// Local adapts a Game to the solver.Client interface.
type Local struct {
	g *Game
}

// NewLocal starts a fresh game with the given hidden answer and wraps it.
func NewLocal(answer string) *Local {
	return &Local{g: New(answer)}
}

// Game exposes the underlying game state (for snapshots).
func (l *Local) Game() *Game { return l.g }

// Submit scores the guess against the hidden answer.
func (l *Local) Submit(ctx context.Context, guess string) error {
	_, _, err := l.g.ApplyGuess(guess)
	return err
}

// ObserveFeedback returns the feedback recorded for the given round, or an
// error if no such round was played.
func (l *Local) ObserveFeedback(ctx context.Context, round int) (solver.Feedback, error) {
	if round < 0 || round >= len(l.g.Feedbacks) {
		return "", fmt.Errorf("no feedback for round %d", round)
	}
	return l.g.Feedbacks[round], nil
}
