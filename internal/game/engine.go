// internal/game/engine.go
//
// Local game engine for a single hidden-answer session.
// Responsibilities:
//   - Create new games with deterministic dimensions (rows × answer length).
//   - Validate and score guesses (length, alphabetic) via solver.Classify.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Vocabulary membership is not checked here; the solver only submits
//     words from its own pool, and the HTTP layer validates user input.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/liliblazquez/wordlesolver/internal/solver"
)

const defaultRows = 6

// New constructs a game around the given hidden answer. The column count
// follows the answer's length.
func New(answer string) *Game {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return &Game{
		ID:      randomID(),
		Answer:  answer,
		Rows:    defaultRows,
		Cols:    len(answer),
		Guesses: []string{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback code and the new state string ("playing"/"won"/"lost").
//
// State transitions:
//   - If every position is a hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (solver.Feedback, string, error) {
	if g.Finished {
		return "", g.State(), errors.New("game finished")
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return "", g.State(), errors.New("invalid guess")
	}

	fb := solver.Classify(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)
	g.Feedbacks = append(g.Feedbacks, fb)

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
