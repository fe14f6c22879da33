// internal/game/types.go
//
// Core type definitions for the local game engine.
// The engine is the in-process stand-in for a real Wordle board: it holds a
// hidden answer and scores submitted guesses. The solver drives it through
// the Local client in local.go.

package game

import "github.com/liliblazquez/wordlesolver/internal/solver"

// Game holds the state of a single hidden-answer game session.
type Game struct {
	ID        string            // Unique game identifier (random hex string).
	Answer    string            // The hidden solution word (always lowercase).
	Rows      int               // Maximum number of guesses allowed (typically 6).
	Cols      int               // Number of letters per word.
	Guesses   []string          // Guesses made so far (lowercased).
	Feedbacks []solver.Feedback // Feedback per guess, parallel to Guesses.
	Finished  bool              // True once the game is over (won or lost).
	Won       bool              // True if the game finished with a win.
}
