// internal/solver/feedback.go
//
// Feedback classification for a guess against a hypothetical answer.
// Defines:
//   - Feedback: per-position outcome code for one guess ("G"/"Y"/"." glyphs).
//   - Classify: the two-pass scoring algorithm.
//
// Notes:
//   - Classify is a pure function; its letter count table is local to one call.
//   - Inputs are assumed lowercase a–z of equal length (validated by the
//     words package / Solver construction).

package solver

import "strings"

// Per-position outcome glyphs.
const (
	MarkHit     byte = 'G' // correct letter, correct position
	MarkPresent byte = 'Y' // letter in answer, wrong position
	MarkMiss    byte = '.' // letter not (further) in answer
)

// Feedback is the outcome code for one guess against one answer: one glyph
// per letter position. Comparable for equality, usable as a map key.
type Feedback string

// Solved reports whether every position is a hit.
func (f Feedback) Solved() bool {
	for i := 0; i < len(f); i++ {
		if f[i] != MarkHit {
			return false
		}
	}
	return len(f) > 0
}

// Valid reports whether f is n glyphs long and drawn from {G, Y, .}.
func (f Feedback) Valid(n int) bool {
	if len(f) != n {
		return false
	}
	for i := 0; i < n; i++ {
		switch f[i] {
		case MarkHit, MarkPresent, MarkMiss:
		default:
			return false
		}
	}
	return true
}

// AllHit returns the all-correct code for word length n.
func AllHit(n int) Feedback {
	return Feedback(strings.Repeat(string(MarkHit), n))
}

// Classify scores guess against answer with the standard two-pass Wordle
// algorithm.
//
// Pass 1:
//   - Mark exact matches as hits.
//   - Count the remaining (non-hit) answer letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark present and decrement; otherwise mark miss.
//
// Consuming counts as letters are matched is what keeps repeated letters
// correct: a letter never yields more present/hit tags than its multiplicity
// in the answer.
func Classify(guess, answer string) Feedback {
	n := len(guess)
	out := make([]byte, n)

	// Letter frequency for the non-hit positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = MarkHit
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == MarkHit {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && counts[j] > 0 {
			out[i] = MarkPresent
			counts[j]--
		} else {
			out[i] = MarkMiss
		}
	}
	return Feedback(out)
}
