// internal/solver/constraints.go
//
// Hard-mode constraint state and legality checks.
// Responsibilities:
//   - Accumulate confirmed positions (greens) and forbidden letter positions
//     (yellows) from observed feedback, plus the set of guesses already tried.
//   - Decide whether a prospective guess is legal under hard-mode rules.
//   - Recompute the legal guess pool for a round.
//
// All three structures grow monotonically within one game and are owned by a
// single Run; nothing here is shared across games.

package solver

import (
	"errors"
	"strings"
)

// ErrInconsistentFeedback is returned by Observe when feedback re-reports a
// confirmed position with a different letter or a non-hit mark. A confirmed
// position can only ever be confirmed again.
var ErrInconsistentFeedback = errors.New("solver: feedback contradicts a confirmed position")

// Constraints holds the accumulated hard-mode state for one game.
type Constraints struct {
	Greens  map[int]byte              // position → confirmed letter
	Yellows map[byte]map[int]struct{} // letter → positions it must not occupy
	Tried   map[string]struct{}       // guesses already submitted
}

// NewConstraints returns empty constraint state for a fresh game.
func NewConstraints() *Constraints {
	return &Constraints{
		Greens:  make(map[int]byte),
		Yellows: make(map[byte]map[int]struct{}),
		Tried:   make(map[string]struct{}),
	}
}

// Observe folds one round of feedback into the constraint state and records
// the guess as tried.
//
// Hits confirm positions; presents forbid their letter at that position.
// Miss marks add nothing here: a miss on a repeated letter only means "no
// further copies", which the candidate filter already accounts for exactly.
// A hit does not forbid its letter elsewhere either — the reference ruleset
// tracks forbidden positions for present marks only.
func (c *Constraints) Observe(guess string, fb Feedback) error {
	for i := 0; i < len(fb); i++ {
		// Once confirmed, a position must keep confirming the same letter.
		if ch, ok := c.Greens[i]; ok && (fb[i] != MarkHit || guess[i] != ch) {
			return ErrInconsistentFeedback
		}
		switch fb[i] {
		case MarkHit:
			c.Greens[i] = guess[i]
		case MarkPresent:
			set, ok := c.Yellows[guess[i]]
			if !ok {
				set = make(map[int]struct{})
				c.Yellows[guess[i]] = set
			}
			set[i] = struct{}{}
		}
	}
	c.Tried[guess] = struct{}{}
	return nil
}

// Allows reports whether guess is legal under hard-mode rules:
//   - every confirmed position must hold its confirmed letter;
//   - every discovered letter must appear somewhere in the guess, and never
//     at a position where it was seen present.
//
// A single violation of either rule disqualifies the guess.
func (c *Constraints) Allows(guess string) bool {
	for i, ch := range c.Greens {
		if guess[i] != ch {
			return false
		}
	}
	for ch, forbidden := range c.Yellows {
		if strings.IndexByte(guess, ch) < 0 {
			return false
		}
		for pos := range forbidden {
			if guess[pos] == ch {
				return false
			}
		}
	}
	return true
}

// Pool returns the subset of allowed that is legal and not yet tried, in
// the vocabulary's order. Recomputed fresh each round; an empty pool means
// the game is stuck.
func (c *Constraints) Pool(allowed []string) []string {
	var out []string
	for _, g := range allowed {
		if _, tried := c.Tried[g]; tried {
			continue
		}
		if c.Allows(g) {
			out = append(out, g)
		}
	}
	return out
}
