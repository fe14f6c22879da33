package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropyPerfectSeparation(t *testing.T) {
	// "abcde" sees every candidate differently: each partition is a
	// singleton, so H = log2(N).
	candidates := []string{"abcde", "baccc", "ccccc", "ddddd"}
	h := Entropy("abcde", candidates)
	assert.InDelta(t, math.Log2(float64(len(candidates))), h, 1e-9)
}

func TestEntropySinglePartition(t *testing.T) {
	// A guess sharing no letters with any candidate produces one partition
	// covering everything: zero information.
	candidates := []string{"bbbbb", "ccccc", "ddddd"}
	assert.Zero(t, Entropy("xyxyx", candidates))
}

func TestEntropySingleCandidate(t *testing.T) {
	// p=1 contributes -1·log2(1) = 0; no division by zero, no log of zero.
	assert.Zero(t, Entropy("crane", []string{"crate"}))
}

func TestSelectSingletonPool(t *testing.T) {
	got := Select([]string{"crane"}, []string{"crate", "grape", "slate"})
	assert.Equal(t, "crane", got)
}

func TestSelectPicksMaximizer(t *testing.T) {
	candidates := []string{"aabbb", "aaccc", "aaddd"}
	// "xbcxx" splits the three candidates apart; "aazzz" lumps them together.
	pool := []string{"aazzz", "xbcxx"}
	assert.Equal(t, "xbcxx", Select(pool, candidates))
}

func TestSelectTieBreaksByPoolOrder(t *testing.T) {
	// Both guesses are equally uninformative; the first in pool order wins.
	candidates := []string{"bbbbb", "ccccc"}
	got := Select([]string{"xxxxx", "yyyyy"}, candidates)
	assert.Equal(t, "xxxxx", got)
}
