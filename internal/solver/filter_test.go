package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNarrows(t *testing.T) {
	candidates := []string{"crate", "crane", "grape"}
	got := Filter(candidates, "crane", "GGG.G")
	assert.Equal(t, []string{"crate"}, got)
}

func TestFilterKeepsTrueAnswer(t *testing.T) {
	// The true answer is never pruned by its own induced feedback.
	candidates := []string{"crate", "crane", "grape", "slate", "bread", "geese"}
	for _, answer := range candidates {
		for _, guess := range candidates {
			got := Filter(candidates, guess, Classify(guess, answer))
			assert.Contains(t, got, answer, "guess %s answer %s", guess, answer)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	candidates := []string{"slate", "crate", "trace", "grate"}
	got := Filter(candidates, "xxxtx", Classify("xxxtx", "crate"))
	// Output is a subset of the input in the same relative order.
	i := 0
	for _, w := range candidates {
		if i < len(got) && got[i] == w {
			i++
		}
	}
	assert.Equal(t, len(got), i)
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	// Feedback inconsistent with every candidate: empty, not an error.
	got := Filter([]string{"crate", "crane"}, "crane", ".....")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
