package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liliblazquez/wordlesolver/internal/solver"
)

func TestApplyGuessTransitions(t *testing.T) {
	g := New("crate")

	fb, state, err := g.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, solver.Feedback("GGG.G"), fb)
	assert.Equal(t, "playing", state)

	fb, state, err = g.ApplyGuess("crate")
	require.NoError(t, err)
	assert.True(t, fb.Solved())
	assert.Equal(t, "won", state)
	assert.True(t, g.Won)

	_, _, err = g.ApplyGuess("slate")
	assert.Error(t, err, "finished game refuses guesses")
}

func TestApplyGuessLosesAfterSixRounds(t *testing.T) {
	g := New("crate")
	for i := 0; i < 5; i++ {
		_, state, err := g.ApplyGuess("slate")
		require.NoError(t, err)
		assert.Equal(t, "playing", state)
	}
	_, state, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, "lost", state)
	assert.False(t, g.Won)
}

func TestApplyGuessValidation(t *testing.T) {
	g := New("crate")
	_, _, err := g.ApplyGuess("four")
	assert.Error(t, err)
	_, _, err = g.ApplyGuess("cr4te")
	assert.Error(t, err)
}

func TestLocalClientRoundBookkeeping(t *testing.T) {
	ctx := context.Background()
	l := NewLocal("crate")

	_, err := l.ObserveFeedback(ctx, 0)
	assert.Error(t, err, "no rounds played yet")

	require.NoError(t, l.Submit(ctx, "crane"))
	fb, err := l.ObserveFeedback(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, solver.Feedback("GGG.G"), fb)

	_, err = l.ObserveFeedback(ctx, 1)
	assert.Error(t, err)
}
