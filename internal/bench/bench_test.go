package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liliblazquez/wordlesolver/internal/solver"
)

func TestRunSummarizes(t *testing.T) {
	vocab := []string{"crate", "crane", "grape"}
	sv, err := solver.New(vocab, vocab, solver.WithOpening("crane"))
	require.NoError(t, err)

	sum, err := Run(context.Background(), sv, vocab, nil, false)
	require.NoError(t, err)

	assert.NotEmpty(t, sum.RunID)
	assert.Equal(t, 3, sum.Played)
	assert.Equal(t, 3, sum.Solved)
	assert.Zero(t, sum.Exhausted)
	assert.Zero(t, sum.Stuck)
	assert.Greater(t, sum.AvgRounds, 0.0)
}

func TestRunHonorsContext(t *testing.T) {
	vocab := []string{"crate", "crane", "grape"}
	sv, err := solver.New(vocab, vocab, solver.WithOpening("crane"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, sv, vocab, nil, false)
	assert.ErrorIs(t, err, context.Canceled)
}
