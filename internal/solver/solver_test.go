package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient simulates the external game with a hidden answer, scoring
// submissions via Classify. failAt injects a feedback-unavailable fault at
// the given round index (-1: never).
type fakeClient struct {
	answer    string
	feedbacks []Feedback
	submitted []string
	failAt    int
}

func newFakeClient(answer string) *fakeClient {
	return &fakeClient{answer: answer, failAt: -1}
}

func (c *fakeClient) Submit(ctx context.Context, guess string) error {
	c.submitted = append(c.submitted, guess)
	c.feedbacks = append(c.feedbacks, Classify(guess, c.answer))
	return nil
}

func (c *fakeClient) ObserveFeedback(ctx context.Context, round int) (Feedback, error) {
	if round == c.failAt {
		return "", errors.New("feedback unavailable")
	}
	if round < 0 || round >= len(c.feedbacks) {
		return "", errors.New("no such round")
	}
	return c.feedbacks[round], nil
}

func TestNewConfigErrors(t *testing.T) {
	_, err := New(nil, []string{"crane"})
	assert.Error(t, err)

	_, err = New([]string{"crane", "gram"}, []string{"crane", "gram"})
	assert.Error(t, err, "mixed word lengths")

	_, err = New([]string{"crane", "crate"}, []string{"crane"})
	assert.Error(t, err, "answers not a subset of allowed")

	_, err = New([]string{"crane"}, []string{"crane"}, WithOpening("slate"))
	assert.Error(t, err, "opening outside allowed")
}

func TestNewOpeningDefaults(t *testing.T) {
	s, err := New([]string{"grain", "crane"}, []string{"grain", "crane"})
	require.NoError(t, err)
	assert.Equal(t, "grain", s.Opening())

	// Without "grain" in the vocabulary the opening is computed by entropy.
	s, err = New([]string{"crane", "crate"}, []string{"crane", "crate"})
	require.NoError(t, err)
	assert.Contains(t, []string{"crane", "crate"}, s.Opening())
}

func TestPlaySolvesInTwoRounds(t *testing.T) {
	vocab := []string{"crate", "crane", "grape"}
	s, err := New(vocab, vocab, WithOpening("crane"))
	require.NoError(t, err)

	client := newFakeClient("crate")
	res, err := s.Play(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, StateSolved, res.Outcome)
	assert.Equal(t, 2, res.Rounds)
	require.Len(t, res.History, 2)
	assert.Equal(t, Round{Guess: "crane", Feedback: "GGG.G", Remaining: 1}, res.History[0])
	assert.Equal(t, "crate", res.History[1].Guess)
	assert.True(t, res.History[1].Feedback.Solved())
	assert.Equal(t, []string{"crane", "crate"}, client.submitted)
}

func TestPlayStuckOnMissingFeedback(t *testing.T) {
	// Candidates stay indistinguishable on the shared prefix, forcing one
	// elimination per round; feedback then goes missing at round index 2.
	vocab := []string{"aabbb", "aaccc", "aaddd", "aaeee"}
	s, err := New(vocab, vocab, WithOpening("aabbb"))
	require.NoError(t, err)

	client := newFakeClient("aaeee")
	client.failAt = 2
	res, err := s.Play(context.Background(), client)

	assert.Error(t, err)
	assert.Equal(t, StateStuck, res.Outcome)
	assert.Equal(t, 2, res.Rounds)
	assert.Len(t, res.History, 2)
	// The third submission happened once; there is no retry after the fault.
	assert.Len(t, client.submitted, 3)
}

func TestPlayExhaustsRoundBudget(t *testing.T) {
	vocab := []string{"aabbb", "aaccc", "aaddd", "aaeee"}
	s, err := New(vocab, vocab, WithOpening("aabbb"), WithMaxRounds(2))
	require.NoError(t, err)

	res, err := s.Play(context.Background(), newFakeClient("aaeee"))
	require.NoError(t, err)

	assert.Equal(t, StateExhausted, res.Outcome)
	assert.Equal(t, 2, res.Rounds)
}

func TestRunStuckOnEmptyPool(t *testing.T) {
	s, err := New([]string{"abcde"}, []string{"abcde", "fghij"}, WithOpening("abcde"))
	require.NoError(t, err)

	run := s.NewRun()
	// Yellow 'a': must reappear, but the only untried word has no 'a'.
	require.NoError(t, run.Advance("Y...."))
	assert.Equal(t, StateStuck, run.State())
}

func TestRunRejectsMalformedFeedbackWithoutDying(t *testing.T) {
	vocab := []string{"crate", "crane", "grape"}
	s, err := New(vocab, vocab, WithOpening("crane"))
	require.NoError(t, err)

	run := s.NewRun()
	assert.ErrorIs(t, run.Advance("GGG"), ErrBadFeedback)
	assert.ErrorIs(t, run.Advance("GGG.Z"), ErrBadFeedback)
	// Still guessing: an interactive caller can retry.
	assert.Equal(t, StateGuessing, run.State())
	require.NoError(t, run.Advance("GGG.G"))
	assert.Equal(t, 1, run.Round())
}

func TestRunFinishedRefusesMoreRounds(t *testing.T) {
	vocab := []string{"crane"}
	s, err := New(vocab, vocab, WithOpening("crane"))
	require.NoError(t, err)

	run := s.NewRun()
	require.NoError(t, run.Advance("GGGGG"))
	assert.Equal(t, StateSolved, run.State())
	assert.ErrorIs(t, run.Advance("GGGGG"), ErrRunFinished)
}

func TestAdvanceGuessReplaysForeignGuesses(t *testing.T) {
	// The user played "grape" on their own; the solver folds it in anyway.
	vocab := []string{"crate", "crane", "grape", "slate"}
	s, err := New(vocab, vocab)
	require.NoError(t, err)

	run := s.NewRun()
	require.NoError(t, run.AdvanceGuess("grape", Classify("grape", "crate")))
	assert.Equal(t, StateGuessing, run.State())
	assert.Contains(t, run.Candidates(), "crate")
	assert.NotContains(t, run.Candidates(), "grape")
}

func TestRunStuckOnInconsistentFeedback(t *testing.T) {
	vocab := []string{"crate", "crane", "grape", "slate"}
	s, err := New(vocab, vocab, WithOpening("crane"))
	require.NoError(t, err)

	run := s.NewRun()
	require.NoError(t, run.Advance("G...."))
	// Position 0 was confirmed 'c'; a later non-hit there is malformed.
	err = run.AdvanceGuess("crate", "Y....")
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
	assert.Equal(t, StateStuck, run.State())
}
