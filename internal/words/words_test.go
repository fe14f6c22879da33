package words

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUnionsAnswersFirst(t *testing.T) {
	ans := []string{"crane", "crate"}
	extra := []string{"slate", "crate", "grape"}

	answers, allowed, set, err := build(ans, extra, false)
	require.NoError(t, err)
	assert.Equal(t, ans, answers)
	assert.Equal(t, []string{"crane", "crate", "slate", "grape"}, allowed)
	_, ok := set["grape"]
	assert.True(t, ok)
}

func TestBuildStrictRequiresSubset(t *testing.T) {
	ans := []string{"crane", "crate"}
	extra := []string{"crane", "slate"}

	_, _, _, err := build(ans, extra, true)
	assert.Error(t, err, "answers must be a subset of allowed guesses")

	_, _, _, err = build(ans, []string{"crane", "crate", "slate"}, true)
	assert.NoError(t, err)
}

func TestBuildRejectsEmptyAnswers(t *testing.T) {
	_, _, _, err := build(nil, []string{"crane"}, false)
	assert.Error(t, err)
}

func TestKeepLength(t *testing.T) {
	got := keepLength([]string{"crane", "gram", "slates", "cr4te", "grape"}, 5)
	assert.Equal(t, []string{"crane", "grape"}, got)
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, isAlpha("crane"))
	assert.False(t, isAlpha("Crane"))
	assert.False(t, isAlpha("cr4te"))
	assert.False(t, isAlpha("cran é"))
}

func TestDailyIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

	a := DailyIndex(day, "salt", 100)
	b := DailyIndex(day.Add(3*time.Hour), "salt", 100)
	assert.Equal(t, a, b, "same UTC date, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 100)

	c := DailyIndex(day.AddDate(0, 0, 1), "salt", 100)
	d := DailyIndex(day, "other", 100)
	// Different date or salt should (for these inputs) move the index.
	assert.True(t, a != c || a != d)

	assert.Zero(t, DailyIndex(day, "salt", 0))
}

func TestDateKey(t *testing.T) {
	day := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("x", 3*3600))
	assert.Equal(t, "2024-03-09", DateKey(day))
}
