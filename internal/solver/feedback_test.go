package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		guess  string
		answer string
		want   Feedback
	}{
		{"all correct", "crane", "crane", "GGGGG"},
		{"all absent", "crane", "bigot", "....."},
		{"mixed", "crane", "crate", "GGG.G"},
		{"wrong positions", "crane", "grape", ".GG.G"},
		{"present shuffled", "notes", "stone", "YYYYY"},
		{"repeated guess letter, single in answer", "sheep", "asset", "Y..G."},
		{"repeat consumed by hit", "allee", "eagle", "YY.YG"},
		{"double letter, one hit one present", "geese", "elegy", "YYG.."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.guess, tc.answer))
		})
	}
}

func TestClassifyAllHitOnlyOnEqual(t *testing.T) {
	words := []string{"crane", "crate", "grape", "caner", "nacre"}
	for _, g := range words {
		for _, a := range words {
			got := Classify(g, a)
			if g == a {
				assert.True(t, got.Solved(), "%s vs %s", g, a)
			} else {
				assert.False(t, got.Solved(), "%s vs %s", g, a)
			}
		}
	}
}

func TestClassifyHitCountMatchesPositions(t *testing.T) {
	words := []string{"crane", "crate", "trace", "slate", "bread"}
	for _, g := range words {
		for _, a := range words {
			fb := Classify(g, a)
			want := 0
			for i := 0; i < len(g); i++ {
				if g[i] == a[i] {
					want++
				}
			}
			got := 0
			for i := 0; i < len(fb); i++ {
				if fb[i] == MarkHit {
					got++
				}
			}
			assert.Equal(t, want, got, "%s vs %s", g, a)
		}
	}
}

func TestClassifyNeverOvercountsLetter(t *testing.T) {
	// "e" appears once in the answer: exactly one non-miss tag for it.
	fb := Classify("eexxe", "bcdef")
	tags := 0
	for _, pos := range []int{0, 1, 4} {
		if fb[pos] != MarkMiss {
			tags++
		}
	}
	assert.Equal(t, 1, tags)
	assert.Equal(t, Feedback("Y...."), fb)
}

func TestFeedbackValid(t *testing.T) {
	assert.True(t, Feedback("GY..G").Valid(5))
	assert.False(t, Feedback("GY..").Valid(5))
	assert.False(t, Feedback("GY..Z").Valid(5))
	assert.False(t, Feedback("").Valid(5))
}

func TestAllHit(t *testing.T) {
	assert.Equal(t, Feedback("GGGGG"), AllHit(5))
	assert.True(t, AllHit(3).Solved())
	assert.False(t, Feedback("").Solved())
}
