// internal/solver/filter.go
//
// Candidate pruning: keep only the words that would have produced the
// observed feedback.

package solver

// Filter returns, in their original relative order, the candidates w for
// which Classify(guess, w) == fb.
//
// An empty result is valid — it means the true answer is not in the supplied
// candidate list (e.g. the guess vocabulary is wider than the answer list and
// the feedback was inconsistent). Callers decide what to do with it; Filter
// never treats it as an error.
func Filter(candidates []string, guess string, fb Feedback) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Classify(guess, w) == fb {
			out = append(out, w)
		}
	}
	return out
}
