// internal/solver/entropy.go
//
// Entropy-based guess selection.
// A guess partitions the candidate set by the feedback each candidate would
// produce; the Shannon entropy of that partition approximates the expected
// bits of information the guess reveals. Picking the maximizer greedily
// minimizes the expected remaining search space — one ply only, no game-tree
// search.

package solver

import "math"

// Entropy computes H(guess) = -Σ (n_k/N)·log2(n_k/N) over the feedback
// partition of candidates induced by guess. Only observed feedback codes are
// counted, so no partition is ever empty; a single partition covering all
// candidates yields 0.
func Entropy(guess string, candidates []string) float64 {
	partitions := make(map[Feedback]int)
	for _, ans := range candidates {
		partitions[Classify(guess, ans)]++
	}

	total := float64(len(candidates))
	var h float64
	for _, count := range partitions {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}

// Select returns the guess in pool with maximal entropy over candidates.
// Ties break by pool iteration order: the first maximizer wins. pool and
// candidates must both be non-empty.
func Select(pool, candidates []string) string {
	best := -1.0
	var next string
	for _, g := range pool {
		if e := Entropy(g, candidates); e > best {
			best = e
			next = g
		}
	}
	return next
}
