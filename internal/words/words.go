// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load answer and allowed-guess lists from environment-provided files or
//     fall back to embedded defaults.
//   - Enforce the startup preconditions: every word has the fixed length, and
//     answers ⊆ allowed guesses. Violations are configuration errors; no game
//     starts without valid lists.
//   - Maintain a set for quick allowed lookups and supply utilities like
//     RandomAnswer and Stats.
//
// Word Lists:
//   - "answers": canonical solutions.
//   - "allowed": valid guesses (always includes the answers).
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set, load each
//      from its file. The answers file must be a subset of the allowed file;
//      Init fails otherwise.
//   2. If only WORDS_ALLOWED_FILE is set, load that file and use it for both
//      answers and allowed guesses.
//   3. If neither is set, fall back to the embedded defaults in assets/
//      (allowed = embedded answers ∪ embedded extras).
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//   WORD_LENGTH=5 (letters per word; lines of any other length are dropped)
//
// Constraints:
//   • Words must be alphabetic (a–z) of exactly the fixed length.
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/liliblazquez/wordlesolver/assets"
)

const defaultLength = 5

var (
	initOnce   sync.Once
	length     int                 // fixed word length
	answers    []string            // canonical answers
	allowed    []string            // answers ∪ guesses, answers first
	allowedSet map[string]struct{} // set over allowed
	initialErr error
)

// Init loads and validates word lists exactly once.
func Init() error {
	initOnce.Do(func() {
		n := defaultLength
		if v := os.Getenv("WORD_LENGTH"); v != "" {
			m, err := strconv.Atoi(v)
			if err != nil || m < 2 {
				initialErr = fmt.Errorf("words: bad WORD_LENGTH %q", v)
				return
			}
			n = m
		}

		var ansList, extraList []string
		var strict bool // subset must hold as supplied, no silent union

		answersPath := os.Getenv("WORDS_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided — validate subset as supplied.
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = readWordFile(answersPath, n)
			if err != nil {
				initialErr = err
				return
			}
			extraList, err = readWordFile(allowedPath, n)
			if err != nil {
				initialErr = err
				return
			}
			strict = true

		// Case 2: only allowed file provided → use for both.
		case answersPath == "" && allowedPath != "":
			var err error
			extraList, err = readWordFile(allowedPath, n)
			if err != nil {
				initialErr = err
				return
			}
			ansList = extraList

		// Case 3: fallback to embedded defaults.
		default:
			var err error
			ansList, extraList, err = assets.DefaultLists()
			if err != nil {
				initialErr = err
				return
			}
			ansList = keepLength(ansList, n)
			extraList = keepLength(extraList, n)
		}

		answers, allowed, allowedSet, initialErr = build(ansList, extraList, strict)
		length = n
	})
	return initialErr
}

// build assembles the final lists. With strict set, every answer must already
// be in the extras list (a configuration error otherwise); without it, the
// allowed vocabulary is the union with answers first.
func build(ansList, extraList []string, strict bool) ([]string, []string, map[string]struct{}, error) {
	if len(ansList) == 0 {
		return nil, nil, nil, errors.New("words: answers list is empty")
	}
	if strict {
		set := toSet(extraList)
		for _, w := range ansList {
			if _, ok := set[w]; !ok {
				return nil, nil, nil, fmt.Errorf("words: answer %q is not in the allowed guess list", w)
			}
		}
	}

	all := make([]string, 0, len(ansList)+len(extraList))
	set := make(map[string]struct{}, len(ansList)+len(extraList))
	for _, w := range ansList {
		if _, ok := set[w]; !ok {
			set[w] = struct{}{}
			all = append(all, w)
		}
	}
	for _, w := range extraList {
		if _, ok := set[w]; !ok {
			set[w] = struct{}{}
			all = append(all, w)
		}
	}
	return ansList, all, set, nil
}

// readWordFile loads one word per line from a file, lowercases, trims, and
// keeps only valid n-letter alphabetic words.
func readWordFile(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == n && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepLength drops entries that are not valid n-letter alphabetic words.
func keepLength(list []string, n int) []string {
	var out []string
	for _, w := range list {
		if len(w) == n && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the canonical answer list (all lowercase). Read-only.
func Answers() []string { return answers }

// Allowed returns the full guess vocabulary (answers first). Read-only.
func Allowed() []string { return allowed }

// Length returns the fixed word length.
func Length() int { return length }

// IsAllowed reports whether w is a valid guess.
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// RandomAnswer returns a cryptographically random answer from the answers
// list. If answers are not loaded yet or empty, falls back to "crane".
func RandomAnswer() string {
	if len(answers) == 0 {
		return "crane"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	return answers[nBig.Int64()]
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowed)
}
