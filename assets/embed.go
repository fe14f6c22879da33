// assets/embed.go
//
// Embedded fallback vocabularies, used when no word-list files are
// configured: answers.txt holds the default solutions, allowed.txt the extra
// legal guesses. Lines are one word each; blank lines and #-comments are
// skipped.

package assets

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"
)

//go:embed answers.txt allowed.txt
var files embed.FS

// DefaultLists returns the embedded answer words and the extra guess words.
// The full guess vocabulary is their union; the words package builds it.
func DefaultLists() (answers, extra []string, err error) {
	if answers, err = readList("answers.txt"); err != nil {
		return nil, nil, err
	}
	if extra, err = readList("allowed.txt"); err != nil {
		return nil, nil, err
	}
	return answers, extra, nil
}

func readList(name string) ([]string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}
