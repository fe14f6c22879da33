// internal/words/daily.go
//
// Deterministic daily answer selection: the same date and salt always yield
// the same answer, without storing anything. Used by `-answer daily`.

package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % n.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// DailyAnswer returns the answer for the given date. Requires Init to have
// succeeded; falls back like RandomAnswer when lists are empty.
func DailyAnswer(date time.Time, salt string) string {
	if len(answers) == 0 {
		return "crane"
	}
	return answers[DailyIndex(date, salt, len(answers))]
}
