package core

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode"
)

// slugify lowercases the input and collapses every run of
// non-alphanumeric characters into a single hyphen.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// randomSuffix returns n random bytes hex-encoded, for de-duplicating
// slugs on uniqueness conflicts.
func randomSuffix(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}
