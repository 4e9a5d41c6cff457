// Package normalize holds the pure field cleaners shared by the legacy
// import passes. Every function maps dirty source input to either a cleaned
// value or the zero value, which callers treat as "absent".
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneKeep    = regexp.MustCompile(`[^\d+\-\s]`)
)

// CleanName trims, collapses whitespace runs and title-cases each token.
// Whitespace-only input yields "".
func CleanName(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	for i, tok := range tokens {
		r := []rune(tok)
		r[0] = unicode.ToUpper(r[0])
		tokens[i] = string(r)
	}
	return strings.Join(tokens, " ")
}

// CleanEmail lowercases and validates a loose local@domain.tld shape. It
// does not verify deliverability. Returns "" when absent or invalid;
// idempotent on any value that passes.
func CleanEmail(s string) string {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if cleaned == "" || !emailPattern.MatchString(cleaned) {
		return ""
	}
	return cleaned
}

// CleanPhone keeps digits, `+`, `-` and whitespace only. Anything shorter
// than 7 characters after cleaning is treated as absent.
func CleanPhone(s string) string {
	cleaned := strings.TrimSpace(phoneKeep.ReplaceAllString(s, ""))
	if len(cleaned) < 7 {
		return ""
	}
	return cleaned
}

// ParseBirthDate parses a YYYY-MM-DD calendar date anchored at midnight UTC.
// Dates in the future or more than 120 years before now are rejected.
func ParseBirthDate(s string, now time.Time) (time.Time, bool) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	if t.After(now) {
		return time.Time{}, false
	}
	if t.Before(now.AddDate(-120, 0, 0)) {
		return time.Time{}, false
	}
	return t, true
}

var diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// EmailHandle derives the account handle for a generated user:
// diacritics and non-letter characters stripped from each name part,
// joined as first.last@domain. Uniqueness is the store's job, not ours.
func EmailHandle(first, last, domain string) string {
	return fmt.Sprintf("%s.%s@%s", handlePart(first), handlePart(last), domain)
}

func handlePart(s string) string {
	folded, _, err := transform.String(diacritics, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	var b strings.Builder
	for _, r := range folded {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanProfileImage drops the legacy placeholder avatar.
func CleanProfileImage(url string) string {
	if url == "" || strings.Contains(url, "/static/anon.jpg") {
		return ""
	}
	return url
}
