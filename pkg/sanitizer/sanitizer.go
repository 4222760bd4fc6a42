// Package sanitizer normalizes customer-entered contact details before
// validation. It only cleans; rejecting bad input is the validator's job.
package sanitizer

import (
	"strings"
	"unicode"
)

// CleanName trims the value, collapses runs of whitespace and strips
// control characters.
func CleanName(v string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.TrimSpace(v) {
		if unicode.IsControl(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// CleanPhone keeps digits and a single leading plus, dropping the
// separators people type into phone fields.
func CleanPhone(v string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(v) {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanEmail lowercases and trims; addresses are case-insensitive in
// practice and we match on them when contacting customers.
func CleanEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
