package utils

import (
	"strings"
	"unicode"
)

// PNR length bounds accepted by operators we support
const (
	PNRMinLength = 6
	PNRMaxLength = 15
)

// NormalizePNR uppercases a PNR and strips everything that is not a letter
// or digit. The operation is idempotent.
func NormalizePNR(pnr string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(pnr) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPNRLength reports whether a normalized PNR falls inside the accepted
// length bounds.
func ValidPNRLength(pnr string) bool {
	return len(pnr) >= PNRMinLength && len(pnr) <= PNRMaxLength
}

// NamesMatch compares two passenger names case-insensitively after
// trimming, accepting equality or containment in either direction. Booking
// records often carry honorifics or initials the user omits, so containment
// counts as a match.
func NamesMatch(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))

	if na == "" || nb == "" {
		return false
	}

	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}
