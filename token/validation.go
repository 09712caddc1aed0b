package token

import (
	"strings"
	"time"
)

// IssuedAtLayout is the only accepted textual encoding of an issue time:
// calendar date, single space, wall-clock time, no zone, no fractions.
const IssuedAtLayout = "2006-01-02 15:04:05"

func parseIssuedAt(s string) (time.Time, error) {
	// time.Parse accepts unpadded numeric fields; the encoding is fixed-width.
	if len(s) != len(IssuedAtLayout) {
		return time.Time{}, invalidField(FieldIssuedAt, "must be formatted as YYYY-MM-DD HH:MM:SS")
	}
	t, err := time.Parse(IssuedAtLayout, s)
	if err != nil {
		return time.Time{}, invalidField(FieldIssuedAt, "must be a valid YYYY-MM-DD HH:MM:SS time")
	}
	return t, nil
}

// validTokenString reports whether s matches 1*VSCHAR from RFC 6749:
// one or more printable ASCII characters (0x20-0x7E).
func validTokenString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// Only the two spellings from RFC 6750 are accepted; anything else is
// rejected rather than normalised.
func validTokenType(s string) bool {
	return s == "bearer" || s == "Bearer"
}

// validScope reports whether s is a space-separated list of 1*NQCHAR scope
// tokens. Consecutive spaces produce an empty token and fail.
func validScope(s string) bool {
	for _, scopeToken := range strings.Split(s, " ") {
		if !validScopeToken(scopeToken) {
			return false
		}
	}
	return true
}

// NQCHAR = %x21 / %x23-5B / %x5D-7E (RFC 6749 appendix A): printable ASCII
// excluding space, double quote and backslash.
func validScopeToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == 0x21 || (b >= 0x23 && b <= 0x5b) || (b >= 0x5d && b <= 0x7e) {
			continue
		}
		return false
	}
	return true
}
