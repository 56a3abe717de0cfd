package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Airport codes accepted by ValidateCode.
const (
	MinCodeLen = 2
	MaxCodeLen = 3
)

// NormalizeCode trims surrounding space and upper-cases code. The network
// itself compares codes exactly, so every user-facing entry point runs input
// through NormalizeCode first.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode checks that code is non-empty, 2–3 characters, and free of the
// flat-file field separator.
func ValidateCode(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	l := utf8.RuneCountInString(code)
	if l < MinCodeLen || l > MaxCodeLen || strings.ContainsAny(code, ", \t\r\n") {
		return fmt.Errorf("%w: %q", ErrBadCode, code)
	}

	return nil
}
