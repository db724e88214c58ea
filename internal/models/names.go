package models

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength bounds group and player names, in characters
const MaxNameLength = 50

// NormalizeName trims surrounding whitespace and rejects empty, overlong or
// non-UTF-8 names. what is used in the message ("group", "player").
// Stored names must survive a JSON round trip byte for byte.
func NormalizeName(what, raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", NewDomainError(KindInvalidName, "%s name must be valid UTF-8 text", what)
	}
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", NewDomainError(KindInvalidName, "%s name cannot be empty", what)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", NewDomainError(KindInvalidName, "%s name cannot exceed %d characters", what, MaxNameLength)
	}
	return name, nil
}
