package heuristic

import (
	"strings"
	"unicode"
)

// TLDs that may appear as the first segment of a reverse-domain name.
var knownTLDs = map[string]bool{
	"org": true,
	"com": true,
	"net": true,
	"edu": true,
	"gov": true,
	"io":  true,
}

// IsReverseDomainFormat reports whether name is already a canonical
// reverse-domain identifier: at least two dot separators, entirely
// lowercase, with a known TLD as the first segment.
func IsReverseDomainFormat(name string) bool {
	if name == "" || strings.Count(name, ".") < 2 {
		return false
	}

	first := strings.SplitN(name, ".", 2)[0]

	return knownTLDs[first] && isLower(name)
}

// isLower reports whether s contains at least one cased rune and no
// uppercase runes.
func isLower(s string) bool {
	cased := false

	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}

		if unicode.IsLower(r) {
			cased = true
		}
	}

	return cased
}
