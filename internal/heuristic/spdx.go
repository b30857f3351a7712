package heuristic

import "strings"

// Tokens whose presence marks a license string as SPDX-like: separator
// and operator syntax, version prefixes, and common license families.
var spdxTokens = []string{
	"-", "OR", "AND", "0.", "1.", "2.", "3.", "4.",
	"Apache", "MIT", "GPL", "LGPL", "BSD", "MPL", "EPL",
}

// LooksLikeSPDX reports whether text resembles an SPDX license
// expression. False negatives for obscure licenses are expected; such
// strings migrate as custom license identifiers.
func LooksLikeSPDX(text string) bool {
	for _, token := range spdxTokens {
		if strings.Contains(text, token) {
			return true
		}
	}

	return false
}
