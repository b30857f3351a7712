package heuristic

import "strings"

// The closed set of canonical tags, keyed by lowercase form.
var canonicalTags = map[string]string{
	"engine":    "Engine",
	"project":   "Project",
	"gem":       "Gem",
	"template":  "Template",
	"repo":      "Repo",
	"extension": "Extension",
}

// CanonicalTagOf looks up the canonical form of a legacy tag,
// case-insensitively. ok is false for tags outside the canonical set;
// such tags are dropped during migration.
func CanonicalTagOf(tag string) (canonical string, ok bool) {
	canonical, ok = canonicalTags[strings.ToLower(tag)]
	return canonical, ok
}
