package migrate

import (
	"strings"

	"manifest-migrator/internal/document"
)

// group accumulates the optional members of a nested output object.
// Build yields nil when no member was set, so an empty group omits the
// whole object from the output.
type group struct {
	doc *document.Document
}

func newGroup() *group {
	return &group{doc: document.New()}
}

// setString adds a member when value is non-empty.
func (g *group) setString(key, value string) *group {
	if value != "" {
		g.doc.Set(key, value)
	}

	return g
}

// set adds a member when value is non-nil.
func (g *group) set(key string, value any) *group {
	if value != nil {
		g.doc.Set(key, value)
	}

	return g
}

// build returns the accumulated object, or nil when empty.
func (g *group) build() any {
	if g.doc.Len() == 0 {
		return nil
	}

	return g.doc
}

// ensureSuffix appends suffix to s unless already present.
func ensureSuffix(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s
	}

	return s + suffix
}
