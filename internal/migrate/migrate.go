package migrate

import (
	"fmt"

	"manifest-migrator/internal/diagnostic"
	"manifest-migrator/internal/document"
)

// transformFunc is one version-edge transform. The kind is detected
// once by Run and threaded through explicitly.
type transformFunc func(in *document.Document, kind Kind, diags *diagnostic.Diagnostics) (*document.Document, error)

// transforms is the upgrade chain, one entry per version edge.
var transforms = []struct {
	from, to Version
	apply    transformFunc
}{
	{from: Version000, to: Version100, apply: upgrade000To100},
	{from: Version100, to: Version200, apply: upgrade100To200},
}

// Run migrates doc to the target schema version and returns the
// migrated document plus the diagnostics recorded along the way.
//
// The declared $schemaVersion (default 0.0.0 when absent) selects the
// chain of transforms to apply. A declared version outside the known
// set is an error; a document already at or past the target passes
// through unchanged. The input document is not mutated once a
// transform runs: each step builds a fresh document.
func Run(doc *document.Document, target Version) (*document.Document, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	if !target.IsKnown() {
		return nil, diags, fmt.Errorf("unknown target schema version %q", target)
	}

	current := Version(doc.String(SchemaVersionKey))
	if current == "" {
		current = Version000
	}

	if !current.IsKnown() {
		return nil, diags, fmt.Errorf("document declares unknown schema version %q", current)
	}

	kind := DetectKind(doc)

	out := doc

	for _, t := range transforms {
		if t.from != current || !current.Before(target) {
			continue
		}

		next, err := t.apply(out, kind, diags)
		if err != nil {
			return nil, diags, fmt.Errorf("upgrading %s to %s: %w", t.from, t.to, err)
		}

		out = next
		current = t.to
	}

	return out, diags, nil
}
