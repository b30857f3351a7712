package remap

import "manifest-migrator/internal/document"

// TransformFunc reshapes a raw source value. Returning nil suppresses
// the output key.
type TransformFunc func(value any) any

// ComputeFunc derives a value from the whole input document. Returning
// nil suppresses the output key.
type ComputeFunc func(in *document.Document) any

// Rule maps one output key. Exactly one of the source-keyed form
// (Source, optionally Transform/Default) or the computed form (Compute)
// is used; Compute wins when both are set.
type Rule struct {
	Target    string
	Source    string
	Transform TransformFunc
	Default   any
	Compute   ComputeFunc
}

// Spec is an ordered field-mapping specification.
type Spec []Rule

// Copy copies a key verbatim when present.
func Copy(key string) Rule {
	return Rule{Target: key, Source: key}
}

// CopyAs copies source to target verbatim when present.
func CopyAs(target, source string) Rule {
	return Rule{Target: target, Source: source}
}

// WithDefault copies a key, falling back to def when absent.
func WithDefault(key string, def any) Rule {
	return Rule{Target: key, Source: key, Default: def}
}

// Map copies source to target through a transform.
func Map(target, source string, fn TransformFunc) Rule {
	return Rule{Target: target, Source: source, Transform: fn}
}

// Computed derives target from the whole input document.
func Computed(target string, fn ComputeFunc) Rule {
	return Rule{Target: target, Compute: fn}
}

// Apply runs the spec against in and returns the mapped output
// document. Absent source keys with no default are omitted entirely;
// transforms and compute functions suppress their key by returning nil.
func Apply(in *document.Document, spec Spec) *document.Document {
	out := document.New()

	for _, rule := range spec {
		if rule.Compute != nil {
			if v := rule.Compute(in); v != nil {
				out.Set(rule.Target, v)
			}

			continue
		}

		value, present := in.Get(rule.Source)
		if present && rule.Transform != nil {
			value = rule.Transform(value)
		}

		if value == nil {
			value = rule.Default
		}

		if value != nil {
			out.Set(rule.Target, value)
		}
	}

	return out
}
