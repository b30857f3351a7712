// Package remap applies declarative field-mapping specs to ordered
// documents.
//
// A Spec is an ordered list of rules. Each rule names an output key
// and either reads a source key (optionally through a transform, with
// an optional default when the source is absent) or computes its value
// from the whole input document. The output contains only keys whose
// resolved value is non-nil, in spec order, regardless of input order.
package remap
