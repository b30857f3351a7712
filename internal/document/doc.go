// Package document provides an insertion-ordered JSON object model.
//
// Manifest files care about key order: migrated output is diffed and
// reviewed by humans, and the schema header keys must come first. Go
// maps don't preserve order, so Document keeps its own key sequence
// and round-trips JSON through a token-level decoder.
//
// Values held by a Document are one of: string, bool, json.Number,
// nil, []any, or *Document (for nested objects).
package document
