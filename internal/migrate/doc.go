// Package migrate upgrades O3DE object manifests between schema
// versions.
//
// Each version edge (0.0.0 -> 1.0.0, 1.0.0 -> 2.0.0) is a pure
// transform over an ordered document, built from a declarative remap
// spec plus the heuristic classifiers. Run detects the declared
// version of a document and applies the minimal chain of transforms to
// reach the requested target, failing closed on versions it does not
// know.
package migrate
