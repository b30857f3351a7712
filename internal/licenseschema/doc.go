// Package licenseschema synthesizes the license validation fragment of
// the 2.0.0 patterns schema from the SPDX license catalog.
//
// The catalog (licenses.json from the SPDX license-list-data repo, or
// a local copy) is read-only input: each entry contributes its
// licenseId to an enum and one if/then branch pinning the sibling
// fields to the entry's canonical values.
package licenseschema
