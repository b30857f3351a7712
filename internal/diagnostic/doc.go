// Package diagnostic provides structured warnings and infos collected
// while migrating a manifest.
//
// Key capabilities:
//   - Dropped-value warnings (unrecognized tags, malformed sequences)
//   - Synthesized-identifier reports
//   - Defaulted-field notices
//
// Transforms record diagnostics instead of logging so the core stays
// pure; the CLI decides how to surface them.
package diagnostic
