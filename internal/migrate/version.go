package migrate

import "fmt"

// Version is a schema version token stored under the $schemaVersion key.
type Version string

// Known schema versions, oldest first.
const (
	Version000 Version = "0.0.0"
	Version100 Version = "1.0.0"
	Version200 Version = "2.0.0"
)

// Reserved document keys for the schema header.
const (
	SchemaKey        = "$schema"
	SchemaVersionKey = "$schemaVersion"
)

// versionRank orders the known versions. Unknown versions are not
// ranked; they are rejected by Run.
var versionRank = map[Version]int{
	Version000: 0,
	Version100: 1,
	Version200: 2,
}

// IsKnown reports whether v is a schema version this package
// understands.
func (v Version) IsKnown() bool {
	_, ok := versionRank[v]
	return ok
}

// Before reports whether v precedes other in the upgrade chain. Both
// versions must be known.
func (v Version) Before(other Version) bool {
	return versionRank[v] < versionRank[other]
}

// ParseVersion validates a version token such as "2.0.0".
func ParseVersion(s string) (Version, error) {
	v := Version(s)
	if !v.IsKnown() {
		return "", fmt.Errorf("unknown schema version %q (known: %s, %s, %s)",
			s, Version000, Version100, Version200)
	}

	return v, nil
}
