package migrate

import "manifest-migrator/internal/document"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the closed set of object kinds a manifest can describe. It
// is determined once from the legacy kind-specific name key and stays
// fixed across migration.
type Kind int

const (
	KindUnknown Kind = iota

	KindEngine
	KindProject
	KindGem
	KindTemplate
	KindRepo
	KindExtension
)

// kindKeys maps each legacy kind-identifying key to its Kind, in
// detection order. extension_name is a later spelling of
// restricted_name; both identify an extension.
var kindKeys = []struct {
	key  string
	kind Kind
}{
	{"engine_name", KindEngine},
	{"project_name", KindProject},
	{"gem_name", KindGem},
	{"template_name", KindTemplate},
	{"repo_name", KindRepo},
	{"restricted_name", KindExtension},
	{"extension_name", KindExtension},
}

// DetectKind infers the document kind from whichever legacy name key
// is present. Returns KindUnknown when none is.
func DetectKind(doc *document.Document) Kind {
	for _, k := range kindKeys {
		if doc.Has(k.key) {
			return k.kind
		}
	}

	return KindUnknown
}

var kindSchemaURLs = map[Kind]string{
	KindEngine:    "https://overlo3de.com/o3de-engine-2.0.0.json",
	KindProject:   "https://overlo3de.com/o3de-project-2.0.0.json",
	KindGem:       "https://overlo3de.com/o3de-gem-2.0.0.json",
	KindTemplate:  "https://overlo3de.com/o3de-template-2.0.0.json",
	KindRepo:      "https://overlo3de.com/o3de-repo-2.0.0.json",
	KindExtension: "https://overlo3de.com/o3de-extension-2.0.0.json",
}

// SchemaURL returns the $schema URL stamped on 2.0.0 documents of this
// kind, or "" for KindUnknown.
func (k Kind) SchemaURL() string {
	return kindSchemaURLs[k]
}
