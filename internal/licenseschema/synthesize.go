package licenseschema

import (
	"fmt"

	"manifest-migrator/internal/document"
)

// Synthesize replaces the "license" definition of the patterns schema
// with one built from the catalog. The schema document is modified and
// returned; the catalog is not touched.
func Synthesize(catalog *Catalog, schema *document.Document) (*document.Document, error) {
	definitions := schema.Object("definitions")
	if definitions == nil {
		return nil, fmt.Errorf("patterns schema has no definitions object")
	}

	definitions.Set("license", buildDefinition(catalog))

	return schema, nil
}

// buildDefinition assembles the license schema fragment: the fixed
// property skeleton, the licenseId enum-or-pattern disjunction, the
// reference/relative_path requirement, and one if/then branch per
// catalog entry, in catalog order.
func buildDefinition(catalog *Catalog) *document.Document {
	ids := []any{}
	conditions := []any{}

	for _, entry := range catalog.Licenses {
		ids = append(ids, entry.LicenseID)
		conditions = append(conditions, buildCondition(entry))
	}

	return document.New().
		Set("type", "object").
		Set("properties", document.New().
			Set("licenseId", document.New().
				Set("type", "string").
				Set("description", "The SPDX identifier for the license. i.e. 'Apache-2.0'").
				Set("oneOf", []any{
					document.New().Set("enum", ids),
					document.New().Set("pattern", "^[a-zA-Z][a-zA-Z0-9_.-]*$"),
				})).
			Set("name", document.New().
				Set("type", "string").
				Set("description", "The name of the license. i.e. 'Apache License 2.0'")).
			Set("reference", document.New().
				Set("description", "If you didn't include a copy of the license in the repo, then you may link to a website of the license i.e. 'https://opensource.org/licenses/Apache-2.0'").
				Set("$ref", "#/definitions/httpsftpsUri")).
			Set("is_deprecated", document.New().
				Set("type", "boolean").
				Set("description", "If this license is deprecated, then set this to true. i.e. 'true'")).
			Set("details_url", document.New().
				Set("description", "If you didn't include a copy of the license in the repo, then you may link to a json file of the license i.e. 'https://spdx.org/licenses/Apache-2.0.json'").
				Set("$ref", "#/definitions/httpsftpsUri")).
			Set("is_osi_approved", document.New().
				Set("type", "boolean").
				Set("description", "If this license is OSI approved, then set this to true. i.e. 'true'")).
			Set("see_also", document.New().
				Set("type", "array").
				Set("items", document.New().
					Set("$ref", "#/definitions/httpsftpsUri"))).
			Set("relative_path", document.New().
				Set("definition", "If you didn't include a copy of the license in the repo, then this is the relative path to the license file from this object's root. i.e. 'licenses/mylicense.txt'").
				Set("$ref", "#definitions/relativePath")).
			Set("scope", document.New().
				Set("type", "string").
				Set("description", "If this license is limited to a specific portion of this object state that here. i.e. 'Applies to all code in the X folder.'"))).
		Set("oneOf", []any{
			document.New().Set("required", []any{"licenseId", "reference"}),
			document.New().Set("required", []any{"licenseId", "relative_path"}),
		}).
		Set("allOf", conditions)
}

// buildCondition pins the sibling fields to the entry's canonical
// values when licenseId matches.
func buildCondition(entry CatalogEntry) *document.Document {
	seeAlso := []any{}
	for _, uri := range entry.SeeAlso {
		seeAlso = append(seeAlso, uri)
	}

	return document.New().
		Set("if", document.New().
			Set("properties", document.New().
				Set("licenseId", document.New().Set("const", entry.LicenseID)))).
		Set("then", document.New().
			Set("properties", document.New().
				Set("name", document.New().Set("const", entry.Name)).
				Set("reference", document.New().Set("const", entry.Reference)).
				Set("is_deprecated", document.New().Set("const", entry.IsDeprecatedLicenseID)).
				Set("details_url", document.New().Set("const", entry.DetailsURL)).
				Set("is_osi_approved", document.New().Set("const", entry.IsOsiApproved)).
				Set("see_also", document.New().
					Set("type", "array").
					Set("items", document.New().Set("enum", seeAlso)))))
}
