package licenseschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifest-migrator/internal/document"
)

const sampleCatalog = `{
	"licenseListVersion": "3.24",
	"licenses": [
		{
			"reference": "https://spdx.org/licenses/MIT.html",
			"isDeprecatedLicenseId": false,
			"detailsUrl": "https://spdx.org/licenses/MIT.json",
			"name": "MIT License",
			"licenseId": "MIT",
			"seeAlso": ["https://opensource.org/license/mit/"],
			"isOsiApproved": true
		},
		{
			"reference": "https://spdx.org/licenses/Apache-2.0.html",
			"isDeprecatedLicenseId": false,
			"detailsUrl": "https://spdx.org/licenses/Apache-2.0.json",
			"name": "Apache License 2.0",
			"licenseId": "Apache-2.0",
			"seeAlso": ["https://www.apache.org/licenses/LICENSE-2.0"],
			"isOsiApproved": true
		}
	]
}`

func patternsSchema(t *testing.T) *document.Document {
	t.Helper()

	schema, err := document.Parse([]byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"definitions": {
			"httpsftpsUri": {"type": "string"},
			"relativePath": {"type": "string"},
			"license": {"type": "object"}
		}
	}`))
	require.NoError(t, err)

	return schema
}

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, "3.24", catalog.LicenseListVersion)
	require.Len(t, catalog.Licenses, 2)
	assert.Equal(t, "MIT", catalog.Licenses[0].LicenseID)
	assert.True(t, catalog.Licenses[0].IsOsiApproved)
	assert.False(t, catalog.Licenses[0].IsDeprecatedLicenseID)
}

func TestSynthesizeReplacesLicenseDefinition(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	schema, err := Synthesize(catalog, patternsSchema(t))
	require.NoError(t, err)

	license := schema.Object("definitions").Object("license")
	require.NotNil(t, license)
	assert.Equal(t, "object", license.String("type"))

	// other definitions are untouched
	assert.NotNil(t, schema.Object("definitions").Object("httpsftpsUri"))
}

func TestSynthesizeEnumAndConditions(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	schema, err := Synthesize(catalog, patternsSchema(t))
	require.NoError(t, err)

	license := schema.Object("definitions").Object("license")
	licenseID := license.Object("properties").Object("licenseId")
	require.NotNil(t, licenseID)

	oneOf := licenseID.List("oneOf")
	require.Len(t, oneOf, 2)

	enumBranch, ok := oneOf[0].(*document.Document)
	require.True(t, ok)
	assert.Equal(t, []any{"MIT", "Apache-2.0"}, enumBranch.List("enum"))

	patternBranch, ok := oneOf[1].(*document.Document)
	require.True(t, ok)
	assert.Equal(t, "^[a-zA-Z][a-zA-Z0-9_.-]*$", patternBranch.String("pattern"))

	// one if/then branch per entry, in catalog order
	allOf := license.List("allOf")
	require.Len(t, allOf, 2)

	first, ok := allOf[0].(*document.Document)
	require.True(t, ok)

	cond := first.Object("if").Object("properties").Object("licenseId")
	require.NotNil(t, cond)
	constVal, _ := cond.Get("const")
	assert.Equal(t, "MIT", constVal)

	then := first.Object("then").Object("properties")
	require.NotNil(t, then)
	nameConst, _ := then.Object("name").Get("const")
	assert.Equal(t, "MIT License", nameConst)
	deprecated, _ := then.Object("is_deprecated").Get("const")
	assert.Equal(t, false, deprecated)
	seeAlso := then.Object("see_also").Object("items").List("enum")
	assert.Equal(t, []any{"https://opensource.org/license/mit/"}, seeAlso)
}

func TestSynthesizeRequiredDisjunction(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	schema, err := Synthesize(catalog, patternsSchema(t))
	require.NoError(t, err)

	oneOf := schema.Object("definitions").Object("license").List("oneOf")
	require.Len(t, oneOf, 2)

	first, ok := oneOf[0].(*document.Document)
	require.True(t, ok)
	assert.Equal(t, []any{"licenseId", "reference"}, first.List("required"))

	second, ok := oneOf[1].(*document.Document)
	require.True(t, ok)
	assert.Equal(t, []any{"licenseId", "relative_path"}, second.List("required"))
}

func TestSynthesizeEmptyCatalog(t *testing.T) {
	schema, err := Synthesize(&Catalog{}, patternsSchema(t))
	require.NoError(t, err)

	license := schema.Object("definitions").Object("license")
	assert.Equal(t, []any{}, license.Object("properties").Object("licenseId").List("oneOf")[0].(*document.Document).List("enum"))
	assert.Equal(t, []any{}, license.List("allOf"))
}

func TestSynthesizeMissingDefinitions(t *testing.T) {
	schema := document.New().Set("$schema", "http://json-schema.org/draft-07/schema#")

	_, err := Synthesize(&Catalog{}, schema)
	assert.Error(t, err)
}
