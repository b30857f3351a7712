package document

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	doc, err := Parse([]byte(`{"zebra": 1, "alpha": "two", "mango": true}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "alpha", "mango"}, doc.Keys())
}

func TestParseNested(t *testing.T) {
	doc, err := Parse([]byte(`{
		"name": "MyGem",
		"download": {"uris": {"source_zip_uri": "https://example.com/a.zip"}},
		"tags": ["Gem", "Template"],
		"count": 3,
		"empty": []
	}`))
	require.NoError(t, err)

	download := doc.Object("download")
	require.NotNil(t, download)

	uris := download.Object("uris")
	require.NotNil(t, uris)
	assert.Equal(t, "https://example.com/a.zip", uris.String("source_zip_uri"))

	assert.Equal(t, []any{"Gem", "Template"}, doc.List("tags"))
	assert.Equal(t, []any{}, doc.List("empty"))

	count, ok := doc.Get("count")
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), count)
}

func TestParseToleratesComments(t *testing.T) {
	doc, err := Parse([]byte(`{
		// the gem name
		"gem_name": "MyGem", /* trailing comma next */
	}`))
	require.NoError(t, err)

	assert.Equal(t, "MyGem", doc.String("gem_name"))
}

func TestMarshalRoundTrip(t *testing.T) {
	in := `{"b":"1","a":{"y":"2","x":"3"},"c":[{"k":"v"},"s",null],"n":1.25}`

	doc, err := Parse([]byte(in))
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Equal(t, in, string(out))
}

func TestSetKeepsPositionOnOverwrite(t *testing.T) {
	doc := New().Set("a", "1").Set("b", "2").Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, doc.Keys())
	assert.Equal(t, "3", doc.String("a"))
}

func TestDelete(t *testing.T) {
	doc := New().Set("a", "1").Set("b", "2").Set("c", "3")
	doc.Delete("b")

	assert.Equal(t, []string{"a", "c"}, doc.Keys())
	assert.False(t, doc.Has("b"))

	// deleting a missing key is a no-op
	doc.Delete("b")
	assert.Equal(t, 2, doc.Len())
}

func TestMergeUpdateSemantics(t *testing.T) {
	base := New().Set("$schemaVersion", "1.0.0").Set("name", "old")
	mapped := New().Set("name", "new").Set("extra", "value")

	base.Merge(mapped)

	assert.Equal(t, []string{"$schemaVersion", "name", "extra"}, base.Keys())
	assert.Equal(t, "new", base.String("name"))
}

func TestParseRejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)
}
