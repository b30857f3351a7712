package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifest-migrator/internal/diagnostic"
	"manifest-migrator/internal/document"
)

func TestUpgrade000To100StampsVersionFirst(t *testing.T) {
	in, err := document.Parse([]byte(`{"gem_name": "MyGem", "display_name": "My Gem"}`))
	require.NoError(t, err)

	out, err := upgrade000To100(in, KindGem, &diagnostic.Diagnostics{})
	require.NoError(t, err)

	keys := out.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, SchemaVersionKey, keys[0])
	assert.Equal(t, "1.0.0", out.String(SchemaVersionKey))
}

func TestUpgrade000To100CopiesFieldsVerbatim(t *testing.T) {
	in, err := document.Parse([]byte(`{
		"engine_name": "MyEngine",
		"origin": "Vendor",
		"origin_url": "https://vendor.com",
		"license": "Apache-2.0",
		"canonical_tags": ["Engine"],
		"unknown_field": "dropped"
	}`))
	require.NoError(t, err)

	out, err := upgrade000To100(in, KindEngine, &diagnostic.Diagnostics{})
	require.NoError(t, err)

	assert.Equal(t, "MyEngine", out.String("engine_name"))
	assert.Equal(t, "Vendor", out.String("origin"))
	assert.Equal(t, "https://vendor.com", out.String("origin_url"))
	assert.Equal(t, "Apache-2.0", out.String("license"))
	assert.Equal(t, []any{"Engine"}, out.List("canonical_tags"))

	// fields outside the mapping table are dropped
	assert.False(t, out.Has("unknown_field"))
}

func TestUpgrade000To100DefaultsVersion(t *testing.T) {
	in := document.New().Set("gem_name", "MyGem")

	out, err := upgrade000To100(in, KindGem, &diagnostic.Diagnostics{})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0", out.String("version"))
}

func TestUpgrade000To100KeepsExplicitVersion(t *testing.T) {
	in := document.New().Set("gem_name", "MyGem").Set("version", "1.2.3")

	out, err := upgrade000To100(in, KindGem, &diagnostic.Diagnostics{})
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", out.String("version"))
}
