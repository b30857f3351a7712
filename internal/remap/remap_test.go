package remap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifest-migrator/internal/document"
)

func TestApplyOutputOrderFollowsSpec(t *testing.T) {
	in, err := document.Parse([]byte(`{"c": "3", "a": "1", "b": "2"}`))
	require.NoError(t, err)

	out := Apply(in, Spec{
		Copy("a"),
		Copy("b"),
		Copy("c"),
	})

	assert.Equal(t, []string{"a", "b", "c"}, out.Keys())
}

func TestApplyOmitsAbsentSources(t *testing.T) {
	in := document.New().Set("present", "yes")

	out := Apply(in, Spec{
		Copy("present"),
		Copy("missing"),
	})

	assert.Equal(t, []string{"present"}, out.Keys())
	assert.False(t, out.Has("missing"))
}

func TestApplyDefaultOnAbsentSource(t *testing.T) {
	in := document.New()

	out := Apply(in, Spec{
		WithDefault("version", "0.0.0"),
	})

	assert.Equal(t, "0.0.0", out.String("version"))
}

func TestApplyDefaultOnNullValue(t *testing.T) {
	in, err := document.Parse([]byte(`{"version": null}`))
	require.NoError(t, err)

	out := Apply(in, Spec{
		WithDefault("version", "0.0.0"),
	})

	assert.Equal(t, "0.0.0", out.String("version"))
}

func TestApplyTransformNilSuppressesKey(t *testing.T) {
	in := document.New().Set("type", "Code").Set("empty", "")

	lower := func(v any) any {
		s, _ := v.(string)
		if s == "" {
			return nil
		}

		return strings.ToLower(s)
	}

	out := Apply(in, Spec{
		Map("gem_type", "type", lower),
		Map("gone", "empty", lower),
	})

	assert.Equal(t, "code", out.String("gem_type"))
	assert.False(t, out.Has("gone"))
}

func TestApplyComputedReadsWholeDocument(t *testing.T) {
	in := document.New().Set("first", "a").Set("second", "b")

	out := Apply(in, Spec{
		Computed("joined", func(in *document.Document) any {
			return in.String("first") + in.String("second")
		}),
		Computed("suppressed", func(*document.Document) any { return nil }),
	})

	assert.Equal(t, "ab", out.String("joined"))
	assert.False(t, out.Has("suppressed"))
}

func TestApplyRename(t *testing.T) {
	in := document.New().Set("extension_name", "MyExt")

	out := Apply(in, Spec{
		CopyAs("restricted_name", "extension_name"),
	})

	assert.Equal(t, "MyExt", out.String("restricted_name"))
}
