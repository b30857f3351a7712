package docfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifest-migrator/internal/document"
)

func TestReadToleratesJSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gem.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// gem manifest
		"gem_name": "MyGem",
	}`), 0o644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "MyGem", doc.String("gem_name"))
}

func TestWriteIndentsAndCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "gem.json")

	doc := document.New().
		Set("$schemaVersion", "1.0.0").
		Set("gem_name", "MyGem")

	require.NoError(t, Write(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := "{\n    \"$schemaVersion\": \"1.0.0\",\n    \"gem_name\": \"MyGem\"\n}\n"
	assert.Equal(t, expected, string(data))
}

func TestRoundTripPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")

	require.NoError(t, os.WriteFile(in, []byte(`{"z": "1", "a": {"m": "2", "b": "3"}}`), 0o644))

	doc, err := Read(in)
	require.NoError(t, err)
	require.NoError(t, Write(out, doc))

	reread, err := Read(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, reread.Keys())
	assert.Equal(t, []string{"m", "b"}, reread.Object("a").Keys())
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gem_name": `), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}
