// Package docfile reads and writes manifest documents on disk. Reads
// tolerate JSONC (comments and trailing commas); writes are plain JSON
// with four-space indentation, matching the layout of hand-maintained
// manifests.
package docfile

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"manifest-migrator/internal/document"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Read loads a manifest or schema document from path.
func Read(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return doc, nil
}

// Write persists a document to path, creating parent directories as
// needed.
func Write(path string, doc *document.Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
