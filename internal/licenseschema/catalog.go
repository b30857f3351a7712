package licenseschema

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	json "github.com/goccy/go-json"
)

// DefaultCatalogURL is the canonical SPDX license list.
const DefaultCatalogURL = "https://raw.githubusercontent.com/spdx/license-list-data/refs/heads/main/json/licenses.json"

// CatalogEntry is one license record from the SPDX catalog. Entries
// are never mutated.
type CatalogEntry struct {
	Reference             string   `json:"reference"`
	IsDeprecatedLicenseID bool     `json:"isDeprecatedLicenseId"`
	DetailsURL            string   `json:"detailsUrl"`
	Name                  string   `json:"name"`
	LicenseID             string   `json:"licenseId"`
	SeeAlso               []string `json:"seeAlso"`
	IsOsiApproved         bool     `json:"isOsiApproved"`
}

// Catalog is the SPDX license list document.
type Catalog struct {
	LicenseListVersion string         `json:"licenseListVersion"`
	Licenses           []CatalogEntry `json:"licenses"`
}

// ParseCatalog decodes a catalog from JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog

	err := json.Unmarshal(data, &catalog)
	if err != nil {
		return nil, fmt.Errorf("parsing license catalog: %w", err)
	}

	return &catalog, nil
}

// LoadCatalog reads a catalog from a local file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading license catalog %s: %w", path, err)
	}

	return ParseCatalog(data)
}

// FetchCatalog downloads a catalog. Retrieval failure is terminal for
// the invocation; there is no retry.
func FetchCatalog(ctx context.Context, url string) (*Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching license catalog %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching license catalog %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading license catalog response: %w", err)
	}

	return ParseCatalog(data)
}
