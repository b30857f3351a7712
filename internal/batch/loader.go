// Package batch provides YAML batch files listing manifests to
// upgrade in one run.
//
// A batch file looks like:
//
//	version: "1"
//	upgrades:
//	  - object: ./Gems/MyGem/gem.json
//	    to: 2.0.0
//	    output: ./Gems/MyGem/gem-2.0.0.json
//	  - object: ./project.json
//
// "to" defaults to 2.0.0 and "output" defaults to in-place.
package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a parsed batch file.
type File struct {
	Version  string  `yaml:"version"`
	Upgrades []Entry `yaml:"upgrades"`
}

// Entry names one manifest to upgrade.
type Entry struct {
	// Object is the path of the manifest to upgrade.
	Object string `yaml:"object"`
	// To is the target schema version.
	To string `yaml:"to"`
	// Output is where the migrated manifest is written; empty means
	// in-place.
	Output string `yaml:"output"`
}

// LoadFile loads and parses a YAML batch file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch YAML: %w", err)
	}

	// Apply defaults and validate
	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Upgrades {
		e := &f.Upgrades[i]
		if e.To == "" {
			e.To = "2.0.0"
		}
	}
}

func validate(f *File) error {
	for i := range f.Upgrades {
		if f.Upgrades[i].Object == "" {
			return fmt.Errorf("batch entry %d: object path is required", i)
		}
	}

	return nil
}
