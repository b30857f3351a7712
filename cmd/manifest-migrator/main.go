// Package main provides the CLI entrypoint for manifest-migrator.
//
// manifest-migrator is a maintenance tool for O3DE object manifests
// that:
//   - Upgrades engine/project/gem/template/repo/extension JSON files
//     between schema versions (0.0.0 -> 1.0.0 -> 2.0.0)
//   - Regenerates the license fragment of the patterns schema from the
//     SPDX license catalog
//   - Fetches single files from remote git repos via sparse checkout
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
