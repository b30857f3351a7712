package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"manifest-migrator/internal/docfile"
	"manifest-migrator/internal/licenseschema"
)

var licenseFlags struct {
	patternsSchema string
	licensesJSON   string
	outputSchema   string
}

var licenseToSchemaCmd = &cobra.Command{
	Use:   "license-to-schema",
	Short: "Rebuild the license definition of the patterns schema from the SPDX catalog",
	Long: `Rebuild the license definition of the patterns schema from the SPDX
license catalog. The catalog is downloaded from the SPDX license-list-data
repo unless a local copy is passed with --licenses-json.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := docfile.Read(licenseFlags.patternsSchema)
		if err != nil {
			slog.Error("failed to load json file", "path", licenseFlags.patternsSchema, "error", err)
			return err
		}

		var catalog *licenseschema.Catalog

		if licenseFlags.licensesJSON != "" {
			catalog, err = licenseschema.LoadCatalog(licenseFlags.licensesJSON)
		} else {
			slog.Info("downloading license catalog", "url", licenseschema.DefaultCatalogURL)
			catalog, err = licenseschema.FetchCatalog(cmd.Context(), licenseschema.DefaultCatalogURL)
		}

		if err != nil {
			slog.Error("failed to load license catalog", "error", err)
			return err
		}

		updated, err := licenseschema.Synthesize(catalog, schema)
		if err != nil {
			slog.Error("failed to synthesize license schema", "error", err)
			return err
		}

		// default to updating the patterns schema in place
		output := licenseFlags.outputSchema
		if output == "" {
			output = licenseFlags.patternsSchema
		}

		if err := docfile.Write(output, updated); err != nil {
			slog.Error("failed to write json file", "path", output, "error", err)
			return err
		}

		slog.Info("license schema updated", "output", output, "licenses", len(catalog.Licenses))

		return nil
	},
}

func init() {
	flags := licenseToSchemaCmd.Flags()
	flags.StringVar(&licenseFlags.patternsSchema, "current-patterns-schema-json", "",
		"path to the current patterns schema json file")
	flags.StringVar(&licenseFlags.licensesJSON, "licenses-json", "",
		"local copy of the SPDX licenses.json; downloaded when omitted")
	flags.StringVar(&licenseFlags.outputSchema, "output-patterns-schema-json", "",
		"output path; the current schema is updated in place when omitted")

	_ = licenseToSchemaCmd.MarkFlagRequired("current-patterns-schema-json")
}
