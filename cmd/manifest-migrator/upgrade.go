package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"manifest-migrator/internal/batch"
	"manifest-migrator/internal/diagnostic"
	"manifest-migrator/internal/docfile"
	"manifest-migrator/internal/migrate"
)

var upgradeFlags struct {
	objectJSON string
	to100      string
	to200      string
	batchFile  string
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade an O3DE object JSON file to a newer schema version",
	Long: `Upgrade an O3DE object JSON file (engine.json, project.json, gem.json,
template.json, repo.json or an extension manifest) to a newer schema
version. With no target flag the file is upgraded fully, in place.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if upgradeFlags.batchFile != "" {
			return runBatch(upgradeFlags.batchFile)
		}

		if upgradeFlags.objectJSON == "" {
			return fmt.Errorf("--object-json is required unless --batch is given")
		}

		switch {
		case upgradeFlags.to100 != "":
			return upgradeOne(upgradeFlags.objectJSON, migrate.Version100, upgradeFlags.to100)
		case upgradeFlags.to200 != "":
			return upgradeOne(upgradeFlags.objectJSON, migrate.Version200, upgradeFlags.to200)
		default:
			// no target specified: upgrade fully, in place
			return upgradeOne(upgradeFlags.objectJSON, migrate.Version200, upgradeFlags.objectJSON)
		}
	},
}

func init() {
	flags := upgradeCmd.Flags()
	flags.StringVar(&upgradeFlags.objectJSON, "object-json", "",
		"input O3DE JSON file to upgrade")
	flags.StringVar(&upgradeFlags.to100, "to-1-0-0", "",
		"upgrade to schema 1.0.0, writing to this path")
	flags.StringVar(&upgradeFlags.to200, "to-2-0-0", "",
		"upgrade to schema 2.0.0, writing to this path")
	flags.StringVar(&upgradeFlags.batchFile, "batch", "",
		"YAML batch file listing manifests to upgrade")

	upgradeCmd.MarkFlagsMutuallyExclusive("to-1-0-0", "to-2-0-0")
	upgradeCmd.MarkFlagsMutuallyExclusive("batch", "object-json")
}

// upgradeOne migrates a single manifest file and writes the result.
func upgradeOne(inputPath string, target migrate.Version, outputPath string) error {
	doc, err := docfile.Read(inputPath)
	if err != nil {
		slog.Error("failed to load json file", "path", inputPath, "error", err)
		return err
	}

	migrated, diags, err := migrate.Run(doc, target)
	if err != nil {
		slog.Error("failed to upgrade schema", "path", inputPath, "target", target, "error", err)
		return err
	}

	logDiagnostics(inputPath, diags)

	if err := docfile.Write(outputPath, migrated); err != nil {
		slog.Error("failed to write json file", "path", outputPath, "error", err)
		return err
	}

	slog.Info("upgraded", "path", inputPath, "target", target, "output", outputPath)

	return nil
}

// runBatch upgrades every entry of a batch file, stopping at the
// first failure.
func runBatch(path string) error {
	f, err := batch.LoadFile(path)
	if err != nil {
		slog.Error("failed to load batch file", "path", path, "error", err)
		return err
	}

	for _, entry := range f.Upgrades {
		target, err := migrate.ParseVersion(entry.To)
		if err != nil {
			slog.Error("bad batch entry", "object", entry.Object, "error", err)
			return err
		}

		output := entry.Output
		if output == "" {
			output = entry.Object
		}

		if err := upgradeOne(entry.Object, target, output); err != nil {
			return err
		}
	}

	return nil
}

func logDiagnostics(path string, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		slog.Warn(d.Message, "path", path, "code", d.Code, "field", d.Field)
	}

	for _, d := range diags.Infos {
		slog.Debug(d.Message, "path", path, "code", d.Code, "field", d.Field)
	}
}
