package migrate

import (
	"manifest-migrator/internal/diagnostic"
	"manifest-migrator/internal/document"
	"manifest-migrator/internal/remap"
)

// upgrade000To100 migrates a manifest from schema 0.0.0 to 1.0.0.
//
// This is a near-identity remap: every legacy field copies across
// under its own name, unknown fields are dropped, and version gains a
// "0.0.0" default. The output is headed by the 1.0.0 schema version.
func upgrade000To100(in *document.Document, _ Kind, _ *diagnostic.Diagnostics) (*document.Document, error) {
	mapped := remap.Apply(in, remap.Spec{
		remap.Copy("engine_name"),
		remap.Copy("project_name"),
		remap.Copy("gem_name"),
		remap.Copy("template_name"),
		remap.Copy("repo_name"),
		remap.Copy("restricted_name"),

		remap.Copy("engine"),
		remap.Copy("product_name"),
		remap.Copy("executable_name"),
		remap.Copy("modules"),
		remap.Copy("project_id"),

		remap.Copy("repo_uri"),

		// legacy key, misspelled since 0.0.0
		remap.Copy("additonal_info"),

		remap.Copy("last_updated"),

		remap.Copy("sha256"),

		remap.Copy("display_name"),
		remap.Copy("summary"),

		remap.Copy("origin"),
		remap.Copy("origin_url"),

		remap.WithDefault("version", "0.0.0"),

		remap.Copy("api_version"),

		remap.Copy("license"),
		remap.Copy("license_url"),

		remap.Copy("copyright"),

		remap.Copy("type"),

		remap.Copy("canonical_tags"),

		remap.Copy("user_tags"),

		remap.Copy("icon_path"),
		remap.Copy("icon_url"),

		remap.Copy("requirements"),

		remap.Copy("documentation_path"),
		remap.Copy("documentation_url"),

		remap.Copy("dependencies"),

		remap.Copy("O3DEVersion"),
		remap.Copy("O3DEBuildNumber"),

		remap.Copy("api_versions"),

		remap.Copy("file_version"),

		remap.Copy("build"),

		remap.Copy("gem_names"),

		remap.Copy("external_subdirectories"),

		remap.Copy("projects"),

		remap.Copy("templates"),

		remap.Copy("repos"),

		remap.Copy("restricted"),

		remap.Copy("copy_files"),
		remap.Copy("create_directories"),

		remap.Copy("restricted_platform_relative_path"),
		remap.Copy("template_restricted_platform_relative_path"),

		remap.Copy("source_control_uri"),
		remap.Copy("source_control_path"),
		remap.Copy("source_control_branch"),
		remap.Copy("source_control_tag"),

		remap.Copy("versions_data"),

		remap.Copy("platforms"),

		remap.Copy("compatible_engines"),

		remap.Copy("download_source_uri"),
	})

	// The remap may have carried over the input's own version stamp;
	// the authoritative one heads the output.
	mapped.Delete(SchemaVersionKey)

	out := document.New().Set(SchemaVersionKey, string(Version100))
	out.Merge(mapped)

	return out, nil
}
