package migrate

import (
	"fmt"
	"strings"

	"manifest-migrator/internal/diagnostic"
	"manifest-migrator/internal/document"
	"manifest-migrator/internal/heuristic"
	"manifest-migrator/internal/remap"
)

// Canonical identifiers for the stock engine values.
const (
	engineID    = "org.o3de.o3de"
	engineSDKID = "org.o3de.o3de-sdk"
)

// upgrade100To200 migrates a manifest from schema 1.0.0 to 2.0.0.
//
// This is the structural rewrite: flat legacy keys collapse into
// nested objects, bare names gain reverse-domain prefixes, the free
// text license becomes a classified license descriptor, and legacy
// tags are normalized against the canonical set.
func upgrade100To200(in *document.Document, kind Kind, diags *diagnostic.Diagnostics) (*document.Document, error) {
	prefix := heuristic.DomainPrefix(in)

	name := func(target, source string) remap.Rule {
		return remap.Map(target, source, synthesizeName(prefix, source, diags))
	}

	mapped := remap.Apply(in, remap.Spec{
		name("engine_name", "engine_name"),
		name("project_name", "project_name"),
		name("gem_name", "gem_name"),
		name("template_name", "template_name"),
		name("repo_name", "repo_name"),
		name("restricted_name", "extension_name"),

		remap.Map("engine", "engine", rewriteEngine),

		remap.Copy("product_name"),
		remap.Copy("executable_name"),
		remap.Copy("modules"),
		remap.Copy("project_id"),

		// legacy key, misspelled since 0.0.0
		remap.Copy("additonal_info"),

		remap.Copy("last_updated"),

		remap.Copy("sha256"),

		remap.Copy("display_name"),
		remap.Copy("summary"),

		remap.Computed("origin", func(in *document.Document) any {
			return newGroup().
				setString("name", in.String("origin")).
				setString("uri", in.String("origin_url")).
				build()
		}),

		remap.WithDefault("version", "0.0.0"),

		remap.Copy("api_version"),

		remap.Map("licenses", "license", classifyLicense(in)),

		remap.Copy("copyright"),

		remap.Map("gem_type", "type", lowercase),

		remap.Map("canonical_tags", "canonical_tags", filterTags(diags)),

		remap.Copy("user_tags"),

		remap.Computed("icon", func(in *document.Document) any {
			return newGroup().
				setString("relative_path", in.String("icon_path")).
				setString("uri", in.String("icon_url")).
				build()
		}),

		remap.Copy("requirements"),

		remap.Computed("documentation", func(in *document.Document) any {
			return newGroup().
				setString("relative_path", in.String("documentation_path")).
				setString("uri", in.String("documentation_url")).
				build()
		}),

		remap.Copy("O3DEVersion"),
		remap.Copy("O3DEBuildNumber"),

		remap.Copy("api_versions"),

		remap.Copy("file_version"),

		remap.Copy("build"),

		remap.Copy("copy_files"),
		remap.Copy("create_directories"),

		remap.CopyAs("restricted_platform_relative_path", "extension_platform_relative_path"),
		remap.CopyAs("template_restricted_platform_relative_path", "template_extension_platform_relative_path"),

		remap.Computed("compatibilities", buildCompatibilities),

		remap.Copy("platforms"),

		remap.Computed("download", func(in *document.Document) any {
			return buildDownload(in)
		}),

		remap.Computed("source_control", func(in *document.Document) any {
			return buildSourceControl(in)
		}),

		remap.Map("releases", "versions_data", buildReleases(diags)),

		remap.Computed("children", buildChildren),

		remap.Computed("dependencies", buildDependencies),
	})

	// The remapper carries the input's own version stamp; the
	// authoritative header pair is set below.
	mapped.Delete(SchemaVersionKey)

	out := document.New()

	if kind == KindUnknown {
		diags.AddWarning("kind_unknown",
			"no kind-identifying name key present; $schema omitted", "")
	} else {
		out.Set(SchemaKey, kind.SchemaURL())
	}

	out.Set(SchemaVersionKey, string(Version200))
	out.Merge(mapped)

	return out, nil
}

// synthesizeName returns a transform that leaves well-formed
// reverse-domain names alone and prefixes everything else with the
// synthesized domain, lowercased.
func synthesizeName(prefix, field string, diags *diagnostic.Diagnostics) remap.TransformFunc {
	return func(v any) any {
		s, ok := v.(string)
		if !ok || s == "" {
			return nil
		}

		if heuristic.IsReverseDomainFormat(s) {
			return s
		}

		synthesized := strings.ToLower(prefix + "." + s)
		diags.AddInfo("name_synthesized",
			fmt.Sprintf("%q rewritten to %q", s, synthesized), field)

		return synthesized
	}
}

// rewriteEngine maps the stock engine values to their canonical
// identifiers; anything else passes through unchanged.
func rewriteEngine(v any) any {
	switch v {
	case "o3de":
		return engineID
	case "o3de-sdk":
		return engineSDKID
	default:
		return v
	}
}

func lowercase(v any) any {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}

	return strings.ToLower(s)
}

// classifyLicense turns the legacy free-text license into a sequence
// of one license descriptor, keyed licenseId or custom_licenseId by
// the SPDX heuristic and merged with the sibling license_* fields.
func classifyLicense(in *document.Document) remap.TransformFunc {
	return func(v any) any {
		text, ok := v.(string)
		if !ok || text == "" {
			return nil
		}

		idKey := "custom_licenseId"
		if heuristic.LooksLikeSPDX(text) {
			idKey = "licenseId"
		}

		descriptor := document.New().Set(idKey, text)

		if ref := in.String("license_url"); ref != "" {
			descriptor.Set("reference", ref)
		}

		if path := in.String("license_path"); path != "" {
			descriptor.Set("relative_path", path)
		}

		if scope := in.String("license_scope"); scope != "" {
			descriptor.Set("scope", scope)
		}

		return []any{descriptor}
	}
}

// filterTags keeps only tags in the canonical set, normalized to their
// canonical casing. A non-sequence value drops the field entirely.
func filterTags(diags *diagnostic.Diagnostics) remap.TransformFunc {
	return func(v any) any {
		tags, ok := v.([]any)
		if !ok {
			diags.AddWarning("tags_not_list",
				"canonical_tags is not a sequence; dropped", "canonical_tags")
			return nil
		}

		kept := []any{}

		for _, t := range tags {
			s, ok := t.(string)
			if !ok {
				diags.AddWarning("tag_dropped", "non-string tag dropped", "canonical_tags")
				continue
			}

			canonical, ok := heuristic.CanonicalTagOf(s)
			if !ok {
				diags.AddWarning("tag_dropped",
					fmt.Sprintf("tag %q is not canonical; dropped", s), "canonical_tags")
				continue
			}

			kept = append(kept, canonical)
		}

		return kept
	}
}

func buildCompatibilities(in *document.Document) any {
	engines := []any{}

	for _, e := range in.List("compatible_engines") {
		s, ok := e.(string)
		if !ok || s == "" {
			continue
		}

		engines = append(engines, strings.ToLower("org.o3de."+s))
	}

	if len(engines) == 0 {
		return nil
	}

	return document.New().Set("engines", engines)
}

// buildDownload collapses the four flat download fields into the
// nested download object. Bare URIs gain a .zip suffix.
func buildDownload(src *document.Document) any {
	sourceURI := src.String("download_source_uri")
	lfsURI := src.String("download_lfs_uri")
	sourceSHA := src.String("sha256")
	lfsSHA := src.String("lfs_sha256")

	if sourceURI == "" && lfsURI == "" && sourceSHA == "" && lfsSHA == "" {
		return nil
	}

	uris := document.New()
	if sourceURI != "" {
		uris.Set("source_zip_uri", ensureSuffix(sourceURI, ".zip"))
	}

	if lfsURI != "" {
		uris.Set("lfs_zip_uri", ensureSuffix(lfsURI, ".zip"))
	}

	download := document.New().Set("uris", uris)

	if sourceSHA != "" {
		download.Set("source_zip_sha256", sourceSHA)
	}

	if lfsSHA != "" {
		download.Set("lfs_zip_sha256", lfsSHA)
	}

	return download
}

// buildSourceControl collapses the flat source_control_* fields. Bare
// URIs gain a .git suffix.
func buildSourceControl(src *document.Document) any {
	uri := src.String("source_control_uri")
	if uri != "" {
		uri = ensureSuffix(uri, ".git")
	}

	return newGroup().
		setString("uri", uri).
		setString("relative_path", src.String("source_control_path")).
		setString("branch", src.String("source_control_branch")).
		setString("tag", src.String("source_control_tag")).
		build()
}

// buildReleases rewrites each versions_data entry, re-applying the
// download and source-control collapsing rules scoped to that entry.
func buildReleases(diags *diagnostic.Diagnostics) remap.TransformFunc {
	return func(v any) any {
		entries, ok := v.([]any)
		if !ok {
			diags.AddWarning("releases_not_list",
				"versions_data is not a sequence; dropped", "versions_data")
			return nil
		}

		releases := []any{}

		for _, e := range entries {
			entry, ok := e.(*document.Document)
			if !ok {
				diags.AddWarning("release_dropped",
					"versions_data entry is not an object; dropped", "versions_data")
				continue
			}

			release := document.New()

			version, ok := entry.Get("version")
			if !ok || version == nil {
				version = "0.0.0"
			}

			release.Set("version", version)

			if download := buildDownload(entry); download != nil {
				release.Set("download", download)
			}

			if sc := buildSourceControl(entry); sc != nil {
				release.Set("source_control", sc)
			}

			releases = append(releases, release)
		}

		return releases
	}
}

// buildChildren gathers the non-empty child object lists, renaming
// external_subdirectories to gems.
func buildChildren(in *document.Document) any {
	children := newGroup()

	for _, m := range []struct{ target, source string }{
		{"engines", "engines"},
		{"templates", "templates"},
		{"projects", "projects"},
		{"repos", "repos"},
		{"gems", "external_subdirectories"},
	} {
		if list := in.List(m.source); len(list) > 0 {
			children.set(m.target, list)
		}
	}

	return children.build()
}

// buildDependencies unions gem_names and dependencies into
// dependencies.gems, synthesizing a reverse-domain identifier with a
// version floor for bare names and deduplicating in concatenation
// order.
func buildDependencies(in *document.Document) any {
	var gems []any

	seen := map[string]bool{}

	for _, source := range []string{"gem_names", "dependencies"} {
		for _, g := range in.List(source) {
			s, ok := g.(string)
			if !ok || s == "" {
				continue
			}

			if !heuristic.IsReverseDomainFormat(s) {
				s = strings.ToLower("org.o3de." + s + ">=0.0.0")
			}

			if seen[s] {
				continue
			}

			seen[s] = true

			gems = append(gems, s)
		}
	}

	if len(gems) == 0 {
		return nil
	}

	return document.New().Set("gems", gems)
}
