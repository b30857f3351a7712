package heuristic

import (
	"strings"

	"manifest-migrator/internal/document"
)

// FallbackDomainPrefix is used when no qualifying URL exists in the
// document.
const FallbackDomainPrefix = "com.domain"

var urlSchemes = []string{"https://", "http://", "ftps://", "ftp://"}

// Hosts that identify shared code-hosting services rather than the
// object's own origin. Matched by substring, so subdomains qualify too.
var codeHostingDomains = []string{
	"github.com",
	"githubusercontent.com",
	"gitlab.com",
	"bitbucket.org",
	"dev.azure.com",
	"sourceforge.net",
	"codeberg.org",
	"launchpad.net",
}

// DomainPrefix scans the document's string values in key order for the
// first URL whose host is not a known code-hosting service, and
// returns the host's dot-segments in reverse order ("example.com" ->
// "com.example"). The prefix is prepended to legacy bare names that
// fail IsReverseDomainFormat.
func DomainPrefix(doc *document.Document) string {
	for _, key := range doc.Keys() {
		value, _ := doc.Get(key)

		text, ok := value.(string)
		if !ok || !containsURL(text) {
			continue
		}

		host := hostOf(text)
		if isCodeHostingHost(host) {
			continue
		}

		parts := strings.Split(host, ".")
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}

		return strings.Join(parts, ".")
	}

	return FallbackDomainPrefix
}

func containsURL(text string) bool {
	for _, scheme := range urlSchemes {
		if strings.Contains(text, scheme) {
			return true
		}
	}

	return false
}

// hostOf strips every URL scheme from text and returns everything up
// to the first slash.
func hostOf(text string) string {
	for _, scheme := range urlSchemes {
		text = strings.ReplaceAll(text, scheme, "")
	}

	host, _, _ := strings.Cut(text, "/")

	return host
}

func isCodeHostingHost(host string) bool {
	for _, known := range codeHostingDomains {
		if strings.Contains(host, known) {
			return true
		}
	}

	return false
}
