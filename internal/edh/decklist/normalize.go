// Package decklist parses raw decklist input into card entries. Input arrives
// in several shapes (line lists, text blobs, chunked blobs, platform
// exports), each with its own print artifacts that must be stripped before
// names can be matched against curated card lists.
package decklist

import (
	"regexp"
	"strings"
)

var (
	// "(M21) 123" style Arena/exporter suffixes.
	setSuffixRE = regexp.MustCompile(`\s*\(([A-Z0-9]{2,5})\)\s*\d*$`)
	// "[BRO] #270" style bracketed set codes.
	bracketSuffixRE = regexp.MustCompile(`\s*\[[A-Z0-9]{2,5}\]\s*(?:#?\d+)?$`)
	// Lingering "#123" collector markers.
	hashSuffixRE = regexp.MustCompile(`\s+#\d+$`)
)

// NormalizeName strips set-code and collector-number suffixes from an
// exported card name. Normalizing an already-clean name is a no-op.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	cleaned := strings.TrimSpace(name)
	cleaned = setSuffixRE.ReplaceAllString(cleaned, "")
	cleaned = bracketSuffixRE.ReplaceAllString(cleaned, "")
	cleaned = hashSuffixRE.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}
