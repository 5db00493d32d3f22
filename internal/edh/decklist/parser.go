package decklist

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed decklist line: a quantity and the raw card name.
type Entry struct {
	Quantity int
	Name     string
}

var (
	// Leading "4 Card Name" or "4x Card Name" quantity prefix.
	quantityPrefixRE = regexp.MustCompile(`(?i)^(\d+)\s*x?\s*(.+)$`)
	// A "number then card text" occurrence inside a line. More than one
	// match means the line is continuous multi-card text.
	cardPatternRE = regexp.MustCompile(`(?i)(\d+)\s*x?\s+([A-Za-z])`)
	// Residual trailing digits left behind by continuous-text splitting.
	trailingDigitsRE = regexp.MustCompile(`\s*\d+\s*$`)
)

// ParseBlock splits a multi-line text blob into individual decklist lines.
// Lines carrying several card entries (semicolon-separated or run-together
// continuous text) are split into one line per entry.
func ParseBlock(block string) []string {
	if block == "" {
		return nil
	}

	normalized := strings.ReplaceAll(block, "\r", "\n")
	var parsed []string

	for _, rawLine := range strings.Split(normalized, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if strings.Contains(line, ";") {
			var segments []string
			for _, segment := range strings.Split(line, ";") {
				if s := strings.TrimSpace(segment); s != "" {
					segments = append(segments, s)
				}
			}
			if len(segments) > 1 {
				parsed = append(parsed, segments...)
				continue
			}
		}

		switch matches := cardPatternRE.FindAllStringIndex(line, -1); len(matches) {
		case 0, 1:
			// Zero matches may still be a bare card name; keep the line.
			parsed = append(parsed, line)
		default:
			parsed = append(parsed, SplitContinuous(line)...)
		}
	}

	return parsed
}

// SplitContinuous breaks run-together text like "1 Sol Ring 1 Ponder 2 Island"
// into individual entries. Each quantity match opens a card name that runs to
// the start of the next quantity. The heuristic is conservative: if splitting
// would produce fewer than two entries, the original line is returned intact.
func SplitContinuous(text string) []string {
	matches := cardPatternRE.FindAllStringSubmatchIndex(text, -1)
	if len(matches) <= 1 {
		return []string{text}
	}

	var cards []string
	for i, match := range matches {
		quantity := text[match[2]:match[3]]
		nameStart := match[4] // first letter of the card name

		nameEnd := len(text)
		if i < len(matches)-1 {
			nameEnd = matches[i+1][2] // start of the next quantity
		}

		name := strings.TrimSpace(text[nameStart:nameEnd])
		name = strings.TrimRight(name, ".,;:")
		name = strings.TrimSpace(trailingDigitsRE.ReplaceAllString(name, ""))

		if name != "" {
			cards = append(cards, quantity+" "+name)
		}
	}

	if len(cards) < 2 {
		return []string{text}
	}
	return cards
}

// ParseEntry extracts the quantity and raw name from one decklist line.
// Lines without a leading quantity default to quantity 1.
func ParseEntry(line string) Entry {
	line = strings.TrimSpace(line)

	if m := quantityPrefixRE.FindStringSubmatch(line); m != nil {
		if quantity, err := strconv.Atoi(m[1]); err == nil && quantity > 0 {
			return Entry{Quantity: quantity, Name: strings.TrimSpace(m[2])}
		}
	}
	return Entry{Quantity: 1, Name: line}
}

// BuildEntries parses and normalizes a resolved list of decklist lines.
// Empty lines are skipped; names come out normalized.
func BuildEntries(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry := ParseEntry(line)
		entry.Name = NormalizeName(entry.Name)
		entries = append(entries, entry)
	}
	return entries
}
