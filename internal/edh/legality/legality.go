// Package legality checks Commander format deck legality: the singleton rule
// with its explicit exceptions, the 100-card total, and the banned list.
package legality

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ramonehamilton/EDH-Companion/internal/edh/brackets"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/decklist"
)

// unlimitedDuplicates are the cards exempt from the singleton rule: basic
// lands, snow-covered basics, and the handful of cards whose rules text
// explicitly allows any number of copies. Keys are lowercase.
var unlimitedDuplicates = map[string]bool{
	"plains":   true,
	"island":   true,
	"swamp":    true,
	"mountain": true,
	"forest":   true,
	"wastes":   true,

	"snow-covered plains":   true,
	"snow-covered island":   true,
	"snow-covered swamp":    true,
	"snow-covered mountain": true,
	"snow-covered forest":   true,
	"snow-covered wastes":   true,

	"relentless rats":        true,
	"shadowborn apostle":     true,
	"rat colony":             true,
	"dragon's approach":      true,
	"persistent petitioners": true,
	"seven dwarves":          true,
}

// bannedCards is a starter banlist; a comprehensive one would come from an
// external source.
var bannedCards = []string{
	"Ancestral Recall",
	"Black Lotus",
	"Time Walk",
	"Mox Sapphire",
	"Mox Jet",
	"Mox Pearl",
	"Mox Ruby",
	"Mox Emerald",
}

// Result is the outcome of a legality check.
type Result struct {
	IsLegal           bool           `json:"is_legal"`
	Issues            []string       `json:"issues"`
	Warnings          []string       `json:"warnings"`
	IllegalDuplicates map[string]int `json:"illegal_duplicates"`
}

// IsUnlimited reports whether the card may appear any number of times.
func IsUnlimited(name string) bool {
	return unlimitedDuplicates[strings.ToLower(decklist.NormalizeName(name))]
}

// FindIllegalDuplicates sums quantities per normalized name and returns the
// names whose totals break the singleton rule.
func FindIllegalDuplicates(cards []brackets.Card) map[string]int {
	counts := make(map[string]int, len(cards))
	for _, card := range cards {
		quantity := card.Quantity
		if quantity < 1 {
			quantity = 1
		}
		counts[decklist.NormalizeName(card.Name)] += quantity
	}

	illegal := make(map[string]int)
	for name, total := range counts {
		if total <= 1 {
			continue
		}
		if IsUnlimited(name) {
			continue
		}
		illegal[name] = total
	}
	return illegal
}

// HasDuplicates reports whether the deck breaks the singleton rule at all.
func HasDuplicates(cards []brackets.Card) bool {
	return len(FindIllegalDuplicates(cards)) > 0
}

// Check validates the deck against the Commander format rules. The 100-card
// total is only checked when a commander is supplied, since without one the
// expected total is ambiguous. duplicates may be nil, in which case they are
// derived from the cards.
func Check(cards []brackets.Card, commander string, duplicates map[string]int) Result {
	issues := []string{}
	warnings := []string{}

	if duplicates == nil {
		duplicates = FindIllegalDuplicates(cards)
	}

	if commander != "" {
		totalMainDeck := brackets.TotalCardCount(cards)
		commanderPresent := false
		for _, card := range cards {
			if strings.EqualFold(card.Name, commander) {
				commanderPresent = true
				break
			}
		}

		totalWithCommander := totalMainDeck
		if !commanderPresent {
			totalWithCommander++
		}

		if totalWithCommander != 100 {
			inclusion := "excludes"
			if commanderPresent {
				inclusion = "includes"
			}
			issues = append(issues, fmt.Sprintf(
				"Deck must have exactly 99 cards plus 1 commander (total 100 cards, detected %d non-commander cards and %s the commander).",
				totalMainDeck, inclusion))
		}
	}

	if len(duplicates) > 0 {
		names := make([]string, 0, len(duplicates))
		for name := range duplicates {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s x%d", name, duplicates[name]))
		}
		issues = append(issues,
			"Commander is a singleton format. Only basic lands and a handful of cards "+
				"that explicitly break this rule can appear more than once. Duplicate cards "+
				"detected: "+strings.Join(parts, ", ")+".")
	}

	for _, card := range cards {
		for _, banned := range bannedCards {
			if card.Name == banned {
				issues = append(issues, fmt.Sprintf("Card '%s' is banned in Commander", card.Name))
			}
		}
	}

	return Result{
		IsLegal:           len(issues) == 0,
		Issues:            issues,
		Warnings:          warnings,
		IllegalDuplicates: duplicates,
	}
}
