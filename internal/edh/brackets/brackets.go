// Package brackets implements the Commander power-bracket system: card
// classification against curated lists, heuristic bracket inference, and
// validation of a deck against a target bracket's restrictions.
package brackets

// Bracket names, ordered from lowest to highest power.
const (
	BracketExhibition = "exhibition"
	BracketCore       = "core"
	BracketUpgraded   = "upgraded"
	BracketOptimized  = "optimized"
	BracketCEDH       = "cedh"
)

// Definition describes one bracket tier: its level, player expectations, and
// deckbuilding restrictions.
type Definition struct {
	Level        int               `json:"level"`
	Name         string            `json:"name"`
	Expectations map[string]string `json:"expectations"`
	Restrictions map[string]string `json:"restrictions"`
}

// Definitions holds the five bracket tiers, keyed by bracket name.
var Definitions = map[string]Definition{
	BracketExhibition: {
		Level: 1,
		Name:  "Exhibition",
		Expectations: map[string]string{
			"focus":          "Theme over power",
			"win_conditions": "Highly thematic or substandard",
			"gameplay":       "At least 9 turns before win/loss",
			"complexity":     "Opportunity to show off creations",
			"mindset":        "Casual Mindset - Heavy Theme Focus",
		},
		Restrictions: map[string]string{
			"game_changers":    "NO Game Changers",
			"mass_land_denial": "NO Mass Land Denial",
			"extra_turns":      "NO Extra Turns",
			"combos":           "NO 2-Card Combos (exceptions for highly thematic cards)",
		},
	},
	BracketCore: {
		Level: 2,
		Name:  "Core",
		Expectations: map[string]string{
			"focus":          "Mechanically focused with creativity and entertainment",
			"win_conditions": "Incremental, telegraphed, disruptible",
			"gameplay":       "At least 8 turns before win/loss",
			"complexity":     "Low pressure, proactive, considerate",
			"mindset":        "Casual Mindset - Mechanical Focus",
		},
		Restrictions: map[string]string{
			"game_changers":    "NO Game Changers",
			"mass_land_denial": "NO Mass Land Denial",
			"extra_turns":      "NO Chaining Extra Turns",
			"combos":           "NO 2-Card Combos",
		},
	},
	BracketUpgraded: {
		Level: 3,
		Name:  "Upgraded",
		Expectations: map[string]string{
			"focus":          "Powered up with strong synergy and high card quality",
			"win_conditions": "Can be played from hand in one turn",
			"gameplay":       "At least 6 turns before win/loss",
			"complexity":     "Many proactive and reactive plays",
			"mindset":        "Moving Towards Competitive - Synergy & Quality",
		},
		Restrictions: map[string]string{
			"game_changers":    "0-3 Game Changers",
			"mass_land_denial": "NO Mass Land Denial",
			"extra_turns":      "NO Chaining Extra Turns",
			"combos":           "NO 2-Card Combos (before turn 6)",
		},
	},
	BracketOptimized: {
		Level: 4,
		Name:  "Optimized",
		Expectations: map[string]string{
			"focus":          "Lethal, consistent, fast - designed to take people down as fast as possible",
			"win_conditions": "Vary from archetype to archetype, can end game quickly and suddenly",
			"gameplay":       "At least 4 turns before win/loss",
			"complexity":     "Explosive and powerful, huge threats and efficient disruption",
			"mindset":        "Competitive Mindset - Speed & Lethality (not cEDH metagame)",
		},
		Restrictions: map[string]string{
			"game_changers":    "NO DECK RESTRICTIONS",
			"mass_land_denial": "NO DECK RESTRICTIONS",
			"extra_turns":      "NO DECK RESTRICTIONS",
			"combos":           "NO DECK RESTRICTIONS",
		},
	},
	BracketCEDH: {
		Level: 5,
		Name:  "cEDH",
		Expectations: map[string]string{
			"focus":          "Meticulously designed to battle in the cEDH metagame",
			"win_conditions": "Optimized for efficiency and consistency",
			"gameplay":       "Games could end on any turn",
			"complexity":     "Intricate and advanced, razor-thin margins for error",
			"mindset":        "Competitive Mindset - Metagame Mastery",
		},
		Restrictions: map[string]string{
			"game_changers":    "NO DECK RESTRICTIONS",
			"mass_land_denial": "NO DECK RESTRICTIONS",
			"extra_turns":      "NO DECK RESTRICTIONS",
			"combos":           "NO DECK RESTRICTIONS",
		},
	},
}

// Names returns the bracket names in ascending power order.
func Names() []string {
	return []string{BracketExhibition, BracketCore, BracketUpgraded, BracketOptimized, BracketCEDH}
}

// IsValid reports whether name is a known bracket.
func IsValid(name string) bool {
	_, ok := Definitions[name]
	return ok
}

// GameChangers returns the current Game Changers list.
func GameChangers() []string {
	return append([]string(nil), gameChangerList...)
}

// GameChangersRemoved returns cards removed in the October 2025 update.
func GameChangersRemoved() []string {
	return append([]string(nil), gameChangersRemoved2025...)
}

// ComboPairs returns the curated early-game combo pairs.
func ComboPairs() [][2]string {
	return append([][2]string(nil), comboPairList...)
}

// MassLandDenialSample returns up to n entries of the mass land denial list.
func MassLandDenialSample(n int) []string {
	if n > len(massLandDenialList) {
		n = len(massLandDenialList)
	}
	return append([]string(nil), massLandDenialList[:n]...)
}
