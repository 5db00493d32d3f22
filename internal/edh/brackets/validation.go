package brackets

import (
	"fmt"
	"strings"
)

// Validation is the result of checking a deck against a target bracket's
// restrictions.
type Validation struct {
	TargetBracket     string                 `json:"target_bracket"`
	OverallCompliance bool                   `json:"overall_compliance"`
	BracketScore      int                    `json:"bracket_score"`
	ComplianceDetails map[string]interface{} `json:"compliance_details,omitempty"`
	Violations        []string               `json:"violations"`
	Recommendations   []string               `json:"recommendations"`
}

// Validate checks the classified deck against the target bracket. Violations
// are restriction breaches; recommendations are advisory and never affect
// compliance. bracketInferred records whether the target came from inference
// rather than the request.
func Validate(cards []Card, targetBracket string, bracketInferred bool, snapshot *Snapshot, extraTurnCards map[string]string) Validation {
	if !IsValid(targetBracket) {
		return Validation{
			TargetBracket:     targetBracket,
			OverallCompliance: false,
			BracketScore:      1,
			Violations:        []string{fmt.Sprintf("Invalid bracket: %s", targetBracket)},
			Recommendations:   []string{"Valid brackets: " + strings.Join(Names(), ", ")},
		}
	}

	counts := countCharacteristics(cards, snapshot.ComboPairs)

	var deckExtraTurnCards []string
	for _, card := range cards {
		if _, ok := extraTurnCards[card.Name]; ok {
			deckExtraTurnCards = append(deckExtraTurnCards, card.Name)
		}
	}
	extraTurnCount := len(deckExtraTurnCards)
	hasChainingPotential := extraTurnCount > 1

	detectedCombos := DetectCombos(cards, snapshot.ComboPairs)

	violations := []string{}
	recommendations := []string{}

	switch targetBracket {
	case BracketExhibition:
		if counts.gameChangers > 0 {
			violations = append(violations, fmt.Sprintf("Game changers found in Exhibition bracket (%d found)", counts.gameChangers))
			recommendations = append(recommendations, "Consider moving to Core bracket or removing game changers")
		}
		if counts.massLandDenial > 0 {
			violations = append(violations, fmt.Sprintf("Mass land denial found in Exhibition bracket (%d found)", counts.massLandDenial))
			recommendations = append(recommendations, "Consider moving to Core bracket or removing mass land denial")
		}
		if extraTurnCount > 0 {
			violations = append(violations, "Extra turn cards found in Exhibition bracket: "+strings.Join(deckExtraTurnCards, ", "))
			recommendations = append(recommendations, "Exhibition bracket prohibits extra turn cards - consider Core bracket")
		}
		if len(detectedCombos) > 0 {
			violations = append(violations, "2-card combos found in Exhibition bracket: "+strings.Join(FormatCombos(detectedCombos), ", "))
			recommendations = append(recommendations, "Exhibition allows combos only if highly thematic - consider Core bracket")
		}
		if counts.tutors > 3 {
			recommendations = append(recommendations, fmt.Sprintf("High tutor count (%d) may conflict with theme focus in Exhibition", counts.tutors))
		}

	case BracketCore:
		if counts.gameChangers > 0 {
			violations = append(violations, fmt.Sprintf("Game changers found in Core bracket (%d found)", counts.gameChangers))
			recommendations = append(recommendations, "Consider moving to Upgraded bracket or removing game changers")
		}
		if counts.massLandDenial > 0 {
			violations = append(violations, fmt.Sprintf("Mass land denial found in Core bracket (%d found)", counts.massLandDenial))
			recommendations = append(recommendations, "Consider moving to Upgraded bracket or removing mass land denial")
		}
		if hasChainingPotential {
			violations = append(violations, "Chaining extra turns potential in Core bracket: "+strings.Join(deckExtraTurnCards, ", "))
			recommendations = append(recommendations, "Core bracket prohibits chaining extra turns - consider Upgraded bracket")
		}
		if len(detectedCombos) > 0 {
			violations = append(violations, "2-card combos found in Core bracket: "+strings.Join(FormatCombos(detectedCombos), ", "))
			recommendations = append(recommendations, "Consider moving to Upgraded bracket or removing combos")
		}
		if counts.tutors > 5 {
			recommendations = append(recommendations, fmt.Sprintf("High tutor count (%d) may be too strong for Core bracket", counts.tutors))
		}

	case BracketUpgraded:
		if counts.gameChangers > 3 {
			violations = append(violations, fmt.Sprintf("Too many game changers for Upgraded bracket (%d found, max 3)", counts.gameChangers))
			recommendations = append(recommendations, "Consider moving to Optimized bracket or reducing game changers")
		}
		if counts.massLandDenial > 0 {
			violations = append(violations, fmt.Sprintf("Mass land denial found in Upgraded bracket (%d found)", counts.massLandDenial))
			recommendations = append(recommendations, "Consider moving to Optimized bracket or removing mass land denial")
		}
		if hasChainingPotential {
			violations = append(violations, "Chaining extra turns potential in Upgraded bracket: "+strings.Join(deckExtraTurnCards, ", "))
			recommendations = append(recommendations, "Upgraded bracket prohibits chaining extra turns - consider Optimized bracket")
		}
		if len(detectedCombos) > 0 {
			violations = append(violations, "2-card combos found in Upgraded bracket: "+strings.Join(FormatCombos(detectedCombos), ", "))
			recommendations = append(recommendations, "Consider moving to Optimized bracket or removing early-game combos")
		}

	case BracketOptimized:
		// No restrictions at this tier, recommendations only.
		if counts.gameChangers < 2 {
			recommendations = append(recommendations, fmt.Sprintf("Consider adding more powerful cards (%d game changers)", counts.gameChangers))
		}
		if counts.tutors < 3 {
			recommendations = append(recommendations, fmt.Sprintf("Consider adding more tutors for consistency (%d tutors)", counts.tutors))
		}
		if len(detectedCombos) == 0 {
			recommendations = append(recommendations, "Consider adding combos for faster wins")
		}

	case BracketCEDH:
		recommendations = append(recommendations, "cEDH allows all cards - deck should be optimized for competitive play")
		if counts.gameChangers < 5 {
			recommendations = append(recommendations, fmt.Sprintf("Consider adding more game changers (%d found)", counts.gameChangers))
		}
	}

	score := 5 - len(violations)
	if score < 1 {
		score = 1
	}

	return Validation{
		TargetBracket:     targetBracket,
		OverallCompliance: len(violations) == 0,
		BracketScore:      score,
		ComplianceDetails: map[string]interface{}{
			"game_changers":          counts.gameChangers,
			"mass_land_denial":       counts.massLandDenial,
			"extra_turn_cards":       extraTurnCount,
			"extra_turn_card_names":  deckExtraTurnCards,
			"has_chaining_potential": hasChainingPotential,
			"early_game_combos":      len(detectedCombos),
			"detected_combos":        FormatCombos(detectedCombos),
			"tutors":                 counts.tutors,
			"total_cards":            TotalCardCount(cards),
			"bracket_inferred":       bracketInferred,
		},
		Violations:      violations,
		Recommendations: recommendations,
	}
}

// TotalCardCount sums card quantities to get the real deck size.
func TotalCardCount(cards []Card) int {
	total := 0
	for _, card := range cards {
		total += card.Quantity
	}
	return total
}
