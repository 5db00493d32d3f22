package brackets

// deckCounts are the four characteristics the inference cascade keys on.
type deckCounts struct {
	gameChangers   int
	combos         int
	massLandDenial int
	tutors         int
}

func countCharacteristics(cards []Card, pairs [][2]string) deckCounts {
	var counts deckCounts
	for _, card := range cards {
		if card.IsGameChanger {
			counts.gameChangers++
		}
		if card.HasCategory(CategoryMassLandDenial) {
			counts.massLandDenial++
		}
		if card.HasCategory(CategoryTutor) {
			counts.tutors++
		}
	}
	counts.combos = len(DetectCombos(cards, pairs))
	return counts
}

// CEDHScore rates how closely a deck resembles a competitive-metagame build.
// Weighted sums over premium card groups, concentration bonuses, a penalty for
// mass land denial, and a cap when the deck lacks a critical mass of cEDH
// elements. Only Game Changer copies of the premium cards count.
func CEDHScore(cards []Card, massLandCount int) int {
	var fastMana, premiumTutors, interaction, comboPieces, engines int

	for _, card := range cards {
		if !card.IsGameChanger {
			continue
		}
		if fastManaCards[card.Name] {
			fastMana++
		}
		if premiumTutorCards[card.Name] {
			premiumTutors++
		}
		if premiumInteractionCards[card.Name] {
			interaction++
		}
		if bestComboPieces[card.Name] {
			comboPieces++
		}
		if premiumEngineCards[card.Name] {
			engines++
		}
	}

	score := fastMana*2 + premiumTutors*3 + interaction*2 + comboPieces*2 + engines

	// Concentration bonuses kick in only at true cEDH densities.
	if fastMana >= 5 {
		score += 3
	}
	if premiumTutors >= 3 {
		score += 4
	}
	if interaction >= 3 {
		score += 3
	}

	if massLandCount > 0 {
		score -= 3
	}

	// Without a critical mass of cEDH elements the score is capped below the
	// thresholds that would classify the deck as competitive.
	if fastMana+premiumTutors+interaction+comboPieces < 8 {
		score = min(score, 15)
	}

	return score
}

// InferBracket derives the bracket a deck best matches. The cascade is
// evaluated strictly top-down from cedh to exhibition; the first branch whose
// conditions hold wins, with an indicator-based fallback when none do.
func InferBracket(cards []Card, pairs [][2]string) string {
	counts := countCharacteristics(cards, pairs)
	cedhScore := CEDHScore(cards, counts.massLandDenial)

	switch {
	case (counts.combos >= 2 && counts.gameChangers >= 5) || cedhScore >= 30:
		return BracketCEDH

	case counts.gameChangers >= 4 ||
		(counts.combos >= 1 && counts.gameChangers >= 2) ||
		cedhScore >= 20:
		return BracketOptimized

	case counts.gameChangers >= 1 || counts.tutors >= 4 || cedhScore >= 10:
		return BracketUpgraded

	case counts.gameChangers == 0 && counts.massLandDenial == 0 &&
		counts.combos == 0 && counts.tutors <= 3:
		return BracketCore

	case counts.gameChangers == 0 && counts.massLandDenial == 0 &&
		counts.combos == 0 && counts.tutors <= 2:
		return BracketExhibition
	}

	// Fallback on individual indicators.
	switch {
	case counts.gameChangers > 0:
		return BracketUpgraded
	case counts.tutors > 3:
		return BracketCore
	case counts.massLandDenial > 0:
		return BracketOptimized
	default:
		return BracketExhibition
	}
}
