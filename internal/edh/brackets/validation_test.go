package brackets

import (
	"strings"
	"testing"
)

func extraTurnFixture(names ...string) map[string]string {
	cards := make(map[string]string, len(names))
	for _, name := range names {
		cards[name] = "https://scryfall.com/search?q=" + name
	}
	return cards
}

func TestValidateInvalidBracket(t *testing.T) {
	result := Validate(nil, "mythic", false, testSnapshot(), nil)

	if result.OverallCompliance {
		t.Error("invalid bracket should not be compliant")
	}
	if result.BracketScore != 1 {
		t.Errorf("BracketScore = %d, want 1", result.BracketScore)
	}
	if len(result.Violations) != 1 || !strings.Contains(result.Violations[0], "Invalid bracket: mythic") {
		t.Errorf("Violations = %v", result.Violations)
	}
	if len(result.Recommendations) != 1 || !strings.Contains(result.Recommendations[0], "Valid brackets:") {
		t.Errorf("Recommendations = %v", result.Recommendations)
	}
}

func TestValidateExhibition(t *testing.T) {
	snapshot := testSnapshot()
	extraTurn := extraTurnFixture("Time Warp")

	cards := classifyNames(snapshot,
		"Rhystic Study", // game changer
		"Armageddon",    // mass land denial
		"Time Warp",     // extra turn
		"Demonic Consultation", "Thassa's Oracle", // combo
	)

	result := Validate(cards, BracketExhibition, false, snapshot, extraTurn)

	if result.OverallCompliance {
		t.Error("deck with every restriction broken should not be compliant")
	}
	if len(result.Violations) != 4 {
		t.Errorf("Violations = %d, want 4: %v", len(result.Violations), result.Violations)
	}
	if result.BracketScore != 1 {
		t.Errorf("BracketScore = %d, want 1", result.BracketScore)
	}

	// A single extra turn card violates exhibition even without chaining.
	single := classifyNames(snapshot, "Time Warp", "Island")
	result = Validate(single, BracketExhibition, false, snapshot, extraTurn)
	if result.OverallCompliance {
		t.Error("single extra turn card should violate exhibition")
	}
}

func TestValidateCoreExtraTurnChaining(t *testing.T) {
	snapshot := testSnapshot()
	extraTurn := extraTurnFixture("Time Warp", "Temporal Manipulation")

	// One extra turn card is fine in core.
	single := classifyNames(snapshot, "Time Warp", "Island")
	result := Validate(single, BracketCore, false, snapshot, extraTurn)
	if !result.OverallCompliance {
		t.Errorf("single extra turn card should pass core: %v", result.Violations)
	}

	// Two means chaining potential.
	double := classifyNames(snapshot, "Time Warp", "Temporal Manipulation")
	result = Validate(double, BracketCore, false, snapshot, extraTurn)
	if result.OverallCompliance {
		t.Error("two extra turn cards should violate core")
	}
	if len(result.Violations) != 1 || !strings.Contains(result.Violations[0], "Chaining extra turns") {
		t.Errorf("Violations = %v", result.Violations)
	}
}

func TestValidateUpgradedGameChangerCap(t *testing.T) {
	snapshot := testSnapshot()

	// Three game changers are allowed in upgraded.
	three := classifyNames(snapshot, "Rhystic Study", "Cyclonic Rift", "Smothering Tithe")
	result := Validate(three, BracketUpgraded, false, snapshot, nil)
	if !result.OverallCompliance {
		t.Errorf("three game changers should pass upgraded: %v", result.Violations)
	}

	// Four break the cap.
	four := classifyNames(snapshot, "Rhystic Study", "Cyclonic Rift", "Smothering Tithe", "Ancient Tomb")
	result = Validate(four, BracketUpgraded, false, snapshot, nil)
	if result.OverallCompliance {
		t.Error("four game changers should violate upgraded")
	}
	if result.BracketScore != 4 {
		t.Errorf("BracketScore = %d, want 4 for one violation", result.BracketScore)
	}
}

func TestValidateOptimizedAndCEDHHaveNoViolations(t *testing.T) {
	snapshot := testSnapshot()
	extraTurn := extraTurnFixture("Time Warp", "Temporal Manipulation")

	// Everything restricted elsewhere is allowed here.
	cards := classifyNames(snapshot,
		"Rhystic Study", "Armageddon", "Time Warp", "Temporal Manipulation",
		"Demonic Consultation", "Thassa's Oracle",
	)

	for _, bracket := range []string{BracketOptimized, BracketCEDH} {
		result := Validate(cards, bracket, false, snapshot, extraTurn)
		if !result.OverallCompliance {
			t.Errorf("%s should have no violations: %v", bracket, result.Violations)
		}
		if result.BracketScore != 5 {
			t.Errorf("%s BracketScore = %d, want 5", bracket, result.BracketScore)
		}
		if len(result.Recommendations) == 0 {
			t.Errorf("%s should still produce recommendations", bracket)
		}
	}
}

func TestValidateComplianceDetails(t *testing.T) {
	snapshot := testSnapshot()
	extraTurn := extraTurnFixture("Time Warp")

	cards := classifyNames(snapshot,
		"Rhystic Study", "Armageddon", "Time Warp",
		"Demonic Consultation", "Thassa's Oracle", "Demonic Tutor",
	)

	result := Validate(cards, BracketCore, false, snapshot, extraTurn)

	details := result.ComplianceDetails
	if details == nil {
		t.Fatal("ComplianceDetails missing")
	}

	checks := map[string]interface{}{
		"game_changers":          3, // Rhystic Study, Thassa's Oracle, Demonic Tutor
		"mass_land_denial":       1,
		"extra_turn_cards":       1,
		"has_chaining_potential": false,
		"early_game_combos":      1,
		"tutors":                 2, // Demonic Consultation, Demonic Tutor
		"total_cards":            6,
		"bracket_inferred":       false,
	}
	for key, want := range checks {
		if got := details[key]; got != want {
			t.Errorf("ComplianceDetails[%q] = %v, want %v", key, got, want)
		}
	}
}
