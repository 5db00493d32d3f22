package brackets

// Bracket-relevant card categories.
const (
	CategoryMassLandDenial = "mass_land_denial"
	CategoryGameChanger    = "game_changer"
	CategoryTutor          = "tutor"
)

// Card is one classified deck entry. Categories carry the bracket-relevant
// tags the card matched; LegalityStatus starts as "pending" and is filled in
// by the legality check.
type Card struct {
	Name             string   `json:"name"`
	Quantity         int      `json:"quantity"`
	IsGameChanger    bool     `json:"is_game_changer"`
	Categories       []string `json:"bracket_categories"`
	LegalityStatus   string   `json:"legality_status"`
	ValidationIssues []string `json:"validation_issues"`
}

// Classify tags a single card against the authoritative snapshot. Category
// membership is exact-name; a card can carry several categories at once.
func Classify(name string, quantity int, snapshot *Snapshot) Card {
	card := Card{
		Name:           name,
		Quantity:       quantity,
		LegalityStatus: "pending",
		Categories:     []string{},
	}

	if snapshot.MassLandDenial[name] {
		card.Categories = append(card.Categories, CategoryMassLandDenial)
	}
	if snapshot.GameChangers[name] {
		card.IsGameChanger = true
		card.Categories = append(card.Categories, CategoryGameChanger)
	}
	if snapshot.Tutors[name] {
		card.Categories = append(card.Categories, CategoryTutor)
	}

	return card
}

// HasCategory reports whether the card carries the given category tag.
func (c Card) HasCategory(category string) bool {
	for _, tag := range c.Categories {
		if tag == category {
			return true
		}
	}
	return false
}
