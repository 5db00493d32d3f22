package handlers

import (
	"net/http"

	"github.com/ramonehamilton/EDH-Companion/internal/api/response"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/brackets"
)

// BracketsHandler serves the bracket system reference endpoints.
type BracketsHandler struct{}

// NewBracketsHandler creates a brackets handler.
func NewBracketsHandler() *BracketsHandler {
	return &BracketsHandler{}
}

// Info handles GET /api/v1/brackets/info.
func (h *BracketsHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"brackets": brackets.Definitions,
		"game_changers": map[string]interface{}{
			"current_list_size":  len(brackets.GameChangers()),
			"recent_removals":    brackets.GameChangersRemoved(),
			"total_removed_2025": len(brackets.GameChangersRemoved()),
		},
		"validation_categories": map[string]interface{}{
			"mass_land_denial": map[string]interface{}{
				"description":  "Cards that destroy, exile, or bounce multiple lands",
				"sample_cards": brackets.MassLandDenialSample(10),
			},
			"early_game_combos": map[string]interface{}{
				"description": "2-card combinations that can win early",
				"combos":      brackets.ComboPairs(),
			},
		},
		"last_updated": "2025-10-21",
		"source":       "https://magic.wizards.com/en/news/announcements/commander-brackets-beta-update-october-21-2025",
	})
}

// GameChangersList handles GET /api/v1/brackets/game-changers/list.
func (h *BracketsHandler) GameChangersList(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"current_game_changers": brackets.GameChangers(),
		"recently_removed":      brackets.GameChangersRemoved(),
		"removal_reasoning": map[string]string{
			"high_mana_value":                 "Expropriate, Jin-Gitaxias, Sway of the Stars, Vorinclex",
			"legends_strongest_as_commanders": "Kinnan, Urza, Winota, Yuriko",
			"other":                           "Deflecting Swat, Food Chain",
		},
		"last_updated": "2025-10-21",
	})
}
