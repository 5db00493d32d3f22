package edhrec

import (
	"regexp"
	"strconv"
	"strings"
)

// saltLabelRE matches the "Salt Score: 2.53" labels embedded in card records.
var saltLabelRE = regexp.MustCompile(`Salt\s*Score:\s*([0-9]+(?:\.[0-9]+)?)`)

// saltFieldChain is the ordered list of record fields consulted when a card
// record carries no direct "salt" value. EDHRec has shipped several payload
// shapes over time; the chain covers the ones observed in the wild.
var saltFieldChain = []string{"synergy", "scores", "stats"}

// ExtractSaltScore pulls a salt score out of a single card record using a
// prioritized fallback chain: the structured "salt" field, then the
// human-readable label, then alternate field names. Scores outside [0,5]
// are discarded.
func ExtractSaltScore(record map[string]interface{}) (float64, bool) {
	if score, ok := numericValue(record["salt"]); ok && inRange(score) {
		return score, true
	}

	if label, ok := record["label"].(string); ok {
		if m := saltLabelRE.FindStringSubmatch(label); m != nil {
			if score, err := strconv.ParseFloat(m[1], 64); err == nil && inRange(score) {
				return score, true
			}
		}
	}

	for _, field := range saltFieldChain {
		switch v := record[field].(type) {
		case map[string]interface{}:
			if score, ok := numericValue(v["salt"]); ok && inRange(score) {
				return score, true
			}
		default:
			if score, ok := numericValue(v); ok && inRange(score) {
				return score, true
			}
		}
	}

	return 0, false
}

// SearchSaltScore recursively walks a decoded JSON document looking for the
// first object carrying a valid "salt" value. Used for commander pages whose
// structure varies between releases.
func SearchSaltScore(doc interface{}) (float64, bool) {
	switch v := doc.(type) {
	case map[string]interface{}:
		if score, ok := numericValue(v["salt"]); ok && inRange(score) && score > 0 {
			return score, true
		}
		for _, child := range v {
			if score, ok := SearchSaltScore(child); ok {
				return score, true
			}
		}
	case []interface{}:
		for _, child := range v {
			if score, ok := SearchSaltScore(child); ok {
				return score, true
			}
		}
	}
	return 0, false
}

func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		score, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return score, true
	default:
		return 0, false
	}
}

func inRange(score float64) bool {
	return score >= 0 && score <= 5
}
