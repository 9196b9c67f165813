package metrics

import (
	"strings"

	"trapcheck/types"
)

const (
	specificityBase = 50

	genericPraisePenalty    = 5
	genericPraisePenaltyCap = 25

	specificIndicatorBonus    = 8
	specificIndicatorBonusCap = 40

	longTextMinWords    = 100
	longTextBonus       = 15
	mediumTextMinWords  = 50
	mediumTextBonus     = 10
	shortTextMinWords   = 25
	shortTextBonus      = 5
	tinyTextMaxWords    = 10
	tinyTextPenalty     = 15
	comparisonBonus     = 10
	priceReferenceBonus = 5
)

// scoreSpecificity rates how concretely a review describes the experience,
// on a 0-100 scale. Generic praise pushes the score down, venue-specific
// detail pushes it up. Empty text scores 0.
func scoreSpecificity(text string, vt types.VenueType) int {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	score := specificityBase

	penalty := 0
	for _, p := range genericPraisePatterns {
		if strings.Contains(lower, p) {
			penalty += genericPraisePenalty
		}
	}
	if penalty > genericPraisePenaltyCap {
		penalty = genericPraisePenaltyCap
	}
	score -= penalty

	bonus := 0
	for _, ind := range specificityIndicatorsFor(vt) {
		if strings.Contains(lower, ind) {
			bonus += specificIndicatorBonus
		}
	}
	if bonus > specificIndicatorBonusCap {
		bonus = specificIndicatorBonusCap
	}
	score += bonus

	words := len(strings.Fields(text))
	switch {
	case words > longTextMinWords:
		score += longTextBonus
	case words > mediumTextMinWords:
		score += mediumTextBonus
	case words > shortTextMinWords:
		score += shortTextBonus
	case words < tinyTextMaxWords:
		score -= tinyTextPenalty
	}

	for _, p := range comparisonPhrases {
		if strings.Contains(lower, p) {
			score += comparisonBonus
			break
		}
	}

	for _, p := range priceValuePhrases {
		if strings.Contains(lower, p) {
			score += priceReferenceBonus
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
