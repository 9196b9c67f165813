package metrics

import (
	"strings"

	"trapcheck/types"
)

// The keyword tables below are configuration data: coarse, hand-curated
// lexical heuristics matched case-insensitively as substrings. They are
// read-only after init and shared by every analysis call.

// trapAwarenessKeywords are deliberately narrow, explicit phrases. Generic
// negativity stays out so ordinary complaints don't count as trap warnings.
var trapAwarenessKeywords = []string{
	"tourist trap", "trap", "fake review", "bought review", "scam",
	"avoid", "don't go", "do not go", "stay away", "waste of money",
	"rip off", "ripoff", "overpriced", "not worth",
}

// manipulationKeywords suggest the reviewer is accusing the venue of
// buying or soliciting reviews.
var manipulationKeywords = []string{
	"fake", "bought", "paid review", "forced to review", "asked for review",
	"in exchange", "free dessert", "free drink",
}

// qualityComplaintKeywords holds the per-venue-type complaint vocabulary.
// The general entry is the mandatory fallback.
var qualityComplaintKeywords = map[types.VenueType][]string{
	types.VenueRestaurant: {
		"disgusting", "terrible", "awful", "worst", "horrible", "inedible",
		"sick", "food poisoning", "diarrhea", "stomach", "bland", "tasteless",
		"frozen", "microwave", "premade", "pre-made", "canned",
	},
	types.VenueMuseum: {
		"boring", "overcrowded", "nothing special", "too small", "skip it",
		"no explanations", "poorly lit", "closed exhibits", "long line",
		"long queue", "not worth the entry",
	},
	types.VenueAttraction: {
		"overcrowded", "overrated", "nothing to see", "too short",
		"long line", "long queue", "pushy vendors", "underwhelming",
		"disappointing",
	},
	types.VenueTour: {
		"rushed", "late", "disorganized", "no show", "no-show", "cancelled",
		"herded", "too short", "upsell", "pressured to buy",
	},
	types.VenueShop: {
		"counterfeit", "knockoff", "knock-off", "mass produced",
		"mass-produced", "made in china", "pushy", "aggressive",
		"overcharged", "double price",
	},
	types.VenueGeneral: {
		"terrible", "awful", "worst", "horrible", "disappointing",
		"waste of time", "underwhelming",
	},
}

// genericPraisePatterns mark filler praise typical of incentivized reviews.
var genericPraisePatterns = []string{
	"great", "amazing", "awesome", "wonderful", "delicious", "fantastic",
	"the best", "loved it", "perfect", "excellent", "incredible", "so good",
}

// specificityIndicators are concrete nouns and techniques per venue type; a
// review that names them is describing a real experience, not flattery.
var specificityIndicators = map[types.VenueType][]string{
	types.VenueRestaurant: {
		"wood-fired", "al dente", "san marzano", "sourdough", "charred",
		"house-made", "homemade", "marinated", "broth", "crust", "braised",
		"seasonal menu", "wine pairing", "tasting menu", "off-menu",
	},
	types.VenueMuseum: {
		"curator", "audio guide", "exhibit", "exhibition", "collection",
		"impressionist", "renaissance", "baroque", "restoration", "archive",
	},
	types.VenueAttraction: {
		"viewpoint", "sunrise", "sunset", "architecture", "carvings",
		"frescoes", "guided walk", "built in", "history of",
	},
	types.VenueTour: {
		"itinerary", "guide explained", "small group", "local guide",
		"back streets", "knowledgeable", "history of", "hidden",
	},
	types.VenueShop: {
		"handmade", "hand-made", "artisan", "leather", "ceramic", "linen",
		"workshop", "made on site", "custom", "engraved",
	},
	types.VenueGeneral: {
		"compared to", "locals", "off the beaten", "history of",
	},
}

var comparisonPhrases = []string{"compared to", "reminds me of", "similar to"}

var priceValuePhrases = []string{
	"price", "value", "worth", "cost", "per person", "$", "€", "euro",
}

// detectKeywords returns the keywords that appear in text, case-insensitive.
// Empty text yields no matches.
func detectKeywords(text string, keywords []string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func qualityKeywordsFor(vt types.VenueType) []string {
	if kws, ok := qualityComplaintKeywords[vt]; ok {
		return kws
	}
	return qualityComplaintKeywords[types.VenueGeneral]
}

func specificityIndicatorsFor(vt types.VenueType) []string {
	if ind, ok := specificityIndicators[vt]; ok {
		return ind
	}
	return specificityIndicators[types.VenueGeneral]
}
