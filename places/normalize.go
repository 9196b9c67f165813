package places

import (
	"strconv"
	"strings"

	"trapcheck/types"
)

// NormalizeReview maps a loosely-typed upstream review record into the
// strict internal Review. Upstream records alias keys ("text" vs "snippet",
// "iso_date" vs "date"), send numbers as strings, and omit fields freely;
// all of that is resolved here so the scoring code never sees it.
func NormalizeReview(raw map[string]any) types.Review {
	user, _ := raw["user"].(map[string]any)

	hasPhotos := false
	if images, ok := raw["images"].([]any); ok && len(images) > 0 {
		hasPhotos = true
	}

	return types.Review{
		Text:   stringValue(raw, "text", "snippet"),
		Rating: numberValue(raw, "rating"),
		Reviewer: types.Reviewer{
			ReviewCount:     intValue(user, "reviews", "reviews_count"),
			PhotoCount:      intValue(user, "photos", "photos_count"),
			IsVerifiedLocal: boolValue(user, "local_guide", "is_verified_local"),
		},
		HasPhotos:  hasPhotos,
		SubRatings: normalizeSubRatings(raw["details"]),
		PostedOn:   stringValue(raw, "iso_date", "date"),
		Upvotes:    intValue(raw, "likes", "upvotes"),
	}
}

// NormalizePlace maps a raw place-search record into a Place.
func NormalizePlace(raw map[string]any) types.Place {
	place := types.Place{
		DataID:        stringValue(raw, "data_id"),
		PlaceID:       stringValue(raw, "place_id"),
		Name:          stringValue(raw, "title", "name"),
		Address:       stringValue(raw, "address"),
		Rating:        numberValue(raw, "rating"),
		ReviewCount:   intValue(raw, "reviews", "review_count"),
		PriceLevel:    stringValue(raw, "price", "price_level"),
		GoogleMapsURL: stringValue(raw, "google_maps_url", "website"),
	}

	// "type" arrives as a single string, a list, or under "types".
	switch v := raw["type"].(type) {
	case string:
		place.Categories = []string{v}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				place.Categories = append(place.Categories, s)
			}
		}
	}
	if ids, ok := raw["types"].([]any); ok {
		for _, item := range ids {
			if s, ok := item.(string); ok {
				place.Categories = append(place.Categories, s)
			}
		}
	}

	return place
}

// normalizeSubRatings lowercases sub-rating keys and coerces values to int,
// dropping anything unparseable. Returns nil when nothing usable remains.
func normalizeSubRatings(v any) map[string]int {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, val := range m {
		if n, ok := toInt(val); ok {
			out[strings.ToLower(k)] = n
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringValue(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func numberValue(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func intValue(m map[string]any, keys ...string) int {
	for _, k := range keys {
		if n, ok := toInt(m[k]); ok {
			return n
		}
	}
	return 0
}

func boolValue(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if b, ok := m[k].(bool); ok {
			return b
		}
	}
	return false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}
