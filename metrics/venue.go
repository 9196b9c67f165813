package metrics

import (
	"strings"

	"trapcheck/types"
)

// Category tag sets checked in order. Food comes first: venues often carry
// several overlapping tags (a museum cafe is both), and food service is the
// dominant signal for the downstream keyword tables.
var (
	foodTags = []string{
		"restaurant", "cafe", "coffee", "bar", "bakery", "food", "pizzeria",
		"bistro", "diner", "eatery", "pub", "steakhouse", "trattoria",
		"meal_takeaway", "meal_delivery",
	}
	museumTags = []string{
		"museum", "art_gallery", "gallery", "planetarium", "aquarium",
	}
	tourNameHints = []string{"tour", "experience"}
	tourTags      = []string{
		"tour_operator", "travel_agency", "guided tour", "walking tour",
		"boat tour", "day tour",
	}
	shopTags = []string{
		"shop", "store", "market", "boutique", "souvenir", "mall", "bazaar",
	}
	attractionTags = []string{
		"tourist_attraction", "attraction", "temple", "shrine", "church",
		"cathedral", "landmark", "monument", "park", "garden", "castle",
		"palace", "viewpoint", "beach", "plaza", "square",
	}
)

// InferVenueType maps a place name and its category tags to a VenueType.
// First match wins; always returns a value, falling back to general.
func InferVenueType(name string, categories []string) types.VenueType {
	tags := make([]string, len(categories))
	for i, c := range categories {
		tags[i] = strings.ToLower(c)
	}

	if hasAnyTag(tags, foodTags) {
		return types.VenueRestaurant
	}
	if hasAnyTag(tags, museumTags) {
		return types.VenueMuseum
	}

	lowerName := strings.ToLower(name)
	for _, hint := range tourNameHints {
		if strings.Contains(lowerName, hint) {
			return types.VenueTour
		}
	}
	if hasAnyTag(tags, tourTags) {
		return types.VenueTour
	}

	if hasAnyTag(tags, shopTags) {
		return types.VenueShop
	}
	if hasAnyTag(tags, attractionTags) {
		return types.VenueAttraction
	}
	return types.VenueGeneral
}

// hasAnyTag matches on whole words so tags like "italian restaurant" or
// "history museum" match their base category while "barbershop" and
// "parking" do not match "bar" or "park".
func hasAnyTag(tags, wanted []string) bool {
	for _, tag := range tags {
		words := tagWords(tag)
		for _, w := range wanted {
			if containsPhrase(words, tagWords(w)) {
				return true
			}
		}
	}
	return false
}

// tagWords splits a category tag into words. Tags arrive in both
// underscore ("tourist_attraction") and space ("guided tour") forms.
func tagWords(tag string) []string {
	return strings.FieldsFunc(tag, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '/'
	})
}

// containsPhrase reports whether phrase appears as consecutive words
// within words.
func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
	for i := 0; i+len(phrase) <= len(words); i++ {
		match := true
		for j, p := range phrase {
			if words[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
