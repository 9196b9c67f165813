package metrics

import (
	"strings"
	"testing"

	"trapcheck/types"
)

func TestScoreSpecificity(t *testing.T) {
	tests := []struct {
		name string
		text string
		vt   types.VenueType
		want int
	}{
		{
			name: "empty text",
			text: "",
			vt:   types.VenueRestaurant,
			want: 0,
		},
		{
			// Base 50, three generic patterns (-15), three words (-15).
			name: "pure generic praise",
			text: "Great! Amazing! Wonderful!",
			vt:   types.VenueRestaurant,
			want: 20,
		},
		{
			// Base 50, four indicators (+32), 13 words so no length change.
			name: "specific dish description",
			text: "The wood-fired crust was charred nicely, with san marzano tomatoes in the sauce.",
			vt:   types.VenueRestaurant,
			want: 82,
		},
		{
			// Base 50, comparison (+10), eight words (-15).
			name: "comparison phrase on short text",
			text: "This reminds me of the trattorias in Rome.",
			vt:   types.VenueRestaurant,
			want: 45,
		},
		{
			// Base 50, one indicator (+8), price reference (+5), 12 words.
			name: "price reference counted once",
			text: "Costs 40 euro per person but the tasting menu justified every cent.",
			vt:   types.VenueRestaurant,
			want: 63,
		},
		{
			// Museum indicators only apply to museum reviews.
			name: "museum indicators",
			text: "The audio guide walked us through the impressionist collection and the restoration work on the frescoes upstairs.",
			vt:   types.VenueMuseum,
			want: 82,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreSpecificity(tt.text, tt.vt); got != tt.want {
				t.Errorf("scoreSpecificity(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScoreSpecificityClampedAt100(t *testing.T) {
	filler := strings.Repeat("the pasta arrived quickly and ", 20)
	text := filler + "wood-fired crust charred san marzano al dente broth compared to the price."
	if got := scoreSpecificity(text, types.VenueRestaurant); got != 100 {
		t.Errorf("score = %d, want clamp at 100", got)
	}
}

func TestScoreSpecificityOrdering(t *testing.T) {
	generic := scoreSpecificity("Amazing place, loved it, so good!", types.VenueRestaurant)
	specific := scoreSpecificity("The wood-fired crust was charred nicely, with san marzano tomatoes in the sauce.", types.VenueRestaurant)
	if generic >= specific {
		t.Errorf("generic praise scored %d, specific description %d; want generic lower", generic, specific)
	}
}
