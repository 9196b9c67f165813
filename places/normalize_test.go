package places

import (
	"reflect"
	"testing"
)

func TestNormalizeReviewAliases(t *testing.T) {
	raw := map[string]any{
		"snippet":  "The pasta was frozen.",
		"rating":   "2.0",
		"iso_date": "2024-03-15T10:30:00Z",
		"likes":    float64(7),
		"images":   []any{"photo1.jpg"},
		"user": map[string]any{
			"reviews_count": "120",
			"photos_count":  float64(34),
			"local_guide":   true,
		},
		"details": map[string]any{
			"Service": float64(5),
			"Food":    "2",
			"Noise":   "loud", // unparseable, dropped
		},
	}

	got := NormalizeReview(raw)

	if got.Text != "The pasta was frozen." {
		t.Errorf("Text = %q", got.Text)
	}
	if got.Rating != 2.0 {
		t.Errorf("Rating = %v, want 2.0", got.Rating)
	}
	if got.PostedOn != "2024-03-15T10:30:00Z" {
		t.Errorf("PostedOn = %q", got.PostedOn)
	}
	if got.Upvotes != 7 {
		t.Errorf("Upvotes = %d, want 7", got.Upvotes)
	}
	if !got.HasPhotos {
		t.Error("HasPhotos = false, want true with images present")
	}
	if got.Reviewer.ReviewCount != 120 || got.Reviewer.PhotoCount != 34 || !got.Reviewer.IsVerifiedLocal {
		t.Errorf("Reviewer = %+v", got.Reviewer)
	}
	wantSub := map[string]int{"service": 5, "food": 2}
	if !reflect.DeepEqual(got.SubRatings, wantSub) {
		t.Errorf("SubRatings = %v, want %v", got.SubRatings, wantSub)
	}
}

func TestNormalizeReviewPrimaryKeysWin(t *testing.T) {
	raw := map[string]any{
		"text":     "primary text",
		"snippet":  "alias text",
		"iso_date": "2024-01-01",
		"date":     "a month ago",
	}

	got := NormalizeReview(raw)
	if got.Text != "primary text" {
		t.Errorf("Text = %q, want the primary key to win", got.Text)
	}
	if got.PostedOn != "2024-01-01" {
		t.Errorf("PostedOn = %q, want iso_date to win", got.PostedOn)
	}
}

func TestNormalizeReviewEmptyRecord(t *testing.T) {
	got := NormalizeReview(map[string]any{})

	if got.Text != "" || got.Rating != 0 || got.Upvotes != 0 || got.HasPhotos {
		t.Errorf("empty record produced %+v", got)
	}
	if got.SubRatings != nil {
		t.Errorf("SubRatings = %v, want nil", got.SubRatings)
	}
	if got.Reviewer.ReviewCount != 0 || got.Reviewer.IsVerifiedLocal {
		t.Errorf("Reviewer = %+v, want zero value", got.Reviewer)
	}
}

func TestNormalizeReviewEmptyImagesList(t *testing.T) {
	got := NormalizeReview(map[string]any{"images": []any{}})
	if got.HasPhotos {
		t.Error("empty images list should not count as photos")
	}
}

func TestNormalizePlace(t *testing.T) {
	raw := map[string]any{
		"data_id":  "0x123:0x456",
		"place_id": "ChIJabc",
		"title":    "Bella Roma Ristorante",
		"address":  "Via del Corso 1, Rome",
		"rating":   float64(4.3),
		"reviews":  float64(2100),
		"price":    "$$$",
		"type":     "Italian restaurant",
		"types":    []any{"restaurant", "food"},
	}

	got := NormalizePlace(raw)

	if got.Name != "Bella Roma Ristorante" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.DataID != "0x123:0x456" {
		t.Errorf("DataID = %q", got.DataID)
	}
	if got.Rating != 4.3 || got.ReviewCount != 2100 {
		t.Errorf("Rating/ReviewCount = %v/%d", got.Rating, got.ReviewCount)
	}
	wantCategories := []string{"Italian restaurant", "restaurant", "food"}
	if !reflect.DeepEqual(got.Categories, wantCategories) {
		t.Errorf("Categories = %v, want %v", got.Categories, wantCategories)
	}
}

func TestNormalizePlaceTypeList(t *testing.T) {
	raw := map[string]any{
		"name": "Grand Bazaar",
		"type": []any{"market", "shopping"},
	}

	got := NormalizePlace(raw)
	if got.Name != "Grand Bazaar" {
		t.Errorf("Name = %q, want the name alias to resolve", got.Name)
	}
	want := []string{"market", "shopping"}
	if !reflect.DeepEqual(got.Categories, want) {
		t.Errorf("Categories = %v, want %v", got.Categories, want)
	}
}
