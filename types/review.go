package types

// Reviewer holds the reviewer-profile fields that feed credibility scoring.
// Missing fields in the upstream record default to zero values.
type Reviewer struct {
	ReviewCount     int  `json:"review_count"`
	PhotoCount      int  `json:"photo_count"`
	IsVerifiedLocal bool `json:"is_verified_local"`
}

// Review is the normalized internal review record. Upstream records are
// loosely typed (aliased keys, string ratings, partial reviewer objects);
// the places package resolves all of that before a Review is built, so the
// scoring code never sees the ambiguity.
type Review struct {
	Text       string         `json:"text"`
	Rating     float64        `json:"rating"`
	Reviewer   Reviewer       `json:"reviewer"`
	HasPhotos  bool           `json:"has_photos"`
	SubRatings map[string]int `json:"sub_ratings,omitempty"`
	PostedOn   string         `json:"posted_on,omitempty"` // ISO 8601, may be empty
	Upvotes    int            `json:"upvotes"`
}

type VenueType string

const (
	VenueRestaurant VenueType = "restaurant"
	VenueMuseum     VenueType = "museum"
	VenueAttraction VenueType = "attraction"
	VenueTour       VenueType = "tour"
	VenueShop       VenueType = "shop"
	VenueGeneral    VenueType = "general"
)

// Place is the venue metadata returned by the place data source.
type Place struct {
	DataID        string   `json:"data_id"`
	PlaceID       string   `json:"place_id,omitempty"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	PriceLevel    string   `json:"price_level,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	GoogleMapsURL string   `json:"google_maps_url,omitempty"`
}
