package places

import (
	"sort"
	"strings"

	"trapcheck/types"
)

// Built-in dataset for running without a SERPAPI_KEY. Records are kept in
// the upstream loose shape on purpose so the mock path exercises the same
// normalization as live data.

var mockPlaces = map[string]map[string]any{
	"pizzeria da michele": {
		"data_id":         "mock_da_michele_001",
		"place_id":        "ChIJMock123",
		"title":           "L'Antica Pizzeria Da Michele",
		"address":         "Via Cesare Sersale, 1, 80139 Napoli NA, Italy",
		"rating":          4.4,
		"reviews":         28547,
		"price":           "$",
		"type":            "Pizza restaurant",
		"types":           []any{"pizza_restaurant", "restaurant"},
		"google_maps_url": "https://maps.google.com/?cid=mock_da_michele",
	},
	"olive garden times square": {
		"data_id":         "mock_olive_garden_001",
		"place_id":        "ChIJMock456",
		"title":           "Olive Garden Italian Restaurant",
		"address":         "2 Times Square, New York, NY 10036",
		"rating":          3.8,
		"reviews":         12453,
		"price":           "$$",
		"type":            "Italian restaurant",
		"types":           []any{"italian_restaurant", "restaurant"},
		"google_maps_url": "https://maps.google.com/?cid=mock_olive_garden",
	},
}

var mockReviews = map[string][]map[string]any{
	"mock_da_michele_001": {
		{
			"text":   "Absolutely authentic Neapolitan pizza. The margherita is simple perfection with an incredible charred crust from the wood-fired oven. Yes there is a queue but it moves fast. Locals and tourists alike, everyone agrees this is the real deal.",
			"rating": 5, "iso_date": "2025-05-18T10:12:00Z", "likes": 45,
			"user": map[string]any{"name": "Giuseppe M.", "local_guide": true, "reviews": 234, "photos": 120},
		},
		{
			"text":   "Waited 45 minutes in line but worth every second. Only two pizzas on the menu and they have been perfecting them since 1870. The sourdough base is incredibly light compared to anywhere else I have eaten.",
			"rating": 5, "iso_date": "2025-04-02T19:40:00Z", "likes": 23,
			"user":   map[string]any{"name": "Sarah T.", "local_guide": false, "reviews": 12, "photos": 4},
			"images": []any{"photo1.jpg"},
		},
		{
			"text":   "As a Neapolitan, I can confirm this is where we take our relatives when they visit. Genuinely historic, and the prices are incredibly fair for the quality. Go early or late to avoid the queue.",
			"rating": 5, "iso_date": "2025-05-30T12:05:00Z", "likes": 89,
			"user": map[string]any{"name": "Marco B.", "local_guide": true, "reviews": 567, "photos": 310},
		},
		{
			"text":   "Overhyped. The pizza was fine but nothing special, and the room is cramped and chaotic. There are better pizzerias in Naples without the ridiculous wait.",
			"rating": 2, "iso_date": "2025-05-10T14:00:00Z", "likes": 12,
			"user": map[string]any{"name": "Mike R.", "local_guide": false, "reviews": 8},
		},
		{
			"text":   "I don't understand the hype. Service is rushed, they want you in and out. For the price it's cheap, but the experience is not relaxing.",
			"rating": 3, "iso_date": "2025-03-22T09:30:00Z", "likes": 5,
			"user": map[string]any{"name": "Jennifer L.", "local_guide": false, "reviews": 3},
		},
	},
	"mock_olive_garden_001": {
		{
			"text":   "Classic tourist trap. Locals would never eat here - you are in New York surrounded by incredible food and this is frozen pasta at triple the price. Avoid.",
			"rating": 1, "iso_date": "2025-04-12T20:15:00Z", "likes": 156,
			"user":   map[string]any{"name": "Dana W.", "local_guide": true, "reviews": 412, "photos": 88},
			"images": []any{"receipt.jpg", "pasta.jpg"},
		},
		{
			"text":   "Waiter was friendly but the food tasted microwaved. $28 for spaghetti that was clearly premade. Total rip off, not worth it at this location.",
			"rating": 2, "iso_date": "2025-04-18T13:45:00Z", "likes": 64,
			"user":    map[string]any{"name": "Paulo G.", "local_guide": true, "reviews": 156, "photos": 40},
			"details": map[string]any{"Food": "1", "Service": 4},
			"images":  []any{"photo.jpg"},
		},
		{
			"text":   "Stay away. I suspect the positive reviews are fake - half of them read like ads. The breadsticks were stale and the sauce was bland.",
			"rating": 1, "iso_date": "2025-05-02T18:30:00Z", "likes": 98,
			"user":    map[string]any{"name": "K. Chen", "local_guide": false, "reviews": 203, "photos": 150},
			"details": map[string]any{"Food": 2, "Service": 4},
		},
		{
			"text":   "Great food! Amazing service! The best restaurant in New York! Five stars!",
			"rating": 5, "iso_date": "2025-05-20T11:00:00Z", "likes": 0,
			"user": map[string]any{"name": "User8472", "local_guide": false, "reviews": 1},
		},
		{
			"text":   "Amazing amazing amazing. So good. Perfect place, perfect food, loved it!",
			"rating": 5, "iso_date": "2025-05-20T11:20:00Z", "likes": 1,
			"user": map[string]any{"name": "User9923", "local_guide": false, "reviews": 2},
		},
		{
			"text":   "Wonderful experience, great pasta, awesome staff. The best!",
			"rating": 5, "iso_date": "2025-05-20T12:10:00Z", "likes": 0,
			"user": map[string]any{"name": "User1204", "local_guide": false, "reviews": 1},
		},
		{
			"text":   "Delicious food and excellent atmosphere, highly recommend to everyone visiting Times Square.",
			"rating": 5, "iso_date": "2025-05-21T10:05:00Z", "likes": 2,
			"user": map[string]any{"name": "TravelFan22", "local_guide": false, "reviews": 4},
		},
	},
}

// mockPlace matches a query against the dataset by substring in either
// direction, so "da michele" and "pizzeria da michele naples" both hit.
func mockPlace(query string) *types.Place {
	q := strings.ToLower(strings.TrimSpace(query))
	for key, raw := range mockPlaces {
		if strings.Contains(q, key) || strings.Contains(key, q) {
			place := NormalizePlace(raw)
			return &place
		}
	}
	return nil
}

// mockStratifiedReviews splits the mock reviews into low and high cohorts
// by sorting on rating and cutting at the midpoint, mirroring how the live
// path separates the two sort orders.
func mockStratifiedReviews(dataID string) (low, high []types.Review) {
	raws, ok := mockReviews[dataID]
	if !ok {
		return nil, nil
	}
	reviews := make([]types.Review, 0, len(raws))
	for _, raw := range raws {
		reviews = append(reviews, NormalizeReview(raw))
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Rating < reviews[j].Rating
	})
	mid := len(reviews) / 2
	if mid == 0 {
		return reviews, reviews
	}
	return reviews[:mid], reviews[mid:]
}
