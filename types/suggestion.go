package types

// Suggestion is an unmoderated citizen-submitted candidate point.
// Single-language, immutable once submitted; it disappears on approve or
// reject and leaves no trace afterwards.
type Suggestion struct {
	ID          int      `firestore:"id" json:"id"`
	Lat         float64  `firestore:"lat" json:"lat"` // raw map-click value, not rounded
	Lng         float64  `firestore:"lng" json:"lng"`
	Category    Category `firestore:"category" json:"category"`
	Description string   `firestore:"description" json:"description"`
	Name        string   `firestore:"name" json:"name"`
	Contact     string   `firestore:"contact" json:"contact"`
	Created     string   `firestore:"created" json:"created"` // ISO timestamp, sort order only
}

// NextSuggestionID returns max(existing)+1 over the suggestion collection.
// Suggestions and points keep independent id spaces.
func NextSuggestionID(suggestions []Suggestion) int {
	max := 0
	for _, s := range suggestions {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}
