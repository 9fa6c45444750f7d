package types

// Category is a fixed hazard type. It controls marker color, which cluster
// layer a point belongs to, and whether photo attachments are allowed.
type Category string

const (
	BlindSpot Category = "blind-spots"
	Abandoned Category = "abandoned"
	Unlit     Category = "unlit"
	Crime     Category = "crime"
)

type CategoryConfig struct {
	Color       string  `json:"color"`
	BadgeKey    string  `json:"badgeKey"`
	AllowPhotos bool    `json:"allowPhotos"`
	HeatWeight  float64 `json:"heatWeight"`
}

// CategoryOrder is the fixed legend order. Enumerations of the category set
// follow it so rendered output is stable across rebuilds.
var CategoryOrder = []Category{BlindSpot, Abandoned, Unlit, Crime}

// Categories mirrors the CATEGORIES table of the map client. Crime points
// come from bulk imports and carry no photos.
var Categories = map[Category]CategoryConfig{
	BlindSpot: {Color: "#e74c3c", BadgeKey: "badge_blind", AllowPhotos: true, HeatWeight: 0.6},
	Abandoned: {Color: "#f39c12", BadgeKey: "badge_abandoned", AllowPhotos: true, HeatWeight: 0.5},
	Unlit:     {Color: "#8e44ad", BadgeKey: "badge_unlit", AllowPhotos: true, HeatWeight: 0.4},
	Crime:     {Color: "#2c3e50", BadgeKey: "badge_crime", AllowPhotos: false, HeatWeight: 1.0},
}

func ValidCategory(c Category) bool {
	_, ok := Categories[c]
	return ok
}
