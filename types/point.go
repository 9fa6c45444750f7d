package types

import "math"

// Lang selects which variant of a bilingual field is returned.
type Lang string

const (
	LangRU Lang = "ru" // primary
	LangKZ Lang = "kz" // secondary
)

// Point is a confirmed hazard report shown on the map.
// Title, address and description each carry both language variants;
// lookup falls back to the primary (ru) variant when the requested one is empty.
type Point struct {
	ID            int      `firestore:"id" json:"id"`
	Lat           float64  `firestore:"lat" json:"lat"`
	Lng           float64  `firestore:"lng" json:"lng"`
	Category      Category `firestore:"category" json:"category"`
	TitleRU       string   `firestore:"title_ru" json:"title_ru"`
	TitleKZ       string   `firestore:"title_kz" json:"title_kz"`
	AddressRU     string   `firestore:"address_ru" json:"address_ru"`
	AddressKZ     string   `firestore:"address_kz" json:"address_kz"`
	DescriptionRU string   `firestore:"description_ru" json:"description_ru"`
	DescriptionKZ string   `firestore:"description_kz" json:"description_kz"`
	Photos        []string `firestore:"photos" json:"photos"`
}

func localized(kz, ru string, lang Lang) string {
	if lang == LangKZ && kz != "" {
		return kz
	}
	return ru
}

// Title returns the title in the requested language, falling back to ru.
func (p Point) Title(lang Lang) string { return localized(p.TitleKZ, p.TitleRU, lang) }

func (p Point) Address(lang Lang) string { return localized(p.AddressKZ, p.AddressRU, lang) }

func (p Point) Description(lang Lang) string {
	return localized(p.DescriptionKZ, p.DescriptionRU, lang)
}

// RoundCoord rounds a coordinate to 4 decimal places (~11m), the precision
// every stored point uses.
func RoundCoord(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// NextPointID returns max(existing)+1. Ids are never reused: a deleted id
// stays below the running maximum for the session lifetime. The read-then-write
// is not atomic; the single-admin-session assumption makes that acceptable.
func NextPointID(points []Point) int {
	max := 0
	for _, p := range points {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
