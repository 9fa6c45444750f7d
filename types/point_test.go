package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCoord(t *testing.T) {
	assert.Equal(t, 47.1235, RoundCoord(47.123456))
	assert.Equal(t, 51.9877, RoundCoord(51.987654))
	assert.Equal(t, 47.1067, RoundCoord(47.1067))
	assert.Equal(t, -51.9877, RoundCoord(-51.98765))
	assert.Equal(t, 0.0, RoundCoord(0.00004))
}

func TestLocalizedFallback(t *testing.T) {
	p := Point{
		TitleRU:       "Заброшенное здание",
		TitleKZ:       "Тастанды ғимарат",
		AddressRU:     "ул. Гагарина, 84",
		DescriptionRU: "Описание",
	}

	assert.Equal(t, "Заброшенное здание", p.Title(LangRU))
	assert.Equal(t, "Тастанды ғимарат", p.Title(LangKZ))

	// empty kz variant falls back to ru
	assert.Equal(t, "ул. Гагарина, 84", p.Address(LangKZ))
	assert.Equal(t, "Описание", p.Description(LangKZ))
}

func TestNextPointID(t *testing.T) {
	assert.Equal(t, 1, NextPointID(nil))

	points := []Point{{ID: 3}, {ID: 12}, {ID: 7}}
	assert.Equal(t, 13, NextPointID(points))

	// ids are never reused: deleting the max does not matter mid-session
	// because assignment always scans the live collection, but any surviving
	// id keeps the next id above it
	assert.Equal(t, 13, NextPointID([]Point{{ID: 12}}))
}

func TestNextSuggestionID(t *testing.T) {
	assert.Equal(t, 1, NextSuggestionID(nil))
	assert.Equal(t, 5, NextSuggestionID([]Suggestion{{ID: 4}, {ID: 1}}))
}

func TestCategoryTable(t *testing.T) {
	assert.True(t, ValidCategory(BlindSpot))
	assert.True(t, ValidCategory(Crime))
	assert.False(t, ValidCategory("graffiti"))

	assert.False(t, Categories[Crime].AllowPhotos)
	assert.True(t, Categories[Abandoned].AllowPhotos)
}
