// Package search resolves free-text place queries for the Atyrau map. A
// coordinate-looking input never touches the network; everything else goes
// to the geocoding service, scoped to a bounding box around the city, and
// the first successful match wins.
package search

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"sync"

	"googlemaps.github.io/maps"
)

// Atyrau city bounds. The latitude band doubles as the disambiguation rule
// for bare coordinate pairs: of the two numbers, the one inside the band is
// the latitude.
const (
	cityMinLat = 47.00
	cityMaxLat = 47.20
	cityMinLng = 51.80
	cityMaxLng = 52.05
)

// Result is a resolved place: either a parsed coordinate pair or the first
// geocoder hit.
type Result struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Label   string  `json:"label"`
	FromMap bool    `json:"fromGeocoder"`
}

var coordPair = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*[,;\s]\s*(-?\d+(?:\.\d+)?)\s*$`)

// ParseCoordinates recognizes "lat, lng" input in either order. Ambiguous
// order is resolved by checking which value falls inside the city's
// latitude band; if neither does, the input is not a local coordinate pair.
func ParseCoordinates(query string) (Result, bool) {
	m := coordPair.FindStringSubmatch(query)
	if m == nil {
		return Result{}, false
	}
	a, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Result{}, false
	}
	b, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Result{}, false
	}

	lat, lng := a, b
	if !inLatBand(lat) && inLatBand(b) {
		lat, lng = b, a
	}
	if !inLatBand(lat) {
		return Result{}, false
	}
	return Result{Lat: lat, Lng: lng, Label: fmt.Sprintf("%g, %g", lat, lng)}, true
}

func inLatBand(v float64) bool {
	return v >= cityMinLat && v <= cityMaxLat
}

// Geocoder is the outbound text-search dependency.
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]Result, error)
}

// mapsGeocoder wraps the Google Maps client, bounded to the city.
type mapsGeocoder struct {
	client *maps.Client
}

var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// NewMapsGeocoder builds the production geocoder from MAPS_CREDENTIALS.
// The client is a singleton like the rest of the Google clients here.
func NewMapsGeocoder() (Geocoder, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	if err != nil {
		return nil, err
	}
	if mapsClient == nil {
		return nil, fmt.Errorf("maps client not initialized")
	}
	return &mapsGeocoder{client: mapsClient}, nil
}

func (g *mapsGeocoder) Geocode(ctx context.Context, query string) ([]Result, error) {
	req := &maps.GeocodingRequest{
		Address: query,
		Bounds: &maps.LatLngBounds{
			SouthWest: maps.LatLng{Lat: cityMinLat, Lng: cityMinLng},
			NorthEast: maps.LatLng{Lat: cityMaxLat, Lng: cityMaxLng},
		},
	}
	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(results))
	for _, r := range results {
		out = append(out, Result{
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
			Label:   r.FormattedAddress,
			FromMap: true,
		})
	}
	return out, nil
}

// Resolve answers a single query: coordinate parse first, then the bounded
// geocoder, re-ranked by simply taking the first successful match. A miss
// is a nil result, not an error the caller has to handle specially.
func Resolve(ctx context.Context, g Geocoder, query string) (*Result, error) {
	if r, ok := ParseCoordinates(query); ok {
		return &r, nil
	}
	if g == nil {
		return nil, nil
	}
	results, err := g.Geocode(ctx, query)
	if err != nil {
		log.Printf("[search] geocode failed for %q: %v", query, err)
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
