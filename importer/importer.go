// Package importer converts the prosecutor's office incident export into
// crime points: one tab-separated line per incident (article, street,
// optional house number), resolved against the fixed street table with a
// small positional jitter so stacked incidents stay distinguishable.
package importer

import (
	"bufio"
	"io"
	"log"
	"math/rand"
	"regexp"
	"strings"

	"atyraumap/types"
)

type coord struct {
	Lat float64
	Lng float64
}

// City center, the wide-spread fallback for streets nobody mapped yet.
var center = coord{Lat: 47.1067, Lng: 51.9203}

type Record struct {
	Article string
	Street  string
	House   string
}

var microdistrictRe = regexp.MustCompile(`^(№\s*)?\d+$`)
var digitsRe = regexp.MustCompile(`\d+`)

// Parse reads the raw export. Lines without an article or street are
// skipped, not errors; the export is hand-assembled and always a bit messy.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		rec := Record{Article: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			rec.Street = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			rec.House = strings.TrimSpace(parts[2])
		}
		if rec.Article == "" || rec.Street == "" {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Convert turns parsed records into crime points. Ids are left zero; the
// moderation workflow assigns them at write time.
func Convert(records []Record, rng *rand.Rand) []types.Point {
	points := make([]types.Point, 0, len(records))
	unmapped := make(map[string]bool)

	for _, r := range records {
		var lat, lng float64
		key := strings.ToUpper(r.Street)

		switch {
		case microdistrictRe.MatchString(r.Street):
			c := center
			if num := digitsRe.FindString(r.Street); num != "" {
				if mc, ok := microdistricts[num]; ok {
					c = mc
				}
			}
			lat = c.Lat + jitter(rng)
			lng = c.Lng + jitter(rng)
		case streetKnown(key):
			c := streets[key]
			lat = c.Lat + jitter(rng)
			lng = c.Lng + jitter(rng)
		default:
			unmapped[r.Street] = true
			lat = center.Lat + (rng.Float64()-0.5)*0.012
			lng = center.Lng + (rng.Float64()-0.5)*0.012
		}

		address := r.Street
		if r.House != "" {
			address = r.Street + " " + r.House
		}
		points = append(points, types.Point{
			Lat:           types.RoundCoord(lat),
			Lng:           types.RoundCoord(lng),
			Category:      types.Crime,
			TitleRU:       address,
			TitleKZ:       address,
			AddressRU:     address,
			AddressKZ:     address,
			DescriptionRU: r.Article + " — " + address,
			DescriptionKZ: r.Article + " — " + address,
			Photos:        []string{},
		})
	}

	if len(unmapped) > 0 {
		names := make([]string, 0, len(unmapped))
		for s := range unmapped {
			names = append(names, s)
		}
		log.Printf("[importer] %d unmapped streets placed near center: %s", len(unmapped), strings.Join(names, ", "))
	}
	return points
}

func streetKnown(key string) bool {
	_, ok := streets[key]
	return ok
}

// stacked incidents on the same street get ~100m of spread
func jitter(rng *rand.Rand) float64 {
	return (rng.Float64() - 0.5) * 0.002
}
