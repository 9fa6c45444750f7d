// Package projection derives the renderable state from the entity store.
// Every rebuild starts from scratch: markers, counts and heat weights are
// derived views, discarded and recomputed on each change notification,
// never patched in place. The collections are small enough that this is
// cheaper than getting incremental updates of a cluster overlay right.
package projection

import (
	"strconv"

	"atyraumap/datastore"
	"atyraumap/types"
)

// deepLinkSettleMS is how long the client waits after initial render before
// centering on a deep-linked point and opening its detail view.
const deepLinkSettleMS = 600

type Projection struct {
	store *datastore.Store
}

func New(store *datastore.Store) *Projection {
	return &Projection{store: store}
}

// Rebuild computes the full view state for a language and an active filter
// set. An empty filter list means all categories are visible. Heat samples
// are only emitted when the heat overlay is requested.
func (pr *Projection) Rebuild(lang types.Lang, filters []types.Category, heat bool) types.ViewState {
	points := pr.store.Points()
	suggestions := pr.store.Suggestions()

	active := activeSet(filters)
	counts := make(map[types.Category]int, len(types.Categories))
	for cat := range types.Categories {
		counts[cat] = 0
	}

	markers := make([]types.Marker, 0, len(points))
	var heatSamples []types.HeatSample

	for _, p := range points {
		cfg, ok := types.Categories[p.Category]
		if !ok {
			continue // never render a point outside the enumerated set
		}
		counts[p.Category]++

		if !active[p.Category] {
			continue
		}
		markers = append(markers, types.Marker{
			ID:       p.ID,
			Lat:      p.Lat,
			Lng:      p.Lng,
			Category: p.Category,
			Color:    cfg.Color,
			Tooltip:  p.Title(lang),
		})
		if heat {
			heatSamples = append(heatSamples, types.HeatSample{
				Lat:    p.Lat,
				Lng:    p.Lng,
				Weight: cfg.HeatWeight,
			})
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	// legend order, so the echoed filter set is stable across rebuilds
	visible := make([]types.Category, 0, len(active))
	for _, cat := range types.CategoryOrder {
		if active[cat] {
			visible = append(visible, cat)
		}
	}

	return types.ViewState{
		Markers:      markers,
		Counts:       counts,
		Total:        total,
		PendingCount: len(suggestions),
		HeatSamples:  heatSamples,
		Filters:      visible,
		Lang:         lang,
	}
}

func activeSet(filters []types.Category) map[types.Category]bool {
	active := make(map[types.Category]bool, len(types.Categories))
	if len(filters) == 0 {
		for cat := range types.Categories {
			active[cat] = true
		}
		return active
	}
	for _, cat := range filters {
		if types.ValidCategory(cat) {
			active[cat] = true
		}
	}
	return active
}

// ResolveDeepLink maps a ?point=<id> query value onto a center-and-open
// instruction. An unparseable or unresolvable id yields nothing; the map
// just loads normally.
func (pr *Projection) ResolveDeepLink(raw string) (types.DeepLink, bool) {
	if raw == "" {
		return types.DeepLink{}, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return types.DeepLink{}, false
	}
	p, ok := pr.store.Point(id)
	if !ok {
		return types.DeepLink{}, false
	}
	return types.DeepLink{
		PointID:       p.ID,
		Lat:           p.Lat,
		Lng:           p.Lng,
		OpenDetail:    true,
		SettleDelayMS: deepLinkSettleMS,
	}, true
}
