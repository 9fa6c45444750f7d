package projection

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atyraumap/datastore"
	"atyraumap/storage"
	"atyraumap/types"
)

func testFixture(t *testing.T) (*Projection, *datastore.Store, storage.Backend) {
	t.Helper()
	backend, err := storage.NewLocalBackend(filepath.Join(t.TempDir(), "map.db"))
	require.NoError(t, err)
	t.Cleanup(backend.Close)

	store := datastore.New()
	store.Start(backend)
	return New(store), store, backend
}

func TestRebuildCountsAndMarkers(t *testing.T) {
	proj, store, _ := testFixture(t)

	state := proj.Rebuild(types.LangRU, nil, false)
	assert.Equal(t, len(store.Points()), state.Total)
	assert.Equal(t, len(store.Points()), len(state.Markers))
	assert.Equal(t, 0, state.PendingCount)

	abandoned := 0
	for _, p := range store.Points() {
		if p.Category == types.Abandoned {
			abandoned++
		}
	}
	assert.Equal(t, abandoned, state.Counts[types.Abandoned])
	assert.Equal(t, 0, state.Counts[types.Crime])

	// marker carries the category color and the localized tooltip
	m := state.Markers[0]
	assert.Equal(t, types.Categories[m.Category].Color, m.Color)
	p, ok := store.Point(m.ID)
	require.True(t, ok)
	assert.Equal(t, p.TitleRU, m.Tooltip)
}

func TestRebuildHonorsFilters(t *testing.T) {
	proj, store, _ := testFixture(t)

	state := proj.Rebuild(types.LangRU, []types.Category{types.Unlit}, false)
	for _, m := range state.Markers {
		assert.Equal(t, types.Unlit, m.Category)
	}
	// counts always reflect the whole collection, filters only hide layers
	assert.Equal(t, len(store.Points()), state.Total)
	assert.Equal(t, []types.Category{types.Unlit}, state.Filters)
}

func TestRebuildFilterOrderStable(t *testing.T) {
	proj, _, _ := testFixture(t)

	// no active filter set: the echo lists every category in legend order,
	// identically on every rebuild
	first := proj.Rebuild(types.LangRU, nil, false)
	assert.Equal(t, types.CategoryOrder, first.Filters)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Filters, proj.Rebuild(types.LangRU, nil, false).Filters)
	}

	partial := proj.Rebuild(types.LangRU, []types.Category{types.Crime, types.Abandoned}, false)
	assert.Equal(t, []types.Category{types.Abandoned, types.Crime}, partial.Filters)
}

func TestRebuildTooltipLanguage(t *testing.T) {
	proj, store, _ := testFixture(t)

	state := proj.Rebuild(types.LangKZ, nil, false)
	byID := map[int]string{}
	for _, m := range state.Markers {
		byID[m.ID] = m.Tooltip
	}
	for _, p := range store.Points() {
		assert.Equal(t, p.Title(types.LangKZ), byID[p.ID])
	}
}

func TestRebuildHeatSamples(t *testing.T) {
	proj, _, backend := testFixture(t)

	crime := types.Point{ID: 5000, Lat: 47.1055, Lng: 51.925, Category: types.Crime, TitleRU: "НАБЕРЕЖНАЯ"}
	require.NoError(t, backend.Write(storage.ColPoints, crime.ID, crime))

	state := proj.Rebuild(types.LangRU, nil, true)
	require.NotEmpty(t, state.HeatSamples)

	var found bool
	for _, h := range state.HeatSamples {
		if h.Lat == crime.Lat && h.Lng == crime.Lng {
			found = true
			assert.Equal(t, types.Categories[types.Crime].HeatWeight, h.Weight)
		}
	}
	assert.True(t, found)

	// no heat request, no samples
	assert.Nil(t, proj.Rebuild(types.LangRU, nil, false).HeatSamples)
}

func TestPendingCountTracksSuggestions(t *testing.T) {
	proj, _, backend := testFixture(t)

	assert.Equal(t, 0, proj.Rebuild(types.LangRU, nil, false).PendingCount)

	sg := types.Suggestion{ID: 1, Category: types.Unlit, Description: "no light", Created: "2026-03-01T00:00:00Z"}
	require.NoError(t, backend.Write(storage.ColSuggestions, sg.ID, sg))
	assert.Equal(t, 1, proj.Rebuild(types.LangRU, nil, false).PendingCount)

	require.NoError(t, backend.Remove(storage.ColSuggestions, sg.ID))
	assert.Equal(t, 0, proj.Rebuild(types.LangRU, nil, false).PendingCount)
}

func TestResolveDeepLink(t *testing.T) {
	proj, store, _ := testFixture(t)

	target := store.Points()[0]
	link, ok := proj.ResolveDeepLink("1")
	require.True(t, ok)
	assert.Equal(t, target.ID, link.PointID)
	assert.Equal(t, target.Lat, link.Lat)
	assert.True(t, link.OpenDetail)
	assert.Equal(t, deepLinkSettleMS, link.SettleDelayMS)

	_, ok = proj.ResolveDeepLink("")
	assert.False(t, ok)
	_, ok = proj.ResolveDeepLink("not-a-number")
	assert.False(t, ok)
	_, ok = proj.ResolveDeepLink("424242")
	assert.False(t, ok)
}
