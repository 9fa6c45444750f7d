package storage

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atyraumap/types"
)

func openLocal(t *testing.T) *LocalBackend {
	t.Helper()
	b, err := NewLocalBackend(filepath.Join(t.TempDir(), "map.db"))
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b
}

func TestLocalSeedsDefaultsOnFirstOpen(t *testing.T) {
	b := openLocal(t)

	var got Snapshot
	b.Subscribe(ColPoints, func(s Snapshot) { got = s })
	require.NotNil(t, got)
	assert.Len(t, got, len(DefaultPoints))

	var empty Snapshot
	b.Subscribe(ColSuggestions, func(s Snapshot) { empty = s })
	assert.Empty(t, empty)
}

func TestLocalWriteRemoveRoundTrip(t *testing.T) {
	b := openLocal(t)

	var snaps []Snapshot
	b.Subscribe(ColSuggestions, func(s Snapshot) { snaps = append(snaps, s) })

	sg := types.Suggestion{ID: 1, Lat: 47.11, Lng: 51.92, Category: types.Unlit, Description: "no light"}
	require.NoError(t, b.Write(ColSuggestions, sg.ID, sg))

	// initial synthesized snapshot plus the write echo
	require.Len(t, snaps, 2)
	var back types.Suggestion
	require.NoError(t, json.Unmarshal(snaps[1]["1"], &back))
	assert.Equal(t, sg, back)

	require.NoError(t, b.Remove(ColSuggestions, 1))
	require.Len(t, snaps, 3)
	assert.Empty(t, snaps[2])

	// removing again is harmless
	require.NoError(t, b.Remove(ColSuggestions, 1))
}

func TestLocalPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.db")
	b, err := NewLocalBackend(path)
	require.NoError(t, err)

	p := types.Point{ID: 99, Lat: 47.1, Lng: 51.9, Category: types.Unlit, TitleRU: "т"}
	require.NoError(t, b.Write(ColPoints, p.ID, p))
	b.Close()

	b2, err := NewLocalBackend(path)
	require.NoError(t, err)
	defer b2.Close()

	var got Snapshot
	b2.Subscribe(ColPoints, func(s Snapshot) { got = s })
	assert.Contains(t, got, "99")
	assert.Len(t, got, len(DefaultPoints)+1)
}

func TestLocalCorruptedBlobTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.db")
	b, err := NewLocalBackend(path)
	require.NoError(t, err)
	_, err = b.db.Exec(`UPDATE collections SET data = 'not json' WHERE name = ?`, blobKey(ColPoints))
	require.NoError(t, err)
	b.Close()

	// corrupted points blob is replaced by the bundled defaults, not fatal
	b2, err := NewLocalBackend(path)
	require.NoError(t, err)
	defer b2.Close()

	var got Snapshot
	b2.Subscribe(ColPoints, func(s Snapshot) { got = s })
	assert.Len(t, got, len(DefaultPoints))
}

func TestSelectFallsBackToLocal(t *testing.T) {
	// bad cloud config: credentials that are not valid base64 JSON
	cfg := Config{
		FirebaseCredentials: "!!!not-base64!!!",
		LocalPath:           filepath.Join(t.TempDir(), "fallback.db"),
	}
	backend, err := Select(cfg)
	require.NoError(t, err)
	defer backend.Close()

	_, ok := backend.(*LocalBackend)
	assert.True(t, ok, "cloud init failure must degrade to the local backend")

	// an add-then-read round trip still works
	var snaps []Snapshot
	backend.Subscribe(ColPoints, func(s Snapshot) { snaps = append(snaps, s) })
	p := types.Point{ID: 100, Lat: 47.11, Lng: 51.92, Category: types.Abandoned, TitleRU: "тест"}
	require.NoError(t, backend.Write(ColPoints, p.ID, p))
	require.Len(t, snaps, 2)
	assert.Contains(t, snaps[1], "100")
}

func TestSelectWithoutCredentialsUsesLocal(t *testing.T) {
	backend, err := Select(Config{LocalPath: filepath.Join(t.TempDir(), "local.db")})
	require.NoError(t, err)
	defer backend.Close()
	_, ok := backend.(*LocalBackend)
	assert.True(t, ok)
}
