package moderation

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atyraumap/datastore"
	"atyraumap/storage"
	"atyraumap/types"
)

const testSecret = "prokuratura"

func newTestWorkflow(t *testing.T) (*Workflow, *datastore.Store) {
	t.Helper()
	backend, err := storage.NewLocalBackend(filepath.Join(t.TempDir(), "map.db"))
	require.NoError(t, err)
	t.Cleanup(backend.Close)

	store := datastore.New()
	store.Start(backend)

	wf := New(backend, store, NewSession(testSecret))
	return wf, store
}

func login(t *testing.T, wf *Workflow) {
	t.Helper()
	require.True(t, wf.Session().Login(testSecret))
}

func TestAddPointAssignsFreshID(t *testing.T) {
	wf, store := newTestWorkflow(t)
	login(t, wf)

	before := store.Points()
	maxID := before[len(before)-1].ID

	p, err := wf.AddPoint(PointDraft{
		Lat: 47.123456, Lng: 51.987654,
		Category: types.Unlit,
		TitleRU:  "Новая точка",
	})
	require.NoError(t, err)
	assert.Greater(t, p.ID, maxID)
	assert.Len(t, store.Points(), len(before)+1)

	// ids stay unique
	seen := map[int]bool{}
	for _, q := range store.Points() {
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
	}
}

func TestAddPointRoundsAndDefaultsSecondary(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	login(t, wf)

	p, err := wf.AddPoint(PointDraft{
		Lat: 47.123456, Lng: 51.987654,
		Category:  types.Abandoned,
		TitleRU:   "Заброшка",
		AddressRU: "ул. Тестовая, 1",
	})
	require.NoError(t, err)
	assert.Equal(t, 47.1235, p.Lat)
	assert.Equal(t, 51.9877, p.Lng)
	// blank secondary title/address default to the primary value
	assert.Equal(t, "Заброшка", p.TitleKZ)
	assert.Equal(t, "ул. Тестовая, 1", p.AddressKZ)
}

func TestAddPointEmptyTitleAddsNothing(t *testing.T) {
	wf, store := newTestWorkflow(t)
	login(t, wf)

	before := len(store.Points())
	_, err := wf.AddPoint(PointDraft{Lat: 47.1, Lng: 51.9, Category: types.Unlit})

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "title_ru", fieldErr.Field)
	assert.Len(t, store.Points(), before)
}

func TestAddPointRejectsPhotosForCrime(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	login(t, wf)

	_, err := wf.AddPoint(PointDraft{
		Lat: 47.1, Lng: 51.9,
		Category: types.Crime,
		TitleRU:  "Происшествие",
		Photos:   []string{"x.jpg"},
	})
	assert.ErrorIs(t, err, ErrPhotosForbidden)
}

func TestAddPointRequiresLogin(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	_, err := wf.AddPoint(PointDraft{TitleRU: "т", Category: types.Unlit})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdatePointPosition(t *testing.T) {
	wf, store := newTestWorkflow(t)
	login(t, wf)

	id := store.Points()[0].ID
	p, err := wf.UpdatePointPosition(id, 47.123456, 51.987654)
	require.NoError(t, err)
	assert.Equal(t, 47.1235, p.Lat)
	assert.Equal(t, 51.9877, p.Lng)

	stored, ok := store.Point(id)
	require.True(t, ok)
	assert.Equal(t, 47.1235, stored.Lat)
	assert.Equal(t, 51.9877, stored.Lng)

	_, err = wf.UpdatePointPosition(9999, 47.1, 51.9)
	assert.ErrorIs(t, err, ErrPointNotFound)
}

func TestDeletePoint(t *testing.T) {
	wf, store := newTestWorkflow(t)
	login(t, wf)

	victim := store.Points()[0]
	countBefore := categoryCount(store, victim.Category)

	// the interactive confirmation step must have happened
	err := wf.DeletePoint(victim.ID, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	require.NoError(t, wf.DeletePoint(victim.ID, true))
	_, ok := store.Point(victim.ID)
	assert.False(t, ok)
	assert.Equal(t, countBefore-1, categoryCount(store, victim.Category))

	// deleting an absent id is a no-op
	require.NoError(t, wf.DeletePoint(victim.ID, true))
}

func categoryCount(store *datastore.Store, cat types.Category) int {
	n := 0
	for _, p := range store.Points() {
		if p.Category == cat {
			n++
		}
	}
	return n
}

func TestSubmitSuggestion(t *testing.T) {
	wf, store := newTestWorkflow(t)
	// no login: any visitor may submit

	sg, err := wf.SubmitSuggestion(SuggestionDraft{
		Lat: 47.11, Lng: 51.92,
		Category:    types.Unlit,
		Name:        "A",
		Contact:     "B",
		Description: "no light",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sg.ID)
	require.Len(t, store.Suggestions(), 1)

	// map-click coordinates are stored unrounded
	assert.Equal(t, 47.11, sg.Lat)
	assert.Equal(t, 51.92, sg.Lng)

	created, err := time.Parse(time.RFC3339, sg.Created)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)
}

func TestSubmitSuggestionValidation(t *testing.T) {
	wf, store := newTestWorkflow(t)

	cases := []struct {
		name  string
		draft SuggestionDraft
		field string
	}{
		{"missing name", SuggestionDraft{Contact: "B", Description: "d", Category: types.Unlit}, "name"},
		{"missing contact", SuggestionDraft{Name: "A", Description: "d", Category: types.Unlit}, "contact"},
		{"missing description", SuggestionDraft{Name: "A", Contact: "B", Category: types.Unlit}, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wf.SubmitSuggestion(tc.draft)
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}

	// crime reports come only through the bulk import
	_, err := wf.SubmitSuggestion(SuggestionDraft{Name: "A", Contact: "B", Description: "d", Category: types.Crime})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	assert.Empty(t, store.Suggestions())
}

func TestApproveSuggestion(t *testing.T) {
	wf, store := newTestWorkflow(t)
	login(t, wf)

	sg, err := wf.SubmitSuggestion(SuggestionDraft{
		Lat: 47.11, Lng: 51.92,
		Category:    types.Unlit,
		Name:        "A",
		Contact:     "B",
		Description: "no light",
	})
	require.NoError(t, err)
	require.Len(t, store.Suggestions(), 1)
	pointsBefore := len(store.Points())

	// photo selection is a hard precondition
	_, err = wf.ApproveSuggestion(context.Background(), sg.ID, nil)
	assert.ErrorIs(t, err, ErrPhotoRequired)
	assert.Len(t, store.Suggestions(), 1)

	p, err := wf.ApproveSuggestion(context.Background(), sg.ID, []string{"x.jpg"})
	require.NoError(t, err)

	assert.Equal(t, types.Unlit, p.Category)
	assert.Equal(t, []string{"x.jpg"}, p.Photos)
	assert.Contains(t, p.DescriptionRU, "no light")
	assert.Contains(t, p.DescriptionRU, "A")
	assert.Contains(t, p.DescriptionRU, "B")
	// both language slots are seeded from the single description
	assert.Contains(t, p.DescriptionKZ, "no light")
	assert.NotEmpty(t, p.TitleRU)
	assert.NotEmpty(t, p.TitleKZ)
	// promotion rounds the raw click coordinates
	assert.Equal(t, 47.11, p.Lat)
	assert.Equal(t, 51.92, p.Lng)

	assert.Len(t, store.Points(), pointsBefore+1)
	assert.Empty(t, store.Suggestions())

	// approving the already-absent id is a no-op, not an error
	again, err := wf.ApproveSuggestion(context.Background(), sg.ID, []string{"x.jpg"})
	require.NoError(t, err)
	assert.Zero(t, again.ID)
	assert.Len(t, store.Points(), pointsBefore+1)
}

func TestRejectSuggestion(t *testing.T) {
	wf, store := newTestWorkflow(t)
	login(t, wf)

	pointsBefore := len(store.Points())
	sg, err := wf.SubmitSuggestion(SuggestionDraft{
		Lat: 47.1, Lng: 51.9,
		Category: types.Abandoned, Name: "A", Contact: "B", Description: "d",
	})
	require.NoError(t, err)
	require.Len(t, store.Suggestions(), 1)

	err = wf.RejectSuggestion(sg.ID, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	require.NoError(t, wf.RejectSuggestion(sg.ID, true))
	assert.Empty(t, store.Suggestions())
	// no point was created
	assert.Len(t, store.Points(), pointsBefore)

	// second reject against the absent id must not fail
	require.NoError(t, wf.RejectSuggestion(sg.ID, true))
}

func TestModerationRequiresLogin(t *testing.T) {
	wf, store := newTestWorkflow(t)
	id := store.Points()[0].ID

	_, err := wf.UpdatePointPosition(id, 47.1, 51.9)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, wf.DeletePoint(id, true), ErrNotAuthenticated)
	_, err = wf.ApproveSuggestion(context.Background(), 1, []string{"x.jpg"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, wf.RejectSuggestion(1, true), ErrNotAuthenticated)
	_, err = wf.ImportPoints(nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionGate(t *testing.T) {
	s := NewSession("secret")
	assert.False(t, s.Authenticated())
	assert.False(t, s.Login("wrong"))
	assert.False(t, s.Authenticated())
	assert.True(t, s.Login("secret"))
	assert.True(t, s.Authenticated())
	s.Logout()
	assert.False(t, s.Authenticated())

	// an empty configured secret never authenticates
	open := NewSession("")
	assert.False(t, open.Login(""))
}

func TestImportPoints(t *testing.T) {
	wf, store := newTestWorkflow(t)
	login(t, wf)

	before := store.Points()
	next := before[len(before)-1].ID + 1

	batch := []types.Point{
		{Lat: 47.10551, Lng: 51.92502, Category: types.Crime, TitleRU: "НАБЕРЕЖНАЯ"},
		{Lat: 47.10802, Lng: 51.91803, Category: types.Crime, TitleRU: "АБАЙ"},
	}
	written, err := wf.ImportPoints(batch)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	first, ok := store.Point(next)
	require.True(t, ok)
	assert.Equal(t, types.Crime, first.Category)
	assert.Equal(t, 47.1055, first.Lat)

	_, ok = store.Point(next + 1)
	assert.True(t, ok)
}

func TestApproveUsesTranslatorWhenConfigured(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	login(t, wf)
	wf = wf.WithTranslator(stubTranslator{text: "жарық жоқ"})

	sg, err := wf.SubmitSuggestion(SuggestionDraft{
		Lat: 47.11, Lng: 51.92,
		Category: types.Unlit, Name: "A", Contact: "B", Description: "no light",
	})
	require.NoError(t, err)

	p, err := wf.ApproveSuggestion(context.Background(), sg.ID, []string{"x.jpg"})
	require.NoError(t, err)
	assert.Contains(t, p.DescriptionKZ, "жарық жоқ")
	assert.Contains(t, p.DescriptionKZ, "A")
	// the primary slots stay untouched
	assert.Contains(t, p.DescriptionRU, "no light")
}

type stubTranslator struct{ text string }

func (s stubTranslator) Translate(_ context.Context, _ string) (string, error) {
	return s.text, nil
}

func TestApproveTranslatorFailureFallsBackToCopy(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	login(t, wf)
	wf = wf.WithTranslator(failingTranslator{})

	sg, err := wf.SubmitSuggestion(SuggestionDraft{
		Lat: 47.11, Lng: 51.92,
		Category: types.Unlit, Name: "A", Contact: "B", Description: "no light",
	})
	require.NoError(t, err)

	p, err := wf.ApproveSuggestion(context.Background(), sg.ID, []string{"x.jpg"})
	require.NoError(t, err)
	assert.Contains(t, p.DescriptionKZ, "no light")
}

type failingTranslator struct{}

func (failingTranslator) Translate(_ context.Context, _ string) (string, error) {
	return "", errors.New("model unavailable")
}
