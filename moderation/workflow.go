// Package moderation is the only component permitted to originate writes.
// Every operation validates, routes through the persistence backend, and
// relies on the subscription echo to land the change in the entity store.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"atyraumap/datastore"
	"atyraumap/storage"
	"atyraumap/types"
)

var (
	ErrNotAuthenticated     = errors.New("admin login required")
	ErrConfirmationRequired = errors.New("explicit confirmation required")
	ErrPhotoRequired        = errors.New("at least one photo must illustrate the hazard")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrPhotosForbidden      = errors.New("this category does not take photo attachments")
	ErrPointNotFound        = errors.New("point not found")
)

// FieldError marks a required field left empty. The caller highlights the
// field and attempts no write; nothing else happens.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "required field is empty: " + e.Field
}

// Translator optionally fills the secondary-language slots of a promoted
// point. A nil translator (or a failing one) means the primary text is
// copied as-is, which is the baseline behavior.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type PointDraft struct {
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Category      types.Category `json:"category"`
	TitleRU       string         `json:"title_ru"`
	TitleKZ       string         `json:"title_kz"`
	AddressRU     string         `json:"address_ru"`
	AddressKZ     string         `json:"address_kz"`
	DescriptionRU string         `json:"description_ru"`
	DescriptionKZ string         `json:"description_kz"`
	Photos        []string       `json:"photos"`
}

type SuggestionDraft struct {
	Lat         float64        `json:"lat"`
	Lng         float64        `json:"lng"`
	Category    types.Category `json:"category"`
	Description string         `json:"description"`
	Name        string         `json:"name"`
	Contact     string         `json:"contact"`
}

type Workflow struct {
	backend    storage.Backend
	store      *datastore.Store
	session    *Session
	translator Translator
	now        func() time.Time
}

func New(backend storage.Backend, store *datastore.Store, session *Session) *Workflow {
	return &Workflow{
		backend: backend,
		store:   store,
		session: session,
		now:     time.Now,
	}
}

// WithTranslator enables machine-assisted secondary-language fill at
// promotion time.
func (w *Workflow) WithTranslator(t Translator) *Workflow {
	w.translator = t
	return w
}

func (w *Workflow) Session() *Session {
	return w.session
}

func (w *Workflow) requireAdmin() error {
	if !w.session.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// AddPoint creates a confirmed point from an admin draft. The primary title
// is the one hard requirement; blank secondary title/address default to the
// primary value. Coordinates are rounded to 4 decimals like every stored
// point. Id assignment is max+1 over the in-memory collection; the
// read-then-write is not atomic, which a single admin session tolerates.
func (w *Workflow) AddPoint(draft PointDraft) (types.Point, error) {
	if err := w.requireAdmin(); err != nil {
		return types.Point{}, err
	}
	if draft.TitleRU == "" {
		return types.Point{}, &FieldError{Field: "title_ru"}
	}
	cfg, ok := types.Categories[draft.Category]
	if !ok {
		return types.Point{}, ErrUnknownCategory
	}
	if !cfg.AllowPhotos && len(draft.Photos) > 0 {
		return types.Point{}, ErrPhotosForbidden
	}

	if draft.TitleKZ == "" {
		draft.TitleKZ = draft.TitleRU
	}
	if draft.AddressKZ == "" {
		draft.AddressKZ = draft.AddressRU
	}

	point := types.Point{
		ID:            types.NextPointID(w.store.Points()),
		Lat:           types.RoundCoord(draft.Lat),
		Lng:           types.RoundCoord(draft.Lng),
		Category:      draft.Category,
		TitleRU:       draft.TitleRU,
		TitleKZ:       draft.TitleKZ,
		AddressRU:     draft.AddressRU,
		AddressKZ:     draft.AddressKZ,
		DescriptionRU: draft.DescriptionRU,
		DescriptionKZ: draft.DescriptionKZ,
		Photos:        draft.Photos,
	}
	if err := w.backend.Write(storage.ColPoints, point.ID, point); err != nil {
		return types.Point{}, err
	}
	return point, nil
}

// UpdatePointPosition handles marker drag: round, write through immediately.
// The transient "saved" affordance is the UI's job.
func (w *Workflow) UpdatePointPosition(id int, lat, lng float64) (types.Point, error) {
	if err := w.requireAdmin(); err != nil {
		return types.Point{}, err
	}
	point, ok := w.store.Point(id)
	if !ok {
		return types.Point{}, ErrPointNotFound
	}
	point.Lat = types.RoundCoord(lat)
	point.Lng = types.RoundCoord(lng)
	if err := w.backend.Write(storage.ColPoints, point.ID, point); err != nil {
		return types.Point{}, err
	}
	return point, nil
}

// DeletePoint is irreversible and therefore demands the confirmed flag the
// interactive confirmation step sets. Deleting an absent id is a no-op.
func (w *Workflow) DeletePoint(id int, confirmed bool) error {
	if err := w.requireAdmin(); err != nil {
		return err
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if _, ok := w.store.Point(id); !ok {
		return nil
	}
	return w.backend.Remove(storage.ColPoints, id)
}

// SubmitSuggestion takes an anonymous visitor draft. Name, contact and
// description are all required (none is validated beyond being non-empty);
// coordinates come straight from a map click and are stored unrounded.
// Citizens report the three visible hazard types; crime records arrive only
// through the bulk import.
func (w *Workflow) SubmitSuggestion(draft SuggestionDraft) (types.Suggestion, error) {
	if draft.Name == "" {
		return types.Suggestion{}, &FieldError{Field: "name"}
	}
	if draft.Contact == "" {
		return types.Suggestion{}, &FieldError{Field: "contact"}
	}
	if draft.Description == "" {
		return types.Suggestion{}, &FieldError{Field: "description"}
	}
	if !types.ValidCategory(draft.Category) || draft.Category == types.Crime {
		return types.Suggestion{}, ErrUnknownCategory
	}

	sg := types.Suggestion{
		ID:          types.NextSuggestionID(w.store.Suggestions()),
		Lat:         draft.Lat,
		Lng:         draft.Lng,
		Category:    draft.Category,
		Description: draft.Description,
		Name:        draft.Name,
		Contact:     draft.Contact,
		Created:     w.now().UTC().Format(time.RFC3339),
	}
	if err := w.backend.Write(storage.ColSuggestions, sg.ID, sg); err != nil {
		return types.Suggestion{}, err
	}
	return sg, nil
}

// ApproveSuggestion promotes a suggestion into a new point and removes the
// source. At least one photo must be selected. The two writes are sequential
// and not transactional: failing between them leaves both the new point and
// a stale suggestion, which is the accepted failure policy of this system.
// Approving an already-absent id is a no-op.
func (w *Workflow) ApproveSuggestion(ctx context.Context, id int, photos []string) (types.Point, error) {
	if err := w.requireAdmin(); err != nil {
		return types.Point{}, err
	}
	sg, ok := w.store.Suggestion(id)
	if !ok {
		return types.Point{}, nil
	}
	if len(photos) == 0 {
		return types.Point{}, ErrPhotoRequired
	}

	attributed := fmt.Sprintf("%s\n\nПредложено: %s, %s", sg.Description, sg.Name, sg.Contact)
	point := types.Point{
		ID:            types.NextPointID(w.store.Points()),
		Lat:           types.RoundCoord(sg.Lat),
		Lng:           types.RoundCoord(sg.Lng),
		Category:      sg.Category,
		TitleRU:       suggestionTitle(sg.Description),
		TitleKZ:       suggestionTitle(sg.Description),
		AddressRU:     sg.Description,
		AddressKZ:     sg.Description,
		DescriptionRU: attributed,
		DescriptionKZ: attributed,
		Photos:        photos,
	}

	if w.translator != nil {
		if kz, err := w.translator.Translate(ctx, sg.Description); err == nil && kz != "" {
			point.TitleKZ = suggestionTitle(kz)
			point.AddressKZ = kz
			point.DescriptionKZ = fmt.Sprintf("%s\n\nҰсынған: %s, %s", kz, sg.Name, sg.Contact)
		} else if err != nil {
			log.Printf("[moderation] translation skipped for suggestion %d: %v", id, err)
		}
	}

	if err := w.backend.Write(storage.ColPoints, point.ID, point); err != nil {
		return types.Point{}, err
	}
	if err := w.backend.Remove(storage.ColSuggestions, id); err != nil {
		// known inconsistency window: the point exists, the suggestion is stale
		log.Printf("[moderation] approved point %d but failed to remove suggestion %d: %v", point.ID, id, err)
		return point, err
	}
	return point, nil
}

// RejectSuggestion deletes without promoting. Terminal, irreversible, and
// indistinguishable from "never existed" once gone; re-rejecting an absent
// id is a no-op.
func (w *Workflow) RejectSuggestion(id int, confirmed bool) error {
	if err := w.requireAdmin(); err != nil {
		return err
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if _, ok := w.store.Suggestion(id); !ok {
		return nil
	}
	return w.backend.Remove(storage.ColSuggestions, id)
}

// ImportPoints writes a batch of pre-geocoded points (the offline crime
// export path). Each gets a fresh id above the running maximum.
func (w *Workflow) ImportPoints(points []types.Point) (int, error) {
	if err := w.requireAdmin(); err != nil {
		return 0, err
	}
	nextID := types.NextPointID(w.store.Points())
	written := 0
	for _, p := range points {
		p.ID = nextID
		p.Lat = types.RoundCoord(p.Lat)
		p.Lng = types.RoundCoord(p.Lng)
		if err := w.backend.Write(storage.ColPoints, p.ID, p); err != nil {
			return written, fmt.Errorf("import stopped at point %d: %w", p.ID, err)
		}
		nextID++
		written++
	}
	return written, nil
}

// suggestionTitle derives the point title from the free-text description.
func suggestionTitle(description string) string {
	runes := []rune(description)
	if len(runes) <= 60 {
		return description
	}
	return string(runes[:60]) + "…"
}
