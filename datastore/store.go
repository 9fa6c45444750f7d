// Package datastore holds the in-memory authoritative copy of both
// collections. It is a pure cache plus observer registry: no business logic,
// all mutation arrives through the persistence backend's subscription.
package datastore

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"atyraumap/storage"
	"atyraumap/types"
)

type Store struct {
	mu          sync.RWMutex
	points      []types.Point
	suggestions []types.Suggestion
	listeners   []func()
}

func New() *Store {
	return &Store{}
}

// Start wires the store to the chosen backend. Only the subscription
// callbacks ever assign new collection values.
func (s *Store) Start(backend storage.Backend) {
	backend.Subscribe(storage.ColPoints, func(snap storage.Snapshot) {
		points := decodePoints(snap)
		s.mu.Lock()
		s.points = points
		s.mu.Unlock()
		s.notify()
	})
	backend.Subscribe(storage.ColSuggestions, func(snap storage.Snapshot) {
		suggestions := decodeSuggestions(snap)
		s.mu.Lock()
		s.suggestions = suggestions
		s.mu.Unlock()
		s.notify()
	})
}

// OnChanged registers a zero-argument listener. Every listener fires in
// registration order on every change. There is no unregistration; the store
// lives for the whole process.
func (s *Store) OnChanged(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

// Points returns the current collection. Callers must not mutate it; all
// writes go through the moderation workflow and the backend.
func (s *Store) Points() []types.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points
}

func (s *Store) Suggestions() []types.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.suggestions
}

func (s *Store) Point(id int) (types.Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.points {
		if p.ID == id {
			return p, true
		}
	}
	return types.Point{}, false
}

func (s *Store) Suggestion(id int) (types.Suggestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sg := range s.suggestions {
		if sg.ID == id {
			return sg, true
		}
	}
	return types.Suggestion{}, false
}

func decodePoints(snap storage.Snapshot) []types.Point {
	points := make([]types.Point, 0, len(snap))
	for key, raw := range snap {
		var p types.Point
		if err := json.Unmarshal(raw, &p); err != nil {
			log.Printf("[datastore] skipping undecodable point %s: %v", key, err)
			continue
		}
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })
	return points
}

func decodeSuggestions(snap storage.Snapshot) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, len(snap))
	for key, raw := range snap {
		var sg types.Suggestion
		if err := json.Unmarshal(raw, &sg); err != nil {
			log.Printf("[datastore] skipping undecodable suggestion %s: %v", key, err)
			continue
		}
		suggestions = append(suggestions, sg)
	}
	// oldest first; Created exists only for this ordering
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Created != suggestions[j].Created {
			return suggestions[i].Created < suggestions[j].Created
		}
		return suggestions[i].ID < suggestions[j].ID
	})
	return suggestions
}
