package storage

import (
	"encoding/json"
	"strconv"

	"atyraumap/types"
)

// Collection names. Points and suggestions are independent collections with
// independent id spaces.
const (
	ColPoints      = "points"
	ColSuggestions = "suggestions"
)

// SchemaVersion gates the one-time destructive seed. Bumping it wipes and
// reseeds the cloud store on next start; re-deploying the same version never
// touches live edits.
const SchemaVersion = 2

// Snapshot is a whole-collection state: stringified id -> full entity record.
// Backends always deliver complete snapshots, never deltas, so concurrent
// writers resolve as last-snapshot-wins.
type Snapshot map[string]json.RawMessage

// Backend is the persistence adapter both the cloud and the local store
// implement. Write and Remove are fire-and-forget from the caller's point of
// view: success is observed only through the subscription delivering the
// updated snapshot.
type Backend interface {
	// Subscribe registers fn for a collection. fn receives the current
	// snapshot and every subsequent one.
	Subscribe(collection string, fn func(Snapshot))
	Write(collection string, id int, doc interface{}) error
	Remove(collection string, id int) error
	Close()
}

func buildSnapshot(points []types.Point) (Snapshot, error) {
	snap := make(Snapshot, len(points))
	for _, p := range points {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		snap[strconv.Itoa(p.ID)] = raw
	}
	return snap, nil
}
