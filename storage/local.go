package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	_ "modernc.org/sqlite"
)

const localSchema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL
);
`

// LocalBackend is the single-device fallback: one serialized JSON blob per
// collection, rewritten atomically on every mutation. There are no external
// writers, so change notifications are synthesized right after the initial
// load and after each local write.
type LocalBackend struct {
	db *sql.DB

	mu          sync.Mutex
	collections map[string]Snapshot
	subscribers map[string][]func(Snapshot)
}

// NewLocalBackend opens (or creates) the sqlite file at path. A corrupted or
// absent points blob is replaced by the bundled defaults; suggestions start
// empty.
func NewLocalBackend(path string) (*LocalBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping local store: %w", err)
	}
	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init local schema: %w", err)
	}

	b := &LocalBackend{
		db:          db,
		collections: make(map[string]Snapshot),
		subscribers: make(map[string][]func(Snapshot)),
	}

	points, existed, err := b.load(ColPoints)
	if err != nil {
		db.Close()
		return nil, err
	}
	if points == nil {
		// absent or corrupted -> bundled defaults
		points, err = SeedSnapshot()
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to build seed snapshot: %w", err)
		}
		if err := b.persist(ColPoints, points); err != nil {
			db.Close()
			return nil, err
		}
		if !existed {
			log.Println("[storage] local store seeded with default points")
		}
	}
	b.collections[ColPoints] = points

	suggestions, _, err := b.load(ColSuggestions)
	if err != nil {
		db.Close()
		return nil, err
	}
	if suggestions == nil {
		suggestions = Snapshot{}
	}
	b.collections[ColSuggestions] = suggestions

	return b, nil
}

// blobKey is the fixed, versioned identifier a collection is stored under.
// Blobs written by an older schema version are simply never read again.
func blobKey(collection string) string {
	return collection + ".v" + strconv.Itoa(SchemaVersion)
}

// load returns nil (not an error) for an absent or unparseable blob;
// corrupted local state is treated as empty, never as fatal.
func (b *LocalBackend) load(collection string) (Snapshot, bool, error) {
	var data string
	err := b.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, blobKey(collection)).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s blob: %w", collection, err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		log.Printf("[storage] corrupted %s blob, starting over: %v", collection, err)
		return nil, true, nil
	}
	return snap, true, nil
}

func (b *LocalBackend) persist(collection string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", collection, err)
	}
	_, err = b.db.Exec(
		`INSERT INTO collections (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		blobKey(collection), string(data))
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", collection, err)
	}
	return nil
}

// Subscribe registers fn and synthesizes the initial snapshot immediately:
// there are no external writers to observe, so the load result is the truth.
func (b *LocalBackend) Subscribe(collection string, fn func(Snapshot)) {
	b.mu.Lock()
	b.subscribers[collection] = append(b.subscribers[collection], fn)
	snap := b.collections[collection]
	b.mu.Unlock()
	fn(snap)
}

func (b *LocalBackend) Write(collection string, id int, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize %s/%d: %w", collection, id, err)
	}

	b.mu.Lock()
	old := b.collections[collection]
	snap := make(Snapshot, len(old)+1)
	for k, v := range old {
		snap[k] = v
	}
	snap[strconv.Itoa(id)] = raw
	if err := b.persist(collection, snap); err != nil {
		b.mu.Unlock()
		return err
	}
	b.collections[collection] = snap
	subs := b.subscribers[collection]
	b.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return nil
}

func (b *LocalBackend) Remove(collection string, id int) error {
	b.mu.Lock()
	old := b.collections[collection]
	snap := make(Snapshot, len(old))
	for k, v := range old {
		if k == strconv.Itoa(id) {
			continue
		}
		snap[k] = v
	}
	if err := b.persist(collection, snap); err != nil {
		b.mu.Unlock()
		return err
	}
	b.collections[collection] = snap
	subs := b.subscribers[collection]
	b.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return nil
}

func (b *LocalBackend) Close() {
	b.db.Close()
}
