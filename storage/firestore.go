package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreBackend keeps both collections in Firestore and delivers
// whole-collection snapshots through the native listener stream.
type FirestoreBackend struct {
	client *firestore.Client
	ctx    context.Context
	cancel context.CancelFunc
}

type schemaMarker struct {
	Version int  `firestore:"version"`
	Seeded  bool `firestore:"seeded"`
}

// NewFirestoreBackend decodes the base64 service-account credentials,
// initializes the Firebase app and runs the one-time seed check. Any error
// here means the caller should fall back to the local backend.
func NewFirestoreBackend(encodedCreds string) (*FirestoreBackend, error) {
	if encodedCreds == "" {
		return nil, fmt.Errorf("no firebase credentials configured")
	}
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode firebase credentials: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	opt := option.WithCredentialsJSON(creds)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	b := &FirestoreBackend{client: client, ctx: ctx, cancel: cancel}
	if err := b.ensureSeed(ctx); err != nil {
		b.Close()
		return nil, fmt.Errorf("seed check failed: %w", err)
	}
	return b, nil
}

// ensureSeed writes the bundled defaults exactly once. The meta/schema marker
// guards it: same version never reseeds, an older version triggers a full
// wipe-and-reseed (destructive migration, not field-by-field).
func (b *FirestoreBackend) ensureSeed(ctx context.Context) error {
	markerRef := b.client.Collection("meta").Doc("schema")
	doc, err := markerRef.Get(ctx)

	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("error reading schema marker: %w", err)
	}

	if err == nil {
		var marker schemaMarker
		if err := doc.DataTo(&marker); err != nil {
			return fmt.Errorf("error decoding schema marker: %w", err)
		}
		if marker.Version == SchemaVersion {
			return nil // already on this schema, live edits stay untouched
		}
		log.Printf("[storage] schema v%d -> v%d, wiping and reseeding", marker.Version, SchemaVersion)
		if err := b.wipeCollection(ctx, ColPoints); err != nil {
			return err
		}
		if err := b.wipeCollection(ctx, ColSuggestions); err != nil {
			return err
		}
	} else {
		// No marker yet. Seed only if the points collection is actually empty.
		docs, err := b.client.Collection(ColPoints).Limit(1).Documents(ctx).GetAll()
		if err != nil {
			return fmt.Errorf("error checking points collection: %w", err)
		}
		if len(docs) > 0 {
			_, err = markerRef.Set(ctx, schemaMarker{Version: SchemaVersion, Seeded: false})
			return err
		}
	}

	log.Println("[storage] seeding default points")
	for _, p := range DefaultPoints {
		if _, err := b.client.Collection(ColPoints).Doc(strconv.Itoa(p.ID)).Set(ctx, p); err != nil {
			return fmt.Errorf("failed to seed point %d: %w", p.ID, err)
		}
	}
	_, err = markerRef.Set(ctx, schemaMarker{Version: SchemaVersion, Seeded: true})
	return err
}

func (b *FirestoreBackend) wipeCollection(ctx context.Context, collection string) error {
	iter := b.client.Collection(collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("error iterating %s for wipe: %w", collection, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("error deleting %s/%s: %w", collection, doc.Ref.ID, err)
		}
	}
	return nil
}

// docSource is the slice of firestore.DocumentIterator the snapshot reader
// needs.
type docSource interface {
	Next() (*firestore.DocumentSnapshot, error)
}

// snapshotOf drains a document iterator into a snapshot. An iteration error
// aborts the whole snapshot: subscribers replace their collection wholesale,
// so delivering a partial read would drop live entities and let the max+1
// id scan hand out an id that already exists.
func snapshotOf(docs docSource, collection string) (Snapshot, error) {
	snap := Snapshot{}
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			return snap, nil
		}
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(doc.Data())
		if err != nil {
			log.Printf("[storage] skipping unmarshalable doc %s/%s: %v", collection, doc.Ref.ID, err)
			continue
		}
		snap[doc.Ref.ID] = raw
	}
}

// Subscribe streams whole-collection snapshots to fn until the backend is
// closed. The listener runs on its own goroutine; a failed stream is logged
// and the subscription ends (the UI simply stops updating). A snapshot that
// fails mid-read is dropped, never delivered partially.
func (b *FirestoreBackend) Subscribe(collection string, fn func(Snapshot)) {
	go func() {
		snapIter := b.client.Collection(collection).Snapshots(b.ctx)
		defer snapIter.Stop()
		for {
			qsnap, err := snapIter.Next()
			if err != nil {
				if b.ctx.Err() == nil {
					log.Printf("[storage] %s snapshot stream ended: %v", collection, err)
				}
				return
			}
			snap, err := snapshotOf(qsnap.Documents, collection)
			if err != nil {
				log.Printf("[storage] dropping %s snapshot, read failed mid-stream: %v", collection, err)
				continue
			}
			fn(snap)
		}
	}()
}

func (b *FirestoreBackend) Write(collection string, id int, doc interface{}) error {
	_, err := b.client.Collection(collection).Doc(strconv.Itoa(id)).Set(b.ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to write %s/%d: %w", collection, id, err)
	}
	return nil
}

func (b *FirestoreBackend) Remove(collection string, id int) error {
	_, err := b.client.Collection(collection).Doc(strconv.Itoa(id)).Delete(b.ctx)
	if err != nil {
		return fmt.Errorf("failed to remove %s/%d: %w", collection, id, err)
	}
	return nil
}

func (b *FirestoreBackend) Close() {
	b.cancel()
	if b.client != nil {
		b.client.Close()
	}
}
