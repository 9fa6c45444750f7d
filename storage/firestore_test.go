package storage

import (
	"errors"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

// stubDocs replays a canned sequence of iterator outcomes.
type stubDocs struct {
	errs []error
}

func (s *stubDocs) Next() (*firestore.DocumentSnapshot, error) {
	err := s.errs[0]
	s.errs = s.errs[1:]
	return nil, err
}

func TestSnapshotOfEmptyStream(t *testing.T) {
	snap, err := snapshotOf(&stubDocs{errs: []error{iterator.Done}}, ColPoints)
	require.NoError(t, err)
	assert.Empty(t, snap)
	assert.NotNil(t, snap)
}

func TestSnapshotOfAbortsOnIterationError(t *testing.T) {
	// a mid-read failure must yield no snapshot at all: a partial one would
	// replace the full collection downstream and shrink the max+1 id scan
	snap, err := snapshotOf(&stubDocs{errs: []error{errors.New("stream reset")}}, ColPoints)
	require.Error(t, err)
	assert.Nil(t, snap)
}
