package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/storage"
	"go.uber.org/zap"
)

const (
	// StorageKey is where the wishlist document is kept
	StorageKey = "wishlist:v1"
	// Version of the document schema; documents with another version are discarded
	Version = 0
)

// Version is a pointer so a document without one is told apart from version 0
type document struct {
	State   State `json:"state"`
	Version *int  `json:"version"`
}

// Encode serializes state into the versioned storage document
func Encode(state State) ([]byte, error) {
	v := Version
	return json.Marshal(document{State: state, Version: &v})
}

// Decode parses a storage document. Entries repeating an id are dropped.
func Decode(b []byte) (State, error) {
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return State{}, err
	}

	if doc.Version == nil {
		return State{}, &VersionError{Missing: true, Want: Version}
	}
	if *doc.Version != Version {
		return State{}, &VersionError{Got: *doc.Version, Want: Version}
	}

	items := make([]Entry, 0, len(doc.State.Items))
	seen := make(map[int]bool, len(doc.State.Items))
	for _, e := range doc.State.Items {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		items = append(items, e)
	}

	return State{Items: items}, nil
}

// VersionError reports a stored document written with another schema version
type VersionError struct {
	Got     int
	Want    int
	Missing bool
}

func (e *VersionError) Error() string {
	if e.Missing {
		return "wishlist document has no version"
	}
	return fmt.Sprintf("unsupported wishlist version %d, want %d", e.Got, e.Want)
}

func load(ctx context.Context, s storage.Storage) State {
	log := logger.FromCtx(ctx)
	empty := State{Items: []Entry{}}

	b, err := s.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debugw("no stored wishlist, starting empty")
		return empty
	}
	if err != nil {
		log.Warnw("failed to read wishlist, starting empty", zap.Error(err))
		return empty
	}

	state, err := Decode(b)
	if err != nil {
		log.Warnw("discarding stored wishlist", zap.Error(err))
		return empty
	}

	return state
}

// persist must be called with the store lock held so writes land in order
func (s *Store) persist(ctx context.Context, state State) {
	if s.storage == nil {
		return
	}

	log := logger.FromCtx(ctx)
	b, err := Encode(state)
	if err != nil {
		log.Errorw("failed to encode wishlist", zap.Error(err))
		return
	}

	if err := s.storage.Put(ctx, StorageKey, b); err != nil {
		log.Errorw("failed to save wishlist", zap.Error(err))
	}
}
