// Package registry implements the corpus registry core: the record index,
// record CRUD with the review workflow, and the synchronization service
// that projects the store into an in-memory snapshot.
package registry

import (
	"context"
	"fmt"
	"slices"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/kv"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
)

// IndexKey is the well-known store key holding the serialized id list.
// The index is the only authoritative enumeration of existing records.
const IndexKey = "corpus_keys"

// IndexManager maintains the ordered set of record ids as a single value in
// the backing store.
//
// Known race: Append is a blind read-modify-write. Two concurrent writers
// can both read the same base list and each write back a list missing the
// other's id. The record itself is not lost, only its discoverability. The
// store offers no compare-and-swap, so this is accepted and documented
// rather than prevented.
type IndexManager struct {
	store kv.Store
	log   logging.Logger
}

func NewIndexManager(store kv.Store, log logging.Logger) *IndexManager {
	return &IndexManager{store: store, log: log}
}

// Load reads the current id list. An absent, empty, or unparsable payload
// yields an empty list: the index is created lazily on first submission, so
// none of these conditions is an error worth failing a sync over.
func (m *IndexManager) Load(ctx context.Context) ([]string, error) {
	data, err := m.store.Get(ctx, IndexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	ids, err := corpus.UnmarshalIndex(data)
	if err != nil {
		m.log.Warn(ctx, "index payload unparsable, treating as empty", "error", err)
		return []string{}, nil
	}
	return ids, nil
}

// Append adds id to the index, preserving insertion order. Appending an id
// that is already present is a no-op: ids are never removed, so a duplicate
// can only mean a redundant call.
func (m *IndexManager) Append(ctx context.Context, id string) error {
	ids, err := m.Load(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}
	ids = append(ids, id)

	data, err := corpus.MarshalIndex(ids)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, IndexKey, data); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}
