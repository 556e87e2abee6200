package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/envelope"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/kv"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
)

const recordKeyPrefix = "corpus_"

// RecordKey derives the store key for a record id.
func RecordKey(id string) string { return recordKeyPrefix + id }

// createIDAttempts bounds how often Create retries id generation when the
// generated id already resolves to a stored record.
const createIDAttempts = 3

// RecordStore provides CRUD over individual corpus records. It cannot
// enumerate records by itself; enumeration always goes through the index.
type RecordStore struct {
	store kv.Store
	index *IndexManager
	codec envelope.Codec
	log   logging.Logger

	// Test seams.
	now   func() time.Time
	newID func(t time.Time) string
}

func NewRecordStore(store kv.Store, index *IndexManager, codec envelope.Codec, log logging.Logger) *RecordStore {
	return &RecordStore{
		store: store,
		index: index,
		codec: codec,
		log:   log,
		now:   time.Now,
		newID: corpus.NewIDAt,
	}
}

// Create encodes the submission, stores it as a pending record, and appends
// the new id to the index.
//
// If the index append fails after the record write succeeded, the record
// exists but is undiscoverable via enumeration. Create then returns the
// record together with an error wrapping corpus.ErrInconsistent so the
// caller can report it instead of masking it.
func (s *RecordStore) Create(ctx context.Context, owner, language, region, content string) (*corpus.Record, error) {
	if owner == "" {
		return nil, corpus.ErrUnauthorized
	}

	now := s.now()

	id, err := s.pickID(ctx, now)
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(corpus.Submission{
		Language:    language,
		Region:      region,
		Content:     content,
		SubmittedAt: now.UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	rec := &corpus.Record{
		ID:            id,
		EncryptedData: s.codec.Encode(plaintext),
		CreatedAt:     now.Unix(),
		Owner:         owner,
		Language:      language,
		Region:        region,
		Status:        corpus.StatusPending,
	}

	data, err := corpus.MarshalRecord(rec)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, RecordKey(id), data); err != nil {
		return nil, fmt.Errorf("failed to store record: %w", err)
	}

	if err := s.index.Append(ctx, id); err != nil {
		s.log.Error(ctx, "record stored but index append failed", "id", id, "error", err)
		return rec, fmt.Errorf("%w: record %s stored, index append failed: %v", corpus.ErrInconsistent, id, err)
	}

	return rec, nil
}

// pickID generates a record id and verifies no record exists under it yet.
// Collisions are overwhelmingly unlikely; the check exists so an unlucky
// collision surfaces as a retry instead of a silent overwrite.
func (s *RecordStore) pickID(ctx context.Context, now time.Time) (string, error) {
	for range createIDAttempts {
		id := s.newID(now)
		data, err := s.store.Get(ctx, RecordKey(id))
		if err != nil {
			return "", fmt.Errorf("failed to check id %s: %w", id, err)
		}
		if data == nil {
			return id, nil
		}
		s.log.Warn(ctx, "record id collision, regenerating", "id", id)
	}
	return "", fmt.Errorf("failed to generate a free record id after %d attempts", createIDAttempts)
}

// Load fetches a single record. An absent key and a malformed payload both
// yield corpus.ErrNotFound; a parse fault is logged, never propagated.
func (s *RecordStore) Load(ctx context.Context, id string) (*corpus.Record, error) {
	data, err := s.store.Get(ctx, RecordKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", id, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("record %s: %w", id, corpus.ErrNotFound)
	}

	rec, err := corpus.UnmarshalRecord(id, data)
	if err != nil {
		s.log.Warn(ctx, "stored record unparsable", "id", id, "error", err)
		return nil, fmt.Errorf("record %s: %w", id, corpus.ErrNotFound)
	}
	return rec, nil
}

// LoadAll loads the index and resolves every id, skipping records that are
// missing or malformed rather than failing the whole batch. The result is
// ordered by creation time, newest first.
func (s *RecordStore) LoadAll(ctx context.Context) ([]corpus.Record, error) {
	ids, err := s.index.Load(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]corpus.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Load(ctx, id)
		if err != nil {
			s.log.Warn(ctx, "skipping record during bulk load", "id", id, "error", err)
			continue
		}
		records = append(records, *rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records, nil
}

// Transition moves a record from pending to the target terminal status and
// writes it back under the same key. Only the record's owner may transition
// it, and nothing leaves a terminal status.
//
// Two sessions racing on the same record are last-write-wins: the store
// offers no optimistic locking. Acceptable here because each record has a
// single authorized reviewer, its owner.
func (s *RecordStore) Transition(ctx context.Context, caller, id string, target corpus.Status) (*corpus.Record, error) {
	if caller == "" {
		return nil, corpus.ErrUnauthorized
	}
	if !target.Terminal() {
		return nil, fmt.Errorf("%w: target %q", corpus.ErrIllegalTransition, target)
	}

	rec, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rec.OwnedBy(caller) {
		return nil, fmt.Errorf("record %s: %w", id, corpus.ErrUnauthorized)
	}
	if rec.Status != corpus.StatusPending {
		return nil, fmt.Errorf("%w: record %s is already %s", corpus.ErrIllegalTransition, id, rec.Status)
	}

	rec.Status = target

	data, err := corpus.MarshalRecord(rec)
	if err != nil {
		return nil, err
	}
	// Same key, no index mutation: the id is already enumerable.
	if err := s.store.Set(ctx, RecordKey(id), data); err != nil {
		return nil, fmt.Errorf("failed to store record %s: %w", id, err)
	}
	return rec, nil
}
