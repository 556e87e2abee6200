package registry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/envelope"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/kv"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
)

func newTestRecordStore(t *testing.T) (*RecordStore, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	log := logging.NewDiscard()
	rs := NewRecordStore(store, NewIndexManager(store, log), envelope.NewPrefixCodec(), log)
	return rs, store
}

// brokenIndexStore lets record writes through but fails writes to the
// index key, to exercise the detect-and-report inconsistency path.
type brokenIndexStore struct {
	kv.Store
}

func (s *brokenIndexStore) Set(ctx context.Context, key string, value []byte) error {
	if key == IndexKey {
		return fmt.Errorf("write rejected")
	}
	return s.Store.Set(ctx, key, value)
}

func TestRecordStore_CreateStoresPendingRecord(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRecordStore(t)

	rec, err := rs.Create(ctx, "0xOwner", "Ainu", "Japan", "irankarapte")
	require.NoError(t, err)

	assert.Equal(t, corpus.StatusPending, rec.Status)
	assert.Equal(t, "0xOwner", rec.Owner)
	assert.NotEmpty(t, rec.ID)

	got, err := rs.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// The payload is an envelope over the submission, not the raw content.
	plaintext, err := envelope.NewPrefixCodec().Decode(got.EncryptedData)
	require.NoError(t, err)
	assert.Contains(t, string(plaintext), "irankarapte")
	assert.Contains(t, string(plaintext), `"timestamp"`)
}

func TestRecordStore_CreateWithoutOwner(t *testing.T) {
	rs, store := newTestRecordStore(t)

	_, err := rs.Create(context.Background(), "", "Ainu", "Japan", "x")
	assert.ErrorIs(t, err, corpus.ErrUnauthorized)
	assert.Equal(t, 0, store.Len(), "nothing may reach the store")
}

func TestRecordStore_CreateIndexFailureIsInconsistent(t *testing.T) {
	ctx := context.Background()
	inner := kv.NewMemoryStore()
	log := logging.NewDiscard()
	broken := &brokenIndexStore{Store: inner}
	rs := NewRecordStore(broken, NewIndexManager(broken, log), envelope.NewPrefixCodec(), log)

	rec, err := rs.Create(ctx, "0xOwner", "Ainu", "Japan", "x")
	require.ErrorIs(t, err, corpus.ErrInconsistent)
	require.NotNil(t, rec, "the stored record must still be returned")

	// Record exists, just not discoverable via the index.
	got, err := rs.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestRecordStore_CreateRetriesCollidingID(t *testing.T) {
	ctx := context.Background()
	rs, store := newTestRecordStore(t)

	// Pre-store a record under the id the first generation attempt yields.
	calls := 0
	rs.newID = func(at time.Time) string {
		calls++
		return fmt.Sprintf("fixed-%d", calls)
	}
	require.NoError(t, store.Set(ctx, RecordKey("fixed-1"), []byte(`{}`)))

	rec, err := rs.Create(ctx, "0xOwner", "Ainu", "Japan", "x")
	require.NoError(t, err)
	assert.Equal(t, "fixed-2", rec.ID)
}

func TestRecordStore_LoadMissing(t *testing.T) {
	rs, _ := newTestRecordStore(t)

	_, err := rs.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, corpus.ErrNotFound)
}

func TestRecordStore_LoadMalformedIsNotFound(t *testing.T) {
	ctx := context.Background()
	rs, store := newTestRecordStore(t)
	require.NoError(t, store.Set(ctx, RecordKey("bad"), []byte("{broken")))

	_, err := rs.Load(ctx, "bad")
	assert.ErrorIs(t, err, corpus.ErrNotFound)
}

func TestRecordStore_LoadAllSkipsBrokenEntries(t *testing.T) {
	ctx := context.Background()
	rs, store := newTestRecordStore(t)

	r1, err := rs.Create(ctx, "0xA", "Ainu", "Japan", "one")
	require.NoError(t, err)
	r2, err := rs.Create(ctx, "0xB", "Yagan", "Chile", "two")
	require.NoError(t, err)

	// A dangling index entry and a malformed record must be skipped, not
	// fail the batch.
	index := NewIndexManager(store, logging.NewDiscard())
	require.NoError(t, index.Append(ctx, "dangling"))
	require.NoError(t, index.Append(ctx, "garbled"))
	require.NoError(t, store.Set(ctx, RecordKey("garbled"), []byte("???")))

	records, err := rs.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := []string{records[0].ID, records[1].ID}
	assert.ElementsMatch(t, []string{r1.ID, r2.ID}, got)
}

func TestRecordStore_LoadAllOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRecordStore(t)

	base := time.Unix(1700000000, 0)
	for i, lang := range []string{"Ainu", "Yagan", "Livonian"} {
		rs.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		_, err := rs.Create(ctx, "0xA", lang, "", "x")
		require.NoError(t, err)
	}

	records, err := rs.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Livonian", records[0].Language)
	assert.Equal(t, "Yagan", records[1].Language)
	assert.Equal(t, "Ainu", records[2].Language)
}

// Index integrity: after N sequential single-writer submissions the index
// has N entries and each resolves to a record.
func TestRecordStore_IndexIntegritySequentialWrites(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	log := logging.NewDiscard()
	index := NewIndexManager(store, log)
	rs := NewRecordStore(store, index, envelope.NewPrefixCodec(), log)

	const n = 10
	for i := range n {
		_, err := rs.Create(ctx, "0xA", fmt.Sprintf("lang-%d", i), "", "x")
		require.NoError(t, err)
	}

	ids, err := index.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ids, n)

	for _, id := range ids {
		_, err := rs.Load(ctx, id)
		require.NoError(t, err, "id %s must resolve", id)
	}
}

func TestRecordStore_TransitionVerify(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRecordStore(t)

	rec, err := rs.Create(ctx, "0xOwner", "Ainu", "Japan", "x")
	require.NoError(t, err)

	updated, err := rs.Transition(ctx, "0xowner", rec.ID, corpus.StatusVerified)
	require.NoError(t, err)
	assert.Equal(t, corpus.StatusVerified, updated.Status)

	got, err := rs.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, corpus.StatusVerified, got.Status)

	// Immutable fields survive the write-back.
	assert.Equal(t, rec.EncryptedData, got.EncryptedData)
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
	assert.Equal(t, rec.Owner, got.Owner)
}

func TestRecordStore_TransitionWrongCaller(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRecordStore(t)

	rec, err := rs.Create(ctx, "0xOwner", "Ainu", "Japan", "x")
	require.NoError(t, err)

	_, err = rs.Transition(ctx, "0xSomeoneElse", rec.ID, corpus.StatusVerified)
	assert.ErrorIs(t, err, corpus.ErrUnauthorized)

	got, err := rs.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, corpus.StatusPending, got.Status)
}

// Status monotonicity: once terminal, a record never changes again.
func TestRecordStore_TransitionIsTerminal(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRecordStore(t)

	rec, err := rs.Create(ctx, "0xOwner", "Ainu", "Japan", "x")
	require.NoError(t, err)

	_, err = rs.Transition(ctx, "0xOwner", rec.ID, corpus.StatusRejected)
	require.NoError(t, err)

	for _, target := range []corpus.Status{corpus.StatusVerified, corpus.StatusRejected} {
		_, err = rs.Transition(ctx, "0xOwner", rec.ID, target)
		assert.ErrorIs(t, err, corpus.ErrIllegalTransition)
	}

	got, err := rs.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, corpus.StatusRejected, got.Status)
}

func TestRecordStore_TransitionToPendingIsIllegal(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRecordStore(t)

	rec, err := rs.Create(ctx, "0xOwner", "Ainu", "Japan", "x")
	require.NoError(t, err)

	_, err = rs.Transition(ctx, "0xOwner", rec.ID, corpus.StatusPending)
	assert.ErrorIs(t, err, corpus.ErrIllegalTransition)
}

func TestRecordStore_TransitionMissingRecord(t *testing.T) {
	rs, _ := newTestRecordStore(t)

	_, err := rs.Transition(context.Background(), "0xOwner", "ghost", corpus.StatusVerified)
	assert.ErrorIs(t, err, corpus.ErrNotFound)
}
