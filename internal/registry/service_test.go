package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/envelope"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/identity"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/kv"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
)

// fakeProvider is a canned identity for service tests.
type fakeProvider struct {
	addr string
}

func (f *fakeProvider) Current() (string, error) {
	if f.addr == "" {
		return "", corpus.ErrUnauthorized
	}
	return f.addr, nil
}

func (f *fakeProvider) SignMessage(ctx context.Context, msg string) ([]byte, error) {
	if f.addr == "" {
		return nil, corpus.ErrUnauthorized
	}
	return []byte("sig"), nil
}

func newTestService(t *testing.T, provider identity.Provider) (*Service, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	log := logging.NewDiscard()
	rs := NewRecordStore(store, NewIndexManager(store, log), envelope.NewPrefixCodec(), log)
	svc := NewService(store, rs, provider, log)
	svc.Delay = NoDelay
	return svc, store
}

// Scenario: one submission, then a sync pass, yields exactly one pending
// record owned by the submitting identity.
func TestService_SubmitThenSync(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeProvider{addr: "0xContributor"})

	_, err := svc.Submit(ctx, "Ainu", "Japan", "irankarapte")
	require.NoError(t, err)
	require.NoError(t, svc.Sync(ctx))

	snap := svc.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, corpus.StatusPending, snap[0].Status)
	assert.Equal(t, "0xContributor", snap[0].Owner)
	assert.Equal(t, "Ainu", snap[0].Language)
}

func TestService_SubmitWithoutIdentity(t *testing.T) {
	svc, store := newTestService(t, identity.None{})

	_, err := svc.Submit(context.Background(), "Ainu", "Japan", "x")
	assert.ErrorIs(t, err, corpus.ErrUnauthorized)
	assert.Equal(t, 0, store.Len())
}

// Scenario: two submissions from different identities; only the owner may
// transition their record.
func TestService_TransitionAuthorization(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{addr: "0xAlice"}
	svc, _ := newTestService(t, provider)

	recA, err := svc.Submit(ctx, "Ainu", "Japan", "one")
	require.NoError(t, err)

	provider.addr = "0xBob"
	_, err = svc.Submit(ctx, "Yagan", "Chile", "two")
	require.NoError(t, err)

	// Bob cannot verify Alice's record.
	_, err = svc.Verify(ctx, recA.ID)
	assert.ErrorIs(t, err, corpus.ErrUnauthorized)

	// Alice can.
	provider.addr = "0xAlice"
	updated, err := svc.Verify(ctx, recA.ID)
	require.NoError(t, err)
	assert.Equal(t, corpus.StatusVerified, updated.Status)
}

func TestService_RejectThenStatusSticks(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeProvider{addr: "0xA"})

	rec, err := svc.Submit(ctx, "Ainu", "Japan", "x")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, rec.ID)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, rec.ID)
	assert.ErrorIs(t, err, corpus.ErrIllegalTransition)
}

func TestService_SyncUnavailableKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &fakeProvider{addr: "0xA"})

	_, err := svc.Submit(ctx, "Ainu", "Japan", "x")
	require.NoError(t, err)
	require.NoError(t, svc.Sync(ctx))
	require.Len(t, svc.Snapshot(), 1)

	store.Down = true
	err = svc.Sync(ctx)
	assert.ErrorIs(t, err, corpus.ErrNotAvailable)

	// The prior snapshot is retained.
	assert.Len(t, svc.Snapshot(), 1)
}

func TestService_SnapshotReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeProvider{addr: "0xA"})

	_, err := svc.Submit(ctx, "Ainu", "Japan", "x")
	require.NoError(t, err)
	require.NoError(t, svc.Sync(ctx))

	snap := svc.Snapshot()
	snap[0].Language = "mutated"

	assert.Equal(t, "Ainu", svc.Snapshot()[0].Language)
}

func TestService_StaleSyncPassDoesNotWin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeProvider{addr: "0xA"})

	_, err := svc.Submit(ctx, "Ainu", "Japan", "x")
	require.NoError(t, err)

	// Simulate a pass that started first but finishes last: it holds an
	// older generation than the one already applied.
	svc.mu.Lock()
	svc.generation = 5
	svc.applied = 5
	svc.snapshot = []corpus.Record{{ID: "fresh"}}
	svc.mu.Unlock()

	// A new pass gets generation 6 and wins; then pretend generation 4
	// result arrives by applying the invariant directly.
	require.NoError(t, svc.Sync(ctx))
	snap := svc.Snapshot()
	require.Len(t, snap, 1)
	assert.NotEqual(t, "fresh", snap[0].ID, "later pass must replace the snapshot")
}
