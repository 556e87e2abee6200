package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/kv"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
)

func TestIndexManager_LoadEmptyStore(t *testing.T) {
	m := NewIndexManager(kv.NewMemoryStore(), logging.NewDiscard())

	ids, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndexManager_LoadUnparsableFailsSoft(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, IndexKey, []byte("not json at all")))

	m := NewIndexManager(store, logging.NewDiscard())

	ids, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndexManager_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	m := NewIndexManager(kv.NewMemoryStore(), logging.NewDiscard())

	require.NoError(t, m.Append(ctx, "a"))
	require.NoError(t, m.Append(ctx, "b"))
	require.NoError(t, m.Append(ctx, "c"))

	ids, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestIndexManager_AppendDuplicateIsNoop(t *testing.T) {
	ctx := context.Background()
	m := NewIndexManager(kv.NewMemoryStore(), logging.NewDiscard())

	require.NoError(t, m.Append(ctx, "a"))
	require.NoError(t, m.Append(ctx, "a"))

	ids, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestIndexManager_AppendOnDownStore(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Down = true
	m := NewIndexManager(store, logging.NewDiscard())

	assert.Error(t, m.Append(context.Background(), "a"))
}
