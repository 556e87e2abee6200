package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
)

func sample() []corpus.Record {
	return []corpus.Record{
		{ID: "1", Language: "Ainu", Region: "Japan", Status: corpus.StatusPending},
		{ID: "2", Language: "Yagan", Region: "Chile", Status: corpus.StatusVerified},
		{ID: "3", Language: "Livonian", Region: "Latvia", Status: corpus.StatusRejected},
		{ID: "4", Language: "Ainu", Region: "Hokkaido", Status: corpus.StatusVerified},
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	got := Filter(sample(), "ainu")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestFilter_MatchesRegionAndStatus(t *testing.T) {
	byRegion := Filter(sample(), "chile")
	require.Len(t, byRegion, 1)
	assert.Equal(t, "2", byRegion[0].ID)

	byStatus := Filter(sample(), "VERIFIED")
	assert.Len(t, byStatus, 2)
}

func TestFilter_EmptyTermIsIdentity(t *testing.T) {
	snap := sample()
	got := Filter(snap, "")
	assert.Equal(t, snap, got)
}

func TestFilter_DoesNotMutateSnapshot(t *testing.T) {
	snap := sample()
	_ = Filter(snap, "ainu")
	assert.Equal(t, sample(), snap)
}

// Scenario: seven records, page size five; page 2 holds the last two,
// page 3 is empty.
func TestPaginate_Windows(t *testing.T) {
	records := make([]corpus.Record, 7)
	for i := range records {
		records[i] = corpus.Record{ID: fmt.Sprintf("r%d", i+1)}
	}

	page2 := Paginate(records, 5, 2)
	require.Len(t, page2, 2)
	assert.Equal(t, "r6", page2[0].ID)
	assert.Equal(t, "r7", page2[1].ID)

	assert.Empty(t, Paginate(records, 5, 3))
	assert.Empty(t, Paginate(records, 5, 0))
	assert.Empty(t, Paginate(records, 0, 1))
}

// Idempotent projection: unchanged snapshot and arguments give equal
// results on every call.
func TestProjection_Idempotent(t *testing.T) {
	snap := sample()

	f1 := Filter(snap, "a")
	f2 := Filter(snap, "a")
	assert.Equal(t, f1, f2)

	p1 := Paginate(f1, 2, 1)
	p2 := Paginate(f1, 2, 1)
	assert.Equal(t, p1, p2)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 2, TotalPages(7, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestCountByStatus(t *testing.T) {
	c := CountByStatus(sample())
	assert.Equal(t, StatusCounts{Pending: 1, Verified: 2, Rejected: 1}, c)
	assert.Equal(t, 4, c.Total())
}

func TestCountByStatus_UnknownCountsAsPending(t *testing.T) {
	c := CountByStatus([]corpus.Record{{Status: ""}, {Status: "weird"}})
	assert.Equal(t, 2, c.Pending)
}

func TestCountByLanguage(t *testing.T) {
	counts := CountByLanguage(sample())
	assert.Equal(t, map[string]int{"Ainu": 2, "Yagan": 1, "Livonian": 1}, counts)
}
