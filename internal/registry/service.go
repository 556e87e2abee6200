package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/identity"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/kv"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
)

// Service orchestrates the registry for one client session: it owns the
// in-memory snapshot, runs full synchronization passes against the store,
// and fronts record creation and review with identity checks.
//
// Only the synchronization routine mutates the snapshot; readers get copies.
type Service struct {
	store    kv.Store
	records  *RecordStore
	provider identity.Provider
	log      logging.Logger

	// Delay paces review transitions by ReviewDelay before the write.
	// Tests leave ReviewDelay at zero.
	Delay       DelayPolicy
	ReviewDelay time.Duration

	mu         sync.Mutex
	snapshot   []corpus.Record
	generation uint64 // passes started
	applied    uint64 // pass that produced the current snapshot
}

func NewService(store kv.Store, records *RecordStore, provider identity.Provider, log logging.Logger) *Service {
	return &Service{
		store:    store,
		records:  records,
		provider: provider,
		log:      log,
		Delay:    Sleep,
	}
}

// Sync runs a full synchronization pass: availability probe, index load,
// per-record resolution, snapshot replacement. Per-item faults are isolated
// inside LoadAll; an unreachable store aborts the pass early and the prior
// snapshot is retained.
//
// Passes may overlap when a caller starts a second one before the first
// finishes; the later-started pass supersedes the earlier, so a slow stale
// result never overwrites a fresher snapshot.
func (s *Service) Sync(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	log := s.log.With("sync_id", uuid.NewString())

	if err := s.store.Available(ctx); err != nil {
		log.Warn(ctx, "store unavailable, keeping previous snapshot", "error", err)
		return fmt.Errorf("%w: %v", corpus.ErrNotAvailable, err)
	}

	records, err := s.records.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.applied {
		log.Debug(ctx, "stale sync pass discarded", "generation", gen)
		return nil
	}
	s.snapshot = records
	s.applied = gen
	log.Info(ctx, "sync finished", "records", len(records))
	return nil
}

// Snapshot returns a copy of the records from the last completed pass,
// newest first.
func (s *Service) Snapshot() []corpus.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]corpus.Record, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Submit creates a pending record owned by the active identity. The
// identity check happens before any store call. An ErrInconsistent result
// still carries the created record; the caller decides how loudly to report
// the undiscoverable entry.
func (s *Service) Submit(ctx context.Context, language, region, content string) (*corpus.Record, error) {
	owner, err := s.provider.Current()
	if err != nil {
		return nil, err
	}
	return s.records.Create(ctx, owner, language, region, content)
}

// Verify moves a pending record owned by the active identity to verified.
func (s *Service) Verify(ctx context.Context, id string) (*corpus.Record, error) {
	return s.review(ctx, id, corpus.StatusVerified)
}

// Reject moves a pending record owned by the active identity to rejected.
func (s *Service) Reject(ctx context.Context, id string) (*corpus.Record, error) {
	return s.review(ctx, id, corpus.StatusRejected)
}

func (s *Service) review(ctx context.Context, id string, target corpus.Status) (*corpus.Record, error) {
	caller, err := s.provider.Current()
	if err != nil {
		return nil, err
	}
	if err := s.Delay(ctx, s.ReviewDelay); err != nil {
		return nil, err
	}
	return s.records.Transition(ctx, caller, id, target)
}
