package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/view"
)

// Snapshot represents the latest fetch activity available to the UI.
type Snapshot struct {
	LastFetch           view.Fetch
	HasFetch            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed API calls
	Requests            int
	Failures            int
}

// IsOffline returns true when the API has failed for multiple calls in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. Fetch goroutines
// write, the UI reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Record stores the outcome of one API call. When the call failed the
// previous successful fetch is kept but the error is recorded for visibility.
// A not-found answer proves the API is reachable, so it does not count toward
// ConsecutiveFailures.
func (s *Store) Record(f view.Fetch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Requests++
	s.snapshot.LastUpdated = time.Now()

	if f.Err != nil {
		s.snapshot.LastError = f.Err
		s.snapshot.Failures++
		if errors.Is(f.Err, launches.ErrNotFound) {
			s.snapshot.ConsecutiveFailures = 0
		} else {
			s.snapshot.ConsecutiveFailures++
		}
		return
	}

	s.snapshot.LastFetch = f
	s.snapshot.HasFetch = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
