package state

import (
	"errors"
	"reflect"
	"testing"
	"fmt"
	"time"

	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/view"
)

func TestStore_RecordAndSnapshot(t *testing.T) {
	var s Store

	before := time.Now()
	s.Record(view.Fetch{Kind: view.FetchSearch, Target: "falcon", Duration: 40 * time.Millisecond})

	snap := s.Snapshot()
	if !snap.HasFetch || snap.LastFetch.Target != "falcon" {
		t.Fatalf("snapshot fetch = %#v, want falcon", snap.LastFetch)
	}
	if snap.Requests != 1 || snap.Failures != 0 {
		t.Fatalf("counters = %d/%d, want 1/0", snap.Requests, snap.Failures)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_FailureKeepsPreviousFetch(t *testing.T) {
	var s Store

	s.Record(view.Fetch{Kind: view.FetchLaunch, Target: "42"})
	prev := s.Snapshot()

	origErr := errors.New("boom")
	s.Record(view.Fetch{Kind: view.FetchSearch, Target: "x", Err: origErr})

	snap := s.Snapshot()
	if snap.LastFetch != prev.LastFetch {
		t.Fatalf("last fetch changed on error: got %#v want %#v", snap.LastFetch, prev.LastFetch)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the recorded error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if snap.Requests != 2 || snap.Failures != 1 {
		t.Fatalf("counters = %d/%d, want 2/1", snap.Requests, snap.Failures)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	tests := []struct {
		err      error
		failures int
		offline  bool
	}{
		{errors.New("fail 1"), 1, false},
		{errors.New("fail 2"), 2, true},
		{errors.New("fail 3"), 3, true},
		{nil, 0, false},
	}
	for i, tt := range tests {
		s.Record(view.Fetch{Kind: view.FetchSearch, Err: tt.err})
		snap := s.Snapshot()
		if snap.ConsecutiveFailures != tt.failures {
			t.Fatalf("step %d: ConsecutiveFailures = %d, want %d", i, snap.ConsecutiveFailures, tt.failures)
		}
		if snap.IsOffline() != tt.offline {
			t.Fatalf("step %d: IsOffline() = %v, want %v", i, snap.IsOffline(), tt.offline)
		}
	}
}

func TestStore_NotFoundDoesNotMarkOffline(t *testing.T) {
	var s Store

	s.Record(view.Fetch{Kind: view.FetchLaunch, Err: errors.New("dial tcp: connection refused")})
	for i := 0; i < 3; i++ {
		s.Record(view.Fetch{Kind: view.FetchLaunch, Target: "bogus", Err: fmt.Errorf("get launch: %w", launches.ErrNotFound)})
	}

	snap := s.Snapshot()
	if snap.IsOffline() {
		t.Fatalf("IsOffline() = true after not-found answers, want false")
	}
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if snap.Failures != 4 || !errors.Is(snap.LastError, launches.ErrNotFound) {
		t.Fatalf("failures = %d, last error = %v; want 4 and not found", snap.Failures, snap.LastError)
	}
}
