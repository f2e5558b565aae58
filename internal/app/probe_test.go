package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/liftoff/internal/state"
	"github.com/five82/liftoff/internal/view"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 80; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakePinger struct {
	calls atomic.Int32
	err   atomic.Value // pingResult
}

type pingResult struct{ err error }

func (f *fakePinger) Ping(context.Context) error {
	f.calls.Add(1)
	if r, ok := f.err.Load().(pingResult); ok {
		return r.err
	}
	return nil
}

func offlineStore() *state.Store {
	store := &state.Store{}
	for i := 0; i < 2; i++ {
		store.Record(view.Fetch{Kind: view.FetchSearch, Err: errors.New("connection refused")})
	}
	return store
}

func TestProbe_RecordsOutcome(t *testing.T) {
	store := offlineStore()
	p := &fakePinger{}

	if err := probe(context.Background(), store, p); err != nil {
		t.Fatalf("probe returned error: %v", err)
	}
	snap := store.Snapshot()
	if snap.IsOffline() || snap.LastFetch.Kind != view.FetchPing {
		t.Fatalf("snapshot after successful probe = %+v", snap)
	}
}

func TestProbe_CancelledRecordsNothing(t *testing.T) {
	store := offlineStore()
	before := store.Snapshot().Requests

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &fakePinger{}
	p.err.Store(pingResult{err: context.Canceled})

	if err := probe(ctx, store, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("probe error = %v, want context.Canceled", err)
	}
	if got := store.Snapshot().Requests; got != before {
		t.Fatalf("requests = %d, want %d", got, before)
	}
}

func TestStartProber_RecoversOfflineStore(t *testing.T) {
	store := offlineStore()
	p := &fakePinger{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartProber(ctx, store, p, 5*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for store.Snapshot().IsOffline() {
		if time.Now().After(deadline) {
			t.Fatalf("store still offline after %d probes", p.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStartProber_IdleWhileOnline(t *testing.T) {
	store := &state.Store{}
	p := &fakePinger{}

	ctx, cancel := context.WithCancel(context.Background())
	StartProber(ctx, store, p, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	if got := p.calls.Load(); got != 0 {
		t.Fatalf("prober pinged %d times while online, want 0", got)
	}
}
