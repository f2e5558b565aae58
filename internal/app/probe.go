package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/liftoff/internal/state"
	"github.com/five82/liftoff/internal/view"
)

const (
	defaultProbeInterval = 5 * time.Second
	maxBackoff           = 30 * time.Second
)

// pinger is the part of the launch client the prober needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// StartProber launches a background goroutine that checks the API while the
// store considers it offline, so the header recovers without the user
// issuing a request. Failed probes back off exponentially. It returns
// immediately.
func StartProber(ctx context.Context, store *state.Store, client pinger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		failures := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			wait := interval
			if store.Snapshot().IsOffline() {
				if err := probe(ctx, store, client); err != nil {
					failures++
					wait = calculateBackoff(failures, interval)
				} else {
					failures = 0
				}
			} else {
				failures = 0
			}
			timer.Reset(wait)
		}
	}()
}

// probe pings the API once and records the outcome. Nothing is recorded
// when ctx ends mid-probe.
func probe(ctx context.Context, store *state.Store, client pinger) error {
	started := time.Now()
	err := client.Ping(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	store.Record(view.Fetch{
		Kind:     view.FetchPing,
		Target:   "api",
		Err:      err,
		Duration: time.Since(started),
	})
	if err != nil {
		log.Printf("api probe failed: %v", err)
	}
	return err
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
