package search

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce matches the typing cadence the UI was tuned for.
const DefaultDebounce = 400 * time.Millisecond

// Debouncer rate-limits outbound lookups while the user is still typing.
// Each Query restarts the timer and cancels the in-flight lookup of the
// previous keystroke; only the last query in a burst reaches the geocoder.
// Results have no effect on the entity store.
//
// It serves embedders that hold a long-lived session and call Query per
// keystroke. The stateless HTTP search endpoint receives already-settled
// queries and calls Resolve directly, so it does not go through a Debouncer.
type Debouncer struct {
	geocoder Geocoder
	delay    time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
}

func NewDebouncer(g Geocoder, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{geocoder: g, delay: delay}
}

// Query schedules a lookup for query and delivers the outcome to fn once the
// debounce window passes without another keystroke. fn gets nil when nothing
// matched or the lookup was superseded by a newer query.
func (d *Debouncer) Query(query string, fn func(*Result)) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		result, err := Resolve(ctx, d.geocoder, query)
		if ctx.Err() != nil {
			return // superseded mid-flight, drop silently
		}
		if err != nil {
			fn(nil)
			return
		}
		fn(result)
	})
	d.mu.Unlock()
}

// Stop cancels whatever is pending, for shutdown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()
}
