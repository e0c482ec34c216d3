package services

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDebounceInterval is the idle window after the last keystroke before
// a search request fires.
const DefaultDebounceInterval = 500 * time.Millisecond

// Debouncer coalesces rapid search input so only the last query within the
// interval triggers a request. Each fired request carries a monotonically
// increasing token; completions whose token is no longer current must be
// discarded by the caller (Accept), so a slow superseded response can never
// overwrite a newer one.
type Debouncer struct {
	interval time.Duration
	fire     func(token uint64, query string)

	token atomic.Uint64

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer firing fire after interval of input
// silence. fire runs on a timer goroutine.
func NewDebouncer(interval time.Duration, fire func(token uint64, query string)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{interval: interval, fire: fire}
}

// Input registers a keystroke. Any pending request is superseded.
func (d *Debouncer) Input(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		token := d.token.Add(1)
		d.fire(token, query)
	})
}

// Accept reports whether a completed response with the given token is still
// the latest request. Stale responses must be dropped.
func (d *Debouncer) Accept(token uint64) bool {
	return token == d.token.Load()
}

// Stop cancels any pending request without firing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
