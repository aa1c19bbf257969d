// Package trigger turns a burst of search input into one committed term.
package trigger

import (
	"strings"
	"sync"
	"time"

	"github.com/romdo/go-debounce"
)

// DefaultWindow is the quiescence window used when none is configured.
const DefaultWindow = 500 * time.Millisecond

// Config configures a Trigger.
type Config struct {
	Window time.Duration `yaml:"window"`
}

// Trigger debounces submitted terms, emitting only the last of a burst.
type Trigger struct {
	emit     func(term string)
	schedule func()
	cancel   func()

	mu        sync.Mutex
	latest    string
	submitted bool
	closed    bool
}

// New creates a Trigger calling emit once input settles.
// emit runs on its own goroutine.
func (cfg *Config) New(emit func(term string)) *Trigger {

	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}

	trg := &Trigger{emit: emit}
	trg.schedule, trg.cancel = debounce.New(window, trg.fire)

	return trg
}

// Submit records the trimmed term and restarts the window.
func (trg *Trigger) Submit(raw string) {

	trg.mu.Lock()
	if trg.closed {
		trg.mu.Unlock()
		return
	}
	trg.latest = strings.TrimSpace(raw)
	trg.submitted = true
	trg.mu.Unlock()

	// fire re-checks closed, so a schedule racing Close is harmless
	trg.schedule()
}

// Close cancels any pending emission; later submits are ignored.
func (trg *Trigger) Close() {

	trg.mu.Lock()
	trg.closed = true
	trg.mu.Unlock()

	trg.cancel()
}

// unexported

func (trg *Trigger) fire() {

	trg.mu.Lock()
	if trg.closed || !trg.submitted {
		trg.mu.Unlock()
		return
	}
	term := trg.latest
	trg.submitted = false
	trg.mu.Unlock()

	trg.emit(term)
}
