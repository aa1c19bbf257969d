// Package refresh repaints a view repeatedly for a short while after a change.
package refresh

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultInterval = 100 * time.Millisecond
	DefaultDuration = time.Second
)

// Config configures a Burst.
type Config struct {
	Interval time.Duration `yaml:"interval"`
	Duration time.Duration `yaml:"duration"`
}

// Burst calls tick every Interval until Duration has passed.
type Burst struct {
	interval time.Duration
	duration time.Duration
	tick     func()

	mu   sync.Mutex
	stop context.CancelFunc
	done chan struct{}
}

// New creates an idle Burst.
func (cfg *Config) New(tick func()) *Burst {

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	duration := cfg.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	return &Burst{
		interval: interval,
		duration: duration,
		tick:     tick,
	}
}

// Start begins ticking, restarting any burst already running.
func (bst *Burst) Start(ctx context.Context) {

	bst.Stop()

	ctx, cancel := context.WithTimeout(ctx, bst.duration)
	done := make(chan struct{})

	bst.mu.Lock()
	bst.stop = cancel
	bst.done = done
	bst.mu.Unlock()

	go bst.run(ctx, done)
}

// Stop cancels a running burst and waits for it to finish.
func (bst *Burst) Stop() {

	bst.mu.Lock()
	stop, done := bst.stop, bst.done
	bst.stop, bst.done = nil, nil
	bst.mu.Unlock()

	if stop == nil {
		return
	}
	stop()
	<-done
}

// unexported

func (bst *Burst) run(ctx context.Context, done chan struct{}) {

	defer close(done)

	ticker := time.NewTicker(bst.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bst.tick()
		}
	}
}
