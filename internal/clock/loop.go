// Package clock drives the focus timer outside the TUI.
package clock

import (
	"context"
	"time"
)

// Loop is a Ticker whose ticks are delivered by Run on the caller's
// goroutine. Start and Stop must be called from that same goroutine (or
// before Run).
type Loop struct {
	interval time.Duration
	tick     func()
	running  bool
}

func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second
	}
	return &Loop{interval: interval}
}

func (l *Loop) Start(tick func()) {
	l.tick = tick
	l.running = true
}

func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) Running() bool {
	return l.running
}

// Run ticks until the loop is stopped or ctx is done. after, if set, runs
// following every tick.
func (l *Loop) Run(ctx context.Context, after func()) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for l.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.tick()
			if after != nil {
				after()
			}
		}
	}
	return nil
}
