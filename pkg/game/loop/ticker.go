package loop

import (
	"context"
	"time"
)

// Ticker paces frames at a fixed rate for hosts without a display refresh
// callback
type Ticker struct {
	t *time.Ticker
}

// NewTicker creates a ticker firing fps times per second
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick or until ctx is done
func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// C exposes the tick channel for hosts multiplexing other events
func (t *Ticker) C() <-chan time.Time {
	return t.t.C
}

// Stop releases the ticker
func (t *Ticker) Stop() {
	t.t.Stop()
}
