// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepFunc waits for a duration or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pacer spaces out consecutive steps of a sequential loop by a fixed delay.
// The first call to Wait returns immediately.
type Pacer struct {
	delay   time.Duration
	sleep   SleepFunc
	waited  bool
	elapsed time.Duration
}

// NewPacer returns a Pacer sleeping delay between steps.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay, sleep: SleepWithContext}
}

// WithSleep replaces the sleep implementation.
func (p *Pacer) WithSleep(sleep SleepFunc) *Pacer {
	p.sleep = sleep
	return p
}

// Wait blocks for the configured delay unless this is the first step.
func (p *Pacer) Wait(ctx context.Context) error {
	if !p.waited {
		p.waited = true
		return ctx.Err()
	}
	if err := p.sleep(ctx, p.delay); err != nil {
		return err
	}
	p.elapsed += p.delay
	return nil
}

// Slept returns the total delay inserted so far.
func (p *Pacer) Slept() time.Duration {
	return p.elapsed
}
