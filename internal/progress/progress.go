// Package progress models the user-visible generation progress bar.
//
// The displayed percentage approaches milestone targets exponentially and
// crawls while waiting, so it never visibly stalls or jumps backward. The
// easing step is a pure function so the motion is unit-testable without a
// timer.
package progress

import (
	"context"
	"sync"
	"time"

	"github.com/wrightlabs/sitewright/internal/models"
)

const (
	// Fraction of the remaining distance covered on each tick.
	approachRate = 0.2
	// Idle crawl per tick while waiting on a phase to finish.
	crawlStep = 0.25
)

// Advance computes the next displayed percentage. It is monotone
// non-decreasing and never overshoots the target.
func Advance(current, target float64) float64 {
	if current >= target {
		return current
	}
	next := current + (target-current)*approachRate
	if next < current+crawlStep {
		next = current + crawlStep
	}
	if next > target {
		next = target
	}
	return next
}

// Tracker holds the progress state for one run. Milestone targets are set at
// phase boundaries; a timer drives Tick between them.
type Tracker struct {
	mu      sync.Mutex
	current float64
	target  float64
	message string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// SetTarget raises the milestone target. Lower targets are ignored so the
// bar can never move backward.
func (t *Tracker) SetTarget(target float64, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if target > t.target {
		t.target = target
	}
	t.message = message
}

// Tick advances the displayed percentage one easing step.
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = Advance(t.current, t.target)
}

// Complete snaps the bar to 100. Called only when the run has finished.
func (t *Tracker) Complete(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = 100
	t.target = 100
	t.message = message
}

// Snapshot returns the current user-visible progress.
func (t *Tracker) Snapshot() models.GenerationProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return models.GenerationProgress{Percent: t.current, Message: t.message}
}

// Run drives Tick on an interval until the context is cancelled. Fire and
// forget: ticks are independent of the resolution tasks.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}
