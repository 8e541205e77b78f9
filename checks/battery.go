package checks

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PanicHandler is told about every check that panicked.
type PanicHandler func(checkID string, recovered any)

// Battery runs a fixed list of check definitions. Results come back in
// definition order regardless of how the runs were scheduled.
type Battery struct {
	defs           []Definition
	maxConcurrency int
	onPanic        PanicHandler
}

// Option configures a Battery.
type Option func(*Battery)

// WithMaxConcurrency bounds how many checks run at once. Values below 1 are
// ignored.
func WithMaxConcurrency(n int) Option {
	return func(b *Battery) {
		if n > 0 {
			b.maxConcurrency = n
		}
	}
}

// WithPanicHandler registers a callback for recovered panics.
func WithPanicHandler(fn PanicHandler) Option {
	return func(b *Battery) {
		b.onPanic = fn
	}
}

// Definitions returns the full battery in fixed order: content structure,
// citation readiness, technical SEO, credibility signals, AI-specific factors.
func Definitions() []Definition {
	var defs []Definition
	defs = append(defs, contentStructureChecks()...)
	defs = append(defs, citationReadinessChecks()...)
	defs = append(defs, technicalSEOChecks()...)
	defs = append(defs, credibilitySignalChecks()...)
	defs = append(defs, aiSpecificChecks()...)
	return defs
}

// NewBattery creates a battery over defs.
func NewBattery(defs []Definition, opts ...Option) *Battery {
	b := &Battery{
		defs:           defs,
		maxConcurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DefaultBattery creates a battery over Definitions().
func DefaultBattery(opts ...Option) *Battery {
	return NewBattery(Definitions(), opts...)
}

// Len returns the number of checks the battery produces.
func (b *Battery) Len() int {
	return len(b.defs)
}

// MaxScores returns the fixed maximum score of every category.
func (b *Battery) MaxScores() map[Category]int {
	totals := make(map[Category]int, len(Categories))
	for _, d := range b.defs {
		totals[d.Category] += d.MaxScore
	}
	return totals
}

// Run evaluates every check against in and returns exactly Len() results.
// A check that panics is recorded as failed with a zero score; the others
// are unaffected.
func (b *Battery) Run(in Input) []Check {
	results := make([]Check, len(b.defs))

	var g errgroup.Group
	g.SetLimit(b.maxConcurrency)

	for i, def := range b.defs {
		g.Go(func() error {
			results[i] = b.runOne(def, in)
			return nil
		})
	}

	// Goroutines never return errors; failures are recorded per check.
	_ = g.Wait()

	return results
}

func (b *Battery) runOne(def Definition, in Input) (check Check) {
	check = Check{
		ID:       def.ID,
		Category: def.Category,
		Name:     def.Name,
		MaxScore: def.MaxScore,
	}

	defer func() {
		if r := recover(); r != nil {
			check.Passed = false
			check.Score = 0
			check.Details = fmt.Sprintf("Check failed: %v", r)
			if b.onPanic != nil {
				b.onPanic(def.ID, r)
			}
		}
	}()

	out := def.Run(in)
	check.Passed = out.Passed
	check.Score = clamp(out.Score, 0, def.MaxScore)
	check.Details = out.Details
	return check
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
