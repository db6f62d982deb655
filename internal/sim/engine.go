package sim

import (
	"math/rand"
	"time"
)

// Engine holds the randomness and clock every simulator draws from. Tests
// inject a seeded rand and a fixed clock so results are reproducible and no
// test ever sleeps.
type Engine struct {
	rng *rand.Rand
	now func() time.Time

	minDelay time.Duration
	maxDelay time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's notion of now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithDelayBounds overrides the simulated latency range. A zero range makes
// every simulation complete immediately.
func WithDelayBounds(min, max time.Duration) Option {
	return func(e *Engine) {
		if max < min {
			max = min
		}
		e.minDelay = min
		e.maxDelay = max
	}
}

// NewEngine returns an engine seeded with seed. A seed of 0 uses the clock.
func NewEngine(seed int64, opts ...Option) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		rng:      rand.New(rand.NewSource(seed)),
		now:      time.Now,
		minDelay: time.Second,
		maxDelay: 2500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Latency returns one simulated backend round-trip, drawn uniformly from
// the configured bounds.
func (e *Engine) Latency() time.Duration {
	if e.maxDelay <= e.minDelay {
		return e.minDelay
	}
	return e.minDelay + time.Duration(e.rng.Int63n(int64(e.maxDelay-e.minDelay)))
}

func (e *Engine) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return e.rng.Intn(n)
}

func (e *Engine) float() float64 {
	return e.rng.Float64()
}
