// Package composables holds small, reusable reactive building blocks — one
// file per composable — built on top of package reactive/async. UseCounter,
// UseToggle and UseAsync return a plain struct of Read/Write handles and
// methods; UseEffect, UseInterval and UseDebounce return the underlying
// *reactive.Effect, *async.Handle or trigger func directly.
package composables

import "github.com/loomkit/loom/reactive"

type counterConfig struct {
	min, max       int
	step           int
	hasMin, hasMax bool
}

// CounterOption configures UseCounter.
type CounterOption func(*counterConfig)

// WithMin clamps the counter so it never goes below min.
func WithMin(min int) CounterOption {
	return func(c *counterConfig) { c.min = min; c.hasMin = true }
}

// WithMax clamps the counter so it never exceeds max.
func WithMax(max int) CounterOption {
	return func(c *counterConfig) { c.max = max; c.hasMax = true }
}

// WithStep sets the increment/decrement step; default 1.
func WithStep(step int) CounterOption {
	return func(c *counterConfig) { c.step = step }
}

// Counter is a clamped, steppable reactive integer.
type Counter struct {
	Count   reactive.Read[int]
	setCnt  reactive.Write[int]
	cfg     counterConfig
	initial int
}

// UseCounter creates a Counter starting at initial.
func UseCounter(initial int, opts ...CounterOption) *Counter {
	cfg := counterConfig{step: 1}
	for _, o := range opts {
		o(&cfg)
	}
	r, w := reactive.CreateSignal(clamp(initial, cfg))
	return &Counter{Count: r, setCnt: w, cfg: cfg, initial: initial}
}

func clamp(v int, cfg counterConfig) int {
	if cfg.hasMin && v < cfg.min {
		return cfg.min
	}
	if cfg.hasMax && v > cfg.max {
		return cfg.max
	}
	return v
}

// Increment adds the step, clamped to max.
func (c *Counter) Increment() {
	c.setCnt.Update(func(v int) int { return clamp(v+c.cfg.step, c.cfg) })
}

// Decrement subtracts the step, clamped to min.
func (c *Counter) Decrement() {
	c.setCnt.Update(func(v int) int { return clamp(v-c.cfg.step, c.cfg) })
}

// Set writes v directly, clamped.
func (c *Counter) Set(v int) {
	c.setCnt.Set(clamp(v, c.cfg))
}

// Reset restores the initial value.
func (c *Counter) Reset() {
	c.setCnt.Set(clamp(c.initial, c.cfg))
}
