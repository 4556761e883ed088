// File: options.go
// Role: functional options for random automaton generation.
package fixtures

import "math/rand"

// Option customizes a config before generation begins.
type Option func(*config)

// WithSeed creates a new deterministic *rand.Rand from seed. Use this to
// lock a fixture's shape across runs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Options apply in order, so whichever
// of WithRand and WithSeed comes last decides the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixtures: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithStates sets the number of states to generate. Panics if n < 1.
func WithStates(n int) Option {
	if n < 1 {
		panic("fixtures: WithStates(n<1)")
	}
	return func(c *config) { c.states = n }
}

// WithAlphabet sets the input alphabet to draw transitions from. Panics
// on an empty alphabet.
func WithAlphabet(symbols []rune) Option {
	if len(symbols) == 0 {
		panic("fixtures: WithAlphabet(empty)")
	}
	return func(c *config) { c.alphabet = symbols }
}

// WithEpsilonDensity sets, for RandomNFA only, the per-state probability
// of an extra ε-edge to another random state. Panics outside [0,1].
func WithEpsilonDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("fixtures: WithEpsilonDensity(out of [0,1])")
	}
	return func(c *config) { c.epsilonDensity = p }
}

// WithFinalDensity sets the per-state probability of being marked final.
// Panics outside [0,1].
func WithFinalDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("fixtures: WithFinalDensity(out of [0,1])")
	}
	return func(c *config) { c.finalDensity = p }
}
