// File: config.go
// Role: internal configuration and deterministic defaults for random
// automaton generation.
package fixtures

import "math/rand"

// config aggregates every knob used by RandomNFA/RandomDFA. It is
// resolved once by newConfig and passed by value afterward.
type config struct {
	rng            *rand.Rand
	states         int
	alphabet       []rune
	epsilonDensity float64 // NFA only: P(any given state gets an extra ε-edge)
	finalDensity   float64 // P(any given state, initial included, is final)
}

const (
	defaultStates         = 5
	defaultEpsilonDensity = 0.2
	defaultFinalDensity   = 0.3
)

var defaultAlphabet = []rune{'a', 'b'}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:            rand.New(rand.NewSource(1)),
		states:         defaultStates,
		alphabet:       defaultAlphabet,
		epsilonDensity: defaultEpsilonDensity,
		finalDensity:   defaultFinalDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
