// File: generate.go
// Role: random automaton generators for property-based tests; the
// package's own tests run them through determinize, minimize and
// combine.Equivalent.
package fixtures

import (
	"strconv"

	"github.com/katalvlaran/fsautomata/automaton"
)

func stateNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "q" + strconv.Itoa(i)
	}
	return out
}

// RandomNFA builds an automaton over cfg.alphabet with cfg.states states,
// zero or more labeled transitions per (state, symbol), and ε-edges added
// independently per state with probability cfg.epsilonDensity. The
// result is not guaranteed deterministic.
func RandomNFA(opts ...Option) *automaton.Automaton {
	cfg := newConfig(opts...)
	names := stateNames(cfg.states)
	a := automaton.New("random_nfa", names[0], names[1:]...)

	for _, src := range names {
		for _, sym := range cfg.alphabet {
			// 0, 1, or 2 outgoing edges for this symbol, independently.
			n := cfg.rng.Intn(3)
			used := make(map[string]struct{}, n)
			for k := 0; k < n; k++ {
				dst := names[cfg.rng.Intn(len(names))]
				if _, dup := used[dst]; dup {
					continue
				}
				used[dst] = struct{}{}
				_ = a.AddEdge(src, sym, true, dst)
			}
		}
		if cfg.rng.Float64() < cfg.epsilonDensity {
			dst := names[cfg.rng.Intn(len(names))]
			if dst != src {
				_ = a.AddEpsilonEdge(src, dst)
			}
		}
	}

	markFinals(a, names, cfg)
	return a
}

// RandomDFA builds a total, deterministic automaton: every state has
// exactly one outgoing edge per symbol in cfg.alphabet.
func RandomDFA(opts ...Option) *automaton.Automaton {
	cfg := newConfig(opts...)
	names := stateNames(cfg.states)
	a := automaton.New("random_dfa", names[0], names[1:]...)

	for _, src := range names {
		for _, sym := range cfg.alphabet {
			dst := names[cfg.rng.Intn(len(names))]
			_ = a.AddEdge(src, sym, true, dst)
		}
	}

	markFinals(a, names, cfg)
	return a
}

func markFinals(a *automaton.Automaton, names []string, cfg config) {
	for _, id := range names {
		if cfg.rng.Float64() < cfg.finalDensity {
			_ = a.AddFinal(id)
		}
	}
}
