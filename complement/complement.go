// File: complement.go
// Role: automaton complementation (spec §4.6).
package complement

import (
	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/determinize"
)

// Complement mutates a in place into a total DFA for the complement of a's
// current language: every accepting state becomes rejecting and vice
// versa. a is determinized and totalized first so the flip is well-defined
// over every reachable (state, symbol) pair.
func Complement(a *automaton.Automaton) error {
	if err := determinize.Determinize(a); err != nil {
		return err
	}
	if err := determinize.Totalize(a); err != nil {
		return err
	}

	flipped := make([]string, 0, len(a.States()))
	for _, id := range a.States() {
		if !a.IsFinal(id) {
			flipped = append(flipped, id)
		}
	}
	return a.SetFinals(flipped)
}
