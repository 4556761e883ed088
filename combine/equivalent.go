// File: equivalent.go
// Role: language equivalence via symmetric difference (spec §4.11).
package combine

import (
	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/complement"
	"github.com/katalvlaran/fsautomata/determinize"
)

// Equivalent reports whether a and b accept exactly the same language:
// L(a) == L(b) iff the symmetric difference (a ∩ ¬b) ∪ (¬a ∩ b) is empty.
// Both complements are taken over the combined alphabet of a and b.
// Neither a nor b is modified.
func Equivalent(a, b *automaton.Automaton) (bool, error) {
	alphabet := unionAlphabet(a, b)
	notA, notB := a.Clone(), b.Clone()
	for _, n := range []*automaton.Automaton{notA, notB} {
		if err := determinize.TotalizeOver(n, alphabet); err != nil {
			return false, err
		}
		if err := complement.Complement(n); err != nil {
			return false, err
		}
	}

	onlyA, err := Intersect(a, notB)
	if err != nil {
		return false, err
	}
	onlyB, err := Intersect(notA, b)
	if err != nil {
		return false, err
	}

	symDiff, err := Union(onlyA, onlyB)
	if err != nil {
		return false, err
	}

	return Emptiness(symDiff)
}
