// File: accept.go
// Role: word acceptance (spec §4.10). Works directly on NFAs with
// epsilon-edges; does not require prior determinization.
package automaton

// Accepts reports whether word is in the automaton's language. Starting
// from the epsilon-closure of the initial state, each symbol advances the
// current state set and re-closes it under epsilon; the word is accepted
// iff the final set intersects the final states.
func (a *Automaton) Accepts(word []rune) bool {
	cur := a.EpsilonClosure(a.initial)

	for _, r := range word {
		advanced := a.step(cur, r)
		cur = a.EpsilonClosure(keys(advanced)...)
		if len(cur) == 0 {
			return false
		}
	}

	for s := range cur {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}
