// File: methods_clone.go
// Role: deep copy, used by combine so that Intersect/Equivalent never
// mutate their operands (spec §3
// Lifecycle: "the operands of intersection/union are not modified").
package automaton

// Clone returns a deep copy of the automaton: states, edges, initial
// state, finals, and alphabet are all independent of the receiver.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		name:          a.name,
		states:        append([]string(nil), a.states...),
		stateIdx:      make(map[string]int, len(a.stateIdx)),
		initial:       a.initial,
		finals:        make(map[string]struct{}, len(a.finals)),
		edges:         make(map[string][]Edge, len(a.edges)),
		alphabet:      make(map[rune]int, len(a.alphabet)),
		deterministic: a.deterministic,
		dirty:         a.dirty,
	}
	for k, v := range a.stateIdx {
		c.stateIdx[k] = v
	}
	for k := range a.finals {
		c.finals[k] = struct{}{}
	}
	for k, v := range a.edges {
		c.edges[k] = append([]Edge(nil), v...)
	}
	for k, v := range a.alphabet {
		c.alphabet[k] = v
	}
	return c
}
