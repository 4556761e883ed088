// File: api.go
// Role: convenience constructor layered over New (defined in types.go).
package automaton

// NewSingleState returns an automaton with one state that is both initial
// and (optionally) final: a minimal starting point for callers.
func NewSingleState(name, state string, final bool) *Automaton {
	a := New(name, state)
	if final {
		_ = a.AddFinal(state)
	}
	return a
}
