// File: union.go
// Role: ε-joined union (spec §4.8).
package combine

import "github.com/katalvlaran/fsautomata/automaton"

// Union returns a fresh Automaton accepting L(a) ∪ L(b). a and b are not
// modified. Each operand's state graph is copied into the result under a
// prefixed name to avoid collisions, and a new initial state reaches both
// copies' initial states via ε-edges.
func Union(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	out := automaton.New("union", "q0")

	if err := graftPrefixed(out, a, "l_"); err != nil {
		return nil, err
	}
	if err := graftPrefixed(out, b, "r_"); err != nil {
		return nil, err
	}

	if err := out.AddEpsilonEdge("q0", "l_"+a.Initial()); err != nil {
		return nil, err
	}
	if err := out.AddEpsilonEdge("q0", "r_"+b.Initial()); err != nil {
		return nil, err
	}
	return out, nil
}

// graftPrefixed copies src's states, finals, and edges into dst, renaming
// every state id by prepending prefix so operands never collide.
func graftPrefixed(dst *automaton.Automaton, src *automaton.Automaton, prefix string) error {
	for _, id := range src.States() {
		name := prefix + id
		if !dst.HasState(name) {
			if err := dst.AddState(name); err != nil {
				return err
			}
		}
		if src.IsFinal(id) {
			if err := dst.AddFinal(name); err != nil {
				return err
			}
		}
	}
	for _, id := range src.States() {
		edges, err := src.Edges(id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if err := dst.AddEdge(prefix+id, e.Label, e.Has, prefix+e.Dest); err != nil {
				return err
			}
		}
	}
	return nil
}
