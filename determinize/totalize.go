// File: totalize.go
// Role: DFA completion (spec §4.5).
package determinize

import (
	"strconv"

	"github.com/katalvlaran/fsautomata/automaton"
)

// sinkState is the name of the shared, non-final, self-looping sink that
// Totalize adds to absorb missing transitions.
const sinkState = "_error"

// IsTotal reports whether every state has at least one outgoing edge for
// every symbol in the active alphabet. It does not check for repeated
// labels; pair it with IsDeterministic to test for a total DFA.
func IsTotal(a *automaton.Automaton) bool {
	alphabet := a.Alphabet()
	for _, id := range a.States() {
		edges, err := a.Edges(id)
		if err != nil {
			return false
		}
		have := make(map[rune]struct{}, len(edges))
		for _, e := range edges {
			if e.Has {
				have[e.Label] = struct{}{}
			}
		}
		for _, sym := range alphabet {
			if _, ok := have[sym]; !ok {
				return false
			}
		}
	}
	return true
}

// Totalize completes a so that δ is defined for every (state, symbol) in
// the active alphabet. A single shared sink state is created only if
// needed, given self-loops on every symbol, and left non-final.
func Totalize(a *automaton.Automaton) error {
	return TotalizeOver(a, a.Alphabet())
}

// TotalizeOver completes a exactly like Totalize but against an
// explicitly supplied alphabet rather than a's own. combine.Intersect
// uses this to totalize two operands over their combined alphabet before
// running product construction, since a transition undefined only
// because the other operand introduced a foreign symbol must still land
// on the sink rather than be treated as "this automaton has no opinion".
func TotalizeOver(a *automaton.Automaton, alphabet []rune) error {
	if len(alphabet) == 0 {
		return nil
	}

	missing := make(map[string][]rune)
	for _, id := range a.States() {
		edges, err := a.Edges(id)
		if err != nil {
			return err
		}
		have := make(map[rune]struct{}, len(edges))
		for _, e := range edges {
			if e.Has {
				have[e.Label] = struct{}{}
			}
		}
		for _, sym := range alphabet {
			if _, ok := have[sym]; !ok {
				missing[id] = append(missing[id], sym)
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	// An existing final "_error" (left by a complement) is not a sink;
	// use a fresh name instead.
	sink := sinkState
	for n := 1; a.HasState(sink) && a.IsFinal(sink); n++ {
		sink = sinkState + "_" + strconv.Itoa(n)
	}
	if !a.HasState(sink) {
		if err := a.AddState(sink); err != nil {
			return err
		}
	}
	sinkEdges, err := a.Edges(sink)
	if err != nil {
		return err
	}
	sinkHas := make(map[rune]struct{}, len(sinkEdges))
	for _, e := range sinkEdges {
		if e.Has {
			sinkHas[e.Label] = struct{}{}
		}
	}
	for _, sym := range alphabet {
		if _, ok := sinkHas[sym]; ok {
			continue
		}
		if err := a.AddEdge(sink, sym, true, sink); err != nil {
			return err
		}
	}
	for id, syms := range missing {
		if id == sink {
			continue
		}
		for _, sym := range syms {
			if err := a.AddEdge(id, sym, true, sink); err != nil {
				return err
			}
		}
	}
	return nil
}
