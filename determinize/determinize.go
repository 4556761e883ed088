// File: determinize.go
// Role: subset construction (spec §4.4).
package determinize

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/fsautomata/automaton"
)

// subsetKey canonicalizes a state set into a string usable as a map key,
// by sorting its members. Two subsets with the same members always
// produce the same key regardless of discovery order.
func subsetKey(set map[string]struct{}) string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	key := ""
	for i, id := range ids {
		if i > 0 {
			key += "\x00"
		}
		key += id
	}
	return key
}

// Determinize replaces a's state graph with an equivalent DFA if a is not
// already deterministic. States are named q0, q1, ... in queue-discovery
// order (spec §4.4 step 2-4); empty target subsets are not materialized,
// so the result may be partial (see Totalize).
func Determinize(a *automaton.Automaton) error {
	if a.IsDeterministic() {
		return nil
	}

	alphabet := a.Alphabet()
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	startSet := a.EpsilonClosure(a.Initial())
	startKey := subsetKey(startSet)

	built := automaton.New(a.Name(), "q0")
	keyToName := map[string]string{startKey: "q0"}
	nameToSet := map[string]map[string]struct{}{"q0": startSet}

	type queued struct {
		name string
		set  map[string]struct{}
	}
	queue := []queued{{name: "q0", set: startSet}}
	next := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !built.HasState(cur.name) {
			if err := built.AddState(cur.name); err != nil {
				return err
			}
		}
		if containsFinal(a, cur.set) {
			if err := built.AddFinal(cur.name); err != nil {
				return err
			}
		}

		for _, sym := range alphabet {
			rawTarget := stepSet(a, cur.set, sym)
			if len(rawTarget) == 0 {
				continue
			}
			target := a.EpsilonClosure(setKeys(rawTarget)...)
			tKey := subsetKey(target)

			name, seen := keyToName[tKey]
			if !seen {
				name = "q" + strconv.Itoa(next)
				next++
				keyToName[tKey] = name
				nameToSet[name] = target
				if err := built.AddState(name); err != nil {
					return err
				}
				queue = append(queue, queued{name: name, set: target})
			}

			if err := built.AddEdge(cur.name, sym, true, name); err != nil {
				return err
			}
		}
	}

	built.MarkDeterministic(true)
	a.ReplaceWith(built)
	return nil
}

func containsFinal(a *automaton.Automaton, set map[string]struct{}) bool {
	for s := range set {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

func stepSet(a *automaton.Automaton, set map[string]struct{}, sym rune) map[string]struct{} {
	out := make(map[string]struct{})
	for s := range set {
		edges, err := a.Edges(s)
		if err != nil {
			continue
		}
		for _, e := range edges {
			if e.Has && e.Label == sym {
				out[e.Dest] = struct{}{}
			}
		}
	}
	return out
}

func setKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}
