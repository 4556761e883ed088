// File: intersect.go
// Role: product construction (spec §4.7).
package combine

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/determinize"
)

// pairName derives a deterministic, collision-free state name for a
// product-construction pair from its discovery index, matching the
// q0, q1, ... convention used throughout determinize and minimize.
func pairName(n int) string {
	return "q" + strconv.Itoa(n)
}

func unionAlphabet(a, b *automaton.Automaton) []rune {
	set := make(map[rune]struct{})
	for _, r := range a.Alphabet() {
		set[r] = struct{}{}
	}
	for _, r := range b.Alphabet() {
		set[r] = struct{}{}
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Intersect returns a fresh Automaton accepting L(a) ∩ L(b). a and b are
// not modified: both are cloned, then determinized and totalized over
// their combined alphabet before the product walk.
func Intersect(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	ca, cb := a.Clone(), b.Clone()
	if err := determinize.Determinize(ca); err != nil {
		return nil, err
	}
	if err := determinize.Determinize(cb); err != nil {
		return nil, err
	}

	alphabet := unionAlphabet(ca, cb)
	if err := determinize.TotalizeOver(ca, alphabet); err != nil {
		return nil, err
	}
	if err := determinize.TotalizeOver(cb, alphabet); err != nil {
		return nil, err
	}

	type pair struct{ x, y string }

	out := automaton.New("intersect", pairName(0))
	seen := map[pair]string{{ca.Initial(), cb.Initial()}: pairName(0)}
	queue := []pair{{ca.Initial(), cb.Initial()}}
	next := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curName := seen[cur]

		if !out.HasState(curName) {
			if err := out.AddState(curName); err != nil {
				return nil, err
			}
		}
		if ca.IsFinal(cur.x) && cb.IsFinal(cur.y) {
			if err := out.AddFinal(curName); err != nil {
				return nil, err
			}
		}

		destX, err := destMap(ca, cur.x)
		if err != nil {
			return nil, err
		}
		destY, err := destMap(cb, cur.y)
		if err != nil {
			return nil, err
		}

		for _, sym := range alphabet {
			dx, okx := destX[sym]
			dy, oky := destY[sym]
			if !okx || !oky {
				continue
			}
			p := pair{dx, dy}
			name, ok := seen[p]
			if !ok {
				name = pairName(next)
				next++
				seen[p] = name
				if err := out.AddState(name); err != nil {
					return nil, err
				}
				queue = append(queue, p)
			}
			if err := out.AddEdge(curName, sym, true, name); err != nil {
				return nil, err
			}
		}
	}

	out.MarkDeterministic(true)
	return out, nil
}

// destMap returns the single-symbol outgoing transitions of state id as a
// label->destination map, assuming id's automaton is already total and
// deterministic.
func destMap(a *automaton.Automaton, id string) (map[rune]string, error) {
	edges, err := a.Edges(id)
	if err != nil {
		return nil, err
	}
	out := make(map[rune]string, len(edges))
	for _, e := range edges {
		if e.Has {
			out[e.Label] = e.Dest
		}
	}
	return out, nil
}
