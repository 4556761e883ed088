// File: closure.go
// Role: epsilon-closure, the primitive every NFA-consuming transform
// (Accepts, determinize.Determinize) builds on.
//
// Grounded on the teacher corpus's bfs package: a FIFO worklist plus a
// visited set, without its context.Context/hook machinery (the automaton
// package carries no cancellation model by contract).
package automaton

// EpsilonClosure returns the smallest set C such that every given seed
// state is in C and, for every t in C and every epsilon-edge t->u, u is
// also in C. Runs in O(states + epsilon-edges) per call.
func (a *Automaton) EpsilonClosure(seeds ...string) map[string]struct{} {
	closed := make(map[string]struct{}, len(seeds))
	queue := make([]string, 0, len(seeds))

	for _, s := range seeds {
		if _, ok := closed[s]; ok {
			continue
		}
		closed[s] = struct{}{}
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range a.edges[cur] {
			if e.Has {
				continue
			}
			if _, ok := closed[e.Dest]; ok {
				continue
			}
			closed[e.Dest] = struct{}{}
			queue = append(queue, e.Dest)
		}
	}

	return closed
}

// step advances the state set cur by one input symbol, without
// re-closing under epsilon: step(cur, r) = { δ(s, r) : s in cur }.
func (a *Automaton) step(cur map[string]struct{}, r rune) map[string]struct{} {
	next := make(map[string]struct{})
	for s := range cur {
		for _, e := range a.edges[s] {
			if e.Has && e.Label == r {
				next[e.Dest] = struct{}{}
			}
		}
	}
	return next
}

// keys returns the members of a state set as a slice, in no particular
// order; used where a set needs to be handed to EpsilonClosure's variadic
// seed list.
func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}
