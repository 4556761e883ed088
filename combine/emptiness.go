// File: emptiness.go
// Role: reachability-based emptiness test (spec §4.11).
package combine

import "github.com/katalvlaran/fsautomata/automaton"

// Emptiness reports whether a's language is empty, i.e. no final state is
// reachable from the initial state. Unlike determinize/complement, this
// works directly on a's own (possibly non-deterministic, possibly
// partial) graph, following ε-edges as well as labeled ones.
func Emptiness(a *automaton.Automaton) (bool, error) {
	visited := map[string]struct{}{a.Initial(): {}}
	queue := []string{a.Initial()}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if a.IsFinal(id) {
			return false, nil
		}

		edges, err := a.Edges(id)
		if err != nil {
			return false, err
		}
		for _, e := range edges {
			if _, ok := visited[e.Dest]; !ok {
				visited[e.Dest] = struct{}{}
				queue = append(queue, e.Dest)
			}
		}
	}
	return true, nil
}
