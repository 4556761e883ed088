// File: minimize.go
// Role: reachability pruning + partition refinement (spec §4.9).
package minimize

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/determinize"
)

// Minimize mutates a in place into the minimal total DFA for a's current
// language. a is determinized and totalized first.
func Minimize(a *automaton.Automaton) error {
	if err := determinize.Determinize(a); err != nil {
		return err
	}
	if err := determinize.Totalize(a); err != nil {
		return err
	}

	reachable := reachableFrom(a)
	for _, id := range append([]string(nil), a.States()...) {
		if id == a.Initial() {
			continue
		}
		if _, ok := reachable[id]; !ok {
			if err := a.RemoveState(id); err != nil {
				return err
			}
		}
	}

	alphabet := a.Alphabet()
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	part := initialPartition(a)
	for {
		next, changed := refine(a, part, alphabet)
		part = next
		if !changed {
			break
		}
	}

	built, err := quotient(a, part, alphabet)
	if err != nil {
		return err
	}
	built.MarkDeterministic(true)
	a.ReplaceWith(built)
	return nil
}

func reachableFrom(a *automaton.Automaton) map[string]struct{} {
	visited := map[string]struct{}{a.Initial(): {}}
	queue := []string{a.Initial()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		edges, err := a.Edges(id)
		if err != nil {
			continue
		}
		for _, e := range edges {
			if _, ok := visited[e.Dest]; !ok {
				visited[e.Dest] = struct{}{}
				queue = append(queue, e.Dest)
			}
		}
	}
	return visited
}

// initialPartition assigns block 0 to final states and block 1 to
// non-final states, id -> block.
func initialPartition(a *automaton.Automaton) map[string]int {
	part := make(map[string]int, len(a.States()))
	for _, id := range a.States() {
		if a.IsFinal(id) {
			part[id] = 0
		} else {
			part[id] = 1
		}
	}
	return part
}

// refine splits blocks whose members disagree on the destination block of
// some symbol's transition, returning the new partition and whether any
// split occurred.
func refine(a *automaton.Automaton, part map[string]int, alphabet []rune) (map[string]int, bool) {
	type sig struct {
		block int
		dests string
	}
	sigOf := make(map[string]sig, len(part))
	for _, id := range a.States() {
		edges, _ := a.Edges(id)
		dest := make(map[rune]string, len(edges))
		for _, e := range edges {
			if e.Has {
				dest[e.Label] = e.Dest
			}
		}
		key := ""
		for i, sym := range alphabet {
			if i > 0 {
				key += ","
			}
			if d, ok := dest[sym]; ok {
				key += strconv.Itoa(part[d])
			} else {
				key += "-"
			}
		}
		sigOf[id] = sig{block: part[id], dests: key}
	}

	groupKey := func(s sig) string { return strconv.Itoa(s.block) + "|" + s.dests }

	oldBlocks := maxBlock(part) + 1

	seen := make(map[string]int)
	next := make(map[string]int, len(part))
	for _, id := range a.States() {
		k := groupKey(sigOf[id])
		b, ok := seen[k]
		if !ok {
			b = len(seen)
			seen[k] = b
		}
		next[id] = b
	}
	return next, len(seen) != oldBlocks
}

func maxBlock(part map[string]int) int {
	max := -1
	for _, b := range part {
		if b > max {
			max = b
		}
	}
	return max
}

// quotient builds the minimized automaton: one state per block, named
// q0, q1, ... in BFS discovery order starting from the initial state's
// block.
func quotient(a *automaton.Automaton, part map[string]int, alphabet []rune) (*automaton.Automaton, error) {
	blockRep := make(map[int]string)
	for _, id := range a.States() {
		b := part[id]
		if _, ok := blockRep[b]; !ok {
			blockRep[b] = id
		}
	}

	initBlock := part[a.Initial()]
	name := map[int]string{initBlock: "q0"}
	queue := []int{initBlock}
	next := 1

	built := automaton.New(a.Name(), "q0")

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		bName := name[b]

		if !built.HasState(bName) {
			if err := built.AddState(bName); err != nil {
				return nil, err
			}
		}
		rep := blockRep[b]
		if a.IsFinal(rep) {
			if err := built.AddFinal(bName); err != nil {
				return nil, err
			}
		}

		edges, err := a.Edges(rep)
		if err != nil {
			return nil, err
		}
		dest := make(map[rune]int, len(edges))
		for _, e := range edges {
			if e.Has {
				dest[e.Label] = part[e.Dest]
			}
		}
		for _, sym := range alphabet {
			db, ok := dest[sym]
			if !ok {
				continue
			}
			dName, seen := name[db]
			if !seen {
				dName = "q" + strconv.Itoa(next)
				next++
				name[db] = dName
				if err := built.AddState(dName); err != nil {
					return nil, err
				}
				queue = append(queue, db)
			}
			if err := built.AddEdge(bName, sym, true, dName); err != nil {
				return nil, err
			}
		}
	}
	return built, nil
}
