// File: render.go
// Role: Graphviz DOT emitter (spec §4.13).
package dot

import (
	"strings"

	"github.com/katalvlaran/fsautomata/automaton"
)

// Render returns the Graphviz `digraph` source for a, in the shape
// `digraph NAME { rankdir=LR; node [shape = doublecircle]; F1 F2 …;
// node [shape = circle]; S -> D [ label = x ]; … }`. Pure function, no
// I/O.
func Render(a *automaton.Automaton) string {
	var b strings.Builder

	b.WriteString("digraph ")
	b.WriteString(a.Name())
	b.WriteString(" {\n\trankdir=LR;\n")

	finals := a.Finals()
	if len(finals) > 0 {
		b.WriteString("\tnode [shape = doublecircle];")
		for _, id := range finals {
			b.WriteString(" ")
			b.WriteString(id)
		}
		b.WriteString(";\n")
	}

	states := a.States()
	if len(states) > 0 {
		b.WriteString("\tnode [shape = circle];\n")
		incoming := incomingCount(a, states)
		for _, id := range states {
			edges, _ := a.Edges(id)
			if len(edges) == 0 && incoming[id] == 0 {
				b.WriteString("\t")
				b.WriteString(id)
				b.WriteString(";\n")
				continue
			}
			for _, e := range edges {
				b.WriteString("\t")
				b.WriteString(id)
				b.WriteString(" -> ")
				b.WriteString(e.Dest)
				if e.Has {
					b.WriteString(" [ label = ")
					b.WriteRune(e.Label)
					b.WriteString(" ]")
				}
				b.WriteString(";\n")
			}
		}
	}

	b.WriteString("}")
	return b.String()
}

func incomingCount(a *automaton.Automaton, states []string) map[string]int {
	counts := make(map[string]int, len(states))
	for _, id := range states {
		edges, _ := a.Edges(id)
		for _, e := range edges {
			counts[e.Dest]++
		}
	}
	return counts
}
