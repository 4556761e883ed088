// File: methods_edges.go
// Role: edge lifecycle (AddEdge/AddEpsilonEdge/RemoveEdge/AddChain) and
// alphabet bookkeeping. The alphabet map is a reference-counted multiset:
// each non-epsilon label's count equals the number of edges currently using
// it, and the label is removed from the map the moment its count hits zero
// (I3). This is not decoration — determinize and determinize.Totalize
// iterate the alphabet and must see exactly the symbols in active use.
//
// Determinism cache (I5):
//   - AddEdge updates `deterministic` eagerly: O(out-degree) to check, cheap
//     enough to do on every insertion.
//   - RemoveEdge only sets `dirty`; rechecking determinism after every
//     removal in a batch of N would cost O(N*|E|), so the recheck is
//     deferred to the next IsDeterministic() call (see determinism.go).
package automaton

import "strconv"

// AddEdge inserts an edge (label, dst) out of src. If dst is not yet a
// state it is created, matching the source's auto-create-destination
// semantics for addEdge. ε-transitions are expressed with hasLabel==false,
// in which case label is ignored.
//
// Errors:
//   - ErrNoSuchNode if src is not a state.
//   - ErrDuplicateElement if src already has an edge with this exact
//     (label, dst) pair (I4).
func (a *Automaton) AddEdge(src string, label rune, hasLabel bool, dst string) error {
	if !a.HasState(src) {
		return &NodeError{Op: "AddEdge", Name: src, Err: ErrNoSuchNode}
	}
	if !a.HasState(dst) {
		a.addStateUnchecked(dst)
	}

	e := Edge{Label: label, Has: hasLabel, Dest: dst}
	for _, existing := range a.edges[src] {
		if existing.equal(e) {
			return &EdgeError{Op: "AddEdge", Src: src, Dst: dst, Err: ErrDuplicateElement}
		}
	}

	// Determinism cache: a deterministic automaton stays deterministic
	// unless this new edge is an epsilon edge or repeats a label already
	// leaving src.
	if a.deterministic && !a.dirty {
		if !hasLabel {
			a.deterministic = false
		} else {
			for _, existing := range a.edges[src] {
				if existing.Has && existing.Label == label {
					a.deterministic = false
					break
				}
			}
		}
	}

	a.edges[src] = append(a.edges[src], e)
	if hasLabel {
		a.alphabet[label]++
	}
	return nil
}

// AddEpsilonEdge is sugar for AddEdge(src, 0, false, dst).
func (a *Automaton) AddEpsilonEdge(src, dst string) error {
	return a.AddEdge(src, 0, false, dst)
}

// RemoveEdge deletes the edge (label, dst) out of src.
//
// Errors:
//   - ErrNoSuchNode if src is not a state.
//   - ErrNoSuchEdge if no such edge exists out of src.
func (a *Automaton) RemoveEdge(src string, label rune, hasLabel bool, dst string) error {
	if !a.HasState(src) {
		return &NodeError{Op: "RemoveEdge", Name: src, Err: ErrNoSuchNode}
	}
	target := Edge{Label: label, Has: hasLabel, Dest: dst}
	out := a.edges[src]
	for i, existing := range out {
		if existing.equal(target) {
			a.edges[src] = append(out[:i], out[i+1:]...)
			if hasLabel {
				a.alphabet[label]--
				if a.alphabet[label] <= 0 {
					delete(a.alphabet, label)
				}
			}
			// Removal can only ever restore determinism, never break
			// it; if the automaton was non-deterministic we must
			// recheck lazily rather than assume it stayed that way.
			if !a.deterministic {
				a.dirty = true
			}
			return nil
		}
	}
	return &EdgeError{Op: "RemoveEdge", Src: src, Dst: dst, Err: ErrNoSuchEdge}
}

// Edges returns the outgoing edges of state id, in insertion order. The
// returned slice must be treated as read-only by callers.
//
// Errors:
//   - ErrNoSuchNode if id is not a state.
func (a *Automaton) Edges(id string) ([]Edge, error) {
	if !a.HasState(id) {
		return nil, &NodeError{Op: "Edges", Name: id, Err: ErrNoSuchNode}
	}
	return a.edges[id], nil
}

// Alphabet returns the active input symbols (ε excluded); order is
// unspecified. Callers that need a stable iteration order
// (determinize.Determinize, minimize.Minimize, matrix.Transitions) sort
// the result themselves.
func (a *Automaton) Alphabet() []rune {
	out := make([]rune, 0, len(a.alphabet))
	for r := range a.alphabet {
		out = append(out, r)
	}
	return out
}

// AddChain adds a sequence of single-symbol edges from src to dst spelling
// out input, creating fresh intermediate states as needed. An empty input
// degenerates to a single epsilon edge src->dst. This mirrors the source's
// addEdges helper: for "abc" it creates src -a-> src_1 -b-> src_2 -c-> dst.
//
// Errors:
//   - ErrNoSuchNode if src or dst is not a state.
//   - ErrDuplicateElement if any link in the chain collides with an
//     existing edge.
func (a *Automaton) AddChain(src, input, dst string) error {
	if !a.HasState(src) {
		return &NodeError{Op: "AddChain", Name: src, Err: ErrNoSuchNode}
	}
	if !a.HasState(dst) {
		return &NodeError{Op: "AddChain", Name: dst, Err: ErrNoSuchNode}
	}
	if len(input) == 0 {
		return a.AddEpsilonEdge(src, dst)
	}

	runes := []rune(input)
	cur := src
	seq := 1
	for i, r := range runes {
		var next string
		if i == len(runes)-1 {
			next = dst
		} else {
			next = a.freshStateName(src, seq)
			seq++
			if err := a.AddState(next); err != nil {
				return err
			}
		}
		if err := a.AddEdge(cur, r, true, next); err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// freshStateName returns an identifier not already present among States(),
// derived from base by suffixing "_<n>" and, on collision, growing that
// suffix further. For base "q1" and n==1,2,... this yields "q1_1",
// "q1_2", ... matching the chain-naming scheme AddChain relies on.
func (a *Automaton) freshStateName(base string, n int) string {
	candidate := base + "_" + strconv.Itoa(n)
	for a.HasState(candidate) {
		candidate += "_1"
	}
	return candidate
}
