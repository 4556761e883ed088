// File: methods_states.go
// Role: state lifecycle (AddState/RemoveState), read-only state queries
// (States/Finals/IsFinal), and final-state marking (AddFinal/SetFinals).
//
// Determinism:
//   - States() returns states in insertion order (rendering and
//     determinization rely on this for stable output).
package automaton

// AddState inserts a new state with an empty outgoing edge set.
//
// Errors:
//   - ErrDuplicateElement if id is already a state.
func (a *Automaton) AddState(id string) error {
	if a.HasState(id) {
		return &NodeError{Op: "AddState", Name: id, Err: ErrDuplicateElement}
	}
	a.addStateUnchecked(id)
	return nil
}

// RemoveState deletes a state and every edge incident to it (incoming and
// outgoing), routing each removal through RemoveEdge so the alphabet stays
// consistent (I3).
//
// Removing the initial state is rejected with ErrRemoveInitial: the spec's
// Open Question (a) is resolved in favor of the safer policy over silently
// leaving the automaton without a valid initial state.
//
// Errors:
//   - ErrNoSuchNode if id is not a state.
//   - ErrRemoveInitial if id is the initial state.
func (a *Automaton) RemoveState(id string) error {
	if !a.HasState(id) {
		return &NodeError{Op: "RemoveState", Name: id, Err: ErrNoSuchNode}
	}
	if id == a.initial {
		return &NodeError{Op: "RemoveState", Name: id, Err: ErrRemoveInitial}
	}

	// Remove outgoing edges first.
	for _, e := range append([]Edge(nil), a.edges[id]...) {
		_ = a.RemoveEdge(id, e.Label, e.Has, e.Dest)
	}

	// Remove incoming edges from every other state.
	for _, src := range a.states {
		if src == id {
			continue
		}
		for _, e := range append([]Edge(nil), a.edges[src]...) {
			if e.Dest == id {
				_ = a.RemoveEdge(src, e.Label, e.Has, id)
			}
		}
	}

	idx := a.stateIdx[id]
	a.states = append(a.states[:idx], a.states[idx+1:]...)
	for i := idx; i < len(a.states); i++ {
		a.stateIdx[a.states[i]] = i
	}
	delete(a.stateIdx, id)
	delete(a.edges, id)
	delete(a.finals, id)

	return nil
}

// States returns every state identifier in insertion order. The returned
// slice must be treated as read-only by callers.
func (a *Automaton) States() []string { return a.states }

// Finals returns the final state identifiers; order is unspecified.
func (a *Automaton) Finals() []string {
	out := make([]string, 0, len(a.finals))
	for id := range a.finals {
		out = append(out, id)
	}
	return out
}

// IsFinal reports whether id is a final state.
func (a *Automaton) IsFinal(id string) bool {
	_, ok := a.finals[id]
	return ok
}

// AddFinal marks id as a final state.
//
// Errors:
//   - ErrNoSuchNode if id is not a state.
func (a *Automaton) AddFinal(id string) error {
	if !a.HasState(id) {
		return &NodeError{Op: "AddFinal", Name: id, Err: ErrNoSuchNode}
	}
	a.finals[id] = struct{}{}
	return nil
}

// SetFinals replaces the final-state set wholesale. Used by
// complement.Complement, which computes a new final set from scratch
// rather than incrementally.
//
// Errors:
//   - ErrNoSuchNode if any id is not a state.
func (a *Automaton) SetFinals(ids []string) error {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !a.HasState(id) {
			return &NodeError{Op: "SetFinals", Name: id, Err: ErrNoSuchNode}
		}
		next[id] = struct{}{}
	}
	a.finals = next
	return nil
}
