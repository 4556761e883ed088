// Package automaton defines the Automaton type: a finite state automaton
// over runes plus a distinguished epsilon transition, and the primitive
// operations that keep its edge index, alphabet multiset, and determinism
// cache consistent.
//
// What:
//
//   - Automaton: states, one initial state, a set of final states, an edge
//     index keyed by source state, and an alphabet reference-count map.
//   - State/edge lifecycle: AddState, RemoveState, AddEdge, AddEpsilonEdge,
//     RemoveEdge, AddChain (chained single-symbol edges with fresh
//     intermediate states).
//   - Language primitives used by every higher-level transform:
//     EpsilonClosure, IsDeterministic, Accepts.
//   - Clone, used by combine so Intersect and Equivalent never mutate
//     their operands.
//
// Why:
//
//   - Every transform in determinize/complement/combine/minimize/regex
//     operates exclusively through this package's exported API; none of
//     them reach into Automaton's fields directly.
//
// Invariants:
//
//   - I1: initial is a member of states; finals is a subset of states.
//   - I2: every edge's source and destination are states.
//   - I3: alphabet's key set equals the set of non-epsilon labels in use;
//     each count equals the number of edges using that label.
//   - I4: no state has two structurally identical outgoing edges.
//   - I5: deterministic==true && !dirty implies no epsilon out-edges and no
//     two out-edges from the same state sharing a label.
//   - I6: states is never empty.
//
// Concurrency:
//
//   - Single-threaded, non-reentrant per Automaton by contract. No internal
//     locking: callers must not share one Automaton across goroutines while
//     mutating it. This is a deliberate departure from the teacher
//     package's RWMutex-guarded graph type — see DESIGN.md.
//
// Errors:
//
//	ErrNoSuchNode        referenced state does not exist
//	ErrNoSuchEdge        referenced edge does not exist
//	ErrDuplicateElement  state or edge already present
//	ErrInvalidAutomaton  an operation would violate I1-I6
//	ErrRemoveInitial     RemoveState called on the initial state
package automaton
