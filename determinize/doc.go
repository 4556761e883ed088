// Package determinize implements subset-construction determinization and
// DFA completion (totalization) over an automaton.Automaton.
//
// What:
//
//   - Determinize: replaces the receiver's state graph with an equivalent
//     DFA, states named q0, q1, ... in BFS discovery order.
//   - Totalize: completes a DFA so every (state, symbol) pair in the
//     active alphabet has exactly one outgoing edge, adding a shared `_error`
//     sink state only if needed.
//   - TotalizeOver: Totalize against an explicitly supplied alphabet,
//     for callers (combine.Intersect) that need two operands total over
//     their combined alphabet rather than each one's own.
//   - IsTotal: read-only predicate companion to Totalize.
//
// Why:
//
//   - Every downstream transform that needs a complete DFA calls
//     Determinize then Totalize: complement.Complement and
//     minimize.Minimize on the receiver in place, combine.Intersect on
//     clones of its operands; this package owns both so that pairing stays
//     in one place.
//
// Complexity:
//
//   - Determinize: O(2^|states| * |alphabet|) worst case (inherent to
//     subset construction), O(reachable subsets * |alphabet|) in practice.
//   - Totalize: O(|states| * |alphabet|).
//
// Errors:
//
//   - Neither function fails on a well-formed automaton.Automaton; both
//     only propagate automaton package errors, which cannot occur here
//     because determinize only calls automaton methods with states it
//     itself just created.
package determinize
