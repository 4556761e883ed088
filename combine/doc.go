// Package combine implements the binary and unary automaton combinators of
// spec §4.7, §4.8 and §4.11: Intersect, Union, Equivalent and the Emptiness test they
// both rely on.
//
// What:
//
//   - Intersect(a, b): product construction over determinized, totalized
//     clones of a and b; returns a fresh Automaton for L(a) ∩ L(b).
//   - Union(a, b): fresh NFA with ε-edges into renamed copies of a and b's
//     state graphs; returns a fresh Automaton for L(a) ∪ L(b).
//   - Equivalent(a, b): L(a) == L(b) iff the symmetric difference
//     (a ∩ ¬b) ∪ (¬a ∩ b) accepts nothing.
//   - Emptiness(a): reachability from the initial state to any final
//     state, independent of determinism.
//
// Why:
//
//   - None of these mutate their operands (spec §3 Lifecycle); every
//     entry point clones before calling into determinize/complement.
//
// Complexity:
//
//   - Intersect: O(|states(a)| * |states(b)| * |alphabet|) after both
//     operands are determinized and totalized.
//   - Union: O(|states(a)| + |states(b)|).
//   - Equivalent: one Complement call per operand, two Intersect calls,
//     one Union of their results, and a single Emptiness check.
//   - Emptiness: O(|states| + |edges|).
//
// Errors:
//
//   - Propagates errors from automaton/determinize/complement; otherwise
//     nil.
package combine
