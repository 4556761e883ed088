// Package minimize implements DFA minimization (spec §4.9): prune
// unreachable states, then collapse equivalent ones via partition
// refinement.
//
// What:
//
//   - Minimize: determinizes and totalizes the receiver, discards states
//     unreachable from the initial state, then merges states that agree
//     on acceptance and on every transition's target partition, to a
//     fixed point. Quotient states are renamed q0, q1, ... in discovery
//     order from the initial state.
//
// Why:
//
//   - Minimization only has a single well-defined answer (up to state
//     renaming) over a total DFA; Determinize+Totalize is run first for
//     the same reason complement.Complement runs it first.
//
// Complexity:
//
//   - O(|states|^2 * |alphabet|) per refinement pass, bounded by
//     |states| passes to reach the fixed point (Moore's algorithm; not
//     the O(n log n) Hopcroft variant).
//
// Errors:
//
//   - Propagates determinize.Determinize/Totalize errors; otherwise nil.
package minimize
