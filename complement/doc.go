// Package complement implements automaton complementation (spec §4.6).
//
// What:
//
//   - Complement: replaces the receiver with a total DFA accepting the
//     complement language, by determinizing and totalizing in place and
//     then flipping the final-state set.
//
// Why:
//
//   - Complementation is only well-defined over a total DFA: a partial
//     automaton's "non-final" states include transitions that are simply
//     undefined, which would wrongly become accepting. Totalize makes that
//     distinction explicit via the sink state before the flip happens.
//
// Complexity:
//
//   - Dominated by determinize.Determinize: O(2^|states| * |alphabet|)
//     worst case.
//
// Errors:
//
//   - Propagates any error from determinize.Determinize or
//     determinize.Totalize; otherwise nil.
package complement
