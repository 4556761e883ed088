// Package matrix provides a dense state×symbol transition table view over
// a total DFA, in the spirit of the adjacency-matrix view over a graph:
// constant-time lookup traded for O(states*symbols) memory.
//
// What:
//
//   - Table: Index maps state ID -> row, an unexported index maps input
//     symbol -> column (Symbols() lists the column order); Data[i][j]
//     holds the destination row for that (state, symbol) pair, or -1 if
//     undefined.
//   - Transitions(a): builds a Table from an automaton.Automaton.
//   - Table.At(state, symbol): O(1) destination lookup.
//
// Why:
//
//   - The automaton package's own Edges() is already O(out-degree); this
//     view exists for callers (tests, tooling) that want every transition
//     of a fully-explored DFA addressable by two O(1) lookups instead of
//     a linear scan, same tradeoff the teacher's adjacency matrix makes
//     over its edge list.
//
// Errors:
//
//   - ErrNotTotal if the automaton is not deterministic and total: a
//     partial table with holes is not a faithful transition function.
package matrix
