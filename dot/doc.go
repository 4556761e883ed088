// Package dot renders an automaton.Automaton as a Graphviz digraph (spec
// §4.13).
//
// What:
//
//   - Render: rankdir=LR; double-circle finals, single-circle everything
//     else; isolated states (no in- and no out-edges) are emitted
//     explicitly so they survive rendering; ε-edges carry no label.
//
// Why:
//
//   - A pure string-building function: rendering is the caller's
//     responsibility to write to a file or pipe into `dot`, matching the
//     core's no-I/O contract.
package dot
