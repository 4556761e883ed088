// Package fsautomata is a finite state automaton engine: build ε-NFAs and
// DFAs by hand or from a restricted regular-expression syntax, then
// determinize, totalize, complement, intersect, union, minimize, test
// acceptance and equivalence, and render the result as Graphviz DOT.
//
// The core is organized as one package per concern:
//
//	automaton/   — Automaton type: states, edges, ε-closure, acceptance
//	determinize/ — subset construction and DFA completion
//	complement/  — language complementation over a total DFA
//	combine/     — intersection, union, equivalence, emptiness
//	minimize/    — reachability pruning and partition refinement
//	regex/       — Thompson-construction regex compiler
//	dot/         — Graphviz digraph rendering
//	fixtures/    — seeded random automaton generation, for property tests
//	matrix/      — dense state x symbol transition table view
//
// An Automaton is created with a name and an initial state, then mutated
// in place by add/remove operations and by transforms. Regex compilation
// and combine.Intersect/combine.Union return freshly constructed
// automata without touching their operands; determinize.Determinize,
// determinize.Totalize, complement.Complement, and minimize.Minimize all
// mutate their receiver.
//
// The core is single-threaded and non-reentrant per automaton: no
// operation suspends, there is no internal locking, and no I/O occurs
// inside any of these packages. A caller may own multiple automata on
// separate goroutines as long as no single automaton is shared without
// its own synchronization.
package fsautomata
