// Package fixtures generates random automata for property-based testing
// (spec §8): functional options resolve into an immutable config, and a
// seeded *rand.Rand keeps every generated fixture reproducible.
//
// What:
//
//   - RandomNFA: an automaton with the requested state count, drawing
//     outgoing transitions (including ε) over the requested alphabet.
//   - RandomDFA: same shape, but guaranteed deterministic: at most one
//     outgoing edge per (state, symbol), no ε-edges.
//
// Why:
//
//   - Round-tripping a random automaton through determinize+minimize and
//     checking language equivalence against the original is a far
//     stronger check than any fixed set of examples; fixtures exists so
//     that check can be repeated deterministically across runs by fixing
//     the seed.
//
// Determinism:
//
//   - Same (seed, options) always produces the same automaton, state
//     names included.
package fixtures
