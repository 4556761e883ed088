// Package regex compiles the restricted regular-expression syntax of
// spec §4.12 into an ε-NFA via Thompson construction.
//
// What:
//
//   - Compile(pattern): literal symbols, '*' (Kleene star), '|'
//     (alternation), implicit concatenation, and '(' ')' grouping.
//     Precedence, tightest first: '*', concatenation, '|'. The empty
//     pattern matches the empty string. '*', '|', '(', ')' and '\' are
//     metacharacters; any of them (including '\' itself) can appear as a
//     literal symbol by preceding it with '\'.
//
// Why:
//
//   - Each grammar production compiles to one NFA fragment with a single
//     entry and single exit, joined by ε-edges exactly as Thompson's
//     construction describes; the result needs no further adaptation to
//     be consumed by determinize, complement, combine or minimize.
//
// Complexity:
//
//   - O(len(pattern)) states and edges: one fragment per parse tree node.
//
// Errors:
//
//   - ErrRegexSyntax, wrapped with the rune offset where parsing failed.
package regex
