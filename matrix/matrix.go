// File: matrix.go
// Role: dense state x symbol transition table.
package matrix

import (
	"errors"
	"sort"

	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/determinize"
)

// ErrNotTotal indicates Transitions was called on an automaton that is
// not both deterministic and total; such an automaton has no single
// well-defined destination for every (state, symbol) pair.
var ErrNotTotal = errors.New("matrix: automaton is not a total DFA")

// Table is a dense state x symbol transition table over a total DFA.
type Table struct {
	// Index maps a state ID to its row in Data.
	Index map[string]int
	// symIndex maps an input symbol to its column in Data.
	symIndex map[rune]int
	// Data[i][j] holds the row index of the destination for the state
	// at row i on the symbol at column j; -1 if undefined (never
	// produced by Transitions, since it requires a total DFA).
	Data [][]int

	states  []string
	symbols []rune
}

// States returns the row order: state IDs in the automaton's own
// insertion order.
func (t *Table) States() []string { return t.states }

// Symbols returns the column order: alphabet symbols sorted ascending.
func (t *Table) Symbols() []rune { return t.symbols }

// At returns the destination state ID reached from state on symbol, and
// whether that pair is within range.
func (t *Table) At(state string, symbol rune) (string, bool) {
	i, ok := t.Index[state]
	if !ok {
		return "", false
	}
	j, ok := t.symIndex[symbol]
	if !ok {
		return "", false
	}
	d := t.Data[i][j]
	if d < 0 {
		return "", false
	}
	return t.states[d], true
}

// Transitions builds a Table from a, which must already be a
// deterministic, total automaton (run determinize.Determinize and
// determinize.Totalize first if it is not).
//
// Time complexity: O(states*symbols). Memory: O(states*symbols).
func Transitions(a *automaton.Automaton) (*Table, error) {
	if !a.IsDeterministic() || !determinize.IsTotal(a) {
		return nil, ErrNotTotal
	}

	states := append([]string(nil), a.States()...)
	index := make(map[string]int, len(states))
	for i, id := range states {
		index[id] = i
	}

	symbols := a.Alphabet()
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	cols := make(map[rune]int, len(symbols))
	for j, sym := range symbols {
		cols[sym] = j
	}

	data := make([][]int, len(states))
	for i, id := range states {
		data[i] = make([]int, len(symbols))
		for j := range data[i] {
			data[i][j] = -1
		}
		edges, err := a.Edges(id)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if !e.Has {
				continue
			}
			j, ok := cols[e.Label]
			if !ok {
				continue
			}
			data[i][j] = index[e.Dest]
		}
	}

	return &Table{
		Index:    index,
		symIndex: cols,
		Data:     data,
		states:   states,
		symbols:  symbols,
	}, nil
}
