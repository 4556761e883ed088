// SPDX-License-Identifier: MIT
package minimize_test

import (
	"testing"

	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/minimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizePreservesLanguage(t *testing.T) {
	// Redundant DFA: q0 and q2 are equivalent (both loop to q1 on 'a' and
	// to themselves on 'b', neither final); q1 is the sole final state.
	a := automaton.New("t", "q0", "q1", "q2")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddEdge("q0", 'b', true, "q0"))
	require.NoError(t, a.AddEdge("q1", 'a', true, "q2"))
	require.NoError(t, a.AddEdge("q1", 'b', true, "q1"))
	require.NoError(t, a.AddEdge("q2", 'a', true, "q1"))
	require.NoError(t, a.AddEdge("q2", 'b', true, "q2"))
	require.NoError(t, a.AddFinal("q1"))

	words := [][]rune{
		[]rune(""), []rune("a"), []rune("aa"), []rune("aaa"),
		[]rune("b"), []rune("ab"), []rune("aab"), []rune("aaab"),
	}
	before := make([]bool, len(words))
	for i, w := range words {
		before[i] = a.Accepts(w)
	}

	require.NoError(t, minimize.Minimize(a))

	for i, w := range words {
		assert.Equal(t, before[i], a.Accepts(w), "word %q", string(w))
	}
	assert.LessOrEqual(t, len(a.States()), 3)
}

func TestMinimizePrunesUnreachableState(t *testing.T) {
	a := automaton.New("t", "q0", "q1", "dead")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))

	require.NoError(t, minimize.Minimize(a))

	for _, id := range a.States() {
		assert.NotEqual(t, "dead", id)
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))

	require.NoError(t, minimize.Minimize(a))
	firstCount := len(a.States())

	require.NoError(t, minimize.Minimize(a))
	assert.Equal(t, firstCount, len(a.States()))
}
