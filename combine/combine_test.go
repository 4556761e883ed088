// SPDX-License-Identifier: MIT
package combine_test

import (
	"testing"

	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/combine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endsWith builds a two-state DFA over {a,b} accepting strings ending in
// the single character want.
func endsWith(t *testing.T, want rune) *automaton.Automaton {
	t.Helper()
	other := rune('b')
	if want == 'b' {
		other = 'a'
	}
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", want, true, "q1"))
	require.NoError(t, a.AddEdge("q0", other, true, "q0"))
	require.NoError(t, a.AddEdge("q1", want, true, "q1"))
	require.NoError(t, a.AddEdge("q1", other, true, "q0"))
	require.NoError(t, a.AddFinal("q1"))
	return a
}

func TestIntersectLanguage(t *testing.T) {
	endsA := endsWith(t, 'a')
	endsB := endsWith(t, 'b')

	inter, err := combine.Intersect(endsA, endsB)
	require.NoError(t, err)

	empty, err := combine.Emptiness(inter)
	require.NoError(t, err)
	assert.True(t, empty, "a word cannot simultaneously end in both 'a' and 'b'")
}

func TestIntersectDoesNotModifyOperands(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))
	originalStates := len(a.States())

	b := a.Clone()
	_, err := combine.Intersect(a, b)
	require.NoError(t, err)

	assert.Equal(t, originalStates, len(a.States()))
}

func TestUnionLanguage(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))

	b := automaton.New("t", "p0", "p1")
	require.NoError(t, b.AddEdge("p0", 'b', true, "p1"))
	require.NoError(t, b.AddFinal("p1"))

	u, err := combine.Union(a, b)
	require.NoError(t, err)

	assert.True(t, u.Accepts([]rune("a")))
	assert.True(t, u.Accepts([]rune("b")))
	assert.False(t, u.Accepts([]rune("c")))
}

func TestEquivalentSameLanguageDifferentShape(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))

	// NFA for the same language via an epsilon detour.
	b := automaton.New("t", "p0", "p1", "p2")
	require.NoError(t, b.AddEpsilonEdge("p0", "p1"))
	require.NoError(t, b.AddEdge("p1", 'a', true, "p2"))
	require.NoError(t, b.AddFinal("p2"))

	eq, err := combine.Equivalent(a, b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEquivalentDifferentLanguages(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))

	b := automaton.New("t", "p0", "p1")
	require.NoError(t, b.AddEdge("p0", 'b', true, "p1"))
	require.NoError(t, b.AddFinal("p1"))

	eq, err := combine.Equivalent(a, b)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestEmptinessUnreachableFinal(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddFinal("q1"))

	empty, err := combine.Emptiness(a)
	require.NoError(t, err)
	assert.True(t, empty)
}
