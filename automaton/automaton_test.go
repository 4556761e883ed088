// SPDX-License-Identifier: MIT
package automaton_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpsilonClosure(t *testing.T) {
	a := automaton.New("t", "q0", "q1", "q2", "q3")
	require.NoError(t, a.AddEpsilonEdge("q0", "q1"))
	require.NoError(t, a.AddEpsilonEdge("q1", "q2"))
	require.NoError(t, a.AddEdge("q2", 'a', true, "q3"))

	c0 := a.EpsilonClosure("q0")
	assert.Contains(t, c0, "q0")
	assert.Contains(t, c0, "q1")
	assert.Contains(t, c0, "q2")
	assert.NotContains(t, c0, "q3")

	c3 := a.EpsilonClosure("q3")
	assert.Equal(t, map[string]struct{}{"q3": {}}, c3)

	// Idempotence: closing an already-closed set is a no-op.
	again := a.EpsilonClosure(keysOf(c0)...)
	assert.Equal(t, c0, again)
}

func keysOf(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestAddEdgeDeterminismCache(t *testing.T) {
	a := automaton.New("t", "init", "q1", "q2", "q3")
	assert.True(t, a.IsDeterministic())

	require.NoError(t, a.AddEdge("q1", 'a', true, "q2"))
	assert.True(t, a.IsDeterministic())

	require.NoError(t, a.AddEdge("q1", 'a', true, "q3"))
	assert.False(t, a.IsDeterministic())

	require.NoError(t, a.AddEpsilonEdge("q1", "q3"))
	assert.False(t, a.IsDeterministic())

	require.NoError(t, a.RemoveEdge("q1", 'a', true, "q3"))
	require.NoError(t, a.RemoveEdge("q1", 0, false, "q3"))
	assert.True(t, a.IsDeterministic())
}

func TestAddChainStateCount(t *testing.T) {
	a := automaton.New("t", "init", "q1", "q2")
	require.NoError(t, a.AddChain("q1", "abc", "q2"))

	assert.Len(t, a.States(), 5)
	e1, err := a.Edges("q1")
	require.NoError(t, err)
	require.Len(t, e1, 1)
	assert.Equal(t, automaton.Edge{Label: 'a', Has: true, Dest: "q1_1"}, e1[0])

	e2, err := a.Edges("q1_1")
	require.NoError(t, err)
	require.Len(t, e2, 1)
	assert.Equal(t, automaton.Edge{Label: 'b', Has: true, Dest: "q1_2"}, e2[0])

	e3, err := a.Edges("q1_2")
	require.NoError(t, err)
	require.Len(t, e3, 1)
	assert.Equal(t, automaton.Edge{Label: 'c', Has: true, Dest: "q2"}, e3[0])

	assert.True(t, a.IsDeterministic())
}

func TestAddEdgeDuplicateAndMissingNode(t *testing.T) {
	a := automaton.New("t", "q0")
	require.NoError(t, a.AddState("q1"))
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))

	err := a.AddEdge("q0", 'a', true, "q1")
	assert.True(t, errors.Is(err, automaton.ErrDuplicateElement))

	err = a.AddEdge("missing", 'a', true, "q1")
	assert.True(t, errors.Is(err, automaton.ErrNoSuchNode))
}

func TestRemoveStateRejectsInitial(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	err := a.RemoveState("q0")
	assert.True(t, errors.Is(err, automaton.ErrRemoveInitial))
}

func TestRemoveStateClearsIncidentEdges(t *testing.T) {
	a := automaton.New("t", "q0", "q1", "q2")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddEdge("q1", 'b', true, "q2"))
	require.NoError(t, a.AddEdge("q2", 'c', true, "q1"))

	require.NoError(t, a.RemoveState("q1"))
	assert.Empty(t, a.Alphabet())

	e0, err := a.Edges("q0")
	require.NoError(t, err)
	assert.Empty(t, e0)
}

func TestAccepts(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q0"))
	require.NoError(t, a.AddEdge("q0", 'b', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))

	assert.True(t, a.Accepts([]rune("aaab")))
	assert.False(t, a.Accepts([]rune("aaa")))
	assert.False(t, a.Accepts([]rune("")))
}

func TestCloneIsIndependent(t *testing.T) {
	a := automaton.New("t", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddFinal("q1"))

	c := a.Clone()
	require.NoError(t, c.AddEdge("q1", 'b', true, "q0"))

	_, err := a.Edges("q1")
	require.NoError(t, err)
	e1, _ := a.Edges("q1")
	assert.Empty(t, e1)
}
