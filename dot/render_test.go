// SPDX-License-Identifier: MIT
package dot_test

import (
	"testing"

	"github.com/katalvlaran/fsautomata/automaton"
	"github.com/katalvlaran/fsautomata/dot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasicShape(t *testing.T) {
	a := automaton.New("sample", "q0", "q1")
	require.NoError(t, a.AddEdge("q0", 'a', true, "q1"))
	require.NoError(t, a.AddEpsilonEdge("q1", "q0"))
	require.NoError(t, a.AddFinal("q1"))

	out := dot.Render(a)

	assert.Contains(t, out, "digraph sample {")
	assert.Contains(t, out, "rankdir=LR;")
	assert.Contains(t, out, "node [shape = doublecircle]; q1;")
	assert.Contains(t, out, "node [shape = circle];")
	assert.Contains(t, out, "q0 -> q1 [ label = a ];")
	assert.Contains(t, out, "q1 -> q0;")
	assert.True(t, out[len(out)-1] == '}')
}

func TestRenderEmitsIsolatedState(t *testing.T) {
	a := automaton.New("sample", "q0", "lonely")
	out := dot.Render(a)
	assert.Contains(t, out, "\tlonely;\n")
}

func TestRenderOmitsDoublecircleLineWhenNoFinals(t *testing.T) {
	a := automaton.New("sample", "q0")
	out := dot.Render(a)
	assert.NotContains(t, out, "doublecircle")
}
