// SPDX-License-Identifier: MIT
package regex_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/fsautomata/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accepts(t *testing.T, pattern, word string) bool {
	t.Helper()
	a, err := regex.Compile(pattern)
	require.NoError(t, err)
	return a.Accepts([]rune(word))
}

func TestCompileEmptyPatternMatchesOnlyEmptyString(t *testing.T) {
	a, err := regex.Compile("")
	require.NoError(t, err)
	assert.True(t, a.Accepts([]rune("")))
	assert.False(t, a.Accepts([]rune("a")))
}

func TestCompileLiteralConcatenation(t *testing.T) {
	assert.True(t, accepts(t, "abc", "abc"))
	assert.False(t, accepts(t, "abc", "ab"))
	assert.False(t, accepts(t, "abc", "abcd"))
}

func TestCompileAlternation(t *testing.T) {
	assert.True(t, accepts(t, "a|b", "a"))
	assert.True(t, accepts(t, "a|b", "b"))
	assert.False(t, accepts(t, "a|b", "c"))
	assert.False(t, accepts(t, "a|b", ""))
}

func TestCompileStar(t *testing.T) {
	assert.True(t, accepts(t, "a*", ""))
	assert.True(t, accepts(t, "a*", "aaaa"))
	assert.False(t, accepts(t, "a*", "aab"))
}

func TestCompileGroupingAndPrecedence(t *testing.T) {
	// Star binds tighter than concatenation: "ab*" is a(b*), not (ab)*.
	assert.True(t, accepts(t, "ab*", "a"))
	assert.True(t, accepts(t, "ab*", "abbb"))
	assert.False(t, accepts(t, "ab*", "ababab"))

	// Grouping overrides default precedence.
	assert.True(t, accepts(t, "(ab)*", "ababab"))
	assert.True(t, accepts(t, "(ab)*", ""))
	assert.False(t, accepts(t, "(ab)*", "aba"))
}

func TestCompileSpecAlternationScenario(t *testing.T) {
	pattern := "ef|a*bb*|aa*bc*"
	accept := []string{"ef", "abc", "aaabccccc", "aaabbbbbb", "abbbb", "bbbb"}
	reject := []string{"", "e", "eff", "abbc", "bcccc", "sfgddd", "aaacccc"}

	for _, w := range accept {
		assert.True(t, accepts(t, pattern, w), "expected accept %q", w)
	}
	for _, w := range reject {
		assert.False(t, accepts(t, pattern, w), "expected reject %q", w)
	}
}

func TestCompileEscapedMetacharacter(t *testing.T) {
	assert.True(t, accepts(t, `a\*b`, "a*b"))
	assert.False(t, accepts(t, `a\*b`, "aab"))
	assert.True(t, accepts(t, `\(\)`, "()"))
}

func TestCompileRejectsUnescapedMetacharacter(t *testing.T) {
	_, err := regex.Compile("a*b)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, regex.ErrRegexSyntax))
}

func TestCompileRejectsUnmatchedParen(t *testing.T) {
	_, err := regex.Compile("(ab")
	require.Error(t, err)
	var se *regex.SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestCompileRejectsDanglingEscape(t *testing.T) {
	_, err := regex.Compile(`ab\`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, regex.ErrRegexSyntax))
}
