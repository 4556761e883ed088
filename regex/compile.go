// File: compile.go
// Role: recursive-descent Thompson-construction compiler (spec §4.12).
//
// Grammar (loosest-binding first):
//
//	alt    := concat ('|' concat)*
//	concat := repeat*
//	repeat := atom '*'*
//	atom   := literal | '(' alt ')'
//	literal := '\' any | any byte not in "*|()\"
package regex

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fsautomata/automaton"
)

const metachars = "*|()\\"

// fragment is one Thompson-construction piece: an NFA with exactly one
// entry state and one exit state, both already present in c.a.
type fragment struct {
	start, end string
}

type compiler struct {
	runes []rune
	pos   int
	a     *automaton.Automaton
	next  int
}

// Compile parses pattern and returns a freshly constructed ε-NFA
// accepting exactly the language it denotes. The empty pattern compiles
// to an automaton accepting only the empty string.
func Compile(pattern string) (*automaton.Automaton, error) {
	c := &compiler{
		runes: []rune(pattern),
		a:     automaton.New("regex", "r0"),
		next:  1,
	}

	top, err := c.parseAlt()
	if err != nil {
		return nil, err
	}
	if c.pos != len(c.runes) {
		return nil, c.syntaxErrorf("unexpected %q", c.runes[c.pos])
	}

	if err := c.a.SetInitial(top.start); err != nil {
		return nil, err
	}
	if err := c.a.AddFinal(top.end); err != nil {
		return nil, err
	}
	// "r0" was only a placeholder to satisfy automaton.New's constructor
	// contract; fresh() never produces that name, so it never gained any
	// edges and is safe to drop now that it is no longer the initial
	// state.
	_ = c.a.RemoveState("r0")
	return c.a, nil
}

func (c *compiler) fresh() string {
	name := "r" + strconv.Itoa(c.next)
	c.next++
	_ = c.a.AddState(name)
	return name
}

func (c *compiler) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Offset: c.pos, Reason: fmt.Sprintf(format, args...)}
}

func (c *compiler) peek() (rune, bool) {
	if c.pos >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.pos], true
}

// parseAlt handles '|', the lowest-precedence operator.
func (c *compiler) parseAlt() (fragment, error) {
	left, err := c.parseConcat()
	if err != nil {
		return fragment{}, err
	}
	for {
		r, ok := c.peek()
		if !ok || r != '|' {
			return left, nil
		}
		c.pos++
		right, err := c.parseConcat()
		if err != nil {
			return fragment{}, err
		}
		left = c.union(left, right)
	}
}

// parseConcat handles implicit concatenation by juxtaposition.
func (c *compiler) parseConcat() (fragment, error) {
	var chain fragment
	has := false
	for {
		r, ok := c.peek()
		if !ok || r == '|' || r == ')' {
			break
		}
		frag, err := c.parseRepeat()
		if err != nil {
			return fragment{}, err
		}
		if !has {
			chain = frag
			has = true
			continue
		}
		if err := c.a.AddEpsilonEdge(chain.end, frag.start); err != nil {
			return fragment{}, err
		}
		chain.end = frag.end
	}
	if !has {
		s := c.fresh()
		chain = fragment{start: s, end: s}
	}
	return chain, nil
}

// parseRepeat handles the '*' postfix operator, tightest-binding.
func (c *compiler) parseRepeat() (fragment, error) {
	frag, err := c.parseAtom()
	if err != nil {
		return fragment{}, err
	}
	for {
		r, ok := c.peek()
		if !ok || r != '*' {
			return frag, nil
		}
		c.pos++
		frag = c.star(frag)
	}
}

// parseAtom handles a single literal symbol or a parenthesized
// sub-expression.
func (c *compiler) parseAtom() (fragment, error) {
	r, ok := c.peek()
	if !ok {
		return fragment{}, c.syntaxErrorf("unexpected end of pattern")
	}

	if r == '(' {
		c.pos++
		inner, err := c.parseAlt()
		if err != nil {
			return fragment{}, err
		}
		close, ok := c.peek()
		if !ok || close != ')' {
			return fragment{}, c.syntaxErrorf("unmatched '('")
		}
		c.pos++
		return inner, nil
	}

	if r == '\\' {
		c.pos++
		lit, ok := c.peek()
		if !ok {
			return fragment{}, c.syntaxErrorf("dangling escape")
		}
		c.pos++
		return c.literal(lit), nil
	}

	if containsRune(metachars, r) {
		return fragment{}, c.syntaxErrorf("unescaped metacharacter %q", r)
	}
	c.pos++
	return c.literal(r), nil
}

func (c *compiler) literal(r rune) fragment {
	start, end := c.fresh(), c.fresh()
	_ = c.a.AddEdge(start, r, true, end)
	return fragment{start: start, end: end}
}

// union wires a and b under a fresh entry/exit pair: the classic
// Thompson alternation construction.
func (c *compiler) union(a, b fragment) fragment {
	start, end := c.fresh(), c.fresh()
	_ = c.a.AddEpsilonEdge(start, a.start)
	_ = c.a.AddEpsilonEdge(start, b.start)
	_ = c.a.AddEpsilonEdge(a.end, end)
	_ = c.a.AddEpsilonEdge(b.end, end)
	return fragment{start: start, end: end}
}

// star wires inner under a fresh entry/exit pair supporting zero or more
// repetitions: the classic Thompson star construction.
func (c *compiler) star(inner fragment) fragment {
	start, end := c.fresh(), c.fresh()
	_ = c.a.AddEpsilonEdge(start, inner.start)
	_ = c.a.AddEpsilonEdge(start, end)
	_ = c.a.AddEpsilonEdge(inner.end, inner.start)
	_ = c.a.AddEpsilonEdge(inner.end, end)
	return fragment{start: start, end: end}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
