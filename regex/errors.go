// File: errors.go
// Role: regex compile-time errors (spec §4.12, §7).
package regex

import (
	"errors"
	"fmt"
)

// ErrRegexSyntax is the sentinel wrapped by every SyntaxError. Use
// errors.Is(err, ErrRegexSyntax) to detect a compile failure without
// caring about the offset.
var ErrRegexSyntax = errors.New("regex: syntax error")

// SyntaxError reports where in the pattern compilation failed, as a rune
// offset from the start of the input.
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex: syntax error at offset %d: %s", e.Offset, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrRegexSyntax }
