package lexer

import (
	"errors"
	"fmt"
)

// ErrUnbalancedDelimiter is matched by every *DelimiterError.
var ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")

// DelimiterError reports a styling delimiter that has no closing partner.
type DelimiterError struct {
	Delim  string
	Count  int    // occurrences of Delim in Text, always odd
	Offset int    // byte offset of the last occurrence
	Text   string // the plain span being split
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("unbalanced delimiter %q: %d occurrences in %q, last at offset %d",
		e.Delim, e.Count, e.Text, e.Offset)
}

func (e *DelimiterError) Is(target error) bool {
	return target == ErrUnbalancedDelimiter
}

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf("internal error: "+format, args...))
}
