package syntax

import (
	"fmt"
	"strings"
)

// SyntaxError reports a malformed regular expression. Offset is the byte
// offset of the offending token in Pattern.
type SyntaxError struct {
	Pattern string
	Offset  int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d in %q: %s", e.Offset, e.Pattern, e.Msg)
}

// Caret renders the pattern with a marker under the offending position.
func (e *SyntaxError) Caret() string {
	off := e.Offset
	if off > len(e.Pattern) {
		off = len(e.Pattern)
	}
	return e.Pattern + "\n" + strings.Repeat(" ", off) + "^"
}

func (p *parser) errorf(off int, format string, args ...interface{}) error {
	return &SyntaxError{Pattern: p.pattern, Offset: off, Msg: fmt.Sprintf(format, args...)}
}
