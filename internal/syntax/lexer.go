package syntax

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Supported literal range. Everything else in a pattern is a syntax error.
const (
	MinChar byte = 'a'
	MaxChar byte = 'z'

	// EndMarker is the character of the leaf appended to every pattern.
	EndMarker byte = '#'
)

// InRange reports whether c may appear as a literal.
func InRange(c byte) bool { return c >= MinChar && c <= MaxChar }

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal 'a'..'z'
	tLParen           // (
	tRParen           // )
	tStar             // *
	tUnion            // |
	tConcat           // . explicit concatenation
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "end of expression"
	case tChar:
		return "character"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tUnion:
		return "'|'"
	case tConcat:
		return "'.'"
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	typ tokenType
	ch  byte // for tChar
	off int  // byte offset in the pattern
}

var (
	lexOnce sync.Once
	lexDef  *lexmachine.Lexer
	lexErr  error
)

// compiledLexer builds the token DFA once; the compiled lexer is read-only
// afterwards and may hand out scanners concurrently.
func compiledLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[a-z]`), tokAction(tChar))
		l.Add([]byte(`[(]`), tokAction(tLParen))
		l.Add([]byte(`[)]`), tokAction(tRParen))
		l.Add([]byte(`[*]`), tokAction(tStar))
		l.Add([]byte(`[|]`), tokAction(tUnion))
		l.Add([]byte(`[.]`), tokAction(tConcat))
		if err := l.Compile(); err != nil {
			lexErr = err
			return
		}
		lexDef = l
	})
	return lexDef, lexErr
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		tok := token{typ: typ, off: m.TC}
		if typ == tChar {
			tok.ch = m.Bytes[0]
		}
		return tok, nil
	}
}

// tokenize splits the whole pattern up front; the returned slice always ends
// with a tEOF token.
func tokenize(pattern string) ([]token, error) {
	l, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := l.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}
	var toks []token
	for {
		tok, err, eos := scanner.Next()
		if eos {
			break
		}
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			r, _ := utf8.DecodeRuneInString(pattern[ui.StartTC:])
			return nil, &SyntaxError{
				Pattern: pattern,
				Offset:  ui.StartTC,
				Msg:     fmt.Sprintf("unsupported character %q", r),
			}
		} else if err != nil {
			return nil, err
		}
		toks = append(toks, tok.(token))
	}
	return append(toks, token{typ: tEOF, off: len(pattern)}), nil
}
