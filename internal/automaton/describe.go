package automaton

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pingcap/errors"
)

// Description format, one statement per ';':
//
//	# comment
//	start 1;
//	final 5 {6,7};
//	1 -a-> 7;
//
// A bare integer n names the state with signature {n}.

type description struct {
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Pos lexer.Position

	Start *stateRef   `parser:"  'start' @@ ';'"`
	Final []*stateRef `parser:"| 'final' @@+ ';'"`
	Edge  *edge       `parser:"| @@ ';'"`
}

type stateRef struct {
	Single *int  `parser:"  @Int"`
	Set    []int `parser:"| '{' ( @Int ( ',' @Int )* )? '}'"`
}

type edge struct {
	Pos lexer.Position

	From  *stateRef `parser:"@@"`
	Label string    `parser:"'-' @Ident"`
	To    *stateRef `parser:"'->' @@"`
}

var descLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[-{},;]`},
})

var descParser = participle.MustBuild[description](
	participle.Lexer(descLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseDescription builds an automaton from its textual description.
func ParseDescription(src string) (*Automaton, error) {
	return parseDescription("<input>", src)
}

// LoadFile reads a description from path.
func LoadFile(path string) (*Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "read automaton %s", path)
	}
	return parseDescription(path, string(data))
}

func parseDescription(name, src string) (*Automaton, error) {
	d, err := descParser.ParseString(name, src)
	if err != nil {
		return nil, errors.Annotate(err, "parse automaton description")
	}

	a := New()
	for _, st := range d.Statements {
		switch {
		case st.Start != nil:
			if a.start != NoState {
				return nil, errors.Errorf("%s: start state declared twice", st.Pos)
			}
			a.start = a.addRef(st.Start)
		case st.Final != nil:
			for _, ref := range st.Final {
				a.states[a.addRef(ref)].final = true
			}
		case st.Edge != nil:
			e := st.Edge
			from, to := a.addRef(e.From), a.addRef(e.To)
			if utf8.RuneCountInString(e.Label) != 1 {
				return nil, errors.Errorf("%s: edge label %q is not a single character", e.Pos, e.Label)
			}
			c, _ := utf8.DecodeRuneInString(e.Label)
			if err := a.SetTransition(from, c, to); err != nil {
				return nil, errors.Annotatef(err, "%s", e.Pos)
			}
		}
	}
	if a.start == NoState {
		return nil, errors.Errorf("%s: no start state", name)
	}
	return a, nil
}

func (a *Automaton) addRef(ref *stateRef) StateID {
	if ref.Single != nil {
		return a.AddState(uint(*ref.Single))
	}
	positions := make([]uint, len(ref.Set))
	for i, p := range ref.Set {
		positions[i] = uint(p)
	}
	return a.AddState(positions...)
}

// Describe writes the reachable part of a in the description format.
func Describe(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)
	states := a.States()
	if len(states) == 0 {
		fmt.Fprintln(bw, "# empty automaton")
		return bw.Flush()
	}
	fmt.Fprintf(bw, "# %d states, alphabet %q\n", len(states), a.Alphabet())
	fmt.Fprintf(bw, "start %s;\n", a.states[a.start].key)
	if finals := a.Finals(); len(finals) > 0 {
		keys := make([]string, len(finals))
		for i, id := range finals {
			keys[i] = a.states[id].key
		}
		fmt.Fprintf(bw, "final %s;\n", strings.Join(keys, " "))
	}
	for _, e := range a.Snapshot().Edges {
		fmt.Fprintf(bw, "%s -%c-> %s;\n", a.states[e.From].key, e.Char, a.states[e.To].key)
	}
	return bw.Flush()
}
