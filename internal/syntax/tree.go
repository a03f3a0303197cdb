package syntax

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Tree is the syntax tree of a pattern augmented with the end marker:
// the root is always concat(pattern, #).
type Tree struct {
	pattern string
	root    *Node
	leaves  []*Node
	follow  []*bitset.BitSet // indexed by position, entry 0 unused
}

// Parse builds the annotated tree of pattern. On failure the error is a
// *SyntaxError and no tree is returned.
func Parse(pattern string) (*Tree, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	p := newParser(pattern, toks)
	expr, err := p.parse()
	if err != nil {
		return nil, err
	}
	end := p.leaf(EndMarker)
	t := &Tree{
		pattern: pattern,
		root:    newConcat(expr, end),
		leaves:  p.leaves,
	}
	t.computeFollowPos()
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) *Tree {
	t, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tree) Pattern() string { return t.pattern }

func (t *Tree) Root() *Node { return t.root }

// EndMarker is the position of the appended '#' leaf.
func (t *Tree) EndMarker() Position { return Position(len(t.leaves)) }

// Leaf returns the leaf at position p, or nil if there is none.
func (t *Tree) Leaf(p Position) *Node {
	if p == 0 || p > Position(len(t.leaves)) {
		return nil
	}
	return t.leaves[p-1]
}

// FirstPos is firstpos of the root: the signature of the initial state.
func (t *Tree) FirstPos() *bitset.BitSet { return t.root.first }

// PositionsOf returns every leaf position holding the literal c.
func (t *Tree) PositionsOf(c byte) *bitset.BitSet {
	set := bitset.New(uint(len(t.leaves) + 1))
	for _, l := range t.leaves {
		if l.ch == c {
			set.Set(l.pos)
		}
	}
	return set
}

// Alphabet lists the literals occurring in the pattern in ascending order.
func (t *Tree) Alphabet() []byte {
	seen := [256]bool{}
	var out []byte
	for _, l := range t.leaves {
		if l.IsEndMarker() || seen[l.ch] {
			continue
		}
		seen[l.ch] = true
		out = append(out, l.ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the augmented expression with explicit concatenation.
func (t *Tree) String() string {
	var b strings.Builder
	render(&b, t.root, 0)
	return b.String()
}

func precedence(n *Node) int {
	switch n.kind {
	case KindAlt:
		return 1
	case KindConcat:
		return 2
	case KindStar:
		return 3
	}
	return 4
}

func render(b *strings.Builder, n *Node, parent int) {
	prec := precedence(n)
	if prec < parent {
		b.WriteByte('(')
		defer b.WriteByte(')')
	}
	switch n.kind {
	case KindLeaf:
		b.WriteByte(n.ch)
	case KindStar:
		render(b, n.left, prec+1)
		b.WriteByte('*')
	case KindConcat:
		render(b, n.left, prec)
		b.WriteByte('.')
		render(b, n.right, prec+1)
	case KindAlt:
		render(b, n.left, prec)
		b.WriteByte('|')
		render(b, n.right, prec+1)
	}
}

// Dump prints the tree with nullable/firstpos/lastpos per node, followed by
// the followpos table.
func (t *Tree) Dump(w io.Writer) {
	type item struct {
		n     *Node
		depth int
	}
	stack := []item{{t.root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := it.n
		label := n.kind.String()
		if n.kind == KindLeaf {
			label = fmt.Sprintf("%c@%d", n.ch, n.pos)
		}
		fmt.Fprintf(w, "%s%s nullable=%v first=%v last=%v\n",
			strings.Repeat("  ", it.depth), label, n.nullable, n.first, n.last)
		kids := n.children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{kids[i], it.depth + 1})
		}
	}
	fmt.Fprintln(w, "followpos:")
	for p := Position(1); p <= t.EndMarker(); p++ {
		fmt.Fprintf(w, "  %d (%c): %v\n", p, t.leaves[p-1].ch, t.follow[p])
	}
}
