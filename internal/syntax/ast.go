package syntax

import "github.com/bits-and-blooms/bitset"

// Position identifies a leaf of the augmented tree. Positions start at 1;
// the end marker holds the largest one.
type Position = uint

// Kind tags a syntax tree node.
type Kind int

const (
	KindLeaf Kind = iota
	KindConcat
	KindAlt
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindConcat:
		return "concat"
	case KindAlt:
		return "alt"
	case KindStar:
		return "star"
	}
	return "unknown"
}

// Node is one vertex of the annotated syntax tree. Its attributes are filled
// by the constructors from already annotated children and never change
// afterwards.
type Node struct {
	kind  Kind
	left  *Node // star keeps its operand here
	right *Node

	ch  byte     // leaf only
	pos Position // leaf only

	nullable bool
	first    *bitset.BitSet
	last     *bitset.BitSet
}

func newLeaf(ch byte, pos Position) *Node {
	set := bitset.New(pos + 1).Set(pos)
	return &Node{kind: KindLeaf, ch: ch, pos: pos, first: set, last: set}
}

func newConcat(l, r *Node) *Node {
	n := &Node{kind: KindConcat, left: l, right: r, nullable: l.nullable && r.nullable}
	n.first = l.first.Clone()
	if l.nullable {
		n.first.InPlaceUnion(r.first)
	}
	n.last = r.last.Clone()
	if r.nullable {
		n.last.InPlaceUnion(l.last)
	}
	return n
}

func newAlt(l, r *Node) *Node {
	return &Node{
		kind:     KindAlt,
		left:     l,
		right:    r,
		nullable: l.nullable || r.nullable,
		first:    l.first.Union(r.first),
		last:     l.last.Union(r.last),
	}
}

func newStar(child *Node) *Node {
	return &Node{kind: KindStar, left: child, nullable: true, first: child.first, last: child.last}
}

func (n *Node) Kind() Kind { return n.kind }

// Left is the left operand of concat and alt nodes, nil otherwise.
func (n *Node) Left() *Node {
	if n.kind == KindStar {
		return nil
	}
	return n.left
}

func (n *Node) Right() *Node { return n.right }

// Child is the operand of a star node, nil otherwise.
func (n *Node) Child() *Node {
	if n.kind != KindStar {
		return nil
	}
	return n.left
}

func (n *Node) Char() byte { return n.ch }

func (n *Node) Pos() Position { return n.pos }

func (n *Node) Nullable() bool { return n.nullable }

// IsEndMarker reports whether n is the leaf appended after the pattern.
func (n *Node) IsEndMarker() bool { return n.kind == KindLeaf && n.ch == EndMarker }

func (n *Node) children() []*Node {
	switch n.kind {
	case KindConcat, KindAlt:
		return []*Node{n.left, n.right}
	case KindStar:
		return []*Node{n.left}
	}
	return nil
}

// FirstPos and LastPos return the node's sets. Callers must not modify them.
func (n *Node) FirstPos() *bitset.BitSet { return n.first }

func (n *Node) LastPos() *bitset.BitSet { return n.last }
