package syntax

import "github.com/bits-and-blooms/bitset"

func (t *Tree) computeFollowPos() {
	size := uint(len(t.leaves) + 1)
	t.follow = make([]*bitset.BitSet, size)
	for i := range t.follow {
		t.follow[i] = bitset.New(size)
	}
	t.addFollowPos(t.root)
}

func (t *Tree) addFollowPos(n *Node) {
	switch n.kind {
	case KindConcat:
		t.addFollowPos(n.left)
		t.addFollowPos(n.right)
		for p, ok := n.left.last.NextSet(0); ok; p, ok = n.left.last.NextSet(p + 1) {
			t.follow[p].InPlaceUnion(n.right.first)
		}
	case KindAlt:
		t.addFollowPos(n.left)
		t.addFollowPos(n.right)
	case KindStar:
		t.addFollowPos(n.left)
		for p, ok := n.left.last.NextSet(0); ok; p, ok = n.left.last.NextSet(p + 1) {
			t.follow[p].InPlaceUnion(n.left.first)
		}
	}
}

// FollowPos returns followpos(p). Positions without an entry, the end marker
// among them, yield an empty set. The result must not be modified.
func (t *Tree) FollowPos(p Position) *bitset.BitSet {
	if p == 0 || p >= uint(len(t.follow)) {
		return bitset.New(0)
	}
	return t.follow[p]
}

// FollowPosTable copies the whole relation, one entry per leaf position.
func (t *Tree) FollowPosTable() map[Position]*bitset.BitSet {
	out := make(map[Position]*bitset.BitSet, len(t.leaves))
	for p := Position(1); p < uint(len(t.follow)); p++ {
		out[p] = t.follow[p].Clone()
	}
	return out
}
