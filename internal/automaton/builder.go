package automaton

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"go.uber.org/zap"

	"directdfa/internal/syntax"
)

// Build runs subset construction directly over the followpos relation of
// tree. The result is deterministic but not necessarily minimal.
func Build(tree *syntax.Tree, opts ...Option) *Automaton {
	o := newOptions(opts)
	a := New()

	alpha := tree.Alphabet()
	byChar := make([]*bitset.BitSet, len(alpha))
	for i, c := range alpha {
		byChar[i] = tree.PositionsOf(c)
	}
	end := tree.EndMarker()

	first := tree.FirstPos().Clone()
	a.start, _ = a.addSignature(first)
	a.states[a.start].final = first.Test(end)

	// unmarked states; the registry doubles as the marked set
	work := linkedlistqueue.New()
	work.Enqueue(a.start)
	for !work.Empty() {
		v, _ := work.Dequeue()
		cur := a.states[v.(StateID)]
		for i, c := range alpha {
			hit := cur.positions.Intersection(byChar[i])
			if hit.None() {
				continue
			}
			u := bitset.New(end + 1)
			for p, ok := hit.NextSet(0); ok; p, ok = hit.NextSet(p + 1) {
				u.InPlaceUnion(tree.FollowPos(p))
			}
			if u.None() {
				continue
			}
			id, created := a.addSignature(u)
			if created {
				a.states[id].final = u.Test(end)
				work.Enqueue(id)
				o.logger.Debug("dfa state discovered",
					zap.String("signature", a.states[id].key),
					zap.Bool("final", a.states[id].final))
			}
			cur.trans[c-syntax.MinChar] = id
		}
	}

	o.logger.Debug("dfa built",
		zap.String("pattern", tree.Pattern()),
		zap.Int("states", len(a.states)),
		zap.String("start", a.states[a.start].key))
	return a
}

// Compile parses pattern and builds its DFA. Only syntax errors are
// reported.
func Compile(pattern string, opts ...Option) (*Automaton, error) {
	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Build(tree, opts...), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, opts ...Option) *Automaton {
	a, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return a
}
