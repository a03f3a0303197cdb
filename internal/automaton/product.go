package automaton

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"directdfa/internal/syntax"
)

// pair is a product state. Either side may be NoState once that automaton
// has no move left.
type pair struct{ x, y StateID }

func (a *Automaton) isFinal(id StateID) bool { return a.valid(id) && a.states[id].final }

func unionAlphabet(a, b *Automaton) []byte {
	var used [alphabetSize]bool
	for _, c := range a.Alphabet() {
		used[c-syntax.MinChar] = true
	}
	for _, c := range b.Alphabet() {
		used[c-syntax.MinChar] = true
	}
	var out []byte
	for i, ok := range used {
		if ok {
			out = append(out, syntax.MinChar+byte(i))
		}
	}
	return out
}

// Product runs a and b in lockstep. A product state is final when op holds
// for the finality of its two sides; a side without a move counts as a
// non-final dead state. Product states get signatures {1}, {2}, ... in
// discovery order.
func Product(a, b *Automaton, op func(x, y bool) bool) *Automaton {
	out := New()
	if !a.valid(a.start) && !b.valid(b.start) {
		return out
	}
	alpha := unionAlphabet(a, b)

	ids := make(map[pair]StateID)
	visit := func(p pair, work *linkedlistqueue.Queue) StateID {
		if id, ok := ids[p]; ok {
			return id
		}
		id := out.AddState(uint(len(ids) + 1))
		out.states[id].final = op(a.isFinal(p.x), b.isFinal(p.y))
		ids[p] = id
		work.Enqueue(p)
		return id
	}

	work := linkedlistqueue.New()
	start := pair{NoState, NoState}
	if a.valid(a.start) {
		start.x = a.start
	}
	if b.valid(b.start) {
		start.y = b.start
	}
	out.start = visit(start, work)
	for !work.Empty() {
		v, _ := work.Dequeue()
		p := v.(pair)
		from := ids[p]
		for _, c := range alpha {
			nx, _ := a.Next(p.x, rune(c))
			ny, _ := b.Next(p.y, rune(c))
			if nx == NoState && ny == NoState {
				continue
			}
			out.states[from].trans[c-syntax.MinChar] = visit(pair{nx, ny}, work)
		}
	}
	return out
}

// Intersect accepts the strings both a and b accept.
func Intersect(a, b *Automaton) *Automaton {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Union accepts the strings a or b accepts.
func Union(a, b *Automaton) *Automaton {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Complement accepts every string over 'a'..'z' that a rejects. Reachable
// states are renumbered {1}..{n} in States order; missing moves go to an
// extra dead state {n+1}, which becomes final.
func Complement(a *Automaton) *Automaton {
	out := New()
	reachable := a.States()
	ids := make(map[StateID]StateID, len(reachable))
	for i, id := range reachable {
		ids[id] = out.AddState(uint(i + 1))
		out.states[ids[id]].final = !a.states[id].final
	}
	dead := out.AddState(uint(len(reachable) + 1))
	out.states[dead].final = true
	for i := range out.states[dead].trans {
		out.states[dead].trans[i] = dead
	}
	if len(reachable) == 0 {
		out.start = dead
		return out
	}
	out.start = ids[a.start]

	for _, id := range reachable {
		dst := out.states[ids[id]]
		for i, to := range a.states[id].trans {
			if to == NoState {
				dst.trans[i] = dead
			} else {
				dst.trans[i] = ids[to]
			}
		}
	}
	return out
}

// Equivalent reports whether a and b accept the same language. When they
// differ, witness is a shortest string accepted by exactly one of them.
func Equivalent(a, b *Automaton) (ok bool, witness string) {
	type visit struct {
		parent pair
		c      byte
	}
	start := pair{NoState, NoState}
	if a.valid(a.start) {
		start.x = a.start
	}
	if b.valid(b.start) {
		start.y = b.start
	}
	seen := map[pair]visit{start: {}}
	alpha := unionAlphabet(a, b)

	work := linkedlistqueue.New()
	work.Enqueue(start)
	for !work.Empty() {
		v, _ := work.Dequeue()
		p := v.(pair)
		if a.isFinal(p.x) != b.isFinal(p.y) {
			var rev []byte
			for cur := p; cur != start; cur = seen[cur].parent {
				rev = append(rev, seen[cur].c)
			}
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return false, string(rev)
		}
		for _, c := range alpha {
			nx, _ := a.Next(p.x, rune(c))
			ny, _ := b.Next(p.y, rune(c))
			next := pair{nx, ny}
			if next == (pair{NoState, NoState}) {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = visit{parent: p, c: c}
			work.Enqueue(next)
		}
	}
	return true, ""
}
