package automaton

import "directdfa/internal/syntax"

// Sink is the reserved index of the synthetic non-final state in a
// ReverseTable. Every missing transition of a real state leads there, and the
// sink loops to itself on every character.
const Sink = 0

// ReverseTable is the inverse of the totalized transition function over the
// reachable states. Real states occupy indices 1..Len()-1 in States order.
type ReverseTable struct {
	alphabet []byte
	states   []StateID // states[Sink] == NoState
	final    []bool
	index    map[StateID]int
	sources  [][][]int // sources[char][dst] lists every src with src --char--> dst
}

// ReverseTable builds a fresh table; it shares nothing with the automaton.
func (a *Automaton) ReverseTable() *ReverseTable {
	reachable := a.States()
	n := len(reachable) + 1
	t := &ReverseTable{
		alphabet: a.Alphabet(),
		states:   make([]StateID, n),
		final:    make([]bool, n),
		index:    make(map[StateID]int, n),
	}
	t.states[Sink] = NoState
	for i, id := range reachable {
		t.states[i+1] = id
		t.final[i+1] = a.states[id].final
		t.index[id] = i + 1
	}

	t.sources = make([][][]int, len(t.alphabet))
	for ci, c := range t.alphabet {
		col := make([][]int, n)
		col[Sink] = append(col[Sink], Sink)
		for src := 1; src < n; src++ {
			dst := Sink
			if to := a.states[t.states[src]].trans[c-syntax.MinChar]; to != NoState {
				dst = t.index[to]
			}
			col[dst] = append(col[dst], src)
		}
		t.sources[ci] = col
	}
	return t
}

// Len counts table entries, the sink included.
func (t *ReverseTable) Len() int { return len(t.states) }

func (t *ReverseTable) Alphabet() []byte { return t.alphabet }

// StateAt maps a table index back to the automaton handle; Sink maps to
// NoState.
func (t *ReverseTable) StateAt(i int) StateID { return t.states[i] }

// Index maps a reachable state to its table index.
func (t *ReverseTable) Index(id StateID) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

func (t *ReverseTable) Final(i int) bool { return t.final[i] }

// Sources lists the indices that move to dst on c, in ascending order.
func (t *ReverseTable) Sources(c byte, dst int) []int {
	for ci, x := range t.alphabet {
		if x == c {
			return t.sources[ci][dst]
		}
	}
	return nil
}
