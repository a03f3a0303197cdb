package automaton

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/google/btree"
	"github.com/pingcap/errors"

	"directdfa/internal/syntax"
)

// Automaton owns an arena of states and a registry that maps each signature
// to its handle, so a signature is never stored twice.
type Automaton struct {
	states   []*State
	registry map[string]StateID
	start    StateID
}

// New returns an automaton without states. Accepts rejects everything until
// a start state is set.
func New() *Automaton {
	return &Automaton{registry: make(map[string]StateID), start: NoState}
}

// AddState registers the state with the given signature, or returns the
// existing handle when the signature is already known.
func (a *Automaton) AddState(positions ...uint) StateID {
	set := bitset.New(0)
	for _, p := range positions {
		set.Set(p)
	}
	id, _ := a.addSignature(set)
	return id
}

func (a *Automaton) addSignature(set *bitset.BitSet) (StateID, bool) {
	key := set.String()
	if id, ok := a.registry[key]; ok {
		return id, false
	}
	id := StateID(len(a.states))
	a.states = append(a.states, newState(id, set))
	a.registry[key] = id
	return id, true
}

// Lookup finds the state registered under a signature such as "{1,2}".
func (a *Automaton) Lookup(signature string) (StateID, bool) {
	id, ok := a.registry[signature]
	return id, ok
}

// State returns the state behind a handle, or nil for an unknown handle.
func (a *Automaton) State(id StateID) *State {
	if !a.valid(id) {
		return nil
	}
	return a.states[id]
}

func (a *Automaton) valid(id StateID) bool { return id >= 0 && int(id) < len(a.states) }

// Len is the arena size, unreachable states included.
func (a *Automaton) Len() int { return len(a.states) }

func (a *Automaton) Start() StateID { return a.start }

func (a *Automaton) SetStart(id StateID) error {
	if !a.valid(id) {
		return errors.Errorf("unknown state %d", id)
	}
	a.start = id
	return nil
}

func (a *Automaton) SetFinal(id StateID, final bool) error {
	if !a.valid(id) {
		return errors.Errorf("unknown state %d", id)
	}
	a.states[id].final = final
	return nil
}

// SetTransition records from --c--> to, replacing any previous destination.
func (a *Automaton) SetTransition(from StateID, c rune, to StateID) error {
	if !a.valid(from) || !a.valid(to) {
		return errors.Errorf("unknown state in transition %d -%c-> %d", from, c, to)
	}
	if c < rune(syntax.MinChar) || c > rune(syntax.MaxChar) {
		return &UnsupportedCharacterError{Char: c}
	}
	a.states[from].trans[c-rune(syntax.MinChar)] = to
	return nil
}

// Next is the transition function. Unknown states and unsupported
// characters yield no move.
func (a *Automaton) Next(id StateID, c rune) (StateID, bool) {
	if !a.valid(id) {
		return NoState, false
	}
	return a.states[id].Next(c)
}

type stateItem struct {
	key string
	id  StateID
}

func lessStateItem(x, y stateItem) bool {
	if x.key != y.key {
		return x.key < y.key
	}
	return x.id < y.id
}

// States enumerates the states reachable from the start state, ordered by
// signature string.
func (a *Automaton) States() []StateID {
	if !a.valid(a.start) {
		return nil
	}
	seen := btree.NewG[stateItem](8, lessStateItem)
	stack := arraystack.New()
	stack.Push(a.start)
	for !stack.Empty() {
		v, _ := stack.Pop()
		s := a.states[v.(StateID)]
		item := stateItem{key: s.key, id: s.id}
		if seen.Has(item) {
			continue
		}
		seen.ReplaceOrInsert(item)
		for _, to := range s.trans {
			if to != NoState && !seen.Has(stateItem{key: a.states[to].key, id: to}) {
				stack.Push(to)
			}
		}
	}
	out := make([]StateID, 0, seen.Len())
	seen.Ascend(func(it stateItem) bool {
		out = append(out, it.id)
		return true
	})
	return out
}

// Finals lists the reachable final states in States order.
func (a *Automaton) Finals() []StateID {
	var out []StateID
	for _, id := range a.States() {
		if a.states[id].final {
			out = append(out, id)
		}
	}
	return out
}

// Alphabet lists, in ascending order, the characters with at least one
// transition among the reachable states.
func (a *Automaton) Alphabet() []byte {
	var used [alphabetSize]bool
	for _, id := range a.States() {
		for i, to := range a.states[id].trans {
			if to != NoState {
				used[i] = true
			}
		}
	}
	var out []byte
	for i, ok := range used {
		if ok {
			out = append(out, syntax.MinChar+byte(i))
		}
	}
	return out
}

// Accepts runs input through the automaton. A character without a
// transition rejects at once.
func (a *Automaton) Accepts(input string) bool {
	if !a.valid(a.start) {
		return false
	}
	cur := a.start
	for _, c := range input {
		next, ok := a.Next(cur, c)
		if !ok {
			return false
		}
		cur = next
	}
	return a.states[cur].final
}

// Step is one move of a traced run. To is NoState when the character had no
// transition.
type Step struct {
	From StateID
	Char rune
	To   StateID
}

// Trace is the diagnostic record of a membership query.
type Trace struct {
	Input    string
	Steps    []Step
	Last     StateID
	Accepted bool

	a *Automaton
}

// Trace runs input like Accepts and records every move.
func (a *Automaton) Trace(input string) Trace {
	tr := Trace{Input: input, Last: a.start, a: a}
	if !a.valid(a.start) {
		return tr
	}
	for _, c := range input {
		next, ok := a.Next(tr.Last, c)
		tr.Steps = append(tr.Steps, Step{From: tr.Last, Char: c, To: next})
		if !ok {
			return tr
		}
		tr.Last = next
	}
	tr.Accepted = a.states[tr.Last].final
	return tr
}

func (t Trace) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "input %q\n", t.Input)
	if !t.a.valid(t.Last) {
		b.WriteString("no start state: rejected\n")
		return b.String()
	}
	for _, st := range t.Steps {
		from := t.a.states[st.From]
		if st.To == NoState {
			fmt.Fprintf(&b, "state %s: %q not allowed\n", from, st.Char)
			continue
		}
		fmt.Fprintf(&b, "state %s: %q -> %s\n", from, st.Char, t.a.states[st.To])
	}
	last := t.a.states[t.Last]
	switch {
	case t.Accepted:
		fmt.Fprintf(&b, "final state %s: accepted\n", last)
	case last.final:
		fmt.Fprintf(&b, "stopped in %s: rejected\n", last)
	default:
		fmt.Fprintf(&b, "non-final state %s: rejected\n", last)
	}
	return b.String()
}
