package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"directdfa/internal/syntax"
)

// StateID is a handle into an automaton's state arena.
type StateID int

// NoState marks a missing transition.
const NoState StateID = -1

const alphabetSize = int(syntax.MaxChar-syntax.MinChar) + 1

// State is identified by its set of tree positions (signature). Transitions
// hold handles, never pointers, so states can refer to each other freely.
type State struct {
	id        StateID
	positions *bitset.BitSet
	key       string
	final     bool
	trans     [alphabetSize]StateID
}

func newState(id StateID, positions *bitset.BitSet) *State {
	s := &State{id: id, positions: positions, key: positions.String()}
	for i := range s.trans {
		s.trans[i] = NoState
	}
	return s
}

func (s *State) ID() StateID { return s.id }

// Signature is the canonical form of the position set, e.g. "{1,2,3}".
func (s *State) Signature() string { return s.key }

// Positions returns a copy of the signature set.
func (s *State) Positions() *bitset.BitSet { return s.positions.Clone() }

func (s *State) Final() bool { return s.final }

// Next returns the destination on c. Characters outside the supported range
// have no destination.
func (s *State) Next(c rune) (StateID, bool) {
	if c < rune(syntax.MinChar) || c > rune(syntax.MaxChar) {
		return NoState, false
	}
	to := s.trans[c-rune(syntax.MinChar)]
	return to, to != NoState
}

func (s *State) String() string { return s.key }

// UnsupportedCharacterError is returned when a transition is requested on a
// character outside 'a'..'z'.
type UnsupportedCharacterError struct {
	Char rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("unsupported character %q: transitions are limited to %q..%q",
		e.Char, syntax.MinChar, syntax.MaxChar)
}
