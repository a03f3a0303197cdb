package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseTable(t *testing.T) {
	a := New()
	s1, s2 := a.AddState(1), a.AddState(2)
	a.AddState(3) // unreachable, left out of the table
	require.NoError(t, a.SetTransition(s1, 'a', s2))
	require.NoError(t, a.SetTransition(s2, 'b', s1))
	require.NoError(t, a.SetFinal(s2, true))
	require.NoError(t, a.SetStart(s1))

	rt := a.ReverseTable()
	require.Equal(t, 3, rt.Len())
	assert.Equal(t, []byte("ab"), rt.Alphabet())

	assert.Equal(t, NoState, rt.StateAt(Sink))
	assert.Equal(t, s1, rt.StateAt(1))
	assert.Equal(t, s2, rt.StateAt(2))
	i, ok := rt.Index(s2)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = rt.Index(StateID(2))
	assert.False(t, ok)

	assert.False(t, rt.Final(Sink))
	assert.False(t, rt.Final(1))
	assert.True(t, rt.Final(2))

	assert.Equal(t, []int{1}, rt.Sources('a', 2))
	assert.Equal(t, []int{Sink, 2}, rt.Sources('a', Sink))
	assert.Empty(t, rt.Sources('a', 1))
	assert.Equal(t, []int{2}, rt.Sources('b', 1))
	assert.Equal(t, []int{Sink, 1}, rt.Sources('b', Sink))
	assert.Nil(t, rt.Sources('c', Sink), "characters outside the alphabet have no column")
}

func TestReverseTableIsTotal(t *testing.T) {
	// every index appears exactly once as a source per character
	for _, pattern := range []string{"(a|b)*abb", "ab|cb", "a(b|c)*d"} {
		rt := MustCompile(pattern).ReverseTable()
		for _, c := range rt.Alphabet() {
			count := make([]int, rt.Len())
			for dst := 0; dst < rt.Len(); dst++ {
				for _, src := range rt.Sources(c, dst) {
					count[src]++
				}
			}
			for src, n := range count {
				assert.Equal(t, 1, n, "%s: index %d on %c", pattern, src, c)
			}
		}
	}
}

func TestReverseTableEmpty(t *testing.T) {
	rt := New().ReverseTable()
	assert.Equal(t, 1, rt.Len())
	assert.Empty(t, rt.Alphabet())
}
