package syntax

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a", "a.#"},
		{"ab", "a.b.#"},
		{"a.b", "a.b.#"},
		{"a|bc*", "(a|b.c*).#"},
		{"(a|b)*abb", "(a|b)*.a.b.b.#"},
		{"a|b|c", "(a|b|c).#"},
		{"a|(b|c)", "(a|(b|c)).#"},
		{"a**", "(a*)*.#"},
		{"((a))", "a.#"},
		{"(ab)*c", "(a.b)*.c.#"},
	}
	for _, tt := range tests {
		tree, err := Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, tree.String(), tt.input)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		msg    string
	}{
		{"", 0, "empty expression"},
		{"()", 1, "empty group"},
		{"(a", 0, "unbalanced '('"},
		{"a(b", 1, "unbalanced '('"},
		{"a)", 1, "unbalanced ')'"},
		{"(a))", 3, "unbalanced ')'"},
		{")", 0, "unbalanced ')'"},
		{"*a", 0, "invalid position"},
		{"a||b", 2, "invalid position"},
		{"|a", 0, "invalid position"},
		{"a|", 2, "unexpected end"},
		{"a.", 2, "unexpected end"},
		{"a.*", 2, "invalid position"},
		{"aB", 1, "unsupported character"},
	}
	for _, tt := range tests {
		tree, err := Parse(tt.input)
		require.Nil(t, tree, tt.input)
		var se *SyntaxError
		require.ErrorAs(t, err, &se, tt.input)
		assert.Equal(t, tt.offset, se.Offset, tt.input)
		assert.Contains(t, se.Msg, tt.msg, tt.input)
		assert.Equal(t, tt.input, se.Pattern)
	}
}

func TestSyntaxErrorCaret(t *testing.T) {
	_, err := Parse("ab|*")
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "ab|*\n   ^", se.Caret())
	require.Contains(t, se.Error(), "offset 3")
}

func TestTreeAttributes(t *testing.T) {
	tree := MustParse("(a|b)*abb")

	require.Equal(t, Position(6), tree.EndMarker())
	require.Equal(t, "{1,2,3}", tree.FirstPos().String())
	require.False(t, tree.Root().Nullable())
	require.Equal(t, "{6}", tree.Root().LastPos().String())

	star := tree.Root().Left().Left().Left().Left()
	require.Equal(t, KindStar, star.Kind())
	assert.True(t, star.Nullable())
	assert.Equal(t, "{1,2}", star.FirstPos().String())
	assert.Equal(t, "{1,2}", star.LastPos().String())

	alt := star.Child()
	require.Equal(t, KindAlt, alt.Kind())
	assert.False(t, alt.Nullable())
	assert.Nil(t, alt.Child())

	end := tree.Leaf(6)
	require.NotNil(t, end)
	assert.True(t, end.IsEndMarker())
	assert.Nil(t, tree.Leaf(0))
	assert.Nil(t, tree.Leaf(7))

	assert.Equal(t, "{1,3}", tree.PositionsOf('a').String())
	assert.Equal(t, "{2,4,5}", tree.PositionsOf('b').String())
	assert.Equal(t, "{}", tree.PositionsOf('c').String())
	assert.Equal(t, []byte("ab"), tree.Alphabet())
}

func TestConcatNullable(t *testing.T) {
	tree := MustParse("a*b*")
	expr := tree.Root().Left()
	require.Equal(t, KindConcat, expr.Kind())
	assert.True(t, expr.Nullable())
	assert.Equal(t, "{1,2}", expr.FirstPos().String())
	assert.Equal(t, "{1,2}", expr.LastPos().String())
	// the whole pattern is nullable, so the end marker is reachable at once
	assert.Equal(t, "{1,2,3}", tree.FirstPos().String())
}

func TestFollowPos(t *testing.T) {
	tree := MustParse("(a|b)*abb")
	want := map[Position]string{
		1: "{1,2,3}",
		2: "{1,2,3}",
		3: "{4}",
		4: "{5}",
		5: "{6}",
		6: "{}",
	}
	table := tree.FollowPosTable()
	require.Len(t, table, len(want))
	for p, set := range want {
		assert.Equal(t, set, tree.FollowPos(p).String(), "followpos(%d)", p)
		assert.Equal(t, set, table[p].String(), "table[%d]", p)
	}
	assert.Equal(t, "{}", tree.FollowPos(0).String())
	assert.Equal(t, "{}", tree.FollowPos(42).String())
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	MustParse("a*").Dump(&buf)
	out := buf.String()
	assert.Contains(t, out, "concat nullable=false first={1,2} last={2}")
	assert.Contains(t, out, "  star nullable=true first={1} last={1}")
	assert.Contains(t, out, "    a@1 nullable=false first={1} last={1}")
	assert.Contains(t, out, "  1 (a): {1,2}")
	assert.Contains(t, out, "  2 (#): {}")
}
