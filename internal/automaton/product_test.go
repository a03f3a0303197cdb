package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectAndUnion(t *testing.T) {
	evenA := MustCompile("(b*ab*ab*)*")
	endsB := MustCompile("(a|b)*b")

	both := Intersect(evenA, endsB)
	either := Union(evenA, endsB)
	for _, w := range words("ab", 6) {
		x, y := evenA.Accepts(w), endsB.Accepts(w)
		require.Equal(t, x && y, both.Accepts(w), "intersect on %q", w)
		require.Equal(t, x || y, either.Accepts(w), "union on %q", w)
	}
	assert.Equal(t, "{1}", both.State(both.Start()).Signature())
}

func TestUnionDisjointAlphabets(t *testing.T) {
	u := Union(MustCompile("ab"), MustCompile("cd*"))
	for w, want := range map[string]bool{
		"ab": true, "c": true, "cddd": true, "a": false, "abd": false, "": false,
	} {
		assert.Equal(t, want, u.Accepts(w), w)
	}
}

func TestComplement(t *testing.T) {
	a := MustCompile("(a|b)*abb")
	c := Complement(a)
	for _, w := range words("abc", 5) {
		require.Equal(t, !a.Accepts(w), c.Accepts(w), "%q", w)
	}
	assert.True(t, c.Accepts("zz"))
	assert.Len(t, Minimize(c).States(), 5, "four classes plus the dead state, now accepting")

	all := Complement(New())
	assert.True(t, all.Accepts(""))
	assert.True(t, all.Accepts("xyz"))
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		x, y    string
		equal   bool
		witness string
	}{
		{"(a|b)*", "(a*b*)*", true, ""},
		{"a(ba)*", "(ab)*a", true, ""},
		{"ab|cb", "(a|c)b", true, ""},
		{"a*", "aa*", false, ""},
		{"(a|b)*abb", "(a|b)*ab", false, "ab"},
		{"ab", "abc", false, "ab"},
		{"a|b", "b|c", false, "a"},
	}
	for _, tt := range tests {
		ok, w := Equivalent(MustCompile(tt.x), MustCompile(tt.y))
		assert.Equal(t, tt.equal, ok, "%s vs %s", tt.x, tt.y)
		assert.Equal(t, tt.witness, w, "%s vs %s", tt.x, tt.y)
	}

	ok, _ := Equivalent(New(), New())
	assert.True(t, ok)
	ok, w := Equivalent(New(), MustCompile("a*"))
	assert.False(t, ok)
	assert.Equal(t, "", w)
}

func TestMinimizeKeepsLanguageEquivalent(t *testing.T) {
	for _, pattern := range minimizePatterns {
		a := MustCompile(pattern)
		ok, w := Equivalent(a, Minimize(a))
		assert.True(t, ok, "%s differs on %q", pattern, w)
	}
	for _, name := range []string{"five.fa", "seven.fa"} {
		a := loadFixture(t, name)
		ok, w := Equivalent(a, Minimize(a))
		assert.True(t, ok, "%s differs on %q", name, w)
	}
}
