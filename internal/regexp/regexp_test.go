package regexp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralMatch(t *testing.T) {
	p, err := Compile("abc")
	require.NoError(t, err)
	m, ok := p.Search([]byte("xxabcxx"), 0)
	require.True(t, ok)
	require.Equal(t, 2, m.Start)
	require.Equal(t, 5, m.End)
}

func TestDotMatchesAny(t *testing.T) {
	p, err := Compile("a.c")
	require.NoError(t, err)
	m, ok := p.Search([]byte("xabc"), 0)
	require.True(t, ok)
	require.Equal(t, 1, m.Start)
	require.Equal(t, 4, m.End)
}

func TestStarIsGreedy(t *testing.T) {
	p, err := Compile("a*")
	require.NoError(t, err)
	m, ok := p.Search([]byte("aaab"), 0)
	require.True(t, ok)
	require.Equal(t, 0, m.Start)
	require.Equal(t, 3, m.End)
}

func TestPlusRequiresOne(t *testing.T) {
	p, err := Compile("a+")
	require.NoError(t, err)
	_, ok := p.Search([]byte("bbb"), 0)
	require.False(t, ok)

	m, ok := p.Search([]byte("baaa"), 0)
	require.True(t, ok)
	require.Equal(t, 1, m.Start)
	require.Equal(t, 4, m.End)
}

func TestOptional(t *testing.T) {
	p, err := Compile("colou?r")
	require.NoError(t, err)
	_, ok := p.Search([]byte("color"), 0)
	require.True(t, ok)
	_, ok = p.Search([]byte("colour"), 0)
	require.True(t, ok)
}

func TestCharClassAndNegation(t *testing.T) {
	p, err := Compile("[a-c]+")
	require.NoError(t, err)
	m, ok := p.Search([]byte("xxabcxx"), 0)
	require.True(t, ok)
	require.Equal(t, 2, m.Start)
	require.Equal(t, 5, m.End)

	p2, err := Compile("[^0-9]+")
	require.NoError(t, err)
	m2, ok := p2.Search([]byte("12abc34"), 0)
	require.True(t, ok)
	require.Equal(t, 2, m2.Start)
	require.Equal(t, 5, m2.End)
}

func TestShorthandDigit(t *testing.T) {
	p, err := Compile(`\d+`)
	require.NoError(t, err)
	m, ok := p.Search([]byte("abc123def"), 0)
	require.True(t, ok)
	require.Equal(t, 3, m.Start)
	require.Equal(t, 6, m.End)
}

func TestAnchors(t *testing.T) {
	p, err := Compile("^abc$")
	require.NoError(t, err)
	_, ok := p.Search([]byte("abc"), 0)
	require.True(t, ok)
	_, ok = p.Search([]byte("xabc"), 0)
	require.False(t, ok)
	_, ok = p.Search([]byte("abcx"), 0)
	require.False(t, ok)
}

func TestSearchBackwardLatestFirst(t *testing.T) {
	p, err := Compile(`\d+`)
	require.NoError(t, err)
	m, ok := p.SearchBackward([]byte("abc123def456"), 12)
	require.True(t, ok)
	require.Equal(t, 11, m.Start)
	require.Equal(t, 12, m.End)
}

func TestEmptyPatternReturnsNone(t *testing.T) {
	p, err := Compile("")
	require.NoError(t, err)
	_, ok := p.Search([]byte("anything"), 0)
	require.False(t, ok)
}

func TestCompileErrorOnUnterminatedClass(t *testing.T) {
	_, err := Compile("[abc")
	require.Error(t, err)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
}

func TestIsRegexPattern(t *testing.T) {
	require.True(t, IsRegexPattern("a.b"))
	require.True(t, IsRegexPattern(`\d`))
	require.False(t, IsRegexPattern("plain"))
}

func TestCacheEvictsLRU(t *testing.T) {
	c := NewCache()
	patterns := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, p := range patterns {
		_, err := c.Get(p)
		require.NoError(t, err)
	}
	// touch "a" so it's most-recently used, then fill one more slot to
	// evict the now-least-recently-used "b".
	_, err := c.Get("a")
	require.NoError(t, err)
	_, err = c.Get("i")
	require.NoError(t, err)

	found := false
	for _, s := range c.slots {
		if s.used && s.pattern == "a" {
			found = true
		}
	}
	require.True(t, found, "recently touched pattern should survive eviction")
}
