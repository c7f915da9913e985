package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchForwardWraparound(t *testing.T) {
	s := New()
	m, ok := s.SearchForward([]byte("hello world"), "hello", 10)
	require.True(t, ok)
	require.Equal(t, 0, m.Start)
	require.Equal(t, 5, m.Len)
}

func TestSearchForwardDirectHit(t *testing.T) {
	s := New()
	m, ok := s.SearchForward([]byte("hello world"), "world", 0)
	require.True(t, ok)
	require.Equal(t, 6, m.Start)
}

func TestSearchBackwardWraparound(t *testing.T) {
	s := New()
	m, ok := s.SearchBackward([]byte("foo bar foo"), "foo", 2)
	require.True(t, ok)
	require.Equal(t, 8, m.Start)
}

func TestSearchEmptyPatternOrBuffer(t *testing.T) {
	s := New()
	_, ok := s.SearchForward([]byte("text"), "", 0)
	require.False(t, ok)
	_, ok = s.SearchForward([]byte(""), "x", 0)
	require.False(t, ok)
}

func TestSearchRegexBackwardLatestFirst(t *testing.T) {
	s := New()
	text := []byte("abc123def456")
	m, ok := s.SearchRegexBackward(text, `\d+`, 12)
	require.True(t, ok)
	require.Equal(t, 11, m.Start)
	require.Equal(t, 1, m.Len)
}

func TestSearchRegexBackwardWraps(t *testing.T) {
	s := New()
	text := []byte("abc123def456")
	m, ok := s.SearchRegexBackward(text, `\d+`, 3)
	require.True(t, ok)
	require.Equal(t, 11, m.Start)
}

func TestSearchRegexForward(t *testing.T) {
	s := New()
	m, ok := s.SearchRegexForward([]byte("abc123"), `\d+`, 0)
	require.True(t, ok)
	require.Equal(t, 3, m.Start)
	require.Equal(t, 3, m.Len)
}

func TestIsRegexPatternDelegates(t *testing.T) {
	s := New()
	require.True(t, s.IsRegexPattern(`a.b`))
	require.False(t, s.IsRegexPattern("plain"))
}
