// Package search implements the literal and regex search service: forward
// and backward lookups with wraparound, backed by the regex engine's
// 8-slot compiled-pattern cache.
package search

import (
	"bytes"

	"github.com/sanohiro/ze/internal/regexp"
)

// Match reports a match's byte span.
type Match struct {
	Start int
	Len   int
}

// Service wraps one regex cache; instantiate per document so staleness
// never crosses document boundaries.
type Service struct {
	cache *regexp.Cache
}

// New returns a search service with a fresh regex cache.
func New() *Service {
	return &Service{cache: regexp.NewCache()}
}

// IsRegexPattern reports whether pattern should be treated as a regex.
func (s *Service) IsRegexPattern(pattern string) bool { return regexp.IsRegexPattern(pattern) }

// SearchForward finds pattern as a literal substring starting at start,
// wrapping around to the beginning of text if nothing is found in
// [start, len(text)).
func (s *Service) SearchForward(text []byte, pattern string, start int) (*Match, bool) {
	if pattern == "" || len(text) == 0 {
		return nil, false
	}
	if m, ok := literalIndex(text, pattern, start, len(text)); ok {
		return m, true
	}
	return literalIndex(text, pattern, 0, start)
}

// SearchBackward searches [0, start) in reverse; if nothing matches, wraps
// and returns the match whose start is maximal in [start, len(text)).
func (s *Service) SearchBackward(text []byte, pattern string, start int) (*Match, bool) {
	if pattern == "" || len(text) == 0 {
		return nil, false
	}
	if m, ok := literalLastIndex(text, pattern, 0, start); ok {
		return m, true
	}
	return literalLastIndex(text, pattern, start, len(text))
}

// SearchRegexForward mirrors SearchForward using the compiled-pattern cache.
func (s *Service) SearchRegexForward(text []byte, pattern string, start int) (*Match, bool) {
	if pattern == "" || len(text) == 0 {
		return nil, false
	}
	prog, err := s.cache.Get(pattern)
	if err != nil {
		return nil, false
	}
	if m, ok := prog.Search(text, start); ok {
		return &Match{Start: m.Start, Len: m.End - m.Start}, true
	}
	if m, ok := boundedSearch(prog, text, 0, start); ok {
		return m, true
	}
	return nil, false
}

// SearchRegexBackward mirrors SearchBackward using the compiled-pattern cache.
func (s *Service) SearchRegexBackward(text []byte, pattern string, start int) (*Match, bool) {
	if pattern == "" || len(text) == 0 {
		return nil, false
	}
	prog, err := s.cache.Get(pattern)
	if err != nil {
		return nil, false
	}
	if m, ok := prog.SearchBackward(text, start-1); ok {
		return &Match{Start: m.Start, Len: m.End - m.Start}, true
	}
	if m, ok := boundedBackward(prog, text, start, len(text)); ok {
		return m, true
	}
	return nil, false
}

// boundedSearch finds the first match whose start lies in [lo, hi).
func boundedSearch(prog *regexp.Program, text []byte, lo, hi int) (*Match, bool) {
	m, ok := prog.Search(text, lo)
	if !ok || m.Start >= hi {
		return nil, false
	}
	return &Match{Start: m.Start, Len: m.End - m.Start}, true
}

// boundedBackward finds the latest-starting match whose start lies in [lo, hi].
func boundedBackward(prog *regexp.Program, text []byte, lo, hi int) (*Match, bool) {
	m, ok := prog.SearchBackward(text, hi)
	if !ok || m.Start < lo {
		return nil, false
	}
	return &Match{Start: m.Start, Len: m.End - m.Start}, true
}

func literalIndex(text []byte, pattern string, lo, hi int) (*Match, bool) {
	if lo >= hi || lo > len(text) {
		return nil, false
	}
	if hi > len(text) {
		hi = len(text)
	}
	idx := bytes.Index(text[lo:hi], []byte(pattern))
	if idx < 0 {
		return nil, false
	}
	return &Match{Start: lo + idx, Len: len(pattern)}, true
}

func literalLastIndex(text []byte, pattern string, lo, hi int) (*Match, bool) {
	if hi > len(text) {
		hi = len(text)
	}
	if lo >= hi || lo < 0 {
		return nil, false
	}
	idx := bytes.LastIndex(text[lo:hi], []byte(pattern))
	if idx < 0 {
		return nil, false
	}
	return &Match{Start: lo + idx, Len: len(pattern)}, true
}
