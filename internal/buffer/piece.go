// Package buffer implements the piece-table text store: two immutable
// source spans (the file's original bytes and an append-only add span)
// addressed by a list of pieces, plus an incremental line index so line
// lookups never rescan the whole document.
package buffer

import "sort"

type source int

const (
	sourceOriginal source = iota
	sourceAdd
)

type piece struct {
	src    source
	start  int
	length int
}

// Buffer is a piece-table text buffer. All positions are byte offsets.
type Buffer struct {
	original []byte
	add      []byte
	pieces   []piece
	// offsets[i] is the cumulative byte length of pieces[:i]; offsets
	// has len(pieces)+1 entries so offsets[len(pieces)] == totalLen.
	offsets  []int
	totalLen int
	// lineStarts[i] is the byte offset of the first byte of line i.
	// lineStarts[0] is always 0.
	lineStarts []int
}

// New creates a buffer seeded with initial content as a single original piece.
func New(initial []byte) *Buffer {
	b := &Buffer{original: initial}
	if len(initial) > 0 {
		b.pieces = []piece{{src: sourceOriginal, start: 0, length: len(initial)}}
	}
	b.totalLen = len(initial)
	b.rebuildOffsets()
	b.rebuildLineIndex()
	return b
}

func (b *Buffer) rebuildOffsets() {
	b.offsets = make([]int, len(b.pieces)+1)
	sum := 0
	for i, p := range b.pieces {
		b.offsets[i] = sum
		sum += p.length
	}
	b.offsets[len(b.pieces)] = sum
}

func (b *Buffer) rebuildLineIndex() {
	starts := []int{0}
	pos := 0
	it := b.newByteIterator(0)
	for {
		c, ok := it.next()
		if !ok {
			break
		}
		pos++
		if c == '\n' {
			starts = append(starts, pos)
		}
	}
	b.lineStarts = starts
}

// Len returns the total byte length.
func (b *Buffer) Len() int { return b.totalLen }

// pieceAt returns the piece index containing byte position pos and the
// offset of pos within that piece, via binary search over the offsets
// prefix-sum table.
func (b *Buffer) pieceAt(pos int) (idx int, within int) {
	if len(b.pieces) == 0 {
		return 0, 0
	}
	// offsets[i] <= pos < offsets[i+1]
	i := sort.Search(len(b.pieces), func(i int) bool {
		return b.offsets[i+1] > pos
	})
	if i >= len(b.pieces) {
		i = len(b.pieces) - 1
		return i, b.pieces[i].length
	}
	return i, pos - b.offsets[i]
}

func (b *Buffer) sourceBytes(s source) []byte {
	if s == sourceOriginal {
		return b.original
	}
	return b.add
}

// ByteAt returns the byte at pos.
func (b *Buffer) ByteAt(pos int) (byte, error) {
	if pos < 0 || pos >= b.totalLen {
		return 0, newPositionError("byte_at", pos)
	}
	idx, within := b.pieceAt(pos)
	p := b.pieces[idx]
	return b.sourceBytes(p.src)[p.start+within], nil
}

// Range returns a contiguous, newly allocated copy of [pos, pos+length).
func (b *Buffer) Range(pos, length int) ([]byte, error) {
	if pos < 0 || pos > b.totalLen {
		return nil, newPositionError("range", pos)
	}
	end := pos + length
	if end > b.totalLen {
		end = b.totalLen
	}
	if end <= pos {
		return []byte{}, nil
	}
	out := make([]byte, 0, end-pos)
	idx, within := b.pieceAt(pos)
	remaining := end - pos
	for remaining > 0 && idx < len(b.pieces) {
		p := b.pieces[idx]
		avail := p.length - within
		take := avail
		if take > remaining {
			take = remaining
		}
		src := b.sourceBytes(p.src)
		out = append(out, src[p.start+within:p.start+within+take]...)
		remaining -= take
		idx++
		within = 0
	}
	return out, nil
}

// Bytes returns the full buffer contents, assembled from all pieces.
func (b *Buffer) Bytes() []byte {
	out, _ := b.Range(0, b.totalLen)
	return out
}

type byteIterator struct {
	b       *Buffer
	idx     int
	within  int
}

func (b *Buffer) newByteIterator(pos int) *byteIterator {
	idx, within := b.pieceAt(pos)
	return &byteIterator{b: b, idx: idx, within: within}
}

func (it *byteIterator) next() (byte, bool) {
	for it.idx < len(it.b.pieces) {
		p := it.b.pieces[it.idx]
		if it.within >= p.length {
			it.idx++
			it.within = 0
			continue
		}
		c := it.b.sourceBytes(p.src)[p.start+it.within]
		it.within++
		return c, true
	}
	return 0, false
}

// IteratorSeek returns an opaque cursor positioned at pos, usable for
// sequential O(number-of-pieces) scans such as backspace/delete hot paths.
func (b *Buffer) IteratorSeek(pos int) *byteIterator { return b.newByteIterator(pos) }

// Next advances the iterator, returning (byte, true) or (0, false) at end.
func (it *byteIterator) Next() (byte, bool) { return it.next() }
