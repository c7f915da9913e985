package buffer

// Insert inserts bytes at pos, splitting or extending pieces as needed.
// It returns PositionOutOfBounds (via Error) when pos > Len() and leaves
// the buffer unmutated.
func (b *Buffer) Insert(pos int, content []byte) error {
	if pos < 0 || pos > b.totalLen {
		return newPositionError("insert", pos)
	}
	if len(content) == 0 {
		return nil
	}

	if b.tryCoalesceTailInsert(pos, content) {
		b.totalLen += len(content)
		b.rebuildOffsets()
		b.updateLineIndexForInsert(pos, content)
		return nil
	}

	addStart := len(b.add)
	b.add = append(b.add, content...)
	newPiece := piece{src: sourceAdd, start: addStart, length: len(content)}

	if len(b.pieces) == 0 {
		b.pieces = []piece{newPiece}
	} else {
		idx, within := b.pieceAt(pos)
		b.pieces = b.splicePiece(idx, within, newPiece)
	}

	b.totalLen += len(content)
	b.rebuildOffsets()
	b.updateLineIndexForInsert(pos, content)
	return nil
}

// tryCoalesceTailInsert extends the add-span tail piece in place when pos
// sits exactly at the end of a piece that is itself the live tail of the
// add span, giving O(1) amortized typing.
func (b *Buffer) tryCoalesceTailInsert(pos int, content []byte) bool {
	if len(b.pieces) == 0 {
		return false
	}
	idx, within := b.pieceAt(pos)
	if within == 0 {
		if idx == 0 {
			return false
		}
		idx-- // pos is the boundary right after pieces[idx-1]
	} else if within != b.pieces[idx].length {
		return false
	}
	p := b.pieces[idx]
	if p.src != sourceAdd || p.start+p.length != len(b.add) {
		return false
	}
	b.add = append(b.add, content...)
	b.pieces[idx].length += len(content)
	return true
}

// splicePiece inserts newPiece at byte offset `within` inside pieces[idx],
// splitting pieces[idx] into head/tail pieces as needed.
func (b *Buffer) splicePiece(idx, within int, newPiece piece) []piece {
	p := b.pieces[idx]
	var out []piece
	out = append(out, b.pieces[:idx]...)
	if within > 0 {
		out = append(out, piece{src: p.src, start: p.start, length: within})
	}
	out = append(out, newPiece)
	if within < p.length {
		out = append(out, piece{src: p.src, start: p.start + within, length: p.length - within})
	}
	out = append(out, b.pieces[idx+1:]...)
	return out
}

// Delete removes len bytes starting at pos. Ranges that start past the end
// are a no-op; ranges whose end exceeds the buffer length are clamped.
func (b *Buffer) Delete(pos, length int) error {
	if pos < 0 {
		return newPositionError("delete", pos)
	}
	if pos >= b.totalLen || length <= 0 {
		return nil
	}
	end := pos + length
	if end > b.totalLen {
		end = b.totalLen
	}

	startIdx, startWithin := b.pieceAt(pos)
	endIdx, endWithin := b.pieceAt(end)

	var out []piece
	out = append(out, b.pieces[:startIdx]...)
	if startWithin > 0 {
		sp := b.pieces[startIdx]
		out = append(out, piece{src: sp.src, start: sp.start, length: startWithin})
	}
	if endIdx < len(b.pieces) && endWithin < b.pieces[endIdx].length {
		ep := b.pieces[endIdx]
		out = append(out, piece{src: ep.src, start: ep.start + endWithin, length: ep.length - endWithin})
		out = append(out, b.pieces[endIdx+1:]...)
	} else if endIdx+1 <= len(b.pieces) {
		out = append(out, b.pieces[endIdx+1:]...)
	}

	out = mergeContiguous(out)
	b.pieces = out
	b.totalLen -= end - pos
	b.rebuildOffsets()
	b.updateLineIndexForDelete(pos, end)
	return nil
}

// mergeContiguous merges neighboring pieces that reference the same source
// with adjoining byte ranges, and drops zero-length pieces.
func mergeContiguous(pieces []piece) []piece {
	var out []piece
	for _, p := range pieces {
		if p.length == 0 {
			continue
		}
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.src == p.src && last.start+last.length == p.start {
				last.length += p.length
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
