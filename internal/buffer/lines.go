package buffer

import "sort"

// LineCount returns the number of lines; an empty buffer has one line.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// LineStart returns the byte offset of the first byte of line.
func (b *Buffer) LineStart(line int) (int, error) {
	if line < 0 || line >= len(b.lineStarts) {
		return 0, newPositionError("line_start", line)
	}
	return b.lineStarts[line], nil
}

// LineRange returns [start, endExclusiveOfNewline) for line.
func (b *Buffer) LineRange(line int) (start, end int, err error) {
	if line < 0 || line >= len(b.lineStarts) {
		return 0, 0, newPositionError("line_range", line)
	}
	start = b.lineStarts[line]
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1] - 1 // exclude the trailing newline
	} else {
		end = b.totalLen
	}
	if end < start {
		end = start
	}
	return start, end, nil
}

// FindLineByByte returns the line index containing byte offset pos.
func (b *Buffer) FindLineByByte(pos int) (int, error) {
	if pos < 0 || pos > b.totalLen {
		return 0, newPositionError("find_line_by_byte", pos)
	}
	i := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > pos })
	return i - 1, nil
}

// updateLineIndexForInsert shifts existing line starts after pos by
// len(content) and inserts new line-start entries for newlines within
// content, preserving the Line 0 == 0 invariant.
func (b *Buffer) updateLineIndexForInsert(pos int, content []byte) {
	shift := len(content)
	splitAt := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > pos })

	var newStarts []int
	for i, nl := range content {
		if nl == '\n' {
			newStarts = append(newStarts, pos+i+1)
		}
	}

	out := make([]int, 0, len(b.lineStarts)+len(newStarts))
	out = append(out, b.lineStarts[:splitAt]...)
	out = append(out, newStarts...)
	for _, s := range b.lineStarts[splitAt:] {
		out = append(out, s+shift)
	}
	b.lineStarts = out
}

// updateLineIndexForDelete removes line-start entries that fell inside
// [pos, end) and shifts the remaining entries left by (end-pos).
func (b *Buffer) updateLineIndexForDelete(pos, end int) {
	shift := end - pos
	out := make([]int, 0, len(b.lineStarts))
	for _, s := range b.lineStarts {
		switch {
		case s <= pos:
			out = append(out, s)
		case s > pos && s <= end:
			// dropped: the newline that created this line start was removed
		default:
			out = append(out, s-shift)
		}
	}
	if len(out) == 0 || out[0] != 0 {
		out = append([]int{0}, out...)
	}
	b.lineStarts = out
}
