package view

import "github.com/sanohiro/ze/internal/unicode"

// prevGraphemeStart returns the start offset of the grapheme cluster ending
// at pos, by rescanning the buffer from the start of the enclosing line.
// Piece tables don't support backward grapheme segmentation directly, so
// motion walks forward from a known boundary (the line start) instead.
func (v *View) prevGraphemeStart(pos int) int {
	line, _ := v.Buf.FindLineByByte(pos)
	lineStart, _ := v.Buf.LineStart(line)
	if pos <= lineStart {
		if line == 0 {
			return 0
		}
		_, prevEnd, _ := v.Buf.LineRange(line - 1)
		return prevEnd
	}
	return v.prevGraphemeStartOnLine(line, lineStart, pos)
}

func (v *View) prevGraphemeStartOnLine(line, lineStart, pos int) int {
	_, end, _ := v.Buf.LineRange(line)
	content, _ := v.Buf.Range(lineStart, end-lineStart)
	boundary := 0
	for boundary < len(content) {
		next := unicode.GraphemeBoundaryAfter(content, boundary)
		abs := lineStart + next
		if abs >= pos {
			return lineStart + boundary
		}
		boundary = next
	}
	return lineStart
}

// MoveRight steps one grapheme cluster right, wrapping to the next line's
// start when at the end of a line.
func (v *View) MoveRight() {
	total := v.Buf.Len()
	if v.CursorPos >= total {
		return
	}
	line, _ := v.Buf.FindLineByByte(v.CursorPos)
	_, end, _ := v.Buf.LineRange(line)
	if v.CursorPos >= end {
		v.CursorPos++ // cross the newline onto the next line
	} else {
		content, _ := v.Buf.Range(v.CursorPos, end-v.CursorPos)
		next := unicode.GraphemeBoundaryAfter(content, 0)
		v.CursorPos += next
	}
	v.syncGoalColumn()
}

// MoveLeft steps one grapheme cluster left, wrapping to the previous
// line's end when at the start of a line.
func (v *View) MoveLeft() {
	if v.CursorPos <= 0 {
		return
	}
	v.CursorPos = v.prevGraphemeStart(v.CursorPos)
	v.syncGoalColumn()
}

func (v *View) syncGoalColumn() {
	line := v.currentLine()
	lineStart, _ := v.Buf.LineStart(line)
	v.GoalColumn = v.ByteToColumn(line, v.CursorPos-lineStart)
	v.adjustScroll()
}

// MoveDown moves to the line below, snapping the visual column to
// GoalColumn (landing on the last grapheme whose end-column <= goal).
func (v *View) MoveDown() {
	line := v.currentLine()
	if line+1 >= v.Buf.LineCount() {
		return
	}
	lineStart, _ := v.Buf.LineStart(line + 1)
	v.CursorPos = lineStart + v.ColumnToByte(line+1, v.GoalColumn)
	v.adjustScroll()
}

// MoveUp mirrors MoveDown.
func (v *View) MoveUp() {
	line := v.currentLine()
	if line == 0 {
		return
	}
	lineStart, _ := v.Buf.LineStart(line - 1)
	v.CursorPos = lineStart + v.ColumnToByte(line-1, v.GoalColumn)
	v.adjustScroll()
}

// PageDown moves the cursor down one viewport height, snapping to
// GoalColumn like MoveDown.
func (v *View) PageDown() {
	for i := 0; i < v.ViewportH; i++ {
		line := v.currentLine()
		if line+1 >= v.Buf.LineCount() {
			break
		}
		v.MoveDown()
	}
}

// PageUp mirrors PageDown.
func (v *View) PageUp() {
	for i := 0; i < v.ViewportH; i++ {
		if v.currentLine() == 0 {
			break
		}
		v.MoveUp()
	}
}

// LineStart moves to the start of the current line.
func (v *View) LineStart() {
	line := v.currentLine()
	start, _ := v.Buf.LineStart(line)
	v.CursorPos = start
	v.syncGoalColumn()
}

// LineEnd moves to the end of the current line (before the newline).
func (v *View) LineEnd() {
	line := v.currentLine()
	_, end, _ := v.Buf.LineRange(line)
	v.CursorPos = end
	v.syncGoalColumn()
}

// BufferStart moves to byte 0.
func (v *View) BufferStart() {
	v.CursorPos = 0
	v.syncGoalColumn()
}

// BufferEnd moves to the end of the buffer.
func (v *View) BufferEnd() {
	v.CursorPos = v.Buf.Len()
	v.syncGoalColumn()
}

func (v *View) codepointAt(pos int) (rune, int) {
	if pos >= v.Buf.Len() {
		return 0, 0
	}
	b, _ := v.Buf.Range(pos, 4)
	return unicode.DecodeNext(b, 0)
}

// WordForward skips the current char-class run, then any whitespace run
// that follows it, stepping by codepoint.
func (v *View) WordForward() {
	total := v.Buf.Len()
	pos := v.CursorPos
	if pos >= total {
		return
	}
	cp, n := v.codepointAt(pos)
	cls := unicode.ClassOf(cp)
	pos += n
	for pos < total {
		cp, n = v.codepointAt(pos)
		if unicode.ClassOf(cp) != cls {
			break
		}
		pos += n
	}
	for pos < total {
		cp, n = v.codepointAt(pos)
		if unicode.ClassOf(cp) == unicode.ClassSpace {
			pos += n
			continue
		}
		break
	}
	v.CursorPos = pos
	v.syncGoalColumn()
}

// WordBackward mirrors WordForward in the opposite direction.
func (v *View) WordBackward() {
	pos := v.CursorPos
	if pos <= 0 {
		return
	}
	for pos > 0 {
		prev := v.prevGraphemeStart(pos)
		cp, _ := v.codepointAt(prev)
		if unicode.ClassOf(cp) != unicode.ClassSpace {
			break
		}
		pos = prev
	}
	if pos == 0 {
		v.CursorPos = 0
		v.syncGoalColumn()
		return
	}
	prev := v.prevGraphemeStart(pos)
	cp, _ := v.codepointAt(prev)
	cls := unicode.ClassOf(cp)
	pos = prev
	for pos > 0 {
		prev = v.prevGraphemeStart(pos)
		cp, _ = v.codepointAt(prev)
		if unicode.ClassOf(cp) != cls {
			break
		}
		pos = prev
	}
	v.CursorPos = pos
	v.syncGoalColumn()
}

// adjustScroll applies the horizontal/vertical scroll rules against the
// current cursor position.
func (v *View) adjustScroll() {
	line := v.currentLine()
	lineStart, _ := v.Buf.LineStart(line)
	col := v.ByteToColumn(line, v.CursorPos-lineStart)
	gutter := v.gutterWidth()
	oldTop, oldLeft := v.TopLine, v.LeftCol

	if col < v.LeftCol {
		v.LeftCol = col
	} else if col >= v.LeftCol+v.ViewportW-gutter {
		v.LeftCol = col - v.ViewportW + gutter + 1
	}

	if line < v.TopLine+v.ScrollMargin {
		v.TopLine = line - v.ScrollMargin
		if v.TopLine < 0 {
			v.TopLine = 0
		}
	} else if line >= v.TopLine+v.ViewportH-v.ScrollMargin {
		v.TopLine = line - v.ViewportH + v.ScrollMargin + 1
	}

	if v.TopLine != oldTop || v.LeftCol != oldLeft {
		v.markFullRedraw()
	}
}
