package app

import "github.com/sanohiro/ze/internal/editor"

// rectangleKill deletes the column span between mark and point on every
// line they cross, storing the removed text for rectangleYank. Lines are
// processed bottom to top so earlier deletions never shift the offsets
// of lines still to be processed.
func (a *App) rectangleKill() {
	ed := a.currentEditor()
	lo, hi, ok := ed.Region()
	if !ok {
		a.setStatus("no region")
		return
	}
	buf := ed.Doc.Buf
	loLine, err := buf.FindLineByByte(lo)
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	hiLine, err := buf.FindLineByByte(hi)
	if err != nil {
		a.setStatus(err.Error())
		return
	}

	left, right := rectangleColumns(ed, lo, hi, loLine, hiLine)

	n := hiLine - loLine + 1
	captured := make([][]byte, n)
	for line := hiLine; line >= loLine; line-- {
		lineStart, lineEnd, err := buf.LineRange(line)
		if err != nil {
			continue
		}
		start := lineStart + ed.View.ColumnToByte(line, left)
		end := lineStart + ed.View.ColumnToByte(line, right)
		if end > lineEnd {
			end = lineEnd
		}
		if end < start {
			end = start
		}
		text, _ := buf.Range(start, end-start)
		captured[line-loLine] = append([]byte(nil), text...)
		if end > start {
			if err := ed.DeleteRange(start, end-start); err != nil {
				a.setStatus(err.Error())
				return
			}
		}
	}
	a.rectangle = captured
	ed.View.CursorPos = lo
	ed.ClearMark()
}

// rectangleYank inserts the last killed rectangle starting at point's
// column, one stored line per buffer line below it. Lines past the end
// of the buffer get a fresh newline; lines shorter than point's column
// are padded with spaces first so the inserted block stays aligned.
func (a *App) rectangleYank() {
	if len(a.rectangle) == 0 {
		a.setStatus("rectangle is empty")
		return
	}
	ed := a.currentEditor()
	buf := ed.Doc.Buf

	startLine, err := buf.FindLineByByte(ed.View.CursorPos)
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	lineStart, _, _ := buf.LineRange(startLine)
	col := ed.View.ByteToColumn(startLine, ed.View.CursorPos-lineStart)

	for i, text := range a.rectangle {
		line := startLine + i
		if line >= buf.LineCount() {
			ed.View.CursorPos = buf.Len()
			if err := ed.Insert([]byte("\n")); err != nil {
				a.setStatus(err.Error())
				return
			}
		}
		lineStart, lineEnd, err := buf.LineRange(line)
		if err != nil {
			a.setStatus(err.Error())
			return
		}
		at := lineStart + ed.View.ColumnToByte(line, col)
		if have := ed.View.ByteToColumn(line, at-lineStart); have < col {
			pad := make([]byte, col-have)
			for j := range pad {
				pad[j] = ' '
			}
			ed.View.CursorPos = lineEnd
			if err := ed.Insert(pad); err != nil {
				a.setStatus(err.Error())
				return
			}
			at = lineEnd + len(pad)
		}
		ed.View.CursorPos = at
		if err := ed.Insert(text); err != nil {
			a.setStatus(err.Error())
			return
		}
	}
}

// rectangleColumns returns the left/right visual columns the kill spans,
// ordering mark and point regardless of which came first.
func rectangleColumns(ed *editor.Editor, lo, hi, loLine, hiLine int) (left, right int) {
	loStart, _, _ := ed.Doc.Buf.LineRange(loLine)
	hiStart, _, _ := ed.Doc.Buf.LineRange(hiLine)
	a := ed.View.ByteToColumn(loLine, lo-loStart)
	b := ed.View.ByteToColumn(hiLine, hi-hiStart)
	if a > b {
		return b, a
	}
	return a, b
}
