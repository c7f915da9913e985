package view

import (
	"io"

	"github.com/sanohiro/ze/internal/unicode"
	"github.com/sanohiro/ze/pkg/ui"
)

func blankRow(w int) []Cell {
	row := make([]Cell, w)
	for i := range row {
		row[i] = Cell{R: ' '}
	}
	return row
}

// buildRow renders one buffer line into a viewport-width cell row, starting
// at LeftCol and accounting for the line-number gutter.
func (v *View) buildRow(line int) []Cell {
	row := blankRow(v.ViewportW)
	gutter := v.gutterWidth()
	if gutter > 0 {
		v.writeGutter(row, line, gutter)
	}
	if line >= v.Buf.LineCount() {
		return row
	}
	start, end, err := v.Buf.LineRange(line)
	if err != nil {
		return row
	}
	content, _ := v.Buf.Range(start, end-start)

	col := 0
	for i := 0; i < len(content); {
		cp, n := unicode.DecodeNext(content, i)
		var width int
		if cp == '\t' {
			width = v.TabWidth - (col % v.TabWidth)
		} else {
			width = unicode.DisplayWidth(cp)
		}
		for d := 0; d < width; d++ {
			c := col + d
			if c < v.LeftCol {
				continue
			}
			sc := gutter + (c - v.LeftCol)
			if sc >= v.ViewportW {
				break
			}
			r := cp
			if cp == '\t' {
				r = ' '
			} else if d > 0 {
				r = ' ' // continuation cell of a wide glyph
			}
			row[sc] = Cell{R: r}
		}
		col += width
		i += n
	}
	return row
}

func (v *View) writeGutter(row []Cell, line, gutter int) {
	if line >= v.Buf.LineCount() {
		return
	}
	digits := []rune{}
	n := line + 1
	for n > 0 {
		digits = append([]rune{rune('0' + n%10)}, digits...)
		n /= 10
	}
	pad := gutter - 1 - len(digits)
	pos := 0
	for ; pad > 0; pad-- {
		row[pos] = Cell{R: ' '}
		pos++
	}
	for _, d := range digits {
		if pos >= gutter-1 {
			break
		}
		row[pos] = Cell{R: d}
		pos++
	}
	row[gutter-1] = Cell{R: ' '}
}

// Render rebuilds dirty lines into the back grid, diffs it against the
// front grid, and emits only the cells that changed via absolute cursor
// motion. After emitting, back and front swap and the dirty set clears.
func (v *View) Render(w io.Writer) {
	if v.back == nil || len(v.back) != v.ViewportH {
		v.back = make([][]Cell, v.ViewportH)
		v.front = make([][]Cell, v.ViewportH)
		for i := range v.back {
			v.back[i] = blankRow(v.ViewportW)
			v.front[i] = blankRow(v.ViewportW)
		}
		v.fullRedraw = true
	}

	for screenRow := 0; screenRow < v.ViewportH; screenRow++ {
		line := v.TopLine + screenRow
		if !v.fullRedraw && !v.dirtyLines[line] {
			continue
		}
		v.back[screenRow] = v.buildRow(line)
	}

	for row := 0; row < v.ViewportH; row++ {
		back := v.back[row]
		front := v.front[row]
		col := 0
		for col < v.ViewportW {
			if back[col] == front[col] {
				col++
				continue
			}
			runStart := col
			for col < v.ViewportW && back[col] != front[col] {
				col++
			}
			v.emitRun(w, row, runStart, back[runStart:col])
		}
		copy(front, back)
	}

	v.dirtyLines = make(map[int]bool)
	v.fullRedraw = false

	row, col := v.cursorScreenPos()
	ui.MoveCursor(w, v.OriginRow+row+1, v.OriginCol+col+1)
}

func (v *View) emitRun(w io.Writer, row, col int, cells []Cell) {
	ui.MoveCursor(w, v.OriginRow+row+1, v.OriginCol+col+1)
	for _, c := range cells {
		_, _ = io.WriteString(w, string(c.R))
	}
}

// cursorScreenPos returns the 0-indexed screen row/column of CursorPos,
// or the viewport bounds if the cursor is currently scrolled off-screen.
func (v *View) cursorScreenPos() (row, col int) {
	line := v.currentLine()
	lineStart, _ := v.Buf.LineStart(line)
	visCol := v.ByteToColumn(line, v.CursorPos-lineStart)
	row = line - v.TopLine
	col = v.gutterWidth() + visCol - v.LeftCol
	if row < 0 {
		row = 0
	}
	if row >= v.ViewportH {
		row = v.ViewportH - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= v.ViewportW {
		col = v.ViewportW - 1
	}
	return row, col
}
