// Package view implements the cursor/viewport model and the differential
// cell-grid renderer: the component every interactive command ultimately
// moves or redraws through.
package view

import (
	"github.com/sanohiro/ze/internal/buffer"
	"github.com/sanohiro/ze/internal/unicode"
)

// DefaultTabWidth and MaxTabWidth bound the tab_width setting (1-16).
const (
	DefaultTabWidth = 4
	MaxTabWidth     = 16
)

// Cell is one screen position in the back/front grids.
type Cell struct {
	R rune
}

// View holds one window's cursor/viewport/render state over a shared buffer.
type View struct {
	Buf *buffer.Buffer

	TopLine, LeftCol       int
	ViewportW, ViewportH   int
	CursorPos              int // canonical cursor: absolute byte offset
	GoalColumn             int
	TabWidth               int
	ScrollMargin           int
	LineNumbersOn          bool
	ErrorMessage           string
	SearchHighlight        string

	// OriginRow, OriginCol place this view's top-left cell on the real
	// terminal screen, for windows that aren't full-screen (splits).
	OriginRow, OriginCol int

	dirtyLines map[int]bool
	fullRedraw bool
	back       [][]Cell
	front      [][]Cell
}

// New creates a view over buf with the given viewport dimensions.
func New(buf *buffer.Buffer, viewportW, viewportH int) *View {
	v := &View{
		Buf:       buf,
		ViewportW: viewportW,
		ViewportH: viewportH,
		TabWidth:  DefaultTabWidth,
	}
	v.markFullRedraw()
	return v
}

func (v *View) markFullRedraw() {
	v.fullRedraw = true
	v.dirtyLines = make(map[int]bool)
}

func (v *View) markLineDirty(line int) {
	if v.dirtyLines == nil {
		v.dirtyLines = make(map[int]bool)
	}
	v.dirtyLines[line] = true
}

// Resize changes the viewport dimensions and forces a full redraw.
func (v *View) Resize(w, h int) {
	v.ViewportW, v.ViewportH = w, h
	v.markFullRedraw()
}

func (v *View) gutterWidth() int {
	if !v.LineNumbersOn {
		return 0
	}
	digits := 1
	for n := v.Buf.LineCount(); n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}

// currentLine returns the absolute line containing CursorPos.
func (v *View) currentLine() int {
	line, err := v.Buf.FindLineByByte(v.CursorPos)
	if err != nil {
		return 0
	}
	return line
}

// ByteToColumn returns the visual column of byteOffsetWithinLine bytes into
// line, expanding tabs to the next tab stop.
func (v *View) ByteToColumn(line, byteOffsetWithinLine int) int {
	start, end, err := v.Buf.LineRange(line)
	if err != nil {
		return 0
	}
	target := start + byteOffsetWithinLine
	if target > end {
		target = end
	}
	content, _ := v.Buf.Range(start, target-start)
	col := 0
	for i := 0; i < len(content); {
		cp, n := unicode.DecodeNext(content, i)
		if cp == '\t' {
			col += v.TabWidth - (col % v.TabWidth)
		} else {
			col += unicode.DisplayWidth(cp)
		}
		i += n
	}
	return col
}

// ColumnToByte is the inverse of ByteToColumn: the byte offset (within
// line) of the last grapheme whose end-column <= target.
func (v *View) ColumnToByte(line, target int) int {
	start, end, err := v.Buf.LineRange(line)
	if err != nil {
		return 0
	}
	content, _ := v.Buf.Range(start, end-start)
	col := 0
	i := 0
	lastFit := 0
	for i < len(content) {
		cp, n := unicode.DecodeNext(content, i)
		var width int
		if cp == '\t' {
			width = v.TabWidth - (col % v.TabWidth)
		} else {
			width = unicode.DisplayWidth(cp)
		}
		if col+width > target {
			break
		}
		col += width
		i += n
		lastFit = i
	}
	return lastFit
}

// SetError stores a transient one-line error message.
func (v *View) SetError(msg string) { v.ErrorMessage = msg }

// ClearError drops the transient error message.
func (v *View) ClearError() { v.ErrorMessage = "" }
