// Package editor binds one document's buffer, undo log, and view
// together so a single call records undo history and marks the
// document modified, instead of leaving every command to do both by
// hand.
package editor

import (
	"time"

	"github.com/sanohiro/ze/internal/document"
	"github.com/sanohiro/ze/internal/undo"
	"github.com/sanohiro/ze/internal/view"
)

// Editor is one window's edit surface: a document and the view onto it.
type Editor struct {
	Doc  *document.Document
	View *view.View

	// Mark holds the region anchor set by set-mark; MarkSet reports
	// whether it is currently active.
	Mark    int
	MarkSet bool
}

// New returns an editor over doc rendered through v.
func New(doc *document.Document, v *view.View) *Editor {
	return &Editor{Doc: doc, View: v}
}

// Insert inserts content at the cursor, recording the inverse delete
// for undo.
func (e *Editor) Insert(content []byte) error {
	if e.Doc.ReadOnly {
		return ErrReadOnly
	}
	pos := e.View.CursorPos
	if err := e.View.InsertAt(pos, content); err != nil {
		return err
	}
	e.Doc.Undo.Record(undo.Insert, pos, content, pos, time.Now())
	e.Doc.MarkModified()
	return nil
}

// DeleteRange deletes [pos, pos+length), recording the inverse insert
// for undo. The cursor ends up at pos.
func (e *Editor) DeleteRange(pos, length int) error {
	if length <= 0 {
		return nil
	}
	if e.Doc.ReadOnly {
		return ErrReadOnly
	}
	content, err := e.Doc.Buf.Range(pos, length)
	if err != nil {
		return err
	}
	if err := e.View.DeleteAt(pos, length); err != nil {
		return err
	}
	e.Doc.Undo.Record(undo.Delete, pos, content, pos, time.Now())
	e.Doc.MarkModified()
	return nil
}

// DeleteForward deletes n bytes starting at the cursor (C-d / delete-char).
func (e *Editor) DeleteForward(n int) error {
	pos := e.View.CursorPos
	remaining := e.Doc.Buf.Len() - pos
	if n > remaining {
		n = remaining
	}
	return e.DeleteRange(pos, n)
}

// Undo pops and applies the top undo entry, restoring its cursor.
func (e *Editor) Undo() (bool, error) {
	cursor, ok, err := e.Doc.Undo.Undo(e.View)
	if err != nil || !ok {
		return ok, err
	}
	e.View.CursorPos = cursor
	return true, nil
}

// Redo pops and applies the top redo entry, leaving the cursor after it.
func (e *Editor) Redo() (bool, error) {
	cursor, ok, err := e.Doc.Undo.Redo(e.View)
	if err != nil || !ok {
		return ok, err
	}
	e.View.CursorPos = cursor
	return true, nil
}

// SetMark anchors the region at the current cursor.
func (e *Editor) SetMark() {
	e.Mark = e.View.CursorPos
	e.MarkSet = true
}

// ClearMark deactivates the region without moving the cursor.
func (e *Editor) ClearMark() {
	e.MarkSet = false
}

// Region returns the byte span [lo, hi) between mark and cursor, in
// document order.
func (e *Editor) Region() (lo, hi int, ok bool) {
	if !e.MarkSet {
		return 0, 0, false
	}
	lo, hi = e.Mark, e.View.CursorPos
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// CopyRegion returns the region's bytes without deleting them.
func (e *Editor) CopyRegion() ([]byte, bool) {
	lo, hi, ok := e.Region()
	if !ok {
		return nil, false
	}
	content, err := e.Doc.Buf.Range(lo, hi-lo)
	if err != nil {
		return nil, false
	}
	return content, true
}

// KillRegion deletes the region and returns its bytes for the kill ring.
func (e *Editor) KillRegion() ([]byte, bool) {
	content, ok := e.CopyRegion()
	if !ok {
		return nil, false
	}
	lo, hi, _ := e.Region()
	if err := e.DeleteRange(lo, hi-lo); err != nil {
		return nil, false
	}
	e.ClearMark()
	return content, true
}

// KillLine deletes from the cursor to the end of the line, leaving the
// trailing newline in place; when the cursor is already at the line end
// it deletes just that newline. On the last line it stops at
// end-of-buffer.
func (e *Editor) KillLine() ([]byte, error) {
	pos := e.View.CursorPos
	line, err := e.Doc.Buf.FindLineByByte(pos)
	if err != nil {
		return nil, err
	}
	_, end, err := e.Doc.Buf.LineRange(line)
	if err != nil {
		return nil, err
	}
	length := end - pos
	if length == 0 && end < e.Doc.Buf.Len() {
		length = 1 // swallow the newline itself when already at line end
	}
	content, err := e.Doc.Buf.Range(pos, length)
	if err != nil {
		return nil, err
	}
	if err := e.DeleteRange(pos, length); err != nil {
		return nil, err
	}
	return content, nil
}

// Yank inserts content at the cursor.
func (e *Editor) Yank(content []byte) error {
	if len(content) == 0 {
		return nil
	}
	return e.Insert(content)
}
