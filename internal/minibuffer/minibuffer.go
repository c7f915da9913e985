// Package minibuffer implements the single-line editable field used for
// prompts, isearch, and M-x: its own byte-indexed cursor, a bounded
// prompt, and a shared command-history store.
package minibuffer

import (
	"github.com/sanohiro/ze/internal/unicode"
)

// MaxPromptBytes bounds the prompt; longer prompts are truncated.
const MaxPromptBytes = 256

// Minibuffer is a single-line UTF-8 field with its own cursor.
type Minibuffer struct {
	Prompt  string
	Content []byte
	Cursor  int // byte offset into Content
	TabWidth int
}

// New returns an empty minibuffer with the given prompt, truncating it
// to MaxPromptBytes if necessary.
func New(prompt string) *Minibuffer {
	if len(prompt) > MaxPromptBytes {
		prompt = prompt[:MaxPromptBytes]
	}
	return &Minibuffer{Prompt: prompt, TabWidth: 4}
}

// SetContent replaces the field content and moves the cursor to its end.
func (m *Minibuffer) SetContent(s string) {
	m.Content = []byte(s)
	m.Cursor = len(m.Content)
}

// Clear empties the field.
func (m *Minibuffer) Clear() {
	m.Content = nil
	m.Cursor = 0
}

// InsertCodepoint inserts a single codepoint at the cursor.
func (m *Minibuffer) InsertCodepoint(r rune) {
	m.InsertBytes([]byte(string(r)))
}

// InsertBytes inserts raw bytes at the cursor.
func (m *Minibuffer) InsertBytes(b []byte) {
	out := make([]byte, 0, len(m.Content)+len(b))
	out = append(out, m.Content[:m.Cursor]...)
	out = append(out, b...)
	out = append(out, m.Content[m.Cursor:]...)
	m.Content = out
	m.Cursor += len(b)
}

func (m *Minibuffer) prevGraphemeStart(pos int) int {
	boundary := 0
	for boundary < len(m.Content) {
		next := unicode.GraphemeBoundaryAfter(m.Content, boundary)
		if next >= pos {
			return boundary
		}
		boundary = next
	}
	return 0
}

// Backspace deletes the grapheme cluster before the cursor.
func (m *Minibuffer) Backspace() {
	if m.Cursor == 0 {
		return
	}
	start := m.prevGraphemeStart(m.Cursor)
	m.Content = append(m.Content[:start], m.Content[m.Cursor:]...)
	m.Cursor = start
}

// Delete removes the grapheme cluster at the cursor.
func (m *Minibuffer) Delete() {
	if m.Cursor >= len(m.Content) {
		return
	}
	end := unicode.GraphemeBoundaryAfter(m.Content, m.Cursor)
	m.Content = append(m.Content[:m.Cursor], m.Content[end:]...)
}

// MoveLeft steps one grapheme cluster left.
func (m *Minibuffer) MoveLeft() {
	if m.Cursor > 0 {
		m.Cursor = m.prevGraphemeStart(m.Cursor)
	}
}

// MoveRight steps one grapheme cluster right.
func (m *Minibuffer) MoveRight() {
	if m.Cursor < len(m.Content) {
		m.Cursor = unicode.GraphemeBoundaryAfter(m.Content, m.Cursor)
	}
}

// MoveStart moves the cursor to byte 0.
func (m *Minibuffer) MoveStart() { m.Cursor = 0 }

// MoveEnd moves the cursor to the end of the content.
func (m *Minibuffer) MoveEnd() { m.Cursor = len(m.Content) }

func (m *Minibuffer) classAt(pos int) unicode.CharClass {
	cp, _ := unicode.DecodeNext(m.Content, pos)
	return unicode.ClassOf(cp)
}

// MoveWordForward skips the current char-class cluster, then any
// trailing space run, mirroring View's word motion.
func (m *Minibuffer) MoveWordForward() {
	pos := m.Cursor
	n := len(m.Content)
	if pos >= n {
		return
	}
	cls := m.classAt(pos)
	for pos < n && m.classAt(pos) == cls {
		_, step := unicode.DecodeNext(m.Content, pos)
		pos += step
	}
	for pos < n && m.classAt(pos) == unicode.ClassSpace {
		_, step := unicode.DecodeNext(m.Content, pos)
		pos += step
	}
	m.Cursor = pos
}

// MoveWordBackward mirrors MoveWordForward.
func (m *Minibuffer) MoveWordBackward() {
	pos := m.Cursor
	for pos > 0 {
		prev := m.prevGraphemeStart(pos)
		if m.classAt(prev) != unicode.ClassSpace {
			break
		}
		pos = prev
	}
	if pos == 0 {
		m.Cursor = 0
		return
	}
	prev := m.prevGraphemeStart(pos)
	cls := m.classAt(prev)
	pos = prev
	for pos > 0 {
		prev = m.prevGraphemeStart(pos)
		if m.classAt(prev) != cls {
			break
		}
		pos = prev
	}
	m.Cursor = pos
}

// DeleteWordForward deletes from the cursor to the start of the next word.
func (m *Minibuffer) DeleteWordForward() {
	start := m.Cursor
	m.MoveWordForward()
	end := m.Cursor
	m.Content = append(m.Content[:start], m.Content[end:]...)
	m.Cursor = start
}

// DeleteWordBackward deletes from the start of the previous word to the cursor.
func (m *Minibuffer) DeleteWordBackward() {
	end := m.Cursor
	m.MoveWordBackward()
	start := m.Cursor
	m.Content = append(m.Content[:start], m.Content[end:]...)
}

// KillLine deletes from the cursor to the end of the content.
func (m *Minibuffer) KillLine() {
	m.Content = m.Content[:m.Cursor]
}

// DisplayCursorColumn returns width(prompt) + the tab-aware visual column
// of the cursor within Content.
func (m *Minibuffer) DisplayCursorColumn() int {
	col := 0
	for _, r := range m.Prompt {
		col += unicode.DisplayWidth(r)
	}
	vcol := 0
	for i := 0; i < m.Cursor; {
		cp, n := unicode.DecodeNext(m.Content, i)
		if cp == '\t' {
			vcol += m.TabWidth - (vcol % m.TabWidth)
		} else {
			vcol += unicode.DisplayWidth(cp)
		}
		i += n
	}
	return col + vcol
}
