// Package document manages the set of open documents: each wraps one
// piece-table buffer, its undo log, and its search service, addressed by
// an id that is never reused.
package document

import (
	"sync"

	"github.com/sanohiro/ze/internal/buffer"
	"github.com/sanohiro/ze/internal/fileio"
	"github.com/sanohiro/ze/internal/search"
	"github.com/sanohiro/ze/internal/undo"
)

// MaxKillRing bounds the number of kill-ring entries retained per document.
const MaxKillRing = 20

// Document is one open buffer: its storage, history, and search state.
type Document struct {
	ID       int
	Name     string
	Path     string
	Buf      *buffer.Buffer
	Undo     *undo.Log
	Search   *search.Service
	ReadOnly bool
	Meta     fileio.Metadata // encoding/line-ending/BOM captured on load, reapplied on save
	modified bool
	killRing [][]byte
}

// HasUnsavedChanges reports whether the document has pending edits.
func (d *Document) HasUnsavedChanges() bool { return d.modified }

// MarkModified flags the document as having unsaved edits.
func (d *Document) MarkModified() { d.modified = true }

// PushKill appends content to the kill ring, evicting the oldest entry
// once MaxKillRing is exceeded.
func (d *Document) PushKill(content []byte) {
	if len(content) == 0 {
		return
	}
	cp := append([]byte(nil), content...)
	d.killRing = append(d.killRing, cp)
	if len(d.killRing) > MaxKillRing {
		d.killRing = d.killRing[len(d.killRing)-MaxKillRing:]
	}
}

// LastKill returns the most recently killed text.
func (d *Document) LastKill() ([]byte, bool) {
	if len(d.killRing) == 0 {
		return nil, false
	}
	return d.killRing[len(d.killRing)-1], true
}

// MarkSaved clears the unsaved-edits flag.
func (d *Document) MarkSaved() { d.modified = false }

// Manager owns the set of open documents, keyed by a never-reused id.
type Manager struct {
	mu        sync.RWMutex
	documents map[int]*Document
	order     []int
	nextID    int
}

// New returns an empty document manager.
func New() *Manager {
	return &Manager{
		documents: make(map[int]*Document),
		order:     make([]int, 0, 4),
		nextID:    1,
	}
}

// Create adds a new document over initial content, named name, or
// "*scratch*" when name is empty, and returns it.
func (m *Manager) Create(name string, initial []byte) *Document {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		name = "*scratch*"
	}
	id := m.nextID
	m.nextID++

	doc := &Document{
		ID:     id,
		Name:   name,
		Buf:    buffer.New(initial),
		Undo:   undo.New(),
		Search: search.New(),
	}
	m.documents[id] = doc
	m.order = append(m.order, id)
	return doc
}

// Find returns the document with id, or nil if it doesn't exist.
func (m *Manager) Find(id int) (*Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.documents[id]
	return d, ok
}

// Delete removes the document with id. Ids are never reused; order
// shifts but nextID never rewinds.
func (m *Manager) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.documents[id]; !ok {
		return false
	}
	delete(m.documents, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Iter returns all open documents in creation order.
func (m *Manager) Iter() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Document, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.documents[id])
	}
	return out
}

// First returns the oldest surviving document, or nil if none remain.
func (m *Manager) First() *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.order) == 0 {
		return nil
	}
	return m.documents[m.order[0]]
}

// HasUnsavedChanges reports whether any open document has pending edits.
func (m *Manager) HasUnsavedChanges() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.order {
		if m.documents[id].HasUnsavedChanges() {
			return true
		}
	}
	return false
}

// Names returns the display names of all open documents in creation order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.documents[id].Name)
	}
	return out
}
