// Package window implements the split-window tree: a binary tree of
// leaves (one editor view each) and splits, laid out by ratio over the
// available screen space.
package window

import "github.com/sanohiro/ze/internal/view"

// Direction is the split orientation.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

const (
	minViewportRows = 1
	minViewportCols = 20
)

// Node is either a Leaf (carries a window) or a Split of two children.
type Node struct {
	parent *Node

	Win *Window // set on leaves only

	Dir         Direction // split fields
	Left, Right *Node
	Ratio       float64
}

// IsLeaf reports whether n holds a window directly.
func (n *Node) IsLeaf() bool { return n.Win != nil }

// Window is one screen pane: a view over a document, plus its screen rect.
type Window struct {
	DocID      int
	View       *view.View
	Row, Col   int
	Rows, Cols int
}

// Manager owns the window tree and tracks which leaf is current.
type Manager struct {
	root    *Node
	current *Node
	w, h    int
}

// New creates a manager with a single full-screen window over docID.
func New(docID int, v *view.View, cols, rows int) *Manager {
	leaf := &Node{Win: &Window{DocID: docID, View: v}}
	m := &Manager{root: leaf, current: leaf}
	m.Resize(cols, rows)
	return m
}

// Current returns the window holding input focus.
func (m *Manager) Current() *Window { return m.current.Win }

// SplitHorizontal replaces the current leaf with a top/bottom split; the
// new (bottom) pane shows docID.
func (m *Manager) SplitHorizontal(docID int, v *view.View) {
	m.split(Horizontal, docID, v)
}

// SplitVertical replaces the current leaf with a left/right split; the
// new (right) pane shows docID.
func (m *Manager) SplitVertical(docID int, v *view.View) {
	m.split(Vertical, docID, v)
}

func (m *Manager) split(dir Direction, docID int, v *view.View) {
	cur := m.current
	left := &Node{Win: cur.Win, parent: cur}
	right := &Node{Win: &Window{DocID: docID, View: v}, parent: cur}

	cur.Dir = dir
	cur.Ratio = 0.5
	cur.Left, cur.Right = left, right
	cur.Win = nil

	m.current = right
	m.relayout()
}

// CloseCurrent collapses the split containing the current leaf; its
// sibling takes over the parent's space. Closing the last window is a
// no-op.
func (m *Manager) CloseCurrent() {
	cur := m.current
	parent := cur.parent
	if parent == nil {
		return // last window standing
	}

	var sibling *Node
	if parent.Left == cur {
		sibling = parent.Right
	} else {
		sibling = parent.Left
	}

	grandparent := parent.parent
	*parent = *sibling
	parent.parent = grandparent
	if parent.IsLeaf() {
		parent.Left, parent.Right = nil, nil
	} else {
		parent.Left.parent = parent
		parent.Right.parent = parent
	}

	m.current = firstLeaf(parent)
	m.relayout()
}

// CloseOthers collapses the tree to a single leaf holding the current
// window, discarding every other pane. A no-op if already the only window.
func (m *Manager) CloseOthers() {
	if m.current.parent == nil {
		return
	}
	leaf := &Node{Win: m.current.Win}
	m.root = leaf
	m.current = leaf
	m.relayout()
}

func firstLeaf(n *Node) *Node {
	for !n.IsLeaf() {
		n = n.Left
	}
	return n
}

func leaves(n *Node, out *[]*Node) {
	if n.IsLeaf() {
		*out = append(*out, n)
		return
	}
	leaves(n.Left, out)
	leaves(n.Right, out)
}

// Leaves returns every window pane in DFS order, for rendering or
// iterating over all open panes.
func (m *Manager) Leaves() []*Window {
	var nodes []*Node
	leaves(m.root, &nodes)
	out := make([]*Window, len(nodes))
	for i, n := range nodes {
		out[i] = n.Win
	}
	return out
}

// Next moves focus to the next leaf in DFS order, wrapping around.
func (m *Manager) Next() { m.cycle(1) }

// Prev moves focus to the previous leaf in DFS order, wrapping around.
func (m *Manager) Prev() { m.cycle(-1) }

func (m *Manager) cycle(delta int) {
	var all []*Node
	leaves(m.root, &all)
	if len(all) == 0 {
		return
	}
	idx := 0
	for i, n := range all {
		if n == m.current {
			idx = i
			break
		}
	}
	idx = (idx + delta) % len(all)
	if idx < 0 {
		idx += len(all)
	}
	m.current = all[idx]
}

// Resize re-lays out the whole tree over a cols x rows screen.
func (m *Manager) Resize(cols, rows int) {
	m.w, m.h = cols, rows
	m.relayout()
}

func (m *Manager) relayout() {
	layout(m.root, rect{row: 0, col: 0, rows: m.h, cols: m.w})
}

type rect struct{ row, col, rows, cols int }

func layout(n *Node, r rect) {
	if n.IsLeaf() {
		n.Win.Row, n.Win.Col, n.Win.Rows, n.Win.Cols = r.row, r.col, r.rows, r.cols
		if n.Win.View != nil {
			n.Win.View.Resize(r.cols, r.rows)
		}
		return
	}
	if n.Dir == Horizontal {
		topRows := clamp(int(float64(r.rows)*n.Ratio), minViewportRows, r.rows-minViewportRows)
		layout(n.Left, rect{row: r.row, col: r.col, rows: topRows, cols: r.cols})
		layout(n.Right, rect{row: r.row + topRows, col: r.col, rows: r.rows - topRows, cols: r.cols})
	} else {
		leftCols := clamp(int(float64(r.cols)*n.Ratio), minViewportCols, r.cols-minViewportCols)
		layout(n.Left, rect{row: r.row, col: r.col, rows: r.rows, cols: leftCols})
		layout(n.Right, rect{row: r.row, col: r.col + leftCols, rows: r.rows, cols: r.cols - leftCols})
	}
}

func clamp(v, min, max int) int {
	if max < min {
		max = min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
