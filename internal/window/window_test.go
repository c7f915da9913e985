package window

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanohiro/ze/internal/buffer"
	"github.com/sanohiro/ze/internal/view"
)

func newView() *view.View {
	return view.New(buffer.New([]byte("hello")), 80, 24)
}

func TestNewWindowFillsScreen(t *testing.T) {
	m := New(1, newView(), 80, 24)
	w := m.Current()
	require.Equal(t, 80, w.Cols)
	require.Equal(t, 24, w.Rows)
	require.Equal(t, 0, w.Row)
	require.Equal(t, 0, w.Col)
}

func TestSplitHorizontalDividesRows(t *testing.T) {
	m := New(1, newView(), 80, 24)
	m.SplitHorizontal(2, newView())
	top, bottom := leavesInOrder(t, m)
	require.Equal(t, 80, top.Cols)
	require.Equal(t, 80, bottom.Cols)
	require.Equal(t, 24, top.Rows+bottom.Rows)
	require.Equal(t, 2, m.Current().DocID)
}

func TestSplitVerticalDividesCols(t *testing.T) {
	m := New(1, newView(), 80, 24)
	m.SplitVertical(2, newView())
	left, right := leavesInOrder(t, m)
	require.Equal(t, 24, left.Rows)
	require.Equal(t, 24, right.Rows)
	require.Equal(t, 80, left.Cols+right.Cols)
}

func TestCloseCurrentRestoresSingleWindow(t *testing.T) {
	m := New(1, newView(), 80, 24)
	m.SplitHorizontal(2, newView())
	m.CloseCurrent()
	w := m.Current()
	require.Equal(t, 1, w.DocID)
	require.Equal(t, 80, w.Cols)
	require.Equal(t, 24, w.Rows)
}

func TestCloseCurrentIsNoopOnSoleWindow(t *testing.T) {
	m := New(1, newView(), 80, 24)
	m.CloseCurrent()
	require.Equal(t, 1, m.Current().DocID)
}

func TestNextPrevCycleAndWrap(t *testing.T) {
	m := New(1, newView(), 80, 24)
	m.SplitHorizontal(2, newView())
	require.Equal(t, 2, m.Current().DocID)
	m.Next()
	require.Equal(t, 1, m.Current().DocID)
	m.Next()
	require.Equal(t, 2, m.Current().DocID)
	m.Prev()
	require.Equal(t, 1, m.Current().DocID)
}

func TestResizeRespectsMinimumViewport(t *testing.T) {
	m := New(1, newView(), 45, 3)
	m.SplitVertical(2, newView())
	left, right := leavesInOrder(t, m)
	require.GreaterOrEqual(t, left.Cols, minViewportCols)
	require.GreaterOrEqual(t, right.Cols, minViewportCols)
}

func leavesInOrder(t *testing.T, m *Manager) (*Window, *Window) {
	t.Helper()
	var all []*Node
	leaves(m.root, &all)
	require.Len(t, all, 2)
	return all[0].Win, all[1].Win
}
