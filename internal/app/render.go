package app

import (
	"fmt"

	"github.com/sanohiro/ze/internal/document"
	"github.com/sanohiro/ze/pkg/ui"
)

// renderAll redraws every window pane, the status line, and (when active)
// the minibuffer, then leaves the real cursor wherever the focused
// element wants it.
func (a *App) renderAll() {
	statusRow := a.rows + 1

	for _, win := range a.windows.Leaves() {
		win.View.OriginRow = win.Row
		win.View.OriginCol = win.Col
		win.View.Render(a.out)
	}

	a.renderStatusLine(statusRow)
	if a.mode == modePrompt {
		a.renderMinibuffer(statusRow)
	}
}

func (a *App) renderStatusLine(row int) {
	win := a.windows.Current()
	doc, _ := a.docs.Find(win.DocID)
	ui.MoveCursor(a.out, row, 1)
	ui.EraseLine(a.out)
	_, _ = fmt.Fprint(a.out, statusText(doc, a.status))
}

// statusText renders the mode line in bold cyan and any pending status
// message in bright yellow, matching the teacher's Header/Warning
// styling for exactly this kind of one-line status reporting.
func statusText(doc *document.Document, status string) string {
	name := "*scratch*"
	modified := ""
	readonly := ""
	if doc != nil {
		if doc.Name != "" {
			name = doc.Name
		}
		if doc.HasUnsavedChanges() {
			modified = "*"
		}
		if doc.ReadOnly {
			readonly = " [read-only]"
		}
	}
	line := ui.HeaderText(fmt.Sprintf("-- %s%s%s --", name, modified, readonly))
	if status != "" {
		line += "  " + ui.StatusText(status)
	}
	return line
}

func (a *App) renderMinibuffer(row int) {
	ui.MoveCursor(a.out, row+1, 1)
	ui.EraseLine(a.out)
	_, _ = fmt.Fprint(a.out, a.mb.Prompt+string(a.mb.Content))
	ui.MoveCursor(a.out, row+1, a.mb.DisplayCursorColumn()+1)
}
