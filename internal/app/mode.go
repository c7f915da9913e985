package app

import "github.com/sanohiro/ze/internal/minibuffer"

// mode distinguishes ordinary key dispatch from a minibuffer-driven
// prompt; the prompt's own purpose is tracked by promptKind.
type mode int

const (
	modeNormal mode = iota
	modePrompt
)

// promptKind names what a minibuffer prompt is currently collecting.
type promptKind int

const (
	promptNone promptKind = iota
	promptOpenFile
	promptSwitchBuffer
	promptExecuteCommand
	promptShellCommand
	promptRegionToShell
	promptISearchForward
	promptISearchBackward
	promptRegexISearchForward
	promptRegexISearchBackward
	promptReplaceSearch
	promptReplaceWith
	promptReplaceConfirm
)

// promptState carries whatever a prompt needs beyond the minibuffer's
// own text, and what to restore if the user cancels with C-g.
type promptState struct {
	kind   promptKind
	regex  bool
	origin int // cursor position to restore on cancel

	// query-replace / regex-query-replace accumulate two prompts before
	// the interactive confirm loop begins.
	searchText  string
	replaceText string
	matchStart  int
	matchLen    int
	replaceAll  bool
}

// enterPrompt switches to prompt mode, remembering the cursor to
// restore if the user cancels.
func (a *App) enterPrompt(kind promptKind, label string) {
	a.mode = modePrompt
	a.prompt = promptState{kind: kind, origin: a.currentEditor().View.CursorPos}
	a.mb = minibuffer.New(label)
}

// exitPrompt returns to normal dispatch, clearing the minibuffer and any
// search highlight left over from isearch.
func (a *App) exitPrompt() {
	a.mode = modeNormal
	a.prompt = promptState{}
	a.mb = nil
	a.currentEditor().View.SearchHighlight = ""
	a.currentEditor().View.ClearError()
}

// cancelPrompt restores the pre-prompt cursor and leaves prompt mode.
func (a *App) cancelPrompt() {
	ed := a.currentEditor()
	ed.View.CursorPos = a.prompt.origin
	a.exitPrompt()
	a.setStatus("")
}
