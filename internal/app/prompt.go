package app

import (
	"github.com/sanohiro/ze/internal/input"
	"github.com/sanohiro/ze/internal/minibuffer"
)

// handlePromptKey feeds one Key to whatever prompt is active. Prompts
// bypass the command dispatcher entirely: their keymap is small, fixed,
// and does not compose with the main table's prefixes.
func (a *App) handlePromptKey(k input.Key) {
	if a.prompt.kind == promptReplaceConfirm {
		a.handleReplaceConfirmKey(k)
		return
	}

	switch {
	case k.Kind == input.KindCtrl && k.Byte == 'g':
		a.cancelPrompt()
		return
	case k.Kind == input.KindEnter:
		a.commitPrompt()
		return
	case k.Kind == input.KindCtrl && k.Byte == 's' && a.isISearch():
		a.repeatISearch(true)
		return
	case k.Kind == input.KindCtrl && k.Byte == 'r' && a.isISearch():
		a.repeatISearch(false)
		return
	case k.Kind == input.KindBackspace:
		a.mb.Backspace()
	case k.Kind == input.KindCtrl && k.Byte == 'a':
		a.mb.MoveStart()
	case k.Kind == input.KindCtrl && k.Byte == 'e':
		a.mb.MoveEnd()
	case k.Kind == input.KindCtrl && k.Byte == 'f' || k.Kind == input.KindArrowRight:
		a.mb.MoveRight()
	case k.Kind == input.KindCtrl && k.Byte == 'b' || k.Kind == input.KindArrowLeft:
		a.mb.MoveLeft()
	case k.Kind == input.KindCtrl && k.Byte == 'k':
		a.mb.KillLine()
	case k.Kind == input.KindCtrl && k.Byte == 'w':
		a.mb.DeleteWordBackward()
	case k.Kind == input.KindArrowUp:
		a.historyPrev()
	case k.Kind == input.KindArrowDown:
		a.historyNext()
	case k.Kind == input.KindChar:
		a.mb.InsertBytes([]byte{k.Byte})
	case k.Kind == input.KindCodepoint:
		a.mb.InsertCodepoint(k.Rune)
	default:
		return
	}

	if a.isISearch() {
		a.runIncrementalSearch()
	}
}

func (a *App) isISearch() bool {
	switch a.prompt.kind {
	case promptISearchForward, promptISearchBackward, promptRegexISearchForward, promptRegexISearchBackward:
		return true
	default:
		return false
	}
}

func (a *App) historyPrev() {
	if len(a.history) == 0 || a.historyIdx == 0 {
		return
	}
	a.historyIdx--
	a.mb.SetContent(a.history[a.historyIdx])
}

func (a *App) historyNext() {
	if a.historyIdx >= len(a.history) {
		return
	}
	a.historyIdx++
	if a.historyIdx == len(a.history) {
		a.mb.Clear()
		return
	}
	a.mb.SetContent(a.history[a.historyIdx])
}

// commitPrompt handles Enter for every promptKind except the replace
// confirm loop, which has its own key handling.
func (a *App) commitPrompt() {
	text := string(a.mb.Content)
	switch a.prompt.kind {
	case promptOpenFile:
		a.pushHistory(text)
		a.openFile(text)
		a.exitPrompt()
	case promptSwitchBuffer:
		a.switchToBuffer(text)
		a.exitPrompt()
	case promptExecuteCommand:
		a.pushHistory(text)
		a.executeByName(text)
		a.exitPrompt()
	case promptShellCommand:
		a.pushHistory(text)
		a.runShellCommand(text, false)
		a.exitPrompt()
	case promptRegionToShell:
		a.pushHistory(text)
		a.runShellCommand(text, true)
		a.exitPrompt()
	case promptISearchForward, promptISearchBackward, promptRegexISearchForward, promptRegexISearchBackward:
		a.pushHistory(text)
		a.exitPrompt()
	case promptReplaceSearch:
		a.prompt.searchText = text
		a.prompt.kind = promptReplaceWith
		a.mb = minibuffer.New("Replace with: ")
	case promptReplaceWith:
		a.prompt.replaceText = text
		a.beginReplaceConfirm()
	}
}
