package app

import (
	"github.com/sanohiro/ze/internal/keymap"
	"github.com/sanohiro/ze/internal/window"
)

// runCommand executes one resolved Command in normal mode.
func (a *App) runCommand(cmd keymap.Command) {
	a.quitConfirmPending = a.quitConfirmPending && cmd == keymap.CmdQuit
	if handler, ok := normalHandlers[cmd]; ok {
		handler(a)
		return
	}
	a.setStatus("unbound command: " + string(cmd))
}

// normalHandlers maps every non-prefix Command to its handler. Built as
// a table, not a type switch, so adding a command never touches this
// dispatch logic.
var normalHandlers = map[keymap.Command]func(*App){
	keymap.CmdLineStart:    func(a *App) { a.currentEditor().View.LineStart() },
	keymap.CmdLineEnd:      func(a *App) { a.currentEditor().View.LineEnd() },
	keymap.CmdForwardChar:  func(a *App) { a.currentEditor().View.MoveRight() },
	keymap.CmdBackwardChar: func(a *App) { a.currentEditor().View.MoveLeft() },
	keymap.CmdNextLine:     func(a *App) { a.currentEditor().View.MoveDown() },
	keymap.CmdPrevLine:     func(a *App) { a.currentEditor().View.MoveUp() },
	keymap.CmdForwardWord:  func(a *App) { a.currentEditor().View.WordForward() },
	keymap.CmdBackwardWord: func(a *App) { a.currentEditor().View.WordBackward() },
	keymap.CmdBufferStart:  func(a *App) { a.currentEditor().View.BufferStart() },
	keymap.CmdBufferEnd:    func(a *App) { a.currentEditor().View.BufferEnd() },
	keymap.CmdPageDown:     func(a *App) { a.currentEditor().View.PageDown() },
	keymap.CmdPageUp:       func(a *App) { a.currentEditor().View.PageUp() },

	keymap.CmdDeleteChar: (*App).deleteCharForward,
	keymap.CmdDeleteWord: (*App).deleteWordForward,
	keymap.CmdKillLine:   (*App).killLine,
	keymap.CmdSetMark:    func(a *App) { a.currentEditor().SetMark() },
	keymap.CmdKillRegion: (*App).killRegion,
	keymap.CmdCopyRegion: (*App).copyRegion,
	keymap.CmdYank:       (*App).yank,
	keymap.CmdUndo:       (*App).undo,
	keymap.CmdRedo:       (*App).redo,
	keymap.CmdCancel:     (*App).cancelNormal,

	keymap.CmdISearchFwd:    func(a *App) { a.startISearch(true, false) },
	keymap.CmdISearchBack:   func(a *App) { a.startISearch(false, false) },
	keymap.CmdRegexISearchF: func(a *App) { a.startISearch(true, true) },
	keymap.CmdRegexISearchB: func(a *App) { a.startISearch(false, true) },
	keymap.CmdRegexReplace:  func(a *App) { a.startQueryReplace(true) },
	keymap.CmdQueryReplace:  func(a *App) { a.startQueryReplace(false) },

	keymap.CmdExecuteByName: func(a *App) { a.enterPrompt(promptExecuteCommand, "M-x ") },
	keymap.CmdShellCommand:  func(a *App) { a.enterPrompt(promptShellCommand, "Shell command: ") },
	keymap.CmdRegionToShell: (*App).startRegionToShell,
	keymap.CmdCommentToggle: (*App).commentToggle,
	keymap.CmdJoinLine:      (*App).joinLine,

	keymap.CmdSave:         (*App).save,
	keymap.CmdQuit:         (*App).requestQuit,
	keymap.CmdSwitchBuffer: func(a *App) { a.enterPrompt(promptSwitchBuffer, "Switch to buffer: ") },
	keymap.CmdSplitHorz:    func(a *App) { a.splitWindow(window.Horizontal) },
	keymap.CmdSplitVert:    func(a *App) { a.splitWindow(window.Vertical) },
	keymap.CmdCloseOthers:  func(a *App) { a.windows.CloseOthers() },
	keymap.CmdCloseWindow:  (*App).closeWindow,
	keymap.CmdOtherWindow:  func(a *App) { a.windows.Next() },
	keymap.CmdOpenFile:     func(a *App) { a.enterPrompt(promptOpenFile, "Find file: ") },

	keymap.CmdMacroStart: (*App).macroStart,
	keymap.CmdMacroStop:  (*App).macroStop,
	keymap.CmdMacroPlay:  (*App).macroPlay,

	keymap.CmdRectangleKill: (*App).rectangleKill,
	keymap.CmdRectangleYank: (*App).rectangleYank,
	keymap.CmdMarkWholeBuf:  (*App).markWholeBuffer,
}

func (a *App) deleteCharForward() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	if err := ed.DeleteForward(1); err != nil {
		a.setStatus(err.Error())
	}
}

func (a *App) deleteWordForward() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	pos := ed.View.CursorPos
	ed.View.WordForward()
	end := ed.View.CursorPos
	ed.View.CursorPos = pos
	if err := ed.DeleteRange(pos, end-pos); err != nil {
		a.setStatus(err.Error())
	}
}

func (a *App) killLine() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	killed, err := ed.KillLine()
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	ed.Doc.PushKill(killed)
}

func (a *App) killRegion() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	killed, ok := ed.KillRegion()
	if !ok {
		a.setStatus("no region")
		return
	}
	ed.Doc.PushKill(killed)
}

func (a *App) copyRegion() {
	ed := a.currentEditor()
	content, ok := ed.CopyRegion()
	if !ok {
		a.setStatus("no region")
		return
	}
	ed.Doc.PushKill(content)
	ed.ClearMark()
}

func (a *App) yank() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	content, ok := ed.Doc.LastKill()
	if !ok {
		a.setStatus("kill ring empty")
		return
	}
	if err := ed.Yank(content); err != nil {
		a.setStatus(err.Error())
	}
}

func (a *App) undo() {
	ok, err := a.currentEditor().Undo()
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	if !ok {
		a.setStatus("nothing to undo")
	}
}

func (a *App) redo() {
	ok, err := a.currentEditor().Redo()
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	if !ok {
		a.setStatus("nothing to redo")
	}
}

// cancelNormal is C-g outside of any prompt: it deactivates the region
// and drops any in-flight keymap prefix.
func (a *App) cancelNormal() {
	a.disp.Cancel()
	a.currentEditor().ClearMark()
	a.setStatus("")
}

func (a *App) markWholeBuffer() {
	ed := a.currentEditor()
	ed.Mark = 0
	ed.MarkSet = true
	ed.View.BufferEnd()
}

// commentToggle toggles a leading "# " on the current line. ze carries
// no per-language configuration, so it applies one generic line-comment
// convention rather than branching on file extension.
func (a *App) commentToggle() {
	const marker = "# "
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	line, err := ed.Doc.Buf.FindLineByByte(ed.View.CursorPos)
	if err != nil {
		return
	}
	start, end, err := ed.Doc.Buf.LineRange(line)
	if err != nil {
		return
	}
	content, err := ed.Doc.Buf.Range(start, end-start)
	if err != nil {
		return
	}
	if hasPrefix(content, marker) {
		if err := ed.DeleteRange(start, len(marker)); err != nil {
			a.setStatus(err.Error())
		}
		return
	}
	cursor := ed.View.CursorPos
	ed.View.CursorPos = start
	if err := ed.Insert([]byte(marker)); err != nil {
		a.setStatus(err.Error())
		return
	}
	ed.View.CursorPos = cursor + len(marker)
}

func hasPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return string(b[:len(prefix)]) == prefix
}

// joinLine joins the current line onto the previous one, collapsing the
// break and the new line's leading whitespace into a single space.
func (a *App) joinLine() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	line, err := ed.Doc.Buf.FindLineByByte(ed.View.CursorPos)
	if err != nil || line == 0 {
		return
	}
	prevStart, prevEnd, err := ed.Doc.Buf.LineRange(line - 1)
	if err != nil {
		return
	}
	_, curEnd, err := ed.Doc.Buf.LineRange(line)
	if err != nil {
		return
	}
	content, err := ed.Doc.Buf.Range(prevEnd, curEnd-prevEnd)
	if err != nil {
		return
	}
	trimEnd := len(content)
	for trimEnd > 0 && isBlank(content[trimEnd-1]) && content[trimEnd-1] != '\n' {
		trimEnd--
	}
	skip := 1 // the newline itself
	for skip < len(content) && isBlank(content[skip]) {
		skip++
	}
	ed.View.CursorPos = prevEnd
	if err := ed.DeleteRange(prevEnd, skip); err != nil {
		a.setStatus(err.Error())
		return
	}
	if prevEnd > prevStart {
		if err := ed.Insert([]byte(" ")); err != nil {
			a.setStatus(err.Error())
		}
	}
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }

func (a *App) splitWindow(dir window.Direction) {
	win := a.windows.Current()
	doc, ok := a.docs.Find(win.DocID)
	if !ok {
		return
	}
	v := a.newView(doc.Buf, 1, 1)
	if dir == window.Horizontal {
		a.windows.SplitHorizontal(doc.ID, v)
	} else {
		a.windows.SplitVertical(doc.ID, v)
	}
}

func (a *App) closeWindow() {
	closed := a.windows.Current()
	a.windows.CloseCurrent()
	delete(a.editors, closed)
}

func (a *App) macroStart() {
	if err := a.macro.StartRecording(); err != nil {
		a.setStatus(err.Error())
		return
	}
	a.setStatus("recording macro")
}

func (a *App) macroStop() {
	a.macro.StopRecording()
	a.setStatus("")
}

func (a *App) macroPlay() {
	if err := a.macro.PlayLastMacro(a.handleNormalKey); err != nil {
		a.setStatus(err.Error())
	}
}
