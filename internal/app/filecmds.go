package app

import (
	"path/filepath"

	"github.com/sanohiro/ze/internal/document"
	"github.com/sanohiro/ze/internal/fileio"
	"github.com/sanohiro/ze/internal/keymap"
)

// openFile loads path into a new document and switches the current
// window to it. A load failure leaves the current buffer untouched.
func (a *App) openFile(path string) {
	if path == "" {
		return
	}
	content, meta, err := fileio.Load(a.ops, path)
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	doc := a.docs.Create(filepath.Base(path), content)
	doc.Path = path
	doc.Meta = meta
	a.showDocInCurrentWindow(doc)
}

// switchToBuffer finds an open document by display name and focuses it
// in the current window.
func (a *App) switchToBuffer(name string) {
	for _, doc := range a.docs.Iter() {
		if doc.Name == name {
			a.showDocInCurrentWindow(doc)
			return
		}
	}
	a.setStatus("no buffer named " + name)
}

// showDocInCurrentWindow repoints the current window at doc with a
// fresh view, dropping any cached editor for the old pairing.
func (a *App) showDocInCurrentWindow(doc *document.Document) {
	win := a.windows.Current()
	delete(a.editors, win)
	win.DocID = doc.ID
	win.View = a.newView(doc.Buf, win.Cols, win.Rows)
}

// save writes the current document back to its path, reapplying its
// recorded encoding and line endings. Documents with no path (scratch
// buffers) report an error rather than guessing a filename.
func (a *App) save() {
	ed := a.currentEditor()
	if ed.Doc.Path == "" {
		a.setStatus("no file name for this buffer")
		return
	}
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	if err := fileio.Save(a.ops, ed.Doc.Path, ed.Doc.Buf.Bytes(), ed.Doc.Meta); err != nil {
		a.setStatus(err.Error())
		return
	}
	ed.Doc.MarkSaved()
	a.setStatus("wrote " + ed.Doc.Path)
}

// requestQuit quits immediately if there is nothing unsaved, otherwise
// requires the quit key a second time.
func (a *App) requestQuit() {
	if !a.docs.HasUnsavedChanges() || a.quitConfirmPending {
		a.quit = true
		return
	}
	a.quitConfirmPending = true
	a.setStatus("unsaved changes: press C-x C-c again to quit without saving")
}

// commandsByName supports M-x execute-command, keyed by the same string
// form the keymap uses for Command, so it stays in sync automatically.
var commandsByName = map[string]keymap.Command{
	string(keymap.CmdLineStart):     keymap.CmdLineStart,
	string(keymap.CmdLineEnd):       keymap.CmdLineEnd,
	string(keymap.CmdForwardChar):   keymap.CmdForwardChar,
	string(keymap.CmdBackwardChar):  keymap.CmdBackwardChar,
	string(keymap.CmdNextLine):      keymap.CmdNextLine,
	string(keymap.CmdPrevLine):      keymap.CmdPrevLine,
	string(keymap.CmdForwardWord):   keymap.CmdForwardWord,
	string(keymap.CmdBackwardWord):  keymap.CmdBackwardWord,
	string(keymap.CmdBufferStart):   keymap.CmdBufferStart,
	string(keymap.CmdBufferEnd):     keymap.CmdBufferEnd,
	string(keymap.CmdPageDown):      keymap.CmdPageDown,
	string(keymap.CmdPageUp):        keymap.CmdPageUp,
	string(keymap.CmdDeleteChar):    keymap.CmdDeleteChar,
	string(keymap.CmdDeleteWord):    keymap.CmdDeleteWord,
	string(keymap.CmdKillLine):      keymap.CmdKillLine,
	string(keymap.CmdSetMark):       keymap.CmdSetMark,
	string(keymap.CmdKillRegion):    keymap.CmdKillRegion,
	string(keymap.CmdCopyRegion):    keymap.CmdCopyRegion,
	string(keymap.CmdYank):          keymap.CmdYank,
	string(keymap.CmdUndo):          keymap.CmdUndo,
	string(keymap.CmdRedo):          keymap.CmdRedo,
	string(keymap.CmdISearchFwd):    keymap.CmdISearchFwd,
	string(keymap.CmdISearchBack):   keymap.CmdISearchBack,
	string(keymap.CmdRegexISearchF): keymap.CmdRegexISearchF,
	string(keymap.CmdRegexISearchB): keymap.CmdRegexISearchB,
	string(keymap.CmdRegexReplace):  keymap.CmdRegexReplace,
	string(keymap.CmdQueryReplace):  keymap.CmdQueryReplace,
	string(keymap.CmdShellCommand):  keymap.CmdShellCommand,
	string(keymap.CmdRegionToShell): keymap.CmdRegionToShell,
	string(keymap.CmdCommentToggle): keymap.CmdCommentToggle,
	string(keymap.CmdJoinLine):      keymap.CmdJoinLine,
	string(keymap.CmdSave):          keymap.CmdSave,
	string(keymap.CmdQuit):          keymap.CmdQuit,
	string(keymap.CmdSwitchBuffer):  keymap.CmdSwitchBuffer,
	string(keymap.CmdSplitHorz):     keymap.CmdSplitHorz,
	string(keymap.CmdSplitVert):     keymap.CmdSplitVert,
	string(keymap.CmdCloseOthers):   keymap.CmdCloseOthers,
	string(keymap.CmdCloseWindow):   keymap.CmdCloseWindow,
	string(keymap.CmdOtherWindow):   keymap.CmdOtherWindow,
	string(keymap.CmdOpenFile):      keymap.CmdOpenFile,
	string(keymap.CmdMacroStart):    keymap.CmdMacroStart,
	string(keymap.CmdMacroStop):     keymap.CmdMacroStop,
	string(keymap.CmdMacroPlay):     keymap.CmdMacroPlay,
	string(keymap.CmdRectangleKill): keymap.CmdRectangleKill,
	string(keymap.CmdRectangleYank): keymap.CmdRectangleYank,
	string(keymap.CmdMarkWholeBuf):  keymap.CmdMarkWholeBuf,
}

func (a *App) executeByName(name string) {
	cmd, ok := commandsByName[name]
	if !ok {
		a.setStatus("no such command: " + name)
		return
	}
	a.runCommand(cmd)
}
