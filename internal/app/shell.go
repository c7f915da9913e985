package app

import (
	"context"
	"time"

	"github.com/sanohiro/ze/internal/editor"
	"github.com/sanohiro/ze/internal/input"
	"github.com/sanohiro/ze/internal/shellpipe"
)

// startRegionToShell is the M-| handler: it only makes sense with an
// active region, so it rejects before even opening the prompt.
func (a *App) startRegionToShell() {
	if _, _, ok := a.currentEditor().Region(); !ok {
		a.setStatus("no region")
		return
	}
	a.enterPrompt(promptRegionToShell, "Pipe region to: ")
}

// runShellCommand parses and runs one shell-pipeline command line,
// reintegrating its stdout per the parsed sink. forceSelection is set by
// region-to-shell, which always reads the region regardless of the
// parsed source marker.
func (a *App) runShellCommand(raw string, forceSelection bool) {
	cmd, err := shellpipe.Parse(raw)
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	if forceSelection {
		cmd.Source = shellpipe.SourceSelection
	}

	ed := a.currentEditor()
	stdin, ok := a.shellSource(cmd.Source)
	if !ok {
		a.setStatus("no region")
		return
	}

	result, err := a.runWithCancel(cmd.Body, stdin)
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	if result.Truncated {
		a.setStatus("shell output truncated")
	}
	a.applyShellSink(ed, cmd.Source, cmd.Sink, result.Stdout)
}

func (a *App) shellSource(kind shellpipe.SourceKind) ([]byte, bool) {
	ed := a.currentEditor()
	switch kind {
	case shellpipe.SourceLine:
		line, err := ed.Doc.Buf.FindLineByByte(ed.View.CursorPos)
		if err != nil {
			return nil, false
		}
		start, end, err := ed.Doc.Buf.LineRange(line)
		if err != nil {
			return nil, false
		}
		content, _ := ed.Doc.Buf.Range(start, end-start)
		return content, true
	case shellpipe.SourceBuffer:
		return ed.Doc.Buf.Bytes(), true
	default: // SourceSelection
		content, ok := ed.CopyRegion()
		if !ok {
			return nil, false
		}
		return content, true
	}
}

func (a *App) applyShellSink(ed *editor.Editor, src shellpipe.SourceKind, sink shellpipe.SinkKind, out []byte) {
	switch sink {
	case shellpipe.SinkReplace:
		lo, hi, ok := ed.Region()
		switch src {
		case shellpipe.SourceLine:
			line, err := ed.Doc.Buf.FindLineByByte(ed.View.CursorPos)
			if err == nil {
				lo, hi, err = ed.Doc.Buf.LineRange(line)
			}
			ok = err == nil
		case shellpipe.SourceBuffer:
			lo, hi, ok = 0, ed.Doc.Buf.Len(), true
		}
		if !ok {
			a.setStatus("no region to replace")
			return
		}
		if err := ed.DeleteRange(lo, hi-lo); err != nil {
			a.setStatus(err.Error())
			return
		}
		ed.View.CursorPos = lo
		if err := ed.Insert(out); err != nil {
			a.setStatus(err.Error())
		}
		ed.ClearMark()
	case shellpipe.SinkInsert:
		if err := ed.Insert(out); err != nil {
			a.setStatus(err.Error())
		}
	case shellpipe.SinkNewDocument:
		doc := a.docs.Create("", out)
		a.showDocInCurrentWindow(doc)
	default: // SinkScratch
		a.docs.Create("*shell-output*", out)
		a.setStatus("shell output in *shell-output*")
	}
}

// runWithCancel runs the shell command in a goroutine and watches for a
// C-g in the input ring while it waits. Other keys typed while the
// command runs are decoded and discarded rather than queued, since an
// external command is expected to be brief.
func (a *App) runWithCancel(body string, stdin []byte) (shellpipe.Result, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type outcome struct {
		res shellpipe.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := a.shell.Run(ctx, body, stdin)
		done <- outcome{res, err}
	}()

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case o := <-done:
			return o.res, o.err
		case <-ticker.C:
			for {
				k, ok := a.dec.Decode(a.ring)
				if !ok {
					break
				}
				if k.Kind == input.KindCtrl && k.Byte == 'g' {
					cancel()
				}
			}
		}
	}
}
