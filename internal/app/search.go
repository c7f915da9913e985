package app

import (
	"github.com/sanohiro/ze/internal/input"
	"github.com/sanohiro/ze/internal/search"
)

// startISearch enters incremental search mode, forward or backward,
// literal or regex.
func (a *App) startISearch(forward, regex bool) {
	kind := promptISearchForward
	label := "I-search: "
	switch {
	case forward && regex:
		kind, label = promptRegexISearchForward, "Regex I-search: "
	case !forward && regex:
		kind, label = promptRegexISearchBackward, "Regex I-search backward: "
	case !forward && !regex:
		kind, label = promptISearchBackward, "I-search backward: "
	}
	a.enterPrompt(kind, label)
	a.prompt.regex = regex
}

// runIncrementalSearch re-runs the search from the prompt's origin using
// the minibuffer's current content as the pattern, moving the cursor to
// the match (or leaving it put, with a status message, if nothing matches).
func (a *App) runIncrementalSearch() {
	pattern := string(a.mb.Content)
	ed := a.currentEditor()
	ed.View.SearchHighlight = pattern
	if pattern == "" {
		ed.View.CursorPos = a.prompt.origin
		ed.View.ClearError()
		return
	}
	forward := a.prompt.kind == promptISearchForward || a.prompt.kind == promptRegexISearchForward
	m, ok := a.searchOnce(forward, a.prompt.regex, pattern, a.prompt.origin)
	if !ok {
		ed.View.SetError("no match: " + pattern)
		return
	}
	ed.View.ClearError()
	if forward {
		ed.View.CursorPos = m.Start + m.Len
	} else {
		ed.View.CursorPos = m.Start
	}
}

// repeatISearch continues the current search from the cursor instead of
// the original anchor, the behavior of pressing C-s/C-r again mid-search.
func (a *App) repeatISearch(forward bool) {
	pattern := string(a.mb.Content)
	if pattern == "" {
		return
	}
	ed := a.currentEditor()
	m, ok := a.searchOnce(forward, a.prompt.regex, pattern, ed.View.CursorPos)
	if !ok {
		ed.View.SetError("no more matches: " + pattern)
		return
	}
	ed.View.ClearError()
	if forward {
		ed.View.CursorPos = m.Start + m.Len
	} else {
		ed.View.CursorPos = m.Start
	}
}

func (a *App) searchOnce(forward, regex bool, pattern string, start int) (*search.Match, bool) {
	ed := a.currentEditor()
	text := ed.Doc.Buf.Bytes()
	svc := ed.Doc.Search
	switch {
	case forward && regex:
		return svc.SearchRegexForward(text, pattern, start)
	case forward && !regex:
		return svc.SearchForward(text, pattern, start)
	case !forward && regex:
		return svc.SearchRegexBackward(text, pattern, start)
	default:
		return svc.SearchBackward(text, pattern, start)
	}
}

// startQueryReplace begins the two-prompt query-replace flow: first the
// search text, then the replacement, then an interactive confirm loop.
func (a *App) startQueryReplace(regex bool) {
	label := "Query replace: "
	if regex {
		label = "Query replace regex: "
	}
	a.enterPrompt(promptReplaceSearch, label)
	a.prompt.regex = regex
}

// beginReplaceConfirm finds the first match after the prompt origin and
// starts the y/n/!/q confirm loop.
func (a *App) beginReplaceConfirm() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		a.exitPrompt()
		return
	}
	a.prompt.kind = promptReplaceConfirm
	if !a.advanceReplaceMatch(a.prompt.origin) {
		a.setStatus("no matches for " + a.prompt.searchText)
		a.exitPrompt()
	}
}

// advanceReplaceMatch finds the next match at or after from and moves
// the cursor there, returning false if none remain (wraparound matches
// that land before from mean the scan has covered the whole buffer).
func (a *App) advanceReplaceMatch(from int) bool {
	ed := a.currentEditor()
	m, ok := a.searchOnce(true, a.prompt.regex, a.prompt.searchText, from)
	if !ok || m.Start < from {
		return false
	}
	a.prompt.matchStart = m.Start
	a.prompt.matchLen = m.Len
	ed.View.CursorPos = m.Start
	ed.View.SearchHighlight = a.prompt.searchText
	return true
}

func (a *App) handleReplaceConfirmKey(k input.Key) {
	if k.Kind == input.KindCtrl && k.Byte == 'g' {
		a.cancelPrompt()
		return
	}
	if k.Kind != input.KindChar {
		return
	}
	switch k.Byte {
	case 'y', ' ':
		a.replaceCurrentMatch()
		a.continueOrFinishReplace(a.prompt.matchStart)
	case 'n':
		a.continueOrFinishReplace(a.skipCurrentMatch())
	case '!':
		for {
			a.replaceCurrentMatch()
			if !a.advanceReplaceMatch(a.prompt.matchStart) {
				break
			}
		}
		a.exitPrompt()
	case 'q':
		a.exitPrompt()
	}
}

func (a *App) replaceCurrentMatch() {
	ed := a.currentEditor()
	if err := ed.DeleteRange(a.prompt.matchStart, a.prompt.matchLen); err != nil {
		a.setStatus(err.Error())
		return
	}
	ed.View.CursorPos = a.prompt.matchStart
	if err := ed.Insert([]byte(a.prompt.replaceText)); err != nil {
		a.setStatus(err.Error())
		return
	}
	a.prompt.matchStart += len(a.prompt.replaceText)
}

// skipCurrentMatch returns the search start for declining the current
// match (the 'n' key): past its end, so the same match is never
// re-presented. A zero-length match still has to advance by at least
// one byte or the next search would just find it again at matchStart.
func (a *App) skipCurrentMatch() int {
	step := a.prompt.matchLen
	if step == 0 {
		step = 1
	}
	return a.prompt.matchStart + step
}

func (a *App) continueOrFinishReplace(from int) {
	if !a.advanceReplaceMatch(from) {
		a.exitPrompt()
	}
}
