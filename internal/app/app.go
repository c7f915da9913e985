// Package app wires the editing core (document, window, view, editor),
// the keymap dispatcher, and the ambient services (shell pipeline, macro
// recorder, file I/O) into the single-threaded main loop described by
// the concurrency model: one input thread feeding a ring buffer, one
// 8ms-ticked loop that drains it, dispatches, and renders.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/sanohiro/ze/internal/buffer"
	"github.com/sanohiro/ze/internal/config"
	"github.com/sanohiro/ze/internal/document"
	"github.com/sanohiro/ze/internal/editor"
	"github.com/sanohiro/ze/internal/fileio"
	"github.com/sanohiro/ze/internal/input"
	"github.com/sanohiro/ze/internal/keymap"
	"github.com/sanohiro/ze/internal/macro"
	"github.com/sanohiro/ze/internal/minibuffer"
	"github.com/sanohiro/ze/internal/shellpipe"
	"github.com/sanohiro/ze/internal/termio"
	"github.com/sanohiro/ze/internal/view"
	"github.com/sanohiro/ze/internal/window"
	"github.com/sanohiro/ze/pkg/ui"
)

// TickInterval is the main loop's render/poll period.
const TickInterval = 8 * time.Millisecond

// App owns every long-lived service and the main loop that drives them.
type App struct {
	docs    *document.Manager
	windows *window.Manager
	km      *keymap.Keymap
	disp    *keymap.Dispatcher
	macro   *macro.Recorder
	shell   *shellpipe.Runner
	ops     fileio.FileOps
	cfg     *config.Manager

	term  termio.Terminal
	in    *os.File
	out   io.Writer
	ring  *input.RingBuffer
	dec   *input.Decoder

	editors map[*window.Window]*editor.Editor

	mode   mode
	prompt promptState
	mb     *minibuffer.Minibuffer

	history     []string
	historyIdx  int
	historyPath string

	rectangle [][]byte // last killed rectangle, top to bottom
	rows, cols int      // terminal size, excluding the two reserved rows (status line and minibuffer)

	status             string
	quit               bool
	awaited            bool // true if the previous dispatch left the dispatcher mid-prefix
	quitConfirmPending bool
}

// Options configures a new App.
type Options struct {
	Path     string // file to open, or "" for a scratch buffer
	ReadOnly bool
	In       *os.File
	Out      io.Writer
}

// New constructs an App with a single window over the requested file (or
// a scratch buffer), loading persisted search/command history.
func New(opts Options) (*App, error) {
	a := &App{
		docs:    document.New(),
		km:      keymap.NewEmacsKeymap(),
		macro:   macro.NewRecorder(),
		shell:   shellpipe.NewRunner(),
		ops:     fileio.OSFileOps{},
		cfg:     config.NewManager(),
		term:    termio.DefaultTerminal{},
		in:      opts.In,
		out:     opts.Out,
		ring:    input.NewRingBuffer(),
		dec:     input.NewDecoder(),
		editors: make(map[*window.Window]*editor.Editor),
	}
	a.disp = keymap.NewDispatcher(a.km)
	if path := config.DefaultPath(); path != "" {
		// A missing or invalid file is never fatal: ze runs on
		// DefaultConfig when ~/.ze/config.yaml isn't there.
		_ = a.cfg.Load(path)
	}

	var doc *document.Document
	if opts.Path != "" {
		content, meta, err := fileio.Load(a.ops, opts.Path)
		if err != nil {
			return nil, err
		}
		doc = a.docs.Create(filepath.Base(opts.Path), content)
		doc.Path = opts.Path
		doc.Meta = meta
	} else {
		doc = a.docs.Create("", nil)
	}
	doc.ReadOnly = opts.ReadOnly

	w, h := ui.Dimensions(a.out, 80, 24)
	h -= 2 // reserve the bottom two rows for the status line and minibuffer
	v := a.newView(doc.Buf, w, h)
	a.windows = window.New(doc.ID, v, w, h)
	a.cols, a.rows = w, h

	if home, err := os.UserHomeDir(); err == nil {
		a.historyPath = filepath.Join(home, ".ze", "history")
		if lines, err := fileio.LoadHistory(a.ops, a.historyPath); err == nil {
			a.history = lines
		}
	}
	a.historyIdx = len(a.history)

	return a, nil
}

// Run enters raw mode, starts the input thread, and drives the main loop
// until a quit command or a fatal I/O error.
func (a *App) Run() error {
	fd := int(a.in.Fd())
	state, err := a.term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() { _ = a.term.Restore(fd, state) }()

	ui.HideCursor(a.out)
	ui.DisableWrap(a.out)
	defer func() {
		ui.EnableWrap(a.out)
		ui.ShowCursor(a.out)
		ui.ClearScreen(a.out)
	}()

	stop := a.startInputThread()
	defer stop()

	resized, stopResize := termio.NotifyResize()
	defer stopResize()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	a.renderAll()
	for !a.quit {
		select {
		case <-resized:
			a.handleResize()
		default:
		}
		a.drainInput()
		if a.quit {
			break
		}
		a.renderAll()
		<-ticker.C
	}
	a.saveHistory()
	return nil
}

// handleResize re-queries the terminal dimensions and relays out every
// window pane over the new size. window.Manager.Resize walks the whole
// split tree, resizing each leaf's View in place.
func (a *App) handleResize() {
	w, h := ui.Dimensions(a.out, a.cols, a.rows+2)
	h -= 2
	a.cols, a.rows = w, h
	a.windows.Resize(w, h)
}

// startInputThread spawns the dedicated reader goroutine that copies
// stdin bytes into the ring buffer, polling via termio.PendingInput so
// it never blocks the process from exiting.
func (a *App) startInputThread() func() {
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		r := bufio.NewReaderSize(a.in, 4096)
		buf := make([]byte, 256)
		for {
			select {
			case <-done:
				return
			default:
			}
			n, err := a.pollRead(r, buf)
			if n > 0 {
				_, _ = a.ring.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()
	return func() {
		close(done)
		<-stopped
	}
}

func (a *App) pollRead(r *bufio.Reader, buf []byte) (int, error) {
	n := r.Buffered()
	if n == 0 {
		var err error
		n, err = termio.PendingInput(a.in.Fd())
		if err != nil || n == 0 {
			time.Sleep(time.Millisecond)
			return 0, nil
		}
	}
	if n > len(buf) {
		n = len(buf)
	}
	return r.Read(buf[:n])
}

// drainInput decodes and handles every Key currently available.
func (a *App) drainInput() {
	for {
		k, ok := a.dec.Decode(a.ring)
		if !ok {
			return
		}
		a.handleKey(k)
		if a.quit {
			return
		}
	}
}

// handleKey is the single entry point for one Key event, whatever mode
// the app is in.
func (a *App) handleKey(k input.Key) {
	if a.macro.State() == macro.Recording {
		a.macro.RecordKey(k)
	}
	if a.mode == modePrompt {
		a.handlePromptKey(k)
		return
	}
	a.handleNormalKey(k)
}

func (a *App) handleNormalKey(k input.Key) {
	res := a.disp.Handle(k)
	a.awaited = res.Awaiting
	switch {
	case res.Awaiting:
		return
	case res.InsertChar:
		a.insertRune(res.Insert)
	case res.Command != "":
		a.runCommand(res.Command)
	default:
		a.handleUnboundSpecial(k)
	}
}

// handleUnboundSpecial handles the structural keys the keymap leaves
// unbound: newline, tab, and backspace are part of every line editor's
// baseline, not named commands.
func (a *App) handleUnboundSpecial(k input.Key) {
	switch k.Kind {
	case input.KindEnter:
		a.insertBytes([]byte("\n"))
	case input.KindTab:
		a.insertBytes([]byte("\t"))
	case input.KindBackspace:
		a.backwardDeleteChar()
	}
}

func (a *App) insertRune(r rune) {
	a.insertBytes([]byte(string(r)))
}

func (a *App) insertBytes(b []byte) {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	if err := ed.Insert(b); err != nil {
		a.setStatus(err.Error())
	}
}

// backwardDeleteChar removes the grapheme cluster before the cursor. It
// finds the boundary by asking View to step left (which is always
// grapheme-aware) and restoring the cursor before applying the delete,
// since View has no exported "peek previous boundary" of its own.
func (a *App) backwardDeleteChar() {
	ed := a.currentEditor()
	if ed.Doc.ReadOnly {
		a.setStatus("read-only buffer")
		return
	}
	pos := ed.View.CursorPos
	if pos == 0 {
		return
	}
	ed.View.MoveLeft()
	prev := ed.View.CursorPos
	ed.View.CursorPos = pos
	if err := ed.DeleteRange(prev, pos-prev); err != nil {
		a.setStatus(err.Error())
	}
}

// currentEditor returns the Editor bound to the focused window, building
// and caching one on first use. *window.Window pointer identity is
// stable for a leaf's lifetime, so the cache survives splits elsewhere
// in the tree and is only lost when that specific pane is closed.
func (a *App) currentEditor() *editor.Editor {
	win := a.windows.Current()
	if ed, ok := a.editors[win]; ok {
		return ed
	}
	doc, _ := a.docs.Find(win.DocID)
	ed := editor.New(doc, win.View)
	a.editors[win] = ed
	return ed
}

// newView constructs a View carrying the editor's loaded settings, so
// every pane opened after startup (a split, a reused window after
// switching buffers) matches the initial one instead of reverting to
// view.New's bare defaults.
func (a *App) newView(buf *buffer.Buffer, w, h int) *view.View {
	v := view.New(buf, w, h)
	settings := a.cfg.GetConfig()
	v.TabWidth = settings.TabWidth
	v.ScrollMargin = settings.ScrollMargin
	v.LineNumbersOn = settings.LineNumbers
	return v
}

func (a *App) setStatus(msg string) {
	a.status = msg
}

func (a *App) saveHistory() {
	if a.historyPath == "" {
		return
	}
	_ = fileio.SaveHistory(a.ops, a.historyPath, a.history)
}

func (a *App) pushHistory(entry string) {
	if entry == "" {
		return
	}
	if n := len(a.history); n > 0 && a.history[n-1] == entry {
		a.historyIdx = len(a.history)
		return
	}
	a.history = append(a.history, entry)
	a.historyIdx = len(a.history)
}

// StdoutTerminal returns os.Stdin/os.Stdout for raw-mode I/O when stdin
// is a terminal, and an error otherwise (tests, pipes). It does not open
// /dev/tty.
func StdoutTerminal() (*os.File, io.Writer, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, os.Stdout, nil
	}
	return nil, nil, fmt.Errorf("stdin is not a terminal")
}
