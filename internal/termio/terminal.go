// Package termio wraps the raw-mode and non-blocking-read primitives that
// App.Run needs to drive its single input goroutine: put the descriptor
// into raw mode for the duration of the session, and let that goroutine
// probe for readable bytes instead of blocking a read() call that would
// otherwise keep the process alive past quit.
package termio

import "golang.org/x/term"

// Terminal abstracts raw-mode control so App can run its main loop
// against a fake in tests without touching the real stdin fd.
type Terminal interface {
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
}

// DefaultTerminal drives raw-mode transitions through golang.org/x/term.
type DefaultTerminal struct{}

// MakeRaw switches fd into raw mode, disabling line buffering and echo so
// every keystroke reaches the editor's decoder immediately.
func (DefaultTerminal) MakeRaw(fd int) (*term.State, error) {
	return term.MakeRaw(fd)
}

// Restore puts fd back into the state captured by MakeRaw, run as a
// deferred cleanup in App.Run regardless of how the main loop exits.
func (DefaultTerminal) Restore(fd int, state *term.State) error {
	return term.Restore(fd, state)
}

var pendingInputHook = pendingInput

// PendingInput reports whether the input goroutine could read from fd
// right now without blocking: 1 when bytes are ready, 0 otherwise, never
// a byte count. App.pollRead calls this whenever its bufio.Reader holds
// no buffered bytes, instead of issuing a blocking Read, so Run's stop
// channel can still unblock the goroutine on quit.
func PendingInput(fd uintptr) (int, error) {
	return pendingInputHook(fd)
}

// SetPendingInputFunc swaps in a fake probe for testing the input
// goroutine's polling loop without a real terminal descriptor; the
// returned closure restores whatever probe was installed before it.
func SetPendingInputFunc(fn func(uintptr) (int, error)) func() {
	prev := pendingInputHook
	pendingInputHook = fn
	return func() { pendingInputHook = prev }
}
