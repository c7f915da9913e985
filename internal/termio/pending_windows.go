//go:build windows

package termio

// pendingInput always reports nothing pending on Windows: the console API
// needs a different non-blocking-read strategy than poll(2), so until one
// is wired in the input goroutine just falls through to its sleep-and-retry
// path on every tick.
func pendingInput(uintptr) (int, error) {
	return 0, nil
}
