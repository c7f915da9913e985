//go:build windows

package termio

// NotifyResize is a no-op on Windows: there is no SIGWINCH analog for
// a console resize, so the main loop simply never receives one here.
func NotifyResize() (<-chan struct{}, func()) {
	return make(chan struct{}), func() {}
}
