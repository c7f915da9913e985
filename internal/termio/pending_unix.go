//go:build !windows

package termio

import "golang.org/x/sys/unix"

// pendingInput does a zero-timeout poll(2) on fd: enough for the input
// goroutine to tell "nothing to read yet, sleep and try again" apart from
// "bytes are waiting" without ever blocking inside the syscall itself.
func pendingInput(fd uintptr) (int, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	ready, err := unix.Poll(fds, 0)
	if err != nil {
		return 0, err
	}
	if ready == 0 {
		return 0, nil
	}
	if fds[0].Revents&unix.POLLIN != 0 {
		return 1, nil
	}
	return 0, nil
}
