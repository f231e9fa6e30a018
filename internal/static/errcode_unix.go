//go:build unix

package static

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// errorCode returns the symbolic errno name (EACCES, EISDIR, ...) behind err.
func errorCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if name := unix.ErrnoName(errno); name != "" {
			return name
		}
	}
	return err.Error()
}
