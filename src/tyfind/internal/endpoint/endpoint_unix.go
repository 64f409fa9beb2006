//go:build unix

package endpoint

import (
	"fmt"
	"os"
	"syscall"
)

func currentUID() int {
	return os.Getuid()
}

func (e *endpoint) Supported() bool {
	return true
}

// Reclaim unlinks a leftover socket from a crashed daemon. Ownership is
// checked first: a path owned by another user is an attack surface, not a
// stale socket, and is left alone.
func (e *endpoint) Reclaim() error {
	info, err := e.fs.Stat(e.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.Mode()&os.ModeSocket == 0 {
		return fmt.Errorf("refusing to remove %s: not a socket", e.path)
	}
	if err := e.checkOwner(info); err != nil {
		return err
	}

	return e.fs.Remove(e.path)
}

// Secure restricts the freshly bound socket to its owner before any
// connection is accepted.
func (e *endpoint) Secure() error {
	if err := e.fs.Chmod(e.path, 0o600); err != nil {
		return fmt.Errorf("restricting socket permissions: %w", err)
	}

	info, err := e.fs.Stat(e.path)
	if err != nil {
		return err
	}
	return e.checkOwner(info)
}

func (e *endpoint) checkOwner(info os.FileInfo) error {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fmt.Errorf("cannot determine owner of %s", e.path)
	}
	if int(st.Uid) != currentUID() {
		return fmt.Errorf("socket %s is owned by uid %d, not the current user", e.path, st.Uid)
	}
	return nil
}
