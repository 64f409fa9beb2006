//go:build unix

package client

import (
	"os/exec"
	"syscall"
)

// detach starts the daemon in its own session so it survives the CLI's
// terminal and does not receive its signals.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
