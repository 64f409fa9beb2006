//go:build !unix

package client

import "os/exec"

// detach is a no-op on platforms without session semantics; daemon mode is
// rejected earlier by the endpoint check.
func detach(cmd *exec.Cmd) {}
