// Package endpoint computes the per-user daemon socket address and enforces
// owner-only access on it. The address is stable for a given user so that
// every CLI invocation and the daemon agree without coordination.
package endpoint

import (
	"fmt"
	"path/filepath"

	"github.com/tyfind/tyfind/src/tyfind/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
)

const (
	_configKeySocketDir = "daemon.socketDir"

	// _productTag prefixes the socket file name.
	_productTag = "tyfind"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ErrUnsupported is returned on platforms without Unix domain sockets. Any
// daemon-dependent call should surface this instead of a cryptic connect
// error.
var ErrUnsupported = fmt.Errorf("daemon mode is not supported on this platform")

// Endpoint names the daemon's local socket and guards its permissions.
type Endpoint interface {
	// Path returns the socket path for the invoking user.
	Path() string
	// Supported reports whether this platform has a usable local transport.
	Supported() bool
	// Reclaim removes a stale socket file. It refuses to touch a path owned
	// by a different user or one that is not a socket.
	Reclaim() error
	// Secure restricts the bound socket to the owner (mode 0600).
	Secure() error
	// Remove deletes the socket file on graceful shutdown.
	Remove() error
}

// Params define values to be used by the endpoint.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.TyfindFS
}

type endpoint struct {
	path string
	fs   fs.TyfindFS
}

// New computes the endpoint address from configuration and the invoking
// user's identity.
func New(p Params) (Endpoint, error) {
	var dir string
	if err := p.Config.Get(_configKeySocketDir).Populate(&dir); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeySocketDir, err)
	}
	if dir == "" {
		dir = p.FS.TempDir()
	}

	name := fmt.Sprintf("%s-%d.sock", _productTag, currentUID())
	return &endpoint{
		path: filepath.Join(dir, name),
		fs:   p.FS,
	}, nil
}

// NewWithFS builds an endpoint outside of an fx app, for CLI-side use where
// no config provider is wired.
func NewWithFS(tfs fs.TyfindFS) Endpoint {
	name := fmt.Sprintf("%s-%d.sock", _productTag, currentUID())
	return &endpoint{
		path: filepath.Join(tfs.TempDir(), name),
		fs:   tfs,
	}
}

func (e *endpoint) Path() string {
	return e.path
}

func (e *endpoint) Remove() error {
	exists, err := e.fs.FileExists(e.path)
	if err != nil || !exists {
		return err
	}
	return e.fs.Remove(e.path)
}
