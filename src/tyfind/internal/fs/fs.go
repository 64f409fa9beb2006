package fs

import (
	"os"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// TyfindFS wraps the filesystem operations used by tyfind so that callers can
// be tested without touching the real filesystem.
type TyfindFS interface {
	DirExists(path string) (bool, error)
	FileExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	Chmod(name string, mode os.FileMode) error
	Stat(name string) (os.FileInfo, error)
	TempDir() string
}

type fsImpl struct{}

// New creates a new TyfindFS.
func New() TyfindFS {
	return fsImpl{}
}

func (fsImpl) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}

func (fsImpl) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

func (fsImpl) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fsImpl) TempDir() string {
	return os.TempDir()
}
