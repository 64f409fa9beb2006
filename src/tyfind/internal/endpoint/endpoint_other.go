//go:build !unix

package endpoint

func currentUID() int {
	return 0
}

func (e *endpoint) Supported() bool {
	return false
}

func (e *endpoint) Reclaim() error {
	return ErrUnsupported
}

func (e *endpoint) Secure() error {
	return ErrUnsupported
}
