package analyzer

import (
	"io"

	"go.uber.org/multierr"
)

// stdioPipe joins the analyzer child's stdout (reads) and stdin (writes) into
// the single duplex stream jsonrpc2 expects.
type stdioPipe struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (p stdioPipe) Read(b []byte) (int, error) {
	return p.reader.Read(b)
}

func (p stdioPipe) Write(b []byte) (int, error) {
	return p.writer.Write(b)
}

// Close closes both halves. Closing stdin is what signals the child that no
// further requests are coming.
func (p stdioPipe) Close() error {
	return multierr.Append(p.writer.Close(), p.reader.Close())
}
