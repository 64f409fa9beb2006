package analyzer

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHalf struct {
	io.Reader
	io.Writer
	closed   bool
	closeErr error
}

func (f *fakeHalf) Close() error {
	f.closed = true
	return f.closeErr
}

func TestStdioPipeClose(t *testing.T) {
	t.Run("closes both halves", func(t *testing.T) {
		reader := &fakeHalf{}
		writer := &fakeHalf{}
		pipe := stdioPipe{reader: reader, writer: writer}

		assert.NoError(t, pipe.Close())
		assert.True(t, reader.closed)
		assert.True(t, writer.closed)
	})

	t.Run("reader close failure does not skip the writer", func(t *testing.T) {
		reader := &fakeHalf{closeErr: errors.New("reader close failed")}
		writer := &fakeHalf{}
		pipe := stdioPipe{reader: reader, writer: writer}

		assert.Error(t, pipe.Close())
		assert.True(t, writer.closed)
	})
}
