package sandbox

import (
	"io"
	"os"
)

// NewIOAdapter bundles arbitrary streams into an IO.
func NewIOAdapter(stdin io.ReadCloser, stdout, stderr io.WriteCloser) *IOAdapter {
	return &IOAdapter{
		In:  stdin,
		Out: stdout,
		Err: stderr,
	}
}

// NewNullIO returns an IO whose input is closed and whose outputs discard.
func NewNullIO() IO {
	return NewIOAdapter(&ClosedReader{}, &NopWriteCloser{}, &NopWriteCloser{})
}

// NewOSIO returns an IO attached to the host process's streams.
func NewOSIO() IO {
	return NewIOAdapter(os.Stdin, os.Stdout, os.Stderr)
}

// NewStreamIO adapts plain reader/writers, adding no-op closes.
func NewStreamIO(stdin io.Reader, stdout, stderr io.Writer) IO {
	return NewIOAdapter(io.NopCloser(stdin), WriteCloser{stdout}, WriteCloser{stderr})
}

type IOAdapter struct {
	In  io.ReadCloser
	Out io.WriteCloser
	Err io.WriteCloser
}

var _ IO = (*IOAdapter)(nil)

func (a *IOAdapter) Stdin() io.ReadCloser   { return a.In }
func (a *IOAdapter) Stdout() io.WriteCloser { return a.Out }
func (a *IOAdapter) Stderr() io.WriteCloser { return a.Err }

// ClosedReader implements io.ReadCloser and always returns ErrClosed on Read.
type ClosedReader struct{}

var _ io.ReadCloser = (*ClosedReader)(nil)

func (*ClosedReader) Read([]byte) (int, error) { return 0, os.ErrClosed }
func (*ClosedReader) Close() error             { return nil }

// NopWriteCloser discards writes.
type NopWriteCloser struct{}

var _ io.WriteCloser = (*NopWriteCloser)(nil)

func (*NopWriteCloser) Write(b []byte) (int, error) { return len(b), nil }
func (*NopWriteCloser) Close() error                { return nil }

// WriteCloser adds a no-op Close to an io.Writer.
type WriteCloser struct{ io.Writer }

func (WriteCloser) Close() error { return nil }
