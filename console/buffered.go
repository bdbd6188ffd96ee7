package console

import "github.com/beanstalk-lang/librt"

const defaultBufferSize = 128

// Buffered collects bytes in a fixed-capacity buffer and writes them out in
// one gateway call per Flush. Like Writer, it is not safe for concurrent
// use without an external lock.
type Buffered struct {
	gw  librt.Gateway
	fd  int32
	buf []byte
}

func NewBuffered(gw librt.Gateway, fd int32, size int) *Buffered {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &Buffered{gw: gw, fd: fd, buf: make([]byte, 0, size)}
}

func (b *Buffered) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if len(b.buf) == cap(b.buf) {
			if err := b.Flush(); err != nil {
				return written, err
			}
		}
		n := copy(b.buf[len(b.buf):cap(b.buf)], p)
		b.buf = b.buf[:len(b.buf)+n]
		p = p[n:]
		written += n
	}
	return written, nil
}

func (b *Buffered) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// Flush writes the pending bytes in a single gateway call. On a short write
// the unwritten tail stays buffered and a PartialWriteError is returned, so
// the caller decides whether to Flush again.
func (b *Buffered) Flush() error {
	if len(b.buf) == 0 {
		return nil
	}
	length := int32(len(b.buf))
	n, err := b.gw.RawWrite(b.fd, b.buf, length)
	if err != nil {
		return err
	}
	if n < length {
		rest := copy(b.buf, b.buf[n:])
		b.buf = b.buf[:rest]
		return &librt.PartialWriteError{Requested: length, Written: n}
	}
	b.buf = b.buf[:0]
	return nil
}

// Pending reports how many bytes are waiting for the next Flush.
func (b *Buffered) Pending() int {
	return len(b.buf)
}
