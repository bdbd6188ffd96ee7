// Package console writes formatted text through a syscall gateway.
package console

import (
	"github.com/beanstalk-lang/librt"
	"github.com/beanstalk-lang/librt/conv"
)

// Writer formats values and hands each exactly-sized buffer to the gateway
// in a single write. It holds no state between calls; sharing one
// descriptor across goroutines requires an external lock.
type Writer struct {
	gw librt.Gateway
	fd int32
}

func NewWriter(gw librt.Gateway, fd int32) *Writer {
	return &Writer{gw: gw, fd: fd}
}

func (w *Writer) Print(s string) error {
	return w.emit([]byte(s))
}

func (w *Writer) PrintInt8(v int8) error { return w.emit(conv.FormatInt8(v)) }

func (w *Writer) PrintInt16(v int16) error { return w.emit(conv.FormatInt16(v)) }

func (w *Writer) PrintInt32(v int32) error { return w.emit(conv.FormatInt32(v)) }

func (w *Writer) PrintInt64(v int64) error { return w.emit(conv.FormatInt64(v)) }

func (w *Writer) PrintUint8(v uint8) error { return w.emit(conv.FormatUint8(v)) }

func (w *Writer) PrintUint16(v uint16) error { return w.emit(conv.FormatUint16(v)) }

func (w *Writer) PrintUint32(v uint32) error { return w.emit(conv.FormatUint32(v)) }

func (w *Writer) PrintUint64(v uint64) error { return w.emit(conv.FormatUint64(v)) }

func (w *Writer) emit(buf []byte) error {
	length := int32(len(buf))
	n, err := w.gw.RawWrite(w.fd, buf, length)
	if err != nil {
		return err
	}
	if n < length {
		return &librt.PartialWriteError{Requested: length, Written: n}
	}
	return nil
}
