package mbcodec

import (
	"bufio"
	"io"
)

// BitWriter is the bit cursor the encoder emits into.
type BitWriter interface {
	// Put emits the least significant count bits of value, MSB-first.
	Put(value uint32, count int)
}

// Writer packs bits into bytes and writes them to an io.Writer.
type Writer struct {
	w *bufio.Writer

	bits  uint64
	nBits int
	count int

	err error
}

// NewWriter creates a bit writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Put emits the least significant count bits of value. The precondition is count <= 32.
func (w *Writer) Put(value uint32, count int) {
	if w.err != nil || count == 0 {
		return
	}

	w.bits = (w.bits << count) | (uint64(value) & (1<<count - 1))
	w.nBits += count
	w.count += count

	for w.nBits >= 8 {
		w.nBits -= 8
		if err := w.w.WriteByte(byte(w.bits >> w.nBits)); err != nil {
			w.err = err
			return
		}
	}
}

// Len returns the number of bits emitted so far, excluding padding.
func (w *Writer) Len() int {
	return w.count
}

// Flush pads the last partial byte with zero bits and flushes the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}

	if w.nBits > 0 {
		pad := 8 - w.nBits
		w.Put(0, pad)
		w.count -= pad
	}

	if w.err != nil {
		return w.err
	}

	w.err = w.w.Flush()

	return w.err
}
