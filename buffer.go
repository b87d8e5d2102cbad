package mbcodec

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// BufferSize is the default size for buffer.
	BufferSize = 128 * 1024
)

// ErrExhausted is returned when the buffer runs out of bits in the middle of a read.
var ErrExhausted = errors.New("mbcodec: bit buffer exhausted")

// BitReader is the bit cursor consumed by the decoder. Bits are read MSB-first.
type BitReader interface {
	// Peek returns the next count bits without consuming them. Bits past the end
	// of the data read as zero.
	Peek(count int) uint32
	// Read consumes and returns the next count bits.
	Read(count int) (uint32, error)
	// Skip consumes count bits.
	Skip(count int) error
}

// LoadFunc callback function.
type LoadFunc func(buffer *Buffer)

// Buffer provides the compressed bits for the decoder.
type Buffer struct {
	reader io.Reader
	bytes  []byte

	bitIndex int

	hasEnded    bool
	endSignaled bool
	discardRead bool

	chunk        []byte
	loadCallback LoadFunc
}

// NewBuffer creates a buffer instance. With a nil reader the data is supplied via Write.
func NewBuffer(r io.Reader) *Buffer {
	buf := &Buffer{}

	buf.reader = r
	buf.bytes = make([]byte, 0, BufferSize)
	buf.discardRead = true

	if r != nil {
		buf.chunk = make([]byte, BufferSize)
		buf.loadCallback = buf.LoadReaderCallback
	}

	return buf
}

// NewBufferBytes creates a buffer over a fixed byte slice.
func NewBufferBytes(p []byte) *Buffer {
	buf := NewBuffer(nil)
	buf.Write(p)
	buf.SignalEnd()

	return buf
}

// Bytes returns a slice holding the unread portion of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.bytes[b.bitIndex>>3:]
}

// Write appends the contents of p to the buffer.
func (b *Buffer) Write(p []byte) int {
	if b.discardRead {
		b.discardReadBytes()
	}

	b.bytes = append(b.bytes, p...)

	b.hasEnded = false

	return len(p)
}

// SignalEnd marks the current byte length as the end of this buffer and signal that no
// more data is expected to be written to it. This function should be called
// just after the last Write().
func (b *Buffer) SignalEnd() {
	b.endSignaled = true
}

// SetLoadCallback sets a callback that is called whenever the buffer needs more data.
func (b *Buffer) SetLoadCallback(callback LoadFunc) {
	b.loadCallback = callback
}

// Remaining returns the number of remaining (yet unread) bits in the buffer.
func (b *Buffer) Remaining() int {
	return (len(b.bytes) << 3) - b.bitIndex
}

// HasEnded checks whether the read position of the buffer is at the end and no more data is expected.
func (b *Buffer) HasEnded() bool {
	return b.hasEnded
}

// LoadReaderCallback is a callback that is called whenever the buffer needs more data.
func (b *Buffer) LoadReaderCallback(buffer *Buffer) {
	if b.endSignaled || b.reader == nil {
		return
	}

	n, err := io.ReadFull(b.reader, b.chunk)
	if n > 0 {
		b.Write(b.chunk[:n])
	}

	if err != nil {
		// Short or empty read, the reader has nothing more to give
		b.SignalEnd()
	}
}

// Align skips to the next byte boundary.
func (b *Buffer) Align() {
	b.bitIndex = ((b.bitIndex + 7) >> 3) << 3 // Align to next byte
}

// Peek returns the next count bits (count <= 32) without consuming them.
func (b *Buffer) Peek(count int) uint32 {
	n := count
	if !b.has(count) {
		n = b.Remaining()
	}

	value := b.read(n)
	b.bitIndex -= n

	return value << (count - n)
}

// Read consumes the next count bits (count <= 32).
func (b *Buffer) Read(count int) (uint32, error) {
	if !b.has(count) {
		return 0, ErrExhausted
	}

	return b.read(count), nil
}

// Skip consumes count bits.
func (b *Buffer) Skip(count int) error {
	if !b.has(count) {
		return ErrExhausted
	}

	b.bitIndex += count

	return nil
}

func (b *Buffer) discardReadBytes() {
	bytePos := b.bitIndex >> 3
	if bytePos == len(b.bytes) {
		b.bytes = b.bytes[:0]

		b.bitIndex = 0
	} else if bytePos > 0 {
		copy(b.bytes, b.bytes[bytePos:])
		b.bytes = b.bytes[:len(b.bytes)-bytePos]

		b.bitIndex -= bytePos << 3
	}
}

func (b *Buffer) has(count int) bool {
	if ((len(b.bytes) << 3) - b.bitIndex) >= count {
		return true
	}

	if b.loadCallback != nil {
		b.loadCallback(b)

		if ((len(b.bytes) << 3) - b.bitIndex) >= count {
			return true
		}
	}

	if b.endSignaled {
		b.hasEnded = true
	}

	return false
}

// read assumes that count bits are available.
func (b *Buffer) read(count int) uint32 {
	var value uint32
	for count != 0 {
		currentByte := uint32(b.bytes[b.bitIndex>>3])

		remaining := 8 - (b.bitIndex & 7) // Remaining bits in byte
		read := count
		if remaining < count { // Bits in self run
			read = remaining
		}

		shift := remaining - read
		mask := uint32(0xff) >> (8 - read)

		value = (value << read) | ((currentByte & (mask << shift)) >> shift)

		b.bitIndex += read
		count -= read
	}

	return value
}
