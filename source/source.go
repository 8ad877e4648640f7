// Package source provides byte sources for the streaming walker.
//
// A Source hands out one byte at a time with no peeking and no rewind;
// io.EOF signals a clean end of stream. Implementations cover in-memory
// input, buffered readers, a bounded producer/consumer queue and a
// rate-limited wrapper.
package source

import (
	"bufio"
	"io"
)

// Source is a pull interface over a forward-only byte stream.
type Source interface {
	// Next returns the next byte, io.EOF at end of stream, or a read error.
	Next() (byte, error)
}

// Buffer serves bytes from an in-memory slice.
type Buffer struct {
	data []byte
	pos  int
}

// Bytes wraps a byte slice. The slice is not copied.
func Bytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// String wraps a string.
func String(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

func (b *Buffer) Next() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}

	c := b.data[b.pos]
	b.pos++
	return c, nil
}

// Reader adapts an io.Reader, buffering reads internally.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r for byte-at-a-time consumption. Files and network
// connections should go through this rather than a custom Source.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

func (r *Reader) Next() (byte, error) {
	return r.r.ReadByte()
}
