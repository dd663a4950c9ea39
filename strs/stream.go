package strs

import (
	"fmt"
	"io"

	"github.com/ahmedabdelhay/gedo"
)

// StreamBuffer is a cursor over a block of bytes, used when parsing file
// contents that were read into an allocator block.
//
// | consumed bytes | readable bytes |
// 0    <=       cursor      <=    size
//
// StreamBuffer implements io.Reader and io.ByteReader. It does not own
// the block; the caller frees it through whichever allocator issued it.
type StreamBuffer struct {
	block  gedo.Block
	cursor int
}

// NewStream creates a stream over block starting at offset 0.
func NewStream(block gedo.Block) *StreamBuffer {
	return &StreamBuffer{block: block}
}

// Readable returns the number of bytes left to read.
func (s *StreamBuffer) Readable() int {
	return s.block.Size() - s.cursor
}

// Cursor returns the current offset.
func (s *StreamBuffer) Cursor() int {
	return s.cursor
}

// ReadByte reads one byte, or io.EOF when the stream is exhausted.
func (s *StreamBuffer) ReadByte() (byte, error) {
	if s.Readable() == 0 {
		return 0, io.EOF
	}
	v := s.block.Data()[s.cursor]
	s.cursor++
	return v, nil
}

// MustReadByte is similar to ReadByte, but panics on error.
func (s *StreamBuffer) MustReadByte() byte {
	v, err := s.ReadByte()
	if err != nil {
		panic(err)
	}
	return v
}

// Peek returns the next n bytes without moving the cursor. It panics
// when fewer than n bytes are readable.
func (s *StreamBuffer) Peek(n int) []byte {
	if n > s.Readable() {
		panic(fmt.Sprintf("peek %d bytes, but readable is %d", n, s.Readable()))
	}
	return s.block.Data()[s.cursor : s.cursor+n]
}

// Skip advances the cursor by n. It panics when n exceeds the readable
// bytes.
func (s *StreamBuffer) Skip(n int) {
	if n > s.Readable() {
		panic(fmt.Sprintf("invalid skip %d, readable %d", n, s.Readable()))
	}
	s.cursor += n
}

// Read implements io.Reader. Returns 0, io.EOF once exhausted.
func (s *StreamBuffer) Read(dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	n := s.Readable()
	if n == 0 {
		return 0, io.EOF
	}
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst, s.block.Data()[s.cursor:s.cursor+n])
	s.cursor += n
	return n, nil
}

// ReadLine reads up to and excluding the next '\n', consuming the
// newline. The returned slice aliases the block.
func (s *StreamBuffer) ReadLine() ([]byte, error) {
	if s.Readable() == 0 {
		return nil, io.EOF
	}
	data := s.block.Data()
	start := s.cursor
	for s.cursor < len(data) {
		if data[s.cursor] == '\n' {
			line := data[start:s.cursor]
			s.cursor++
			return line, nil
		}
		s.cursor++
	}
	return data[start:], nil
}

// Rewind moves the cursor back to the start of the block.
func (s *StreamBuffer) Rewind() {
	s.cursor = 0
}
