// Package bitstream implements single-bit reading and writing over byte
// streams.
//
// Bits within a byte are addressed most-significant-bit first: the first bit
// written to a byte occupies bit 7, the eighth occupies bit 0. A Reader and a
// Writer therefore agree on every bit position, which is what keeps the
// Huffman payload symmetric between the compress and decompress sides.
package bitstream

import (
	"bufio"
	"io"
)

// Reader reads a byte stream one bit at a time.
//
// Once the underlying source is exhausted, every ReadBit call returns io.EOF;
// end of data is never reported as a 0 bit. Reader is not safe for concurrent
// use.
type Reader struct {
	src io.ByteReader
	cur byte  // byte currently being consumed
	pos uint8 // bits already consumed from cur; 8 means a refill is due
}

// NewReader returns a Reader taking bits from r. If r does not implement
// io.ByteReader it is wrapped in a bufio.Reader.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{src: br, pos: 8}
}

// ReadBit returns the next bit as 0 or 1. At end of data it returns io.EOF,
// repeatably. Errors from the underlying source are returned unchanged.
func (r *Reader) ReadBit() (byte, error) {
	if r.pos > 7 {
		b, err := r.src.ReadByte()
		if err != nil {
			// Cache state stays untouched so the next call reports
			// the same condition.
			return 0, err
		}
		r.cur = b
		r.pos = 0
	}
	bit := (r.cur >> (7 - r.pos)) & 1
	r.pos++
	return bit, nil
}
