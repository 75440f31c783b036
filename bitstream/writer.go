package bitstream

import (
	"bufio"
	"io"
)

// Writer writes a byte stream one bit at a time. Call Flush after the last
// bit; a trailing partial byte is zero-padded on the low side. Writer is not
// safe for concurrent use.
type Writer struct {
	dst     io.ByteWriter
	flusher flusher // non-nil when dst buffers; drained by Flush
	cur     byte    // byte currently being filled
	pos     uint8   // bits already placed into cur
}

type flusher interface {
	Flush() error
}

// NewWriter returns a Writer emitting bits to w. If w does not implement
// io.ByteWriter it is wrapped in a bufio.Writer. Flush drains the wrapper,
// or w itself when it is a buffered writer of its own.
func NewWriter(w io.Writer) *Writer {
	bw, ok := w.(io.ByteWriter)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	f, _ := bw.(flusher)
	return &Writer{dst: bw, flusher: f}
}

// WriteBit appends the least-significant bit of bit to the stream. A full
// cache byte is emitted before the new bit is accepted.
func (w *Writer) WriteBit(bit byte) error {
	if w.pos > 7 {
		if err := w.dst.WriteByte(w.cur); err != nil {
			return err
		}
		w.cur = 0
		w.pos = 0
	}
	w.cur |= (bit & 1) << (7 - w.pos)
	w.pos++
	return nil
}

// Flush emits the cache byte if it holds at least one bit and drains the
// underlying buffered writer. Flushing an empty cache writes no byte, so
// repeated flushes never emit spurious zeros.
func (w *Writer) Flush() error {
	if w.pos > 0 {
		if err := w.dst.WriteByte(w.cur); err != nil {
			return err
		}
		w.cur = 0
		w.pos = 0
	}
	if w.flusher != nil {
		return w.flusher.Flush()
	}
	return nil
}
