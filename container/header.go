package container

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mrjoshuak/go-huffman/huffman"
	"github.com/mrjoshuak/go-huffman/internal/xdr"
)

// HeaderSize is the fixed size of the frequency header: 256 counts of 4
// bytes each, one per byte value in ascending order.
const HeaderSize = 256 * 4

// ErrCorrupt reports an archive whose header or payload is internally
// inconsistent.
var ErrCorrupt = errors.New("container: corrupt archive")

// WriteHeader serializes ft as 256 little-endian int32 counts.
func WriteHeader(w io.Writer, ft *huffman.FreqTable) error {
	for i, c := range ft {
		if err := xdr.WriteInt32(w, c); err != nil {
			return errors.Wrapf(err, "container: writing count for symbol %d", i)
		}
	}
	return nil
}

// ReadHeader reads the frequency header back. A short read or a negative
// count marks the archive corrupt.
func ReadHeader(r io.Reader) (*huffman.FreqTable, error) {
	var ft huffman.FreqTable
	for i := range ft {
		c, err := xdr.ReadInt32(r)
		if err != nil {
			return nil, errors.Wrap(err, "container: reading frequency header")
		}
		if c < 0 {
			return nil, errors.Wrapf(ErrCorrupt, "negative count %d for symbol %d", c, i)
		}
		ft[i] = c
	}
	return &ft, nil
}
