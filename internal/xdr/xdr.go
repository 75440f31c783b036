// Package xdr provides the fixed byte-order primitives shared by the
// container format. Every multi-byte value in an archive uses ByteOrder,
// which keeps the compress and decompress sides consistent regardless of
// the host platform.
package xdr

import (
	"encoding/binary"
	"io"
)

// ByteOrder is the byte order of every multi-byte value in the container
// format.
var ByteOrder = binary.LittleEndian

// WriteInt32 writes v to w as 4 bytes in ByteOrder.
func WriteInt32(w io.Writer, v int32) error {
	var buf [4]byte
	ByteOrder.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadInt32 reads 4 bytes from r in ByteOrder.
func ReadInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(ByteOrder.Uint32(buf[:])), nil
}
