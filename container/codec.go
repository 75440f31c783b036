// Package container reads and writes the Huffman archive format: a 1024-byte
// frequency header followed by the bit-packed code stream.
//
// The header alone determines the code tree, so both sides of the format
// rebuild identical trees and the payload carries no tree structure of its
// own. The decoder derives the exact symbol count from the header sums,
// which keeps the final byte's zero pad bits from ever being read as a
// symbol.
package container

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/mrjoshuak/go-huffman/bitstream"
	"github.com/mrjoshuak/go-huffman/huffman"
)

// Compress reads src twice, once to count frequencies and once to encode,
// and writes the archive to dst.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	ft, err := huffman.CountFrequencies(src)
	if err != nil {
		return errors.Wrap(err, "container: counting frequencies")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "container: rewinding input")
	}
	return CompressWith(dst, src, ft)
}

// CompressWith encodes src against a previously counted frequency table.
// src must contain exactly the bytes ft was counted from.
func CompressWith(dst io.Writer, src io.Reader, ft *huffman.FreqTable) error {
	tree := huffman.NewTree()
	if err := tree.Build(ft); err != nil {
		return err
	}
	if err := WriteHeader(dst, ft); err != nil {
		return err
	}

	bw := bitstream.NewWriter(dst)
	buf := make([]byte, 32*1024)
	for {
		n, rerr := src.Read(buf)
		for _, b := range buf[:n] {
			if err := tree.Encode(b, bw); err != nil {
				return errors.Wrap(err, "container: writing payload")
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return errors.Wrap(rerr, "container: reading input")
		}
	}
	return bw.Flush()
}

// Decompress reads an archive from src and writes the original bytes to dst.
func Decompress(dst io.Writer, src io.Reader) error {
	ft, err := ReadHeader(src)
	if err != nil {
		return err
	}
	total := ft.Total()
	if total == 0 {
		return nil
	}

	tree := huffman.NewTree()
	if err := tree.Build(ft); err != nil {
		return err
	}

	br := bitstream.NewReader(src)
	out := bufio.NewWriter(dst)
	for i := int64(0); i < total; i++ {
		sym, err := tree.Decode(br)
		if err == io.EOF {
			return errors.Wrapf(ErrCorrupt, "payload ended after %d of %d symbols", i, total)
		}
		if err != nil {
			return errors.Wrap(err, "container: decoding payload")
		}
		if err := out.WriteByte(sym); err != nil {
			return errors.Wrap(err, "container: writing output")
		}
	}
	return out.Flush()
}

// EncodeBytes compresses data into a freshly allocated archive.
func EncodeBytes(data []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(HeaderSize + len(data)/2)
	if err := Compress(&out, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeBytes expands an archive produced by Compress or EncodeBytes.
func DecodeBytes(archive []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := Decompress(&out, bytes.NewReader(archive)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
