package huffman

import "io"

// FreqTable holds one occurrence count per byte value. The tree built from a
// table is fully determined by it, so a table transmitted alongside the
// compressed payload lets the decoder rebuild the encoder's exact tree.
type FreqTable [256]int32

// CountFrequencies scans r to the end and tallies every byte.
func CountFrequencies(r io.Reader) (*FreqTable, error) {
	var ft FreqTable
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			ft[b]++
		}
		if err == io.EOF {
			return &ft, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Total returns the number of symbols in the original payload.
func (ft *FreqTable) Total() int64 {
	var n int64
	for _, c := range ft {
		n += int64(c)
	}
	return n
}

// Symbols returns the number of distinct byte values with a non-zero count.
func (ft *FreqTable) Symbols() int {
	n := 0
	for _, c := range ft {
		if c != 0 {
			n++
		}
	}
	return n
}
