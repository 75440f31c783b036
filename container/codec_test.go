package container

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/go-huffman/huffman"
	"github.com/mrjoshuak/go-huffman/internal/xdr"
)

func roundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	archive, err := EncodeBytes(data)
	require.NoError(t, err)
	restored, err := DecodeBytes(archive)
	require.NoError(t, err)
	return restored
}

func TestRoundTripEmpty(t *testing.T) {
	archive, err := EncodeBytes(nil)
	require.NoError(t, err)
	// An empty payload is exactly the all-zero header.
	require.Len(t, archive, HeaderSize)
	require.Equal(t, make([]byte, HeaderSize), archive)

	restored, err := DecodeBytes(archive)
	require.NoError(t, err)
	require.Empty(t, restored)
}

func TestRoundTripSingleByte(t *testing.T) {
	require.Equal(t, []byte{'x'}, roundTrip(t, []byte{'x'}))
}

func TestRoundTripSingleRepeatedSymbol(t *testing.T) {
	data := bytes.Repeat([]byte{'A'}, 100)
	require.Equal(t, data, roundTrip(t, data))
}

func TestRoundTripAllByteValues(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	require.Equal(t, data, roundTrip(t, data))
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 10000)
	_, err := rng.Read(data)
	require.NoError(t, err)
	require.Equal(t, data, roundTrip(t, data))
}

func TestArchiveLayout(t *testing.T) {
	archive, err := EncodeBytes([]byte("AAAB"))
	require.NoError(t, err)
	require.Len(t, archive, HeaderSize+1)

	// Counts sit at symbol*4, little-endian.
	require.Equal(t, int32(3), readCount(archive, 'A'))
	require.Equal(t, int32(1), readCount(archive, 'B'))
	require.Equal(t, int32(0), readCount(archive, 'C'))

	// Payload: codes 0 0 0 10, zero-padded to one byte.
	require.Equal(t, byte(0x10), archive[HeaderSize])
}

func readCount(archive []byte, sym byte) int32 {
	off := int(sym) * 4
	return int32(xdr.ByteOrder.Uint32(archive[off : off+4]))
}

func TestArchiveDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	data := make([]byte, 1<<16)
	_, err := rng.Read(data)
	require.NoError(t, err)

	a, err := EncodeBytes(data)
	require.NoError(t, err)
	b, err := EncodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestHeaderRoundTrip(t *testing.T) {
	var ft huffman.FreqTable
	ft[0] = 1
	ft['Z'] = 42
	ft[255] = 1 << 30

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, &ft))
	require.Equal(t, HeaderSize, buf.Len())

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, &ft, got)
}

func TestReadHeaderNegativeCount(t *testing.T) {
	header := make([]byte, HeaderSize)
	negCount := int32(-7)
	xdr.ByteOrder.PutUint32(header[4:8], uint32(negCount))

	_, err := ReadHeader(bytes.NewReader(header))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCorrupt), "want ErrCorrupt, got %v", err)
}

func TestReadHeaderShort(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader(make([]byte, HeaderSize-1)))
	require.Error(t, err)
}

func TestDecompressTruncatedPayload(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := make([]byte, 2000)
	_, err := rng.Read(data)
	require.NoError(t, err)

	archive, err := EncodeBytes(data)
	require.NoError(t, err)

	_, err = DecodeBytes(archive[:len(archive)-8])
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCorrupt), "want ErrCorrupt, got %v", err)
}

func TestDecompressEmptyArchiveIgnoresPayload(t *testing.T) {
	// An all-zero header claims zero symbols; trailing garbage must not be
	// decoded.
	archive := make([]byte, HeaderSize)
	archive = append(archive, 0xDE, 0xAD)

	restored, err := DecodeBytes(archive)
	require.NoError(t, err)
	require.Empty(t, restored)
}

func BenchmarkRoundTrip1MiB(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 1<<20)
	for i := range data {
		data[i] = byte(rng.Intn(32)) // compressible alphabet
	}

	b.ResetTimer()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		archive, err := EncodeBytes(data)
		if err != nil {
			b.Fatalf("EncodeBytes: %v", err)
		}
		restored, err := DecodeBytes(archive)
		if err != nil {
			b.Fatalf("DecodeBytes: %v", err)
		}
		if len(restored) != len(data) {
			b.Fatalf("length mismatch: got %d, want %d", len(restored), len(data))
		}
	}
}
