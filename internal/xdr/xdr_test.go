package xdr

import (
	"bytes"
	"testing"
)

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 42, -(1 << 31), 1<<31 - 1} {
		var buf bytes.Buffer
		if err := WriteInt32(&buf, v); err != nil {
			t.Fatalf("WriteInt32(%d): %v", v, err)
		}
		if buf.Len() != 4 {
			t.Fatalf("WriteInt32(%d): wrote %d bytes, want 4", v, buf.Len())
		}
		got, err := ReadInt32(&buf)
		if err != nil {
			t.Fatalf("ReadInt32: %v", err)
		}
		if got != v {
			t.Errorf("round trip: got %d, want %d", got, v)
		}
	}
}

func TestInt32LittleEndianLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteInt32(&buf, 0x01020304); err != nil {
		t.Fatalf("WriteInt32: %v", err)
	}
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("layout: got % X, want % X", buf.Bytes(), want)
	}
}

func TestReadInt32Short(t *testing.T) {
	if _, err := ReadInt32(bytes.NewReader([]byte{1, 2})); err == nil {
		t.Error("short read: want error, got nil")
	}
}
