package huffman

import (
	"bytes"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	ft, err := CountFrequencies(strings.NewReader("abracadabra"))
	if err != nil {
		t.Fatalf("CountFrequencies: %v", err)
	}

	want := map[byte]int32{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	for sym, count := range want {
		if ft[sym] != count {
			t.Errorf("count(%q): got %d, want %d", sym, ft[sym], count)
		}
	}
	if got := ft.Total(); got != 11 {
		t.Errorf("Total: got %d, want 11", got)
	}
	if got := ft.Symbols(); got != 5 {
		t.Errorf("Symbols: got %d, want 5", got)
	}
}

func TestCountFrequenciesEmpty(t *testing.T) {
	ft, err := CountFrequencies(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("CountFrequencies: %v", err)
	}
	if ft.Total() != 0 || ft.Symbols() != 0 {
		t.Errorf("empty input: Total=%d Symbols=%d, want 0 and 0", ft.Total(), ft.Symbols())
	}
}
