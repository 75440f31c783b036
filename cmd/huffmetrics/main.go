// huffmetrics sizes and times Huffman compression against general-purpose
// codecs, enabling direct comparison on real files.
//
// Usage:
//
//	huffmetrics [options] <file> [<file> ...]
//
// Options:
//
//	--passes N   Number of passes for timing (default: 10)
//	--csv        Output in CSV format
//	-v           Verify a round-trip for every file
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"

	"github.com/mrjoshuak/go-huffman/container"
)

type codec struct {
	name     string
	compress func([]byte) ([]byte, error)
}

func main() {
	var (
		passes    = flag.Int("passes", 10, "number of passes for timing")
		csvOutput = flag.Bool("csv", false, "output in CSV format")
		verify    = flag.Bool("v", false, "verify a Huffman round-trip for every file")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: huffmetrics [options] <file> [<file> ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *csvOutput {
		fmt.Println("file,codec,original bytes,compressed bytes,ratio,encode time")
	}

	failCount := 0
	for _, name := range flag.Args() {
		if err := measureFile(name, *passes, *csvOutput, *verify); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR '%s': %v\n", name, err)
			failCount++
		}
	}
	os.Exit(failCount)
}

func measureFile(name string, passes int, csvOutput, verify bool) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	if verify {
		archive, err := container.EncodeBytes(data)
		if err != nil {
			return err
		}
		restored, err := container.DecodeBytes(archive)
		if err != nil {
			return err
		}
		if !bytes.Equal(restored, data) {
			return fmt.Errorf("round-trip mismatch: %d bytes in, %d bytes back",
				len(data), len(restored))
		}
	}

	codecs := []codec{
		{"huffman", container.EncodeBytes},
		{"deflate", deflateBytes},
		{"zstd", zstdBytes},
	}

	if !csvOutput {
		fmt.Printf("File: %s (%d bytes)\n", name, len(data))
	}
	for _, c := range codecs {
		var out []byte
		start := time.Now()
		for i := 0; i < passes; i++ {
			out, err = c.compress(data)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
		}
		elapsed := time.Since(start) / time.Duration(passes)

		ratio := 0.0
		if len(data) > 0 {
			ratio = float64(len(out)) / float64(len(data))
		}
		if csvOutput {
			fmt.Printf("%s,%s,%d,%d,%.4f,%s\n",
				name, c.name, len(data), len(out), ratio, elapsed)
		} else {
			fmt.Printf("  %-8s %10d bytes  %6.2f%%  %s\n",
				c.name, len(out), ratio*100, elapsed)
		}
	}
	return nil
}

func deflateBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func zstdBytes(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}
