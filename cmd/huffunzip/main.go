// huffunzip restores a file compressed by huffzip.
//
// Usage:
//
//	huffunzip [-q|--quiet] <input> <output>
//
// The tool reads the 1024-byte frequency header, rebuilds the code tree the
// compressor used, and decodes exactly the number of symbols the header
// counts add up to.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrjoshuak/go-huffman/container"
)

var quiet bool

func init() {
	flag.BoolVar(&quiet, "q", false, "suppress progress output")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress output")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-q|--quiet] <input> <output>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Restore a file compressed by huffzip.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -q, --quiet  suppress progress output\n")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("Uncompressing %q into %q... ", inPath, outPath)
	}
	if err := container.Decompress(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if !quiet {
		fmt.Println("done.")
	}
	return nil
}
