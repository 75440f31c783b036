// huffzip compresses a file with a canonical Huffman code.
//
// Usage:
//
//	huffzip [-q|--quiet] <input> <output>
//
// The output begins with a 1024-byte frequency header from which huffunzip
// rebuilds the identical code tree before decoding the bit payload.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrjoshuak/go-huffman/container"
	"github.com/mrjoshuak/go-huffman/huffman"
)

var quiet bool

func init() {
	flag.BoolVar(&quiet, "q", false, "suppress progress output")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress output")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-q|--quiet] <input> <output>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Compress a file with a canonical Huffman code.\n\n")
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

	if !quiet {
		fmt.Printf("Reading from file %q... ", inPath)
	}
	ft, err := huffman.CountFrequencies(in)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Println("done.")
		fmt.Printf("Found %d unique symbols in input file of size %d bytes.\n",
			ft.Symbols(), ft.Total())
	}

	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("Writing to file %q... ", outPath)
	}
	if err := container.CompressWith(out, in, ft); err != nil {
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
