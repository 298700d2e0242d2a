// Command unibreak shows Unicode segmentation breaks.
//
// It reads a text file (or standard input) and prints one segment per
// line, quoted, using the algorithm selected by -mode: g for grapheme
// clusters, w for words, s for sentences, l for line break units.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Ichigo-Labs/unisegp/graphemes"
	"github.com/Ichigo-Labs/unisegp/lines"
	"github.com/Ichigo-Labs/unisegp/sentences"
	"github.com/Ichigo-Labs/unisegp/words"
)

var mode = flag.String("mode", "w", "breaking algorithm: g (graphemes), w (words), s (sentences), l (lines)")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: unibreak [-mode g|w|s|l] [file|-]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("unibreak: ")
	flag.Usage = usage
	flag.Parse()

	var segment func(string) []string
	switch *mode {
	case "g":
		segment = func(s string) []string { return graphemes.Segments(s) }
	case "w":
		segment = func(s string) []string { return words.Segments(s) }
	case "s":
		segment = func(s string) []string { return sentences.Segments(s) }
	case "l":
		segment = func(s string) []string { return lines.Segments(s, false) }
	default:
		usage()
	}

	in := os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for scanner.Scan() {
		for _, seg := range segment(scanner.Text()) {
			fmt.Fprintln(w, strconv.Quote(seg))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
