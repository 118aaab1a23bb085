package debruijn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Contig is an assembled sequence spelled by a start-to-sink path of the
// simplified graph.
type Contig struct {
	// Seq is the assembled nucleotide sequence
	Seq string

	// Length is the number of characters in Seq
	Length int
}

// GetContigs spells a contig for every connected (start, sink) pair of
// the graph. Pairs with no path between them are skipped: not every
// start reaches every sink, especially after simplification. A path's
// contig is the first character of every node but the last, then the
// last node in full.
func GetContigs(g *Graph, startingNodes, sinkNodes []string) []Contig {
	var contigs []Contig
	for _, start := range startingNodes {
		for _, sink := range sinkNodes {
			path := g.ShortestPath(start, sink)
			if path == nil {
				continue
			}

			var b strings.Builder
			for _, n := range path[:len(path)-1] {
				b.WriteByte(n[0])
			}
			b.WriteString(path[len(path)-1])

			seq := b.String()
			contigs = append(contigs, Contig{Seq: seq, Length: len(seq)})
		}
	}
	return contigs
}

// WriteContigs writes contigs as FASTA records. Headers carry the contig
// index, starting at 0 in emission order, and its length. Sequences are
// wrapped at wrap columns.
func WriteContigs(w io.Writer, contigs []Contig, wrap int) error {
	if wrap <= 0 {
		wrap = 80
	}

	bw := bufio.NewWriter(w)
	for i, contig := range contigs {
		fmt.Fprintf(bw, ">contig_%d len=%d\n", i, contig.Length)
		for start := 0; start < len(contig.Seq); start += wrap {
			end := start + wrap
			if end > len(contig.Seq) {
				end = len(contig.Seq)
			}
			fmt.Fprintln(bw, contig.Seq[start:end])
		}
	}
	return bw.Flush()
}

// SaveContigs writes contigs to a FASTA file at the path passed.
func SaveContigs(contigs []Contig, path string, wrap int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer out.Close()

	if err := WriteContigs(out, contigs, wrap); err != nil {
		return fmt.Errorf("failed to write contigs to %s: %w", path, err)
	}
	return nil
}
