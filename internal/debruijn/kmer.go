package debruijn

import (
	"fmt"
)

// CutKmers returns every k-length window of a read, in order. Reads
// shorter than k contribute nothing.
func CutKmers(seq string, k int) []string {
	if k < 1 || k > len(seq) {
		return nil
	}

	kmers := make([]string, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		kmers = append(kmers, seq[i:i+k])
	}
	return kmers
}

// BuildKmerDict counts the occurrences of every k-mer across all reads
// of a FASTQ file. The index is exhaustive over the read set and is the
// sole input to graph construction.
func BuildKmerDict(path string, k int) (map[string]int, error) {
	if k < 2 {
		return nil, fmt.Errorf("k-mer size must be at least 2, got %d", k)
	}

	reads, err := ReadFastq(path)
	if err != nil {
		return nil, err
	}

	kmers := make(map[string]int)
	for _, read := range reads {
		for _, kmer := range CutKmers(read, k) {
			kmers[kmer]++
		}
	}
	return kmers, nil
}
