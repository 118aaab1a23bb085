package debruijn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens a read file, decompressing transparently when the
// gzip magic number (1F 8B) or a .gz suffix is seen.
func openReader(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// ReadFastq returns the sequences of a single-end FASTQ file, plain or
// gzipped. Each record is four lines; only the second, the sequence
// line, is kept. The nucleotide alphabet is not validated.
func ReadFastq(path string) ([]string, error) {
	in, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var reads []string
	line := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if line%4 == 1 {
			reads = append(reads, strings.TrimSpace(scanner.Text()))
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if line%4 != 0 {
		return nil, fmt.Errorf("truncated FASTQ record at end of %s: %d trailing lines", path, line%4)
	}

	return reads, nil
}
