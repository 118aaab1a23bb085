package debruijn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_GetContigs(t *testing.T) {
	g := unweighted(
		[2]string{"TC", "CA"}, [2]string{"AC", "CA"}, [2]string{"CA", "AG"},
		[2]string{"AG", "GC"}, [2]string{"GC", "CG"}, [2]string{"CG", "GA"},
		[2]string{"GA", "AT"}, [2]string{"GA", "AA"},
	)

	contigs := GetContigs(g, []string{"TC", "AC"}, []string{"AT", "AA"})

	if len(contigs) != 4 {
		t.Fatalf("GetContigs() returned %d contigs, want 4", len(contigs))
	}
	want := map[string]bool{
		"TCAGCGAT": true,
		"TCAGCGAA": true,
		"ACAGCGAT": true,
		"ACAGCGAA": true,
	}
	for _, contig := range contigs {
		if !want[contig.Seq] {
			t.Errorf("GetContigs() returned unexpected contig %s", contig.Seq)
		}
		if contig.Length != 8 {
			t.Errorf("GetContigs() length = %d, want 8", contig.Length)
		}
	}
}

func Test_GetContigs_skipsUnreachablePairs(t *testing.T) {
	g := unweighted([2]string{"AC", "CA"}, [2]string{"GG", "GT"})

	contigs := GetContigs(g, []string{"AC", "GG"}, []string{"CA", "GT"})

	// AC->GT and GG->CA have no path and are skipped silently
	if len(contigs) != 2 {
		t.Fatalf("GetContigs() returned %d contigs, want 2", len(contigs))
	}
	if contigs[0].Seq != "ACA" || contigs[1].Seq != "GGT" {
		t.Errorf("GetContigs() = %v", contigs)
	}
}

func Test_GetContigs_singleNodePath(t *testing.T) {
	g := NewGraph()
	g.addNode("TGA")

	contigs := GetContigs(g, []string{"TGA"}, []string{"TGA"})

	if len(contigs) != 1 || contigs[0].Seq != "TGA" || contigs[0].Length != 3 {
		t.Errorf("GetContigs() = %v, want one TGA contig", contigs)
	}
}

func Test_WriteContigs(t *testing.T) {
	contigs := []Contig{
		{Seq: "TCAGCGAT", Length: 8},
		{Seq: "TCAGCGAA", Length: 8},
	}

	var b strings.Builder
	if err := WriteContigs(&b, contigs, 80); err != nil {
		t.Fatal(err)
	}

	want := ">contig_0 len=8\nTCAGCGAT\n>contig_1 len=8\nTCAGCGAA\n"
	if b.String() != want {
		t.Errorf("WriteContigs() = %q, want %q", b.String(), want)
	}
}

func Test_WriteContigs_wraps(t *testing.T) {
	seq := strings.Repeat("ACGT", 25) // 100 chars
	contigs := []Contig{{Seq: seq, Length: len(seq)}}

	var b strings.Builder
	if err := WriteContigs(&b, contigs, 80); err != nil {
		t.Fatal(err)
	}

	want := ">contig_0 len=100\n" + seq[:80] + "\n" + seq[80:] + "\n"
	if b.String() != want {
		t.Errorf("WriteContigs() = %q, want %q", b.String(), want)
	}
}

func Test_SaveContigs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "contigs.fasta")
	contigs := []Contig{
		{Seq: "TCAGCGAT", Length: 8},
		{Seq: "ACAGCGAA", Length: 8},
	}

	if err := SaveContigs(contigs, out, 80); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := ">contig_0 len=8\nTCAGCGAT\n>contig_1 len=8\nACAGCGAA\n"
	if string(contents) != want {
		t.Errorf("SaveContigs() wrote %q, want %q", contents, want)
	}
}
