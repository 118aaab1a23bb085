package debruijn

import (
	"reflect"
	"testing"
)

func Test_CutKmers(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		k    int
		want []string
	}{
		{"cuts windows in order", "TCAGA", 3, []string{"TCA", "CAG", "AGA"}},
		{"k equals read length", "TCAGA", 5, []string{"TCAGA"}},
		{"read shorter than k", "TCA", 5, nil},
		{"k of zero", "TCA", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CutKmers(tt.seq, tt.k); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CutKmers(%s, %d) = %v, want %v", tt.seq, tt.k, got, tt.want)
			}
		})
	}
}

func Test_BuildKmerDict(t *testing.T) {
	path := writeFastq(t, "build.fq", []string{"TCAGAGA"})

	kmers, err := BuildKmerDict(path, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]int{
		"TCA": 1,
		"CAG": 1,
		"AGA": 2,
		"GAG": 1,
	}
	if !reflect.DeepEqual(kmers, want) {
		t.Errorf("BuildKmerDict() = %v, want %v", kmers, want)
	}
}

func Test_BuildKmerDict_kTooSmall(t *testing.T) {
	path := writeFastq(t, "build.fq", []string{"TCAGAGA"})

	if _, err := BuildKmerDict(path, 1); err == nil {
		t.Error("BuildKmerDict() should reject k < 2")
	}
}
