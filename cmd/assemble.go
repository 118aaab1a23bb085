package cmd

import (
	"github.com/lilianyc/debruijn-assembly/config"
	"github.com/lilianyc/debruijn-assembly/internal/debruijn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleCmd is for assembling a FASTQ file of single-end reads into contigs
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Assemble single-end reads into contigs",
	Run:                        debruijn.AssembleCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Assemble the reads of a single-end FASTQ file into contigs.

Reads are cut into k-mers and counted. A weighted de Bruijn graph is built
with a node per k-1-mer and an edge per observed k-mer. Bubbles (alternate
paths left by sequencing errors) and tips (dead-end branches) are removed,
keeping the heaviest, then longest, competing path. The contigs spelled by
the remaining start-to-sink paths are written as FASTA.`,
	Aliases: []string{"asm"},
}

// graphCmd is for writing the assembly graph in Graphviz DOT format
var graphCmd = &cobra.Command{
	Use:                        "graph",
	Short:                      "Write the assembly graph as Graphviz DOT",
	Run:                        debruijn.GraphCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Build the de Bruijn graph for a single-end FASTQ file and write it in
Graphviz DOT format. Edge labels are k-mer occurrence counts. Pass --simplify
to remove bubbles and tips before the graph is written.`,
	Aliases: []string{"dot"},
}

// set flags
func init() {
	assembleCmd.Flags().StringP("in", "i", "", "input FASTQ file with single-end reads")
	assembleCmd.Flags().StringP("out", "o", "contigs.fasta", "output FASTA file for the assembled contigs")
	assembleCmd.Flags().IntP("kmer", "k", config.DefaultKmerSize, "k-mer size used to build the graph")
	assembleCmd.Flags().String("graph", "", "write the simplified assembly graph to a DOT file")
	assembleCmd.MarkFlagRequired("in")

	graphCmd.Flags().StringP("in", "i", "", "input FASTQ file with single-end reads")
	graphCmd.Flags().StringP("out", "o", "graph.dot", "output DOT file")
	graphCmd.Flags().IntP("kmer", "k", config.DefaultKmerSize, "k-mer size used to build the graph")
	graphCmd.Flags().Bool("simplify", false, "remove bubbles and tips before writing the graph")
	graphCmd.MarkFlagRequired("in")

	// settings is an optional parameter for a settings file (that overrides the built-in defaults)
	rootCmd.PersistentFlags().StringP("settings", "s", "", "settings file with assembly and output overrides")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stderr")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(graphCmd)
}
