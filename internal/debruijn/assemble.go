// Package debruijn assembles short single-end reads into contigs with a
// weighted de Bruijn graph: one node per k-1-mer, one edge per observed
// k-mer. Sequencing errors show up as bubbles (alternate paths between a
// shared entry and exit) and tips (dead-end branches); both are removed
// before the remaining start-to-sink paths are spelled into contigs.
package debruijn

import (
	"log"
	"os"

	"github.com/lilianyc/debruijn-assembly/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in", "out", "kmer" that are
// used by multiple commands.
type Flags struct {
	// the name of the FASTQ file to read the reads from
	in string

	// the name of the file to write the output to
	out string

	// path, if any, to also write the simplified graph to as DOT
	graph string

	// whether the graph command runs the simplifier before writing
	simplify bool
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd
// object and folds command line overrides into the config.
func parseCmdFlags(cmd *cobra.Command, conf *config.Config) *Flags {
	fs := &Flags{}
	var err error

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno input FASTQ file passed.")
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno output path passed.")
	}

	if graph, err := cmd.Flags().GetString("graph"); err == nil {
		fs.graph = graph
	}
	if simplify, err := cmd.Flags().GetBool("simplify"); err == nil {
		fs.simplify = simplify
	}

	if k, err := cmd.Flags().GetInt("kmer"); err == nil && cmd.Flags().Changed("kmer") {
		conf.Assembly.KmerSize = k
	}

	return fs
}

// AssembleCmd accepts a cobra command and assembles the reads of its
// input file into contigs.
func AssembleCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	flags := parseCmdFlags(cmd, conf)

	if err := Assemble(conf, flags.in, flags.out, flags.graph); err != nil {
		stderr.Fatalln(err)
	}
}

// GraphCmd accepts a cobra command and writes the assembly graph of its
// input file in DOT format.
func GraphCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	flags := parseCmdFlags(cmd, conf)

	g, err := buildFromFastq(conf, flags.in)
	if err != nil {
		stderr.Fatalln(err)
	}

	if flags.simplify {
		simplify(g)
	}

	if err := writeDot(g, flags.out); err != nil {
		stderr.Fatalln(err)
	}
}

// Assemble runs the full pipeline: reads to k-mer counts to graph,
// simplification, contig extraction, FASTA output. An optional DOT dump
// of the simplified graph is written to graphOut.
func Assemble(conf *config.Config, in, out, graphOut string) error {
	g, err := buildFromFastq(conf, in)
	if err != nil {
		return err
	}
	if conf.Verbose {
		stderr.Printf("graph built: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}

	simplify(g)
	if conf.Verbose {
		stderr.Printf("graph simplified: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}

	contigs := GetContigs(g, g.StartingNodes(), g.SinkNodes())
	if conf.Verbose {
		stderr.Printf("%d contigs assembled", len(contigs))
	}

	if graphOut != "" {
		if err := writeDot(g, graphOut); err != nil {
			return err
		}
	}

	return SaveContigs(contigs, out, conf.Output.WrapWidth)
}

func buildFromFastq(conf *config.Config, in string) (*Graph, error) {
	kmers, err := BuildKmerDict(in, conf.Assembly.KmerSize)
	if err != nil {
		return nil, err
	}
	return BuildGraph(kmers), nil
}

// simplify removes bubbles and then both tip kinds, in place. Each tip
// pass re-resolves bubbles before walking tips.
func simplify(g *Graph) {
	SimplifyBubbles(g)
	SolveEntryTips(g, g.StartingNodes())
	SolveOutTips(g, g.SinkNodes())
}

func writeDot(g *Graph, path string) error {
	dot, err := g.Dot("assembly")
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(dot), 0644)
}
