// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Defaults baked into the binary. A settings file or command
// line flags override them.
const (
	// DefaultKmerSize is the k used to cut reads into k-mers
	DefaultKmerSize = 21

	// DefaultWrapWidth is the column that contig sequences wrap at
	DefaultWrapWidth = 80
)

// AssemblyConfig is settings for graph construction and simplification
type AssemblyConfig struct {
	// the k-mer size used to build the de Bruijn graph
	KmerSize int `mapstructure:"kmer-size"`
}

// OutputConfig is settings for contig output
type OutputConfig struct {
	// the column width that contig sequences are wrapped at
	WrapWidth int `mapstructure:"wrap-width"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// whether to log progress to stderr
	Verbose bool `mapstructure:"verbose"`

	// graph construction and simplification settings
	Assembly AssemblyConfig `mapstructure:"assembly"`

	// contig output settings
	Output OutputConfig `mapstructure:"output"`
}

func init() {
	viper.SetDefault("assembly.kmer-size", DefaultKmerSize)
	viper.SetDefault("output.wrap-width", DefaultWrapWidth)
}

// New returns a new Config struct populated by Viper settings
// (from the settings file pointed at by the --settings flag, if any)
// and/or command line arguments
func New() *Config {
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
