// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	c := New()

	if c.Assembly.KmerSize != DefaultKmerSize {
		t.Errorf("New() KmerSize = %d, want %d", c.Assembly.KmerSize, DefaultKmerSize)
	}
	if c.Output.WrapWidth != DefaultWrapWidth {
		t.Errorf("New() WrapWidth = %d, want %d", c.Output.WrapWidth, DefaultWrapWidth)
	}
	if c.Verbose {
		t.Error("New() Verbose = true, want false")
	}
}

func TestNew_settingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	contents := `assembly:
  kmer-size: 9
output:
  wrap-width: 60
`
	if err := os.WriteFile(settings, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	viper.Set("settings", settings)
	defer viper.Set("settings", "")

	c := New()

	if c.Assembly.KmerSize != 9 {
		t.Errorf("New() KmerSize = %d, want 9", c.Assembly.KmerSize)
	}
	if c.Output.WrapWidth != 60 {
		t.Errorf("New() WrapWidth = %d, want 60", c.Output.WrapWidth)
	}
}
