package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// decfmtConfig is ~/.decfmt.toml: the default width/format/precision/
// rounding mode applied when a subcommand's own flag is not given on the
// command line, mirroring msto63-mDW's TOML-based cmd/mdw configuration.
type decfmtConfig struct {
	Width     int    `toml:"width"`
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
	Rounding  string `toml:"rounding"`
}

func defaultConfig() decfmtConfig {
	return decfmtConfig{Width: 64, Format: "general", Precision: -1, Rounding: "nearest-even"}
}

// loadConfig reads ~/.decfmt.toml if present, falling back to defaults
// for any field it doesn't set and when the file itself is absent.
func loadConfig() decfmtConfig {
	cfg := defaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(home, ".decfmt.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var fromFile decfmtConfig
	if _, err := toml.Decode(string(data), &fromFile); err != nil {
		return cfg
	}
	if fromFile.Width != 0 {
		cfg.Width = fromFile.Width
	}
	if fromFile.Format != "" {
		cfg.Format = fromFile.Format
	}
	if fromFile.Precision != 0 {
		cfg.Precision = fromFile.Precision
	}
	if fromFile.Rounding != "" {
		cfg.Rounding = fromFile.Rounding
	}
	return cfg
}
