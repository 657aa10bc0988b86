package main

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
)

const defaultConfigPath = "roster.toml"

// Config is the optional TOML config. Flags override it, it overrides
// the defaults. The core packages take no configuration at all.
type Config struct {
	DataFile string `toml:"data_file"`
	LogDir   string `toml:"log_dir"`
	Verbose  bool   `toml:"verbose"`
}

// loadConfig reads a TOML config from path. When the user didn't name a
// file explicitly, a missing default config is fine, we run on defaults.
func loadConfig(path string, explicit bool) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &c, nil
		}
		return nil, err
	}
	return &c, nil
}
