package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the TOML-backed default configuration of the fim tool.
// Command-line flags override whatever the file provides.
type Config struct {
	Mine struct {
		Supp   float64 `toml:"supp"`
		Conf   float64 `toml:"conf"`
		Target string  `toml:"target"`
		Algo   string  `toml:"algo"`
		ZMin   int     `toml:"zmin"`
		ZMax   int     `toml:"zmax"`
		Limit  int     `toml:"limit"`
	} `toml:"mine"`
	Output struct {
		Format string `toml:"format"`
		Scale  string `toml:"scale"`
	} `toml:"output"`
}

func defaultConfig() Config {
	var c Config
	c.Mine.Supp = 10
	c.Mine.Conf = 80
	c.Mine.Target = "all"
	c.Mine.Algo = "apriori"
	c.Mine.ZMin = 1
	c.Output.Format = "text"
	c.Output.Scale = "absolute"

	return c
}

// loadConfig merges the TOML file at path over the defaults. A missing
// file is not an error: the defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
