// Package config loads the optional dbcgen.toml file that overrides the
// default workspace layout. The CLI takes no required arguments or flags;
// this file is the only way to point the generator at non-default paths,
// and its absence is not an error.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// DefaultFileName is the config file dbcgen looks for in the current
// working directory.
const DefaultFileName = "dbcgen.toml"

// Config overrides the default schema directory of each version and the
// root of the output directories. Every field is optional; zero values
// fall back to the compiled-in defaults.
type Config struct {
	Schema struct {
		Vanilla string `toml:"vanilla"`
		TBC     string `toml:"tbc"`
		Wrath   string `toml:"wrath"`
	} `toml:"schema"`

	Output struct {
		// Tables is the root under which each version's generated
		// sources go, as <Tables>/<version>.
		Tables string `toml:"tables"`
		// SQL is decoded but not used by the generator: the SQLite
		// export files are written into each version's tables directory.
		SQL string `toml:"sql"`
	} `toml:"output"`
}

// Load reads path if it exists and decodes it as TOML. A missing file is
// not an error: Load returns the zero Config so callers fall back to
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, "config: read %q", path)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: decode %q", path)
	}
	return cfg, nil
}
