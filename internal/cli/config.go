package cli

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"

	dwerrors "github.com/matzehuels/dotwalk/pkg/errors"
)

// defaultConfigFile is looked up in the working directory when no --config
// flag is given. Its absence is not an error.
const defaultConfigFile = "dotwalk.toml"

// Config holds per-project emission defaults. Explicit flags always win
// over config values.
type Config struct {
	Name       string `toml:"name"`       // graph identifier
	Shape      string `toml:"shape"`      // default node shape
	Format     string `toml:"format"`     // render output format
	Undirected bool   `toml:"undirected"` // emit a graph instead of a digraph
}

// loadConfig reads the TOML defaults file. With an empty path the default
// file is tried and silently skipped when missing; an explicit path must
// exist and parse.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
		if _, err := os.Stat(path); err != nil {
			return Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, dwerrors.Wrap(dwerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, dwerrors.Wrap(dwerrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}
