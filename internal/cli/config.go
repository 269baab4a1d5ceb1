package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/surfrank/surfrank/pkg/errors"
)

// defaultConfigFile is looked up in the working directory when no --config
// flag is given.
const defaultConfigFile = "surfrank.toml"

// Config holds ranking defaults loaded from a TOML file.
// Zero values mean "not set"; the pipeline applies its own defaults for
// anything left unset here.
//
// Example surfrank.toml:
//
//	damping = 0.85
//	samples = 50000
//	tolerance = 1e-5
//	seed = 7
type Config struct {
	Damping   float64 `toml:"damping"`
	Samples   int     `toml:"samples"`
	Tolerance float64 `toml:"tolerance"`
	Seed      uint64  `toml:"seed"`
}

// loadConfig reads a TOML config file. An explicit path must exist; the
// default path is optional and silently skipped when absent.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// rankFlags is the flag set shared by the rank, export and serve commands.
type rankFlags struct {
	damping   float64
	samples   int
	tolerance float64
	seed      uint64
}

// register adds the shared ranking flags to a command.
func (f *rankFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.damping, "damping", "d", 0, "damping factor in [0,1) (default 0.85)")
	cmd.Flags().IntVarP(&f.samples, "samples", "n", 0, "random-walk sample count (default 10000)")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", 0, "iteration convergence tolerance (default 1e-4)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "sampler random seed (default 42)")
}

// resolve merges config-file values into flags the user didn't set.
// Explicit flags always win over the config file.
func (f *rankFlags) resolve(cmd *cobra.Command, cfg Config) {
	if !cmd.Flags().Changed("damping") && cfg.Damping != 0 {
		f.damping = cfg.Damping
	}
	if !cmd.Flags().Changed("samples") && cfg.Samples != 0 {
		f.samples = cfg.Samples
	}
	if !cmd.Flags().Changed("tolerance") && cfg.Tolerance != 0 {
		f.tolerance = cfg.Tolerance
	}
	if !cmd.Flags().Changed("seed") && cfg.Seed != 0 {
		f.seed = cfg.Seed
	}
}
