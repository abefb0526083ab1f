// Package config loads engine tuning knobs (stack capacities, arena size,
// startup script path) from an optional TOML file, falling back to
// built-in defaults when the file is absent or a field is unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk shape of ~/.config/jforth/config.toml.
type Config struct {
	Engine struct {
		ParamStackSize  int `toml:"param_stack_size"`
		ReturnStackSize int `toml:"return_stack_size"`
		DictLimitCells  int `toml:"dict_limit_cells"`
		GrowChunkCells  int `toml:"grow_chunk_cells"`
	} `toml:"engine"`

	Startup struct {
		ScriptPath string `toml:"script_path"`
	} `toml:"startup"`

	Trace struct {
		Enabled    bool   `toml:"enabled"`
		OutputFile string `toml:"output_file"`
	} `toml:"trace"`
}

// Default returns a Config populated with the engine's built-in minimums.
func Default() *Config {
	cfg := &Config{}
	cfg.Engine.ParamStackSize = 16384
	cfg.Engine.ReturnStackSize = 256
	cfg.Engine.DictLimitCells = 65536
	cfg.Engine.GrowChunkCells = 4096
	cfg.Startup.ScriptPath = "startup.f"
	cfg.Trace.Enabled = false
	cfg.Trace.OutputFile = ""
	return cfg
}

// Path returns the platform-appropriate config file path,
// ~/.config/jforth/config.toml, falling back to a relative path if the
// home directory cannot be determined.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "jforth.toml"
	}
	return filepath.Join(home, ".config", "jforth", "config.toml")
}

// Load reads the config file at Path(), returning defaults (no error) if
// it does not exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults (no error) if
// it does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
