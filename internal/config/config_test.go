package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 16384, cfg.Engine.ParamStackSize)
	assert.Equal(t, 256, cfg.Engine.ReturnStackSize)
	assert.Equal(t, 65536, cfg.Engine.DictLimitCells)
	assert.Equal(t, 4096, cfg.Engine.GrowChunkCells)
	assert.Equal(t, "startup.f", cfg.Startup.ScriptPath)
	assert.False(t, cfg.Trace.Enabled)
}

func TestLoadFromNonExistent(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jforth.toml")
	const doc = `
[engine]
param_stack_size = 2048
dict_limit_cells = 131072

[startup]
script_path = "boot.f"

[trace]
enabled = true
output_file = "trace.log"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.Engine.ParamStackSize)
	assert.Equal(t, 131072, cfg.Engine.DictLimitCells)
	// Unset fields keep their default.
	assert.Equal(t, 256, cfg.Engine.ReturnStackSize)
	assert.Equal(t, "boot.f", cfg.Startup.ScriptPath)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, "trace.log", cfg.Trace.OutputFile)
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("engine = ["), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestPathEndsInConfigToml(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(Path()))
}
