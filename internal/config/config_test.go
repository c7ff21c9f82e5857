package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "output_format: json\nno_color: true\ntoolchain_constraint: \">= 2022\"\nwatch_debounce: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, ">= 2022", cfg.ToolchainConstraint)
	assert.Equal(t, 2*time.Second, cfg.WatchDebounce.Duration)

	// defaults for missing values
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "texlive", cfg.ToolchainMacro)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "output_format = \"yaml\"\nlog_level = \"debug\"\ntoolchain_macro = \"tex\"\nwatch_debounce = \"100ms\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
	assert.Equal(t, "tex", cfg.ToolchainMacro)
	assert.Equal(t, 100*time.Millisecond, cfg.WatchDebounce.Duration)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("output_format = "), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"config.yml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.OutputFormat = "json"
			cfg.WatchDebounce.Duration = time.Second
			require.NoError(t, cfg.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("TEXPARSE_OUTPUT", "yaml")
	t.Setenv("TEXPARSE_NO_COLOR", "1")
	t.Setenv("TEXPARSE_TOOLCHAIN_CONSTRAINT", "~2023")
	t.Setenv("TEXPARSE_WATCH_DEBOUNCE", "3s")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "~2023", cfg.ToolchainConstraint)
	assert.Equal(t, 3*time.Second, cfg.WatchDebounce.Duration)
	assert.Equal(t, "texlive", cfg.ToolchainMacro)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, Default().Level())
	assert.Equal(t, zapcore.ErrorLevel, (&Config{LogLevel: "error"}).Level())
	assert.Equal(t, zapcore.WarnLevel, (&Config{LogLevel: "loud"}).Level())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "texparse", "config.yml"), DefaultConfigPath())
}
