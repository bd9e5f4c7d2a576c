package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/dtm/internal/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10*time.Minute, cfg.Probe.InstallTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Probe.TestTimeout)
	assert.Equal(t, 1, cfg.Analyze.Workers)
	assert.False(t, cfg.Analyze.Isolate)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "python3", cfg.Python.Executable)
	assert.Empty(t, cfg.Validate())
}

func TestTestCommand(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "pytest", cfg.TestCommand(m.Python))
	assert.Equal(t, "npm test", cfg.TestCommand(m.JavaScript))
	assert.Equal(t, "cargo test", cfg.TestCommand(m.Rust))
	assert.Equal(t, "go test ./...", cfg.TestCommand(m.Go))

	cfg.TestCommands[string(m.Python)] = "  "
	assert.Equal(t, "pytest", cfg.TestCommand(m.Python), "blank commands fall back to the default")
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ProjectFileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DTM_ANALYZE_WORKERS", "4")

	content := []byte(`probe:
  test_timeout: 90s
test_commands:
  python: pytest -x
output:
  format: yaml
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dtm.yaml"), content, 0o644))

	require.NoError(t, Init("", dir))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Probe.TestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Probe.InstallTimeout)
	assert.Equal(t, 4, cfg.Analyze.Workers)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "pytest -x", cfg.TestCommand(m.Python))
	assert.Equal(t, "cargo test", cfg.TestCommand(m.Rust))
}

func TestInit_MissingFilesAreFine(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, Init("", t.TempDir()))
}

func TestInit_ExplicitFileMustExist(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := Init(filepath.Join(t.TempDir(), "missing.yaml"), t.TempDir())
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("analyze.workers", 0)
	viper.Set("output.format", "xml")

	_, err := Load()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "analyze.workers", verrs[0].Field)
	assert.Equal(t, "output.format", verrs[1].Field)
	assert.Contains(t, err.Error(), "2 validation errors")
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "dtm"), ConfigDir())
}
