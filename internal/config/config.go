// Package config loads dtm settings from flags, environment and config files.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	m "github.com/mouse-blink/dtm/internal/model"
)

// EnvPrefix prefixes environment variables that override config keys, so
// DTM_PROBE_TEST_TIMEOUT sets probe.test_timeout.
const EnvPrefix = "DTM"

// ProjectConfigName is the config file looked up in the project directory.
const ProjectConfigName = ".dtm"

// Config represents the complete dtm configuration
type Config struct {
	Probe        ProbeConfig       `mapstructure:"probe"`
	Analyze      AnalyzeConfig     `mapstructure:"analyze"`
	TestCommands map[string]string `mapstructure:"test_commands"`
	Registry     RegistryConfig    `mapstructure:"registry"`
	Python       PythonConfig      `mapstructure:"python"`
	Output       OutputConfig      `mapstructure:"output"`
	Logging      LoggingConfig     `mapstructure:"logging"`
}

// ProbeConfig bounds a single install+test cycle
type ProbeConfig struct {
	// InstallTimeout limits each install and conflict diagnosis (0 = no limit)
	InstallTimeout time.Duration `mapstructure:"install_timeout"`
	// TestTimeout limits each test run (0 = no limit)
	TestTimeout time.Duration `mapstructure:"test_timeout"`
}

// AnalyzeConfig controls aggregate mode
type AnalyzeConfig struct {
	// Workers is how many packages are bisected at once
	Workers int `mapstructure:"workers"`
	// Isolate gives each package its own copy of the project
	Isolate bool `mapstructure:"isolate"`
}

// RegistryConfig points oracles at package registries
type RegistryConfig struct {
	PyPIURL    string        `mapstructure:"pypi_url"`
	CratesURL  string        `mapstructure:"crates_url"`
	GoProxyURL string        `mapstructure:"go_proxy_url"`
	NpmCommand string        `mapstructure:"npm_command"`
	// RateLimit is the maximum registry requests per second (0 = unlimited)
	RateLimit float64       `mapstructure:"rate_limit"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// PythonConfig selects the interpreter used to run pip
type PythonConfig struct {
	Executable string `mapstructure:"executable"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	// Format is one of "json", "yaml", "table"
	Format string `mapstructure:"format"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
	// File receives log output instead of stderr when set
	File string `mapstructure:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Probe: ProbeConfig{
			InstallTimeout: 10 * time.Minute,
			TestTimeout:    30 * time.Minute,
		},
		Analyze: AnalyzeConfig{
			Workers: 1,
			Isolate: false,
		},
		TestCommands: map[string]string{
			string(m.Python):     "pytest",
			string(m.JavaScript): "npm test",
			string(m.Rust):       "cargo test",
			string(m.Go):         "go test ./...",
		},
		Registry: RegistryConfig{
			PyPIURL:    "https://pypi.org/pypi",
			CratesURL:  "https://crates.io",
			GoProxyURL: "https://proxy.golang.org",
			NpmCommand: "npm",
			RateLimit:  5,
			Timeout:    30 * time.Second,
		},
		Python: PythonConfig{
			Executable: "python3",
		},
		Output: OutputConfig{
			Format: "json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// TestCommand returns the configured test command for eco.
func (c *Config) TestCommand(eco m.Ecosystem) string {
	if cmd, ok := c.TestCommands[string(eco)]; ok && strings.TrimSpace(cmd) != "" {
		return cmd
	}

	return Default().TestCommands[string(eco)]
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("probe.install_timeout", defaults.Probe.InstallTimeout)
	viper.SetDefault("probe.test_timeout", defaults.Probe.TestTimeout)

	viper.SetDefault("analyze.workers", defaults.Analyze.Workers)
	viper.SetDefault("analyze.isolate", defaults.Analyze.Isolate)

	for eco, cmd := range defaults.TestCommands {
		viper.SetDefault("test_commands."+eco, cmd)
	}

	viper.SetDefault("registry.pypi_url", defaults.Registry.PyPIURL)
	viper.SetDefault("registry.crates_url", defaults.Registry.CratesURL)
	viper.SetDefault("registry.go_proxy_url", defaults.Registry.GoProxyURL)
	viper.SetDefault("registry.npm_command", defaults.Registry.NpmCommand)
	viper.SetDefault("registry.rate_limit", defaults.Registry.RateLimit)
	viper.SetDefault("registry.timeout", defaults.Registry.Timeout)

	viper.SetDefault("python.executable", defaults.Python.Executable)

	viper.SetDefault("output.format", defaults.Output.Format)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Init wires viper to the config file, the project directory and the
// environment. An explicit file must exist; otherwise a missing config
// file is not an error.
func Init(file, projectDir string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if file != "" {
		viper.SetConfigFile(file)

		return viper.ReadInConfig()
	}

	viper.SetConfigName(ProjectConfigName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(projectDir)

	if err := viper.ReadInConfig(); err == nil {
		return nil
	} else if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
		return err
	}

	viper.SetConfigName("config")
	viper.AddConfigPath(ConfigDir())

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	}

	return nil
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dtm")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".dtm"
	}

	return filepath.Join(home, ".config", "dtm")
}
