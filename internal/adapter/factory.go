package adapter

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	m "github.com/mouse-blink/dtm/internal/model"
)

// Default registry endpoints.
const (
	DefaultPyPIURL    = "https://pypi.org/pypi"
	DefaultCratesURL  = "https://crates.io"
	DefaultGoProxyURL = "https://proxy.golang.org"
)

// OracleOptions carries the ecosystem endpoints and executables oracles use.
type OracleOptions struct {
	PyPIURL          string
	CratesURL        string
	GoProxyURL       string
	NpmCommand       string
	PythonExecutable string
}

// OracleFactory builds an oracle for a package in an environment.
type OracleFactory interface {
	NewOracle(eco m.Ecosystem, pkg string, env *Environment) (Oracle, error)
}

// LocalOracleFactory builds oracles that run real package-manager commands.
type LocalOracleFactory struct {
	opts     OracleOptions
	runner   CommandRunner
	registry RegistryClient
	fs       ProjectFSAdapter
	log      logrus.FieldLogger
}

// NewLocalOracleFactory creates a LocalOracleFactory. Empty options fall
// back to the public registries, npm and python3.
func NewLocalOracleFactory(opts OracleOptions, runner CommandRunner, registry RegistryClient,
	fs ProjectFSAdapter, log logrus.FieldLogger) *LocalOracleFactory {
	if opts.PyPIURL == "" {
		opts.PyPIURL = DefaultPyPIURL
	}

	if opts.CratesURL == "" {
		opts.CratesURL = DefaultCratesURL
	}

	if opts.GoProxyURL == "" {
		opts.GoProxyURL = DefaultGoProxyURL
	}

	if opts.NpmCommand == "" {
		opts.NpmCommand = "npm"
	}

	if opts.PythonExecutable == "" {
		opts.PythonExecutable = "python3"
	}

	return &LocalOracleFactory{opts: opts, runner: runner, registry: registry, fs: fs, log: log}
}

// NewOracle returns the oracle for eco. This is a factory function following
// the factory pattern; unknown ecosystems wrap m.ErrUnknownEcosystem.
func (f *LocalOracleFactory) NewOracle(eco m.Ecosystem, pkg string, env *Environment) (Oracle, error) {
	switch eco {
	case m.Python:
		return NewPythonOracle(pkg, env, f.runner, f.registry, f.opts.PyPIURL, f.opts.PythonExecutable, f.log), nil
	case m.JavaScript:
		return NewJSOracle(pkg, env, f.runner, f.opts.NpmCommand, f.log), nil
	case m.Rust:
		return NewRustOracle(pkg, env, f.runner, f.registry, f.fs, f.opts.CratesURL, f.log), nil
	case m.Go:
		return NewGoOracle(pkg, env, f.runner, f.registry, f.fs, f.opts.GoProxyURL, f.log), nil
	default:
		return nil, errors.Wrapf(m.ErrUnknownEcosystem, "%q", eco)
	}
}
