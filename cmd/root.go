// Package cmd provides the root command and CLI setup for dtm.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/dtm/internal/adapter"
	"github.com/mouse-blink/dtm/internal/config"
	"github.com/mouse-blink/dtm/internal/controller"
	"github.com/mouse-blink/dtm/internal/domain"
	"github.com/mouse-blink/dtm/internal/logging"
	m "github.com/mouse-blink/dtm/internal/model"
)

var projectFS adapter.ProjectFSAdapter
var reportStore adapter.ReportStore

// Collaborators that depend on flags and configuration, set by wire.
var cfg *config.Config
var logger *logging.Logger
var ui controller.UI
var analyzer domain.Analyzer

// wire builds the configuration dependent collaborators. Tests replace it.
var wire = wireCollaborators

func init() {
	projectFS = adapter.NewLocalProjectFSAdapter()
	reportStore = adapter.NewReportStore(projectFS)
}

var configFlag string
var dirFlag string
var languageFlag string
var testCommandFlag string
var reportFileFlag string

// flagBindings maps config keys to the flags that override them.
var flagBindings = map[string]string{
	"probe.install_timeout": "install-timeout",
	"probe.test_timeout":    "test-timeout",
	"logging.level":         "log-level",
	"output.format":         "format",
	"analyze.workers":       "workers",
	"analyze.isolate":       "isolate",
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dtm",
		Short: "Dependency Time Machine: find the newest dependency version your tests accept",
		Long: `dtm bisects the published versions of a dependency, installing each candidate
into your project and running your test suite, to find the newest version that
still works and the first one that breaks it.

Supported ecosystems:
  - python   PyPI packages installed with pip
  - js       npm packages
  - rust     crates.io crates resolved by cargo
  - go       modules from the Go module proxy`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Close()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "config file (default .dtm.yaml in the project, then ~/.config/dtm/config.yaml)")
	flags.StringVarP(&dirFlag, "dir", "C", ".", "project directory to analyze")
	flags.StringVarP(&languageFlag, "language", "l", "", "ecosystem: python, js, rust or go (default detected from manifests)")
	flags.StringVarP(&testCommandFlag, "test-command", "t", "", "test command run against every candidate version")
	flags.StringP("format", "f", "json", "result format: json, yaml or table")
	flags.Duration("install-timeout", 0, "limit for a single install, 0 means no limit (default from config)")
	flags.Duration("test-timeout", 0, "limit for a single test run, 0 means no limit (default from config)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&reportFileFlag, "report-file", "", "also write results to this file (.json, .yaml or .yml)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and wires collaborators before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == versionCmdName {
		return nil
	}

	if err := config.Init(configFlag, dirFlag); err != nil {
		return errors.Wrap(err, "read config")
	}

	if err := bindFlags(cmd); err != nil {
		return err
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}

	if !controller.ValidFormat(loaded.Output.Format) {
		return errors.Wrapf(controller.ErrUnknownFormat, "%q", loaded.Output.Format)
	}

	cfg = loaded

	return wire(cmd, loaded)
}

// bindFlags lets flags the user actually set override config values. Unset
// flags leave the config file and environment in charge.
func bindFlags(cmd *cobra.Command) error {
	for key, name := range flagBindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		if err := viper.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}

	return nil
}

func wireCollaborators(cmd *cobra.Command, conf *config.Config) error {
	log, err := logging.New(conf.Logging)
	if err != nil {
		return err
	}

	logger = log
	ui = controller.NewUI(cmd, controller.IsTTY(cmd.ErrOrStderr()), conf.Output.Format)

	runner := adapter.NewLocalCommandRunner(log)
	registry := adapter.NewHTTPRegistryClient(conf.Registry.Timeout, conf.Registry.RateLimit, "dtm/"+version)
	factory := adapter.NewLocalOracleFactory(adapter.OracleOptions{
		PyPIURL:          conf.Registry.PyPIURL,
		CratesURL:        conf.Registry.CratesURL,
		GoProxyURL:       conf.Registry.GoProxyURL,
		NpmCommand:       conf.Registry.NpmCommand,
		PythonExecutable: conf.Python.Executable,
	}, runner, registry, projectFS, log)
	workspace := adapter.NewLocalWorkspaceAdapter(projectFS, dirFlag, log)
	bisector := domain.NewBisector(ui, log,
		domain.WithInstallTimeout(conf.Probe.InstallTimeout),
		domain.WithTestTimeout(conf.Probe.TestTimeout),
	)
	analyzer = domain.NewAnalyzer(factory, workspace, bisector, ui, log,
		domain.WithWorkers(conf.Analyze.Workers),
		domain.WithIsolation(conf.Analyze.Isolate),
	)

	log.WithField("dir", dirFlag).Debug("collaborators wired")

	return nil
}

// resolveEcosystem honours --language and otherwise detects the ecosystem
// from manifests in the project directory.
func resolveEcosystem() (m.Ecosystem, error) {
	if languageFlag != "" {
		return m.ParseEcosystem(languageFlag)
	}

	return adapter.DetectEcosystem(projectFS, dirFlag), nil
}

// resolveTestCommand honours --test-command and otherwise uses the
// configured command for eco.
func resolveTestCommand(eco m.Ecosystem) string {
	if testCommandFlag != "" {
		return testCommandFlag
	}

	return cfg.TestCommand(eco)
}

// saveReport writes doc to --report-file when it is set.
func saveReport(doc any) error {
	if reportFileFlag == "" {
		return nil
	}

	if err := reportStore.SaveReport(reportFileFlag, doc); err != nil {
		return err
	}

	logger.WithField("path", reportFileFlag).Info("report written")

	return nil
}

// interrupted turns a cancelled run into a command error.
func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "interrupted")
	}

	return nil
}
