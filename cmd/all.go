package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dtm/internal/adapter"
	"github.com/mouse-blink/dtm/internal/controller"
)

// ErrNoDependencies is returned when the manifests declare nothing to analyze.
var ErrNoDependencies = errors.New("no dependencies found in project manifests")

// allCmd represents the all command.
var allCmd = newAllCmd()

func newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Bisect every direct dependency declared in the project manifests",
		Long: `Discover the direct dependencies declared in requirements.txt, pyproject.toml,
package.json, Cargo.toml or go.mod and bisect each of them.

Packages are analyzed --workers at a time. Without --isolate they share the
project environment and take turns installing into it; with --isolate each
package gets its own temporary copy of the project.

A package that cannot be analyzed is reported with an error status; it never
stops the others.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eco, err := resolveEcosystem()
			if err != nil {
				return err
			}

			pkgs, err := adapter.DiscoverDependencies(projectFS, dirFlag, eco)
			if err != nil {
				return err
			}

			if len(pkgs) == 0 {
				return errors.Wrapf(ErrNoDependencies, "%s project in %s", eco, dirFlag)
			}

			logger.WithField("packages", len(pkgs)).Info("dependencies discovered")

			if err := ui.Start(controller.WithAggregateMode(len(pkgs), cfg.Analyze.Workers)); err != nil {
				return err
			}

			reports := analyzer.AnalyzeAll(ctx, eco, pkgs, resolveTestCommand(eco))

			ui.Close()
			ui.Wait()

			if err := saveReport(reports); err != nil {
				return err
			}

			if err := ui.DisplayAggregate(reports); err != nil {
				return err
			}

			return interrupted(ctx)
		},
	}

	cmd.Flags().IntP("workers", "w", 1, "number of packages analyzed at once")
	cmd.Flags().Bool("isolate", false, "analyze each package in its own copy of the project")

	return cmd
}

func init() {
	rootCmd.AddCommand(allCmd)
}
