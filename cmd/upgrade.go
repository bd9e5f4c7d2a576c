package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dtm/internal/controller"
)

// upgradeCmd represents the upgrade command.
var upgradeCmd = newUpgradeCmd()

func newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <package>",
		Short: "Find the newest version of a dependency that passes your tests",
		Long: `Bisect the published versions of one dependency in the project environment.

Each probed version is installed into the project and the test command is run
against it. The result record names the latest working version, the first broken
version and any dependency conflicts reported by the package manager.

Examples:
  dtm upgrade requests
  dtm upgrade lodash --format table
  dtm upgrade serde --language rust --test-command "cargo test --lib"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pkg := args[0]

			eco, err := resolveEcosystem()
			if err != nil {
				return err
			}

			if err := ui.Start(controller.WithSingleMode()); err != nil {
				return err
			}

			report := analyzer.AnalyzePackage(ctx, eco, pkg, resolveTestCommand(eco))

			ui.Close()
			ui.Wait()

			if err := saveReport(report); err != nil {
				return err
			}

			if err := ui.DisplayReport(report); err != nil {
				return err
			}

			if report.Err != nil {
				return report.Err
			}

			return interrupted(ctx)
		},
	}
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
