package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const versionCmdName = "version"

// version is overridden at build time with -ldflags "-X github.com/mouse-blink/dtm/cmd.version=...".
var version = "dev"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: "Print the dtm version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "dtm version %s\n", version)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
