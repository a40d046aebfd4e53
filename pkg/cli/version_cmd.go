package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd.OutOrStdout(), getOutputFormat(cmd))
		},
	}
}

func printVersion(w io.Writer, format string) error {
	if format == outputJSON {
		return printJSON(w, map[string]string{
			"version": version,
			"commit":  commit,
		})
	}
	_, err := fmt.Fprintf(w, "explorer version %s (commit: %s)\n", version, commit)
	return err
}
