package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"catalog-explorer/internal/catalog"
)

func newExportCmd(env *cliEnv) *cobra.Command {
	var (
		file      string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the loaded catalog as a YAML seed document",
		Long: `Writes the catalog as a YAML document that the server accepts through
CATALOG_SEED_PATH and the CLI through --catalog. Without --file the document
is written to standard output.`,
		Example: `  explorer export > catalog.yaml
  explorer export --file ./catalog.yaml --overwrite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := env.loadCatalog()
			if err != nil {
				return err
			}
			if file == "" {
				return catalog.Encode(cmd.OutOrStdout(), store)
			}

			var buf bytes.Buffer
			if err := catalog.Encode(&buf, store); err != nil {
				return err
			}
			if err := writeExportFile(file, buf.Bytes(), overwrite); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if getOutputFormat(cmd) == outputJSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"status": "ok",
					"path":   file,
					"assets": store.Len(),
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d datasets to %s\n", store.Len(), file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write the document to this path instead of stdout")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the file if it already exists")

	return cmd
}

func writeExportFile(path string, data []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644) //nolint:gosec // path is user-supplied on purpose
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists (use --overwrite)", path)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
