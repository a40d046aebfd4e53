// Package cli implements the explorer command-line interface. Commands run
// in-process against a catalog loaded from a YAML seed file or the built-in
// sample catalog.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"catalog-explorer/internal/catalog"
	"catalog-explorer/internal/domain"
	"catalog-explorer/internal/service/explorer"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		return 1
	}
	return 0
}

func reportError(rootCmd *cobra.Command, err error) {
	if getOutputFormat(rootCmd) == outputJSON {
		errObj := map[string]any{
			"error": err.Error(),
		}
		if code := errorCode(err); code != "" {
			errObj["code"] = code
		}
		_ = printJSON(rootCmd.OutOrStdout(), errObj)
		return
	}
	errOut := rootCmd.ErrOrStderr()
	red := color.New(color.FgRed, color.Bold)
	if !colorEnabled(errOut) {
		red.DisableColor()
	}
	_, _ = red.Fprint(errOut, "Error: ")
	_, _ = fmt.Fprintf(errOut, "%v\n", err)
}

func errorCode(err error) string {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &notFound):
		return "NOT_FOUND"
	case errors.As(err, &validation):
		return "VALIDATION"
	case errors.As(err, &conflict):
		return "CONFLICT"
	default:
		return ""
	}
}

// cliEnv carries the settings resolved in PersistentPreRunE and the lazily
// loaded explorer service.
type cliEnv struct {
	catalogPath string
	output      outputFormat
	profile     string
	verbose     bool

	logger *slog.Logger
	store  *catalog.Store
	svc    *explorer.Service
}

// service loads the catalog on first use.
func (e *cliEnv) service() (*explorer.Service, error) {
	if e.svc != nil {
		return e.svc, nil
	}
	store, err := e.loadCatalog()
	if err != nil {
		return nil, err
	}
	e.svc = explorer.NewService(store, e.logger)
	return e.svc, nil
}

func (e *cliEnv) loadCatalog() (*catalog.Store, error) {
	if e.store != nil {
		return e.store, nil
	}
	if e.catalogPath == "" {
		e.store = catalog.Default()
		return e.store, nil
	}
	store, err := catalog.LoadFile(e.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	e.logger.Debug("catalog loaded", "source", e.catalogPath, "assets", store.Len())
	e.store = store
	return store, nil
}

func newRootCmd() *cobra.Command {
	env := &cliEnv{output: outputTable}

	rootCmd := &cobra.Command{
		Use:           "explorer",
		Short:         "Metadata catalog explorer",
		Long:          "Browse, search and inspect the datasets of a metadata catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&env.catalogPath, "catalog", "", "YAML catalog file (default: built-in sample catalog)")
	rootCmd.PersistentFlags().VarP(&env.output, "output", "o", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&env.profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(newListCmd(env))
	rootCmd.AddCommand(newSearchCmd(env))
	rootCmd.AddCommand(newDescribeCmd(env))
	rootCmd.AddCommand(newLineageCmd(env))
	rootCmd.AddCommand(newAskCmd(env))
	rootCmd.AddCommand(newChatCmd(env))
	rootCmd.AddCommand(newExportCmd(env))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolve applies precedence flag > env > profile > default to the catalog
// path and output format.
func (e *cliEnv) resolve(cmd *cobra.Command) error {
	cfg, err := LoadUserConfig()
	if err != nil {
		cfg = defaultUserConfig()
	}
	p, err := cfg.ActiveProfile(e.profile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("catalog") {
		if v := os.Getenv("EXPLORER_CATALOG"); v != "" {
			e.catalogPath = v
		} else if p.Catalog != "" {
			e.catalogPath = p.Catalog
		}
	}
	if !flags.Changed("output") {
		if v := os.Getenv("EXPLORER_OUTPUT"); v != "" {
			if err := e.output.Set(v); err != nil {
				return err
			}
		} else if p.Output != "" {
			if err := e.output.Set(p.Output); err != nil {
				return fmt.Errorf("profile output: %w", err)
			}
		}
	}

	e.logger = slog.New(slog.DiscardHandler)
	if e.verbose {
		e.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return nil
}

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	f := cmd.Root().PersistentFlags().Lookup("output")
	if f == nil {
		return outputTable
	}
	return f.Value.String()
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}
