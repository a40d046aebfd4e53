package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes a fresh root command with args and returns what it wrote
// to stdout. HOME and the EXPLORER_* variables are isolated so no real
// config is loaded.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EXPLORER_CATALOG", "")
	t.Setenv("EXPLORER_OUTPUT", "")
	return execRoot(t, stdin, args...)
}

// execRoot runs the root command without touching the environment.
func execRoot(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd, err)
	}
	return out.String(), err
}

// writeCatalogFile writes a seed document to a temp dir and returns its path.
func writeCatalogFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const smallCatalogYAML = `apiVersion: explorer/v1
kind: AssetCatalog
assets:
  - id: events_v1
    name: events
    domain: product
    description: Raw clickstream events.
    owner: data.product@company.com
    tags: [bronze]
    updated_at: "2025-07-01"
    columns:
      - name: event_id
        type: uuid
    lineage:
      upstream: []
      downstream: [sessions]
`
