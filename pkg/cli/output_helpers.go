package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// outputFormat is the value of the -o/--output flag.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(v string) error {
	if err := validateOutputFormat(v); err != nil {
		return err
	}
	*o = outputFormat(v)
	return nil
}

func (o *outputFormat) Type() string { return "format" }

func validateOutputFormat(output string) error {
	if output != outputTable && output != outputJSON {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// table renders aligned columns with a highlighted header row. Colors are
// used only when the destination is a terminal.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

// Row appends a row. Empty cells render as "-".
func (t *table) Row(cells ...string) {
	row := make([]string, len(cells))
	for i, c := range cells {
		if c == "" {
			c = "-"
		}
		row[i] = c
	}
	t.rows = append(t.rows, row)
}

func (t *table) Render(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	if !colorEnabled(w) {
		bold.DisableColor()
	}

	var b strings.Builder
	for i, h := range t.headers {
		last := i == len(t.headers)-1
		_, _ = bold.Fprint(&b, pad(h, widths[i], last))
		if !last {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			last := i == len(row)-1 || i == len(widths)-1
			b.WriteString(pad(cell, widths[i], last))
			if !last {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// pad right-pads s to width runes. The last column is left unpadded.
func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// colorEnabled reports whether w is a terminal and color is not disabled
// through NO_COLOR.
func colorEnabled(w io.Writer) bool {
	return !color.NoColor && isTerminal(w)
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
