package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"catalog-explorer/internal/domain"
	"catalog-explorer/internal/service/explorer"
	"catalog-explorer/internal/session"
)

type listOutput struct {
	Data  []domain.Asset `json:"data"`
	Total int            `json:"total"`
}

type searchOutput struct {
	Data   []domain.Asset `json:"data"`
	Total  int            `json:"total"`
	Reason string         `json:"reason"`
}

func newListCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every dataset in the catalog",
		Example: `  explorer list
  explorer list --catalog ./catalog.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			assets := svc.ListAssets()
			out := cmd.OutOrStdout()
			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, listOutput{Data: assets, Total: len(assets)})
			}
			return printAssetTable(out, assets)
		},
	}
}

func newSearchCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query...]",
		Short: "Search datasets by name, description or owner",
		Long: `Case-insensitive substring search over dataset name, description and owner.
With no query every dataset is returned.`,
		Example: `  explorer search orders
  explorer search data.sales@company.com -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			res := svc.Search(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, searchOutput{Data: res.Assets, Total: len(res.Assets), Reason: res.Reason})
			}
			_, _ = fmt.Fprintf(out, "Search reason: %s\n\n", res.Reason)
			if len(res.Assets) == 0 {
				_, err := fmt.Fprintln(out, session.NoMatches)
				return err
			}
			return printAssetTable(out, res.Assets)
		},
	}
}

func printAssetTable(w io.Writer, assets []domain.Asset) error {
	tbl := newTable("ID", "NAME", "OWNER", "DOMAIN", "UPDATED")
	for _, a := range assets {
		tbl.Row(a.ID, a.Name, a.Owner, a.Domain, a.UpdatedAt)
	}
	return tbl.Render(w)
}

func newDescribeCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "describe <id>",
		Short:   "Show the full detail of one dataset",
		Example: `  explorer describe sales_orders_v1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			d, err := svc.Describe(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, d)
			}
			return printDetail(out, d)
		},
	}
}

func printDetail(w io.Writer, d *explorer.AssetDetail) error {
	_, _ = fmt.Fprintf(w, "%s • 360\n", d.Name)
	if d.Description != "" {
		_, _ = fmt.Fprintln(w, d.Description)
	}
	_, _ = fmt.Fprintln(w)

	tbl := newTable("FIELD", "VALUE")
	tbl.Row("Owner", d.Owner)
	tbl.Row("Domain", d.Domain)
	tbl.Row("Updated", d.UpdatedAt)
	tbl.Row("Source", d.Datasource)
	tbl.Row("Tags", joinOrDash(d.Tags))
	if err := tbl.Render(w); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w)
	if len(d.Columns) == 0 {
		_, err := fmt.Fprintln(w, "No columns.")
		return err
	}
	tbl = newTable("COLUMN", "TYPE", "TAGS", "DESCRIPTION")
	for _, c := range d.Columns {
		tbl.Row(c.Name, c.Type, joinOrDash(c.Tags), c.Description)
	}
	return tbl.Render(w)
}

func newLineageCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "lineage <id>",
		Short: "Show upstream and downstream datasets",
		Long: `Lists the lineage references of a dataset. References that name a dataset
in the catalog show its id; the rest are marked unresolved.`,
		Example: `  explorer lineage sales_orders_v1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			view, err := svc.Lineage(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, view)
			}
			return printLineage(out, view)
		},
	}
}

func printLineage(w io.Writer, view *domain.LineageView) error {
	_, _ = fmt.Fprintf(w, "Lineage of %s (%s)\n\n", view.AssetName, view.AssetID)
	refs := append(append([]domain.LineageRef(nil), view.Upstream...), view.Downstream...)
	if len(refs) == 0 {
		_, err := fmt.Fprintln(w, "No lineage recorded.")
		return err
	}
	tbl := newTable("DIRECTION", "NAME", "ASSET")
	for _, r := range refs {
		target := "(unresolved)"
		if r.Resolved {
			target = r.AssetID
		}
		tbl.Row(string(r.Direction), r.Name, target)
	}
	return tbl.Render(w)
}
