package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"diistore/internal/area"
	"diistore/internal/dashboard"
	"diistore/internal/upstream"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(areaCmd)
}

var areaCmd = &cobra.Command{
	Use:   "area [query]",
	Short: "Fetches the coverage table and lists the rows matching the query.",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := newAreaFetcher().Fetch(cmd.Context())
		printArea(os.Stdout, data, err, strings.Join(args, " "))
	},
}

// printArea renders the rows matching query. A failed fetch is shown like an
// empty table, its kind only goes to the debug log.
func printArea(w io.Writer, data area.Dataset, fetchErr error, query string) {
	if fetchErr != nil {
		slog.Debug("area fetch failed", "kind", upstream.KindOf(fetchErr).String(), "err", fetchErr)
		data = area.Dataset{}
	}

	rows := area.Filter(data, query)
	if len(rows) == 0 {
		fmt.Fprintln(w, dashboard.AreaEmptyMessage)
		suggestions := area.Suggest(data, query, 5)
		if len(suggestions) > 0 {
			fmt.Fprintf(w, "Mungkin maksud anda: %s\n", strings.Join(suggestions, ", "))
		}
		return
	}

	t := newTable()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Provinsi", "Kabupaten", "Area"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			renderSegments(area.Highlight(r.Province, query)),
			renderSegments(area.Highlight(r.Regency, query)),
			renderSegments(area.Highlight(r.AreaLabel, query)),
		})
	}
	t.AppendFooter(table.Row{"", "Total", fmt.Sprintf("%d / %d", len(rows), len(data))})
	t.Render()
}
