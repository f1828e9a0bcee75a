package commands

import (
	"fmt"

	"diistore/internal/catalog"
	"diistore/internal/dashboard"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stockCmd)
}

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Lists the remaining slots of every package, most first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newCatalogClient().CheckStock(cmd.Context())
		if err != nil {
			return err
		}
		view := dashboard.BuildStockView(dashboard.Source[catalog.StockItem]{
			Status: dashboard.StatusLoaded,
			Value:  items,
		})

		fmt.Println(view.Notice)
		t := newTable()
		t.AppendHeader(table.Row{"Tipe", "Nama", "Sisa Slot"})
		for _, row := range view.Items {
			t.AppendRow(table.Row{
				row.Type,
				row.Name,
				levelColors(row.Level).Sprint(row.SlotsLabel),
			})
		}
		t.Render()
		return nil
	},
}
