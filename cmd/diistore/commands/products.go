package commands

import (
	"diistore/internal/catalog"
	"diistore/internal/dashboard"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var productsOther *bool

func init() {
	productsOther = productsCmd.Flags().Bool("other", false, "List the locally bundled products instead of the API products.")
	rootCmd.AddCommand(productsCmd)
}

var productsCmd = &cobra.Command{
	Use:   "products [--other]",
	Short: "Lists products with their selling price.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			products []catalog.Product
			markup   catalog.Amount
			err      error
		)
		if *productsOther {
			products, err = catalog.LoadOtherProducts(env.config.OtherProductsPath)
		} else {
			products, err = newCatalogClient().ListProducts(cmd.Context())
			markup = catalog.ResellerMarkup
		}
		if err != nil {
			return err
		}

		view := dashboard.BuildProductsView(dashboard.Source[catalog.Product]{
			Status: dashboard.StatusLoaded,
			Value:  products,
		}, markup)

		t := newTable()
		t.AppendHeader(table.Row{"Produk", "Provider", "Harga", "Deskripsi"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
			{Number: 4, WidthMax: 48},
		})
		for _, card := range view.Items {
			t.AppendRow(table.Row{card.Title, card.ProviderCode, card.PriceLabel, card.Description})
		}
		t.Render()
		return nil
	},
}
