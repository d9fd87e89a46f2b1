package catalog

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
)

// ProductsCmd каталог товаров, вход не нужен
var ProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Каталог товаров",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		products, err := app.Products(cmd.Context())
		if err != nil {
			return err
		}

		return output.Print(products, func(w io.Writer) {
			output.Table(w, "ID\tТОВАР\tЦЕНА\tПРОДАВЕЦ", func(tw io.Writer) {
				for _, p := range products {
					fav := ""
					if app.IsFavorite(p.ID) {
						fav = " ★"
					}
					fmt.Fprintf(tw, "%s\t%s%s\t%.2f/%s\t%s\n", p.ID, p.Name, fav, p.Price, p.Unit, p.SellerRef)
				}
			})
		})
	},
}
