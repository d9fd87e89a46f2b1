package cart

import (
	"fmt"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/domain/cart"
)

var addQuantity int

var AddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Добавить товар новой позицией",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}
		if addQuantity < 1 {
			return fmt.Errorf("%w: %d", cart.ErrInvalidQuantity, addQuantity)
		}

		products, err := app.Products(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка загрузки каталога: %w", err)
		}
		var product *cart.Product
		for i := range products {
			if products[i].ID == args[0] {
				product = &products[i]
				break
			}
		}
		if product == nil {
			return fmt.Errorf("товар %q не найден в каталоге", args[0])
		}

		if err := types.Await(cmd.Context(), app.AddToCart(cmd.Context(), *product)); err != nil {
			return fmt.Errorf("сервер не подтвердил изменение корзины: %w", err)
		}

		if addQuantity > 1 {
			items := app.Cart()
			added := items[len(items)-1]
			if err := types.Await(cmd.Context(), app.UpdateQuantity(cmd.Context(), added.LocalID, addQuantity)); err != nil {
				return fmt.Errorf("сервер не подтвердил изменение корзины: %w", err)
			}
		}

		output.Success("%s добавлен в корзину", product.Name)
		return printCart(app)
	},
}

func init() {
	AddCmd.Flags().IntVarP(&addQuantity, "qty", "q", 1, "количество")
}
