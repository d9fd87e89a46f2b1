package cart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/internal/app/client"
	"agroportal/internal/domain/cart"
)

// CartCmd - родительская команда для операций с корзиной
var CartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Корзина покупателя",
	Long: `Просмотр и изменение корзины.

Позиции адресуются номером из "agroportal cart list". Каждое добавление
создает отдельную позицию, одинаковые товары не объединяются.`,
}

// itemAt позиция по номеру из списка, нумерация с 1
func itemAt(app *client.App, arg string) (cart.Item, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return cart.Item{}, fmt.Errorf("номер позиции должен быть числом: %q", arg)
	}
	items := app.Cart()
	if n < 1 || n > len(items) {
		return cart.Item{}, fmt.Errorf("позиции %d нет, в корзине %d", n, len(items))
	}
	return items[n-1], nil
}

func printCart(app *client.App) error {
	items := app.Cart()
	totals := app.CartTotals()

	view := struct {
		Items  []cart.Item `json:"items"`
		Totals cart.Totals `json:"totals"`
	}{items, totals}

	return output.Print(view, func(w io.Writer) {
		if len(items) == 0 {
			fmt.Fprintln(w, "Корзина пуста")
			return
		}
		output.Table(w, "#\tТОВАР\tКОЛ-ВО\tЦЕНА\tСУММА", func(tw io.Writer) {
			for i, it := range items {
				fmt.Fprintf(tw, "%d\t%s\t%d %s\t%.2f\t%.2f\n", i+1, it.Name, it.Quantity, it.Unit, it.UnitPrice, it.UnitPrice*float64(it.Quantity))
			}
		})
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Подытог:  %.2f\n", totals.Subtotal)
		fmt.Fprintf(w, "Налог:    %.2f\n", totals.Tax)
		fmt.Fprintf(w, "Доставка: %.2f\n", totals.Delivery)
		fmt.Fprintf(w, "Итого:    %.2f\n", totals.Total)
	})
}
