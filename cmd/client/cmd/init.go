// cmd/client/cmd/init.go
package cmd

import (
	"agroportal/cmd/client/cmd/auth"
	"agroportal/cmd/client/cmd/cart"
	"agroportal/cmd/client/cmd/catalog"
	"agroportal/cmd/client/cmd/favorites"
	"agroportal/cmd/client/cmd/notifications"
	"agroportal/cmd/client/cmd/orders"
	"agroportal/cmd/client/cmd/overview"
	"agroportal/cmd/client/cmd/wallet"
	"agroportal/cmd/client/cmd/watch"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	rootCmd.AddCommand(catalog.ProductsCmd)

	rootCmd.AddCommand(cart.CartCmd)
	cart.CartCmd.AddCommand(cart.ListCmd)
	cart.CartCmd.AddCommand(cart.AddCmd)
	cart.CartCmd.AddCommand(cart.QuantityCmd)
	cart.CartCmd.AddCommand(cart.RemoveCmd)
	cart.CartCmd.AddCommand(cart.ClearCmd)

	rootCmd.AddCommand(favorites.FavoritesCmd)
	favorites.FavoritesCmd.AddCommand(favorites.ListCmd)
	favorites.FavoritesCmd.AddCommand(favorites.ToggleCmd)

	rootCmd.AddCommand(wallet.WalletCmd)
	wallet.WalletCmd.AddCommand(wallet.ShowCmd)
	wallet.WalletCmd.AddCommand(wallet.TopUpCmd)

	rootCmd.AddCommand(notifications.NotificationsCmd)
	notifications.NotificationsCmd.AddCommand(notifications.ListCmd)
	notifications.NotificationsCmd.AddCommand(notifications.ReadCmd)
	notifications.NotificationsCmd.AddCommand(notifications.ReadAllCmd)
	notifications.NotificationsCmd.AddCommand(notifications.DeleteCmd)

	rootCmd.AddCommand(orders.OrdersCmd)
	orders.OrdersCmd.AddCommand(orders.ListCmd)
	orders.OrdersCmd.AddCommand(orders.PlaceCmd)

	rootCmd.AddCommand(overview.DashboardCmd)
	rootCmd.AddCommand(overview.WeatherCmd)
	rootCmd.AddCommand(overview.UsersCmd)

	rootCmd.AddCommand(watch.WatchCmd)
}
