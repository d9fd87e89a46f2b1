package notifications

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/app/client"
)

// NotificationsCmd - родительская команда для уведомлений
var NotificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "Уведомления",
	Long: `Лента уведомлений. Уведомление можно указать номером из списка
или идентификатором.`,
}

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Показать уведомления",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}
		return printFeed(app)
	},
}

var ReadCmd = &cobra.Command{
	Use:   "read <#|id>",
	Short: "Отметить уведомление прочитанным",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		id, err := resolve(app, args[0])
		if err != nil {
			return err
		}
		if err := types.Await(cmd.Context(), app.MarkNotificationRead(cmd.Context(), id)); err != nil {
			return err
		}
		return printFeed(app)
	},
}

var ReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Отметить все уведомления прочитанными",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}
		return types.Await(cmd.Context(), app.MarkAllNotificationsRead(cmd.Context()))
	},
}

var DeleteCmd = &cobra.Command{
	Use:     "delete <#|id>",
	Aliases: []string{"rm"},
	Short:   "Удалить уведомление",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		if err := types.RequireSession(app); err != nil {
			return err
		}

		id, err := resolve(app, args[0])
		if err != nil {
			return err
		}
		if err := types.Await(cmd.Context(), app.DeleteNotification(cmd.Context(), id)); err != nil {
			return err
		}
		output.Success("Уведомление удалено")
		return nil
	},
}

func resolve(app *client.App, arg string) (string, error) {
	items := app.Notifications().Items
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(items) {
			return "", fmt.Errorf("уведомления %d нет, в ленте %d", n, len(items))
		}
		return items[n-1].ID, nil
	}
	return arg, nil
}

func printFeed(app *client.App) error {
	feed := app.Notifications()
	unread := app.UnreadCount()

	return output.Print(feed, func(w io.Writer) {
		fmt.Fprintf(w, "Непрочитанных: %d\n\n", unread)
		if len(feed.Items) == 0 {
			fmt.Fprintln(w, "Уведомлений нет")
			return
		}
		bold := color.New(color.Bold)
		for i, n := range feed.Items {
			marker := " "
			if !n.Read {
				marker = "●"
			}
			fmt.Fprintf(w, "%s %d. ", marker, i+1)
			if n.Read {
				fmt.Fprint(w, n.Title)
			} else {
				bold.Fprint(w, n.Title)
			}
			fmt.Fprintf(w, "  [%s, %s]\n", n.Priority, n.CreatedAt.Local().Format("02.01 15:04"))
			fmt.Fprintf(w, "     %s\n", n.Message)
		}
	})
}
