package client

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"agroportal/internal/app/client/api"
	"agroportal/internal/app/client/config"
	"agroportal/internal/app/client/mirror"
	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/dashboard"
	"agroportal/internal/domain/directory"
	"agroportal/internal/domain/favorite"
	"agroportal/internal/domain/notification"
	"agroportal/internal/domain/order"
	"agroportal/internal/domain/session"
	"agroportal/internal/domain/wallet"
	"agroportal/internal/domain/weather"
)

// Collection имя серверной коллекции
type Collection string

const (
	CollectionCart          Collection = "cart"
	CollectionFavorites     Collection = "favorites"
	CollectionWallet        Collection = "wallet"
	CollectionNotifications Collection = "notifications"
	CollectionDashboard     Collection = "dashboard"
	CollectionOrders        Collection = "orders"
	CollectionWeather       Collection = "weather"
	CollectionUsers         Collection = "users"
)

var (
	buyerOnly  = session.Roles{session.RoleBuyer}
	farmerOnly = session.Roles{session.RoleFarmer}
	adminOnly  = session.Roles{session.RoleAdmin}
	anyRole    = session.Roles{}
)

type collection interface {
	Name() string
	Allowed(s *session.Session) bool
	Fetch(ctx context.Context) error
	Reset()
}

type pollTask struct {
	collection collection
	interval   time.Duration
}

type collections struct {
	cart          *mirror.Mirror[[]cart.Item]
	favorites     *mirror.Mirror[favorite.Set]
	wallet        *mirror.Mirror[wallet.Balance]
	notifications *mirror.Mirror[notification.Feed]
	dashboard     *mirror.Mirror[dashboard.Stats]
	orders        *mirror.Mirror[[]order.Order]
	weather       *mirror.Mirror[weather.Report]
	users         *mirror.Mirror[[]directory.User]

	byName map[Collection]collection
	poll   []pollTask
}

func newCollections(cfg *config.Config, c *api.Client, sessions mirror.Sessions, log *slog.Logger) *collections {
	cs := &collections{
		cart: mirror.New(mirror.Options[[]cart.Item]{
			Name:    string(CollectionCart),
			Roles:   buyerOnly,
			Default: func() []cart.Item { return []cart.Item{} },
			Clone:   cart.Clone,
			Fetch: func(ctx context.Context) ([]cart.Item, error) {
				items, err := c.GetCart(ctx)
				if err != nil {
					return nil, err
				}
				return cart.FromServer(items), nil
			},
		}, sessions, log),

		favorites: mirror.New(mirror.Options[favorite.Set]{
			Name:    string(CollectionFavorites),
			Roles:   buyerOnly,
			Default: func() favorite.Set { return favorite.NewSet() },
			Clone:   favorite.Set.Clone,
			Fetch:   c.GetFavorites,
		}, sessions, log),

		wallet: mirror.New(mirror.Options[wallet.Balance]{
			Name:  string(CollectionWallet),
			Roles: buyerOnly,
			Fetch: c.GetWallet,
		}, sessions, log),

		notifications: mirror.New(mirror.Options[notification.Feed]{
			Name:    string(CollectionNotifications),
			Roles:   anyRole,
			Default: func() notification.Feed { return notification.Feed{Items: []notification.Notification{}} },
			Clone:   notification.Feed.Clone,
			Fetch: func(ctx context.Context) (notification.Feed, error) {
				return c.GetNotifications(ctx, 1, cfg.NotificationPageSize)
			},
		}, sessions, log),

		dashboard: mirror.New(mirror.Options[dashboard.Stats]{
			Name:  string(CollectionDashboard),
			Roles: buyerOnly,
			Fetch: c.GetDashboardStats,
		}, sessions, log),

		orders: mirror.New(mirror.Options[[]order.Order]{
			Name:    string(CollectionOrders),
			Roles:   buyerOnly,
			Default: func() []order.Order { return []order.Order{} },
			Clone:   cloneOrders,
			Fetch:   c.GetOrders,
		}, sessions, log),

		weather: mirror.New(mirror.Options[weather.Report]{
			Name:  string(CollectionWeather),
			Roles: farmerOnly,
			Clone: cloneReport,
			Fetch: func(ctx context.Context) (weather.Report, error) {
				return c.GetWeather(ctx, cfg.WeatherLocation)
			},
		}, sessions, log),

		users: mirror.New(mirror.Options[[]directory.User]{
			Name:    string(CollectionUsers),
			Roles:   adminOnly,
			Default: func() []directory.User { return []directory.User{} },
			Clone:   func(u []directory.User) []directory.User { return append([]directory.User{}, u...) },
			Fetch:   c.GetUsers,
		}, sessions, log),
	}

	cs.byName = map[Collection]collection{
		CollectionCart:          cs.cart,
		CollectionFavorites:     cs.favorites,
		CollectionWallet:        cs.wallet,
		CollectionNotifications: cs.notifications,
		CollectionDashboard:     cs.dashboard,
		CollectionOrders:        cs.orders,
		CollectionWeather:       cs.weather,
		CollectionUsers:         cs.users,
	}
	cs.poll = []pollTask{
		{collection: cs.wallet, interval: cfg.WalletPoll},
		{collection: cs.notifications, interval: cfg.NotificationPoll},
		{collection: cs.weather, interval: cfg.WeatherPoll},
	}

	return cs
}

func (cs *collections) all() []collection {
	return []collection{cs.cart, cs.favorites, cs.wallet, cs.notifications, cs.dashboard, cs.orders, cs.weather, cs.users}
}

func (cs *collections) polled() []pollTask {
	return cs.poll
}

func (cs *collections) resetAll() {
	for _, c := range cs.all() {
		c.Reset()
	}
}

func cloneOrders(in []order.Order) []order.Order {
	out := make([]order.Order, len(in))
	for i, o := range in {
		o.Lines = append([]order.Line{}, o.Lines...)
		out[i] = o
	}
	return out
}

func cloneReport(r weather.Report) weather.Report {
	r.Forecast = append([]weather.Day(nil), r.Forecast...)
	return r
}

// Refresh загружает коллекции с сервера. Без аргументов - все.
// Коллекции, недоступные текущей роли, сбрасываются без запроса.
func (a *App) Refresh(ctx context.Context, names ...Collection) error {
	if len(names) == 0 {
		return a.refresh(ctx, a.collections.all()...)
	}

	targets := make([]collection, 0, len(names))
	for _, n := range names {
		c, ok := a.collections.byName[n]
		if !ok {
			return fmt.Errorf("неизвестная коллекция: %s", n)
		}
		targets = append(targets, c)
	}
	return a.refresh(ctx, targets...)
}

func (a *App) refresh(ctx context.Context, targets ...collection) error {
	var g errgroup.Group
	for _, c := range targets {
		c := c
		g.Go(func() error {
			return a.fetch(ctx, c)
		})
	}
	return g.Wait()
}

func (a *App) fetch(ctx context.Context, c collection) error {
	epoch := a.sessions.Epoch()
	err := c.Fetch(ctx)
	if api.IsUnauthorized(err) {
		a.expire(epoch)
	}
	return err
}

// Cart позиции корзины
func (a *App) Cart() []cart.Item {
	return a.collections.cart.Snapshot()
}

// CartTotals суммы корзины, всегда по текущему снимку
func (a *App) CartTotals() cart.Totals {
	return cart.ComputeTotals(a.collections.cart.Snapshot())
}

func (a *App) Favorites() favorite.Set {
	return a.collections.favorites.Snapshot()
}

func (a *App) IsFavorite(productID string) bool {
	return a.collections.favorites.Snapshot().Has(productID)
}

func (a *App) Wallet() wallet.Balance {
	return a.collections.wallet.Snapshot()
}

func (a *App) Notifications() notification.Feed {
	return a.collections.notifications.Snapshot()
}

// UnreadCount число непрочитанных уведомлений в текущем снимке
func (a *App) UnreadCount() int {
	return notification.UnreadCount(a.collections.notifications.Snapshot().Items)
}

func (a *App) Dashboard() dashboard.Stats {
	return a.collections.dashboard.Snapshot()
}

func (a *App) Orders() []order.Order {
	return a.collections.orders.Snapshot()
}

func (a *App) Weather() weather.Report {
	return a.collections.weather.Snapshot()
}

func (a *App) Users() []directory.User {
	return a.collections.users.Snapshot()
}

// LastError последняя ошибка загрузки коллекции
func (a *App) LastError(name Collection) error {
	type errorer interface{ LastError() error }
	if c, ok := a.collections.byName[name].(errorer); ok {
		return c.LastError()
	}
	return nil
}

// OnWalletChange подписка на изменения баланса
func (a *App) OnWalletChange(fn func(wallet.Balance)) {
	a.collections.wallet.OnChange(fn)
}

// OnNotificationsChange подписка на изменения ленты уведомлений
func (a *App) OnNotificationsChange(fn func(notification.Feed)) {
	a.collections.notifications.OnChange(fn)
}

// OnWeatherChange подписка на изменения погоды
func (a *App) OnWeatherChange(fn func(weather.Report)) {
	a.collections.weather.OnChange(fn)
}

// Products каталог товаров. Не кешируется и доступен без сессии.
func (a *App) Products(ctx context.Context) ([]cart.Product, error) {
	return a.api.ListProducts(ctx)
}
