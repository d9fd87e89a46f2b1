// Package market хранит состояние тестового бэкенда маркетплейса в памяти.
package market

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/notification"
	"agroportal/internal/domain/order"
	"agroportal/internal/domain/session"
)

// Op операция, в которую можно внедрить сбой
type Op string

const (
	OpCartGet            Op = "cart.get"
	OpCartAdd            Op = "cart.add"
	OpCartClear          Op = "cart.clear"
	OpFavoritesGet       Op = "favorites.get"
	OpFavoriteAdd        Op = "favorites.add"
	OpFavoriteRemove     Op = "favorites.remove"
	OpWalletGet          Op = "wallet.get"
	OpWalletTopUp        Op = "wallet.topup"
	OpNotificationsGet   Op = "notifications.get"
	OpNotificationRead   Op = "notifications.read"
	OpNotificationsRead  Op = "notifications.read_all"
	OpNotificationDelete Op = "notifications.delete"
	OpDashboard          Op = "dashboard.get"
	OpOrdersGet          Op = "orders.get"
	OpOrderPlace         Op = "orders.place"
	OpWeather            Op = "weather.get"
	OpUsers              Op = "users.get"
)

type account struct {
	id         string
	role       session.Role
	profile    session.Profile
	hash       []byte
	active     bool
	createdAt  time.Time
	cart       []cart.ServerItem
	favorites  []string
	balance    float64
	feed       []notification.Notification
	orders     []order.Order
	totalSpent float64
}

type Store struct {
	log       *slog.Logger
	now       func() time.Time
	hashCost  int
	validator *session.RegisterValidator

	mu       sync.Mutex
	accounts map[string]*account
	byEmail  map[string]string
	products map[string]cart.Product
	catalog  []string
	faults   map[Op][]error
}

type Option func(*Store)

// WithHashCost стоимость bcrypt, в тестах удобно bcrypt.MinCost
func WithHashCost(cost int) Option {
	return func(s *Store) { s.hashCost = cost }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		log:       log.With(slog.String("component", "market")),
		now:       time.Now,
		hashCost:  bcrypt.DefaultCost,
		validator: session.NewRegisterValidator(),
		accounts:  make(map[string]*account),
		byEmail:   make(map[string]string),
		products:  make(map[string]cart.Product),
		faults:    make(map[Op][]error),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seedCatalog()
	return s
}

// FailNext следующий вызов op завершится ошибкой err (или ErrInjected)
func (s *Store) FailNext(op Op, err error) {
	if err == nil {
		err = ErrInjected
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = append(s.faults[op], err)
}

// faultLocked забирает внедренную ошибку для op
func (s *Store) faultLocked(op Op) error {
	queue := s.faults[op]
	if len(queue) == 0 {
		return nil
	}
	err := queue[0]
	s.faults[op] = queue[1:]
	s.log.Debug("Сработал внедренный сбой", "op", op, "error", err)
	return err
}

func (s *Store) accountLocked(userID string) (*account, error) {
	acc, ok := s.accounts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return acc, nil
}

func (s *Store) notifyLocked(acc *account, typ, title, message string, priority notification.Priority) {
	n := notification.Notification{
		ID:        newID(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: s.now().UTC(),
		Priority:  priority,
	}
	acc.feed = append([]notification.Notification{n}, acc.feed...)
}

func (s *Store) seedCatalog() {
	for _, p := range []cart.Product{
		{ID: "tomato", Name: "Томаты", Price: 120, Unit: "кг", SellerRef: "farm-1"},
		{ID: "potato", Name: "Картофель", Price: 45, Unit: "кг", SellerRef: "farm-1"},
		{ID: "milk", Name: "Молоко", Price: 90, Unit: "л", SellerRef: "farm-2"},
		{ID: "honey", Name: "Мед", Price: 650, Unit: "кг", SellerRef: "farm-3"},
		{ID: "wheat", Name: "Пшеница", Price: 18, Unit: "кг", SellerRef: "farm-2"},
	} {
		s.products[p.ID] = p
		s.catalog = append(s.catalog, p.ID)
	}
}

// Products каталог в порядке добавления
func (s *Store) Products() []cart.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cart.Product, 0, len(s.catalog))
	for _, id := range s.catalog {
		out = append(out, s.products[id])
	}
	return out
}
