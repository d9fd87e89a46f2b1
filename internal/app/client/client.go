package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	gosync "sync"
	"syscall"

	"golang.org/x/exp/slog"

	"agroportal/internal/app/client/api"
	"agroportal/internal/app/client/config"
	"agroportal/internal/app/client/mutation"
	"agroportal/internal/app/client/poller"
	"agroportal/internal/app/client/reconcile"
	"agroportal/internal/domain/session"
	"agroportal/internal/infrastructure/storage/sqlite"
)

// App связывает сессию, зеркала коллекций, мутации и опрос сервера
type App struct {
	config       *config.Config
	log          *slog.Logger
	sessions     *session.Store
	repo         session.Repository
	api          *api.Client
	engine       *mutation.Engine
	poller       *poller.Scheduler
	cartSync     *reconcile.FullReplace
	favoriteSync *reconcile.Incremental
	collections  *collections

	ctx    context.Context
	cancel context.CancelFunc
	wg     gosync.WaitGroup
}

// Option настройка App
type Option func(*options)

type options struct {
	notifier mutation.Notifier
	repo     session.Repository
}

// WithNotifier куда отправлять уведомления об исходе операций
func WithNotifier(n mutation.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithRepository хранилище сессии вместо выбранного конфигурацией
func WithRepository(r session.Repository) Option {
	return func(o *options) { o.repo = r }
}

func New(cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.repo == nil {
		repo, err := newRepository(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации хранилища сессии: %w", err)
		}
		o.repo = repo
	}
	if o.notifier == nil {
		o.notifier = mutation.NewLogNotifier(log)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sessions := session.NewStore(o.repo, log)
	apiClient := api.NewClient(cfg, sessions.Lease, log)

	a := &App{
		config:       cfg,
		log:          log,
		sessions:     sessions,
		repo:         o.repo,
		api:          apiClient,
		engine:       mutation.NewEngine(sessions, o.notifier, log),
		poller:       poller.NewScheduler(log),
		favoriteSync: reconcile.NewIncremental(apiClient),
		ctx:          ctx,
		cancel:       cancel,
	}
	a.collections = newCollections(cfg, apiClient, sessions, log)
	a.cartSync = reconcile.NewFullReplace(apiClient, a.collections.cart.Snapshot, sessions, log)

	sessions.Subscribe(a.onSessionChange)

	return a, nil
}

func newRepository(cfg *config.Config, log *slog.Logger) (session.Repository, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendSQLite:
		return sqlite.NewSessionRepository(cfg.DataPath, log)
	default:
		return session.NewFileRepository(cfg.SessionPath), nil
	}
}

// Start восстанавливает сохраненную сессию. Если она есть, коллекции загружаются
// и запускается опрос.
func (a *App) Start(ctx context.Context) *session.Session {
	return a.sessions.Restore(ctx)
}

// Run держит клиент живым до сигнала завершения или отмены ctx
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.log.Info("Клиент запущен",
		"server", a.config.ServerAddress,
		"env", a.config.Env,
	)

	select {
	case <-ctx.Done():
		a.log.Info("Получен сигнал завершения")
	case <-a.ctx.Done():
	}
	return nil
}

// Wait ждет завершения всех фоновых операций
func (a *App) Wait() {
	a.engine.Wait()
	a.wg.Wait()
}

func (a *App) Shutdown() {
	a.log.Info("Завершение работы клиента...")

	a.cancel()
	a.poller.StopAll()
	a.Wait()

	if c, ok := a.repo.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.log.Warn("Ошибка закрытия хранилища сессии", "error", err)
		}
	}
	a.log.Info("Клиент завершил работу")
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.api.HealthCheck(ctx)
}

// Session текущая сессия или nil
func (a *App) Session() *session.Session {
	return a.sessions.Current()
}

// IsAuthenticated есть ли сессия с учетными данными
func (a *App) IsAuthenticated() bool {
	return a.sessions.Current().HasCredential()
}

// Polling ключи запущенных задач опроса
func (a *App) Polling() []string {
	return a.poller.Keys()
}

// onSessionChange снимки принадлежат одной сессии: при любой смене они сбрасываются,
// для новой сессии загружаются заново и запускается опрос
func (a *App) onSessionChange(ctx context.Context, prev, next *session.Session) {
	a.poller.StopAll()
	a.collections.resetAll()

	if next == nil {
		if prev != nil {
			a.log.Info("Сессия завершена", "identity", prev.IdentityID)
		}
		return
	}

	a.log.Info("Сессия активна", "identity", next.IdentityID, "role", next.Role)
	a.startPolling(next)

	if err := a.refresh(ctx, a.collections.all()...); err != nil {
		a.log.Warn("Не все коллекции загружены", "error", err)
	}
}

func (a *App) startPolling(s *session.Session) {
	for _, t := range a.collections.polled() {
		if !t.collection.Allowed(s) {
			continue
		}
		c := t.collection
		a.poller.Start(a.ctx, c.Name(), t.interval, func(ctx context.Context) error {
			return a.fetch(ctx, c)
		})
	}
}

// expire сессия отвергнута сервером. Выполняется в фоне: вызов может прийти
// из задачи опроса, которую остановит смена сессии.
func (a *App) expire(epoch uint64) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if a.sessions.Epoch() != epoch {
			return
		}
		a.log.Warn("Сервер отверг учетные данные, сессия завершена")
		if err := a.sessions.Set(a.ctx, nil); err != nil {
			a.log.Error("Не удалось завершить сессию", "error", err)
		}
	}()
}
