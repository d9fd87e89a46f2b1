//GET    /api/v1/health                         # Статус (публичный)
//POST   /api/v1/auth/register                  # Регистрация (публичный)
//POST   /api/v1/auth/login                     # Логин (публичный)
//GET    /api/v1/products                       # Каталог (публичный)
//GET    /api/v1/cart                           # Корзина (BUYER)
//POST   /api/v1/cart                           # Добавить строку (BUYER)
//DELETE /api/v1/cart                           # Очистить корзину (BUYER)
//GET    /api/v1/favorites                      # Избранное (BUYER)
//POST   /api/v1/favorites/add/{productId}      # (BUYER)
//DELETE /api/v1/favorites/remove/{productId}   # (BUYER)
//GET    /api/v1/wallet                         # Баланс (BUYER)
//POST   /api/v1/wallet/topup                   # Пополнение (BUYER)
//GET    /api/v1/orders                         # Заказы (BUYER)
//POST   /api/v1/orders                         # Оформить заказ (BUYER)
//GET    /api/v1/dashboard/stats                # Сводка (BUYER)
//GET    /api/v1/notifications?page&limit       # Уведомления (любая роль)
//PATCH  /api/v1/notifications/{id}/read        # (любая роль)
//PATCH  /api/v1/notifications/read-all         # (любая роль)
//DELETE /api/v1/notifications/{id}             # (любая роль)
//GET    /api/v1/weather?location               # Погода (FARMER)
//GET    /api/v1/admin/users                    # Пользователи (ADMIN)

package api

import (
	"path"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	adminAPI "agroportal/internal/app/server/api/http/admin"
	cartAPI "agroportal/internal/app/server/api/http/cart"
	favoriteAPI "agroportal/internal/app/server/api/http/favorite"
	healthAPI "agroportal/internal/app/server/api/http/health"
	"agroportal/internal/app/server/api/http/middleware"
	"agroportal/internal/app/server/api/http/middleware/auth"
	"agroportal/internal/app/server/api/http/middleware/logger"
	notificationAPI "agroportal/internal/app/server/api/http/notification"
	orderAPI "agroportal/internal/app/server/api/http/order"
	productAPI "agroportal/internal/app/server/api/http/product"
	userAPI "agroportal/internal/app/server/api/http/user"
	walletAPI "agroportal/internal/app/server/api/http/wallet"
	weatherAPI "agroportal/internal/app/server/api/http/weather"
	"agroportal/internal/app/server/market"
	"agroportal/internal/app/server/token"
	"agroportal/internal/domain/session"
)

type Handlers struct {
	Health       *healthAPI.Handler
	User         *userAPI.Handler
	Product      *productAPI.Handler
	Cart         *cartAPI.Handler
	Favorite     *favoriteAPI.Handler
	Wallet       *walletAPI.Handler
	Order        *orderAPI.Handler
	Notification *notificationAPI.Handler
	Weather      *weatherAPI.Handler
	Admin        *adminAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(store *market.Store, issuer *token.Issuer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("AgroPortal API", "1.0.0")
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaNamer)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h := handlers(store, issuer, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Product.SetupRoutes(API)
	h.Cart.SetupRoutes(API)
	h.Favorite.SetupRoutes(API)
	h.Wallet.SetupRoutes(API)
	h.Order.SetupRoutes(API)
	h.Notification.SetupRoutes(API)
	h.Weather.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	return mux
}

// schemaNamer DTO разных доменов называются одинаково (ListResponse),
// поэтому имя схемы начинается с имени пакета: CartListResponse, OrderListResponse
func schemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return name
	}

	pkg := path.Base(t.PkgPath())
	if strings.HasPrefix(strings.ToLower(name), pkg) {
		return name
	}
	r, size := utf8.DecodeRuneInString(pkg)
	return string(unicode.ToUpper(r)) + pkg[size:] + name
}

func handlers(store *market.Store, issuer *token.Issuer, log *slog.Logger) *Handlers {
	authMW := auth.New(issuer, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(store, issuer, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	productHandler := productAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware(session.RoleBuyer))
	cartHandler := cartAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware(session.RoleBuyer))
	favoriteHandler := favoriteAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware(session.RoleBuyer))
	walletHandler := walletAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware(session.RoleBuyer))
	orderHandler := orderAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	notificationHandler := notificationAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware(session.RoleFarmer))
	weatherHandler := weatherAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware(session.RoleAdmin))
	adminHandler := adminAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:       healthHandler,
		User:         userHandler,
		Product:      productHandler,
		Cart:         cartHandler,
		Favorite:     favoriteHandler,
		Wallet:       walletHandler,
		Order:        orderHandler,
		Notification: notificationHandler,
		Weather:      weatherHandler,
		Admin:        adminHandler,
	}
}
