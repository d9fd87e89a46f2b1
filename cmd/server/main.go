package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"agroportal/internal/app/server/api"
	"agroportal/internal/app/server/config"
	"agroportal/internal/app/server/market"
	"agroportal/internal/app/server/token"
	"agroportal/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	store := market.NewStore(log)
	if conf.Seed {
		if err := store.SeedDemo(context.Background()); err != nil {
			log.Error("Ошибка создания демо данных", "error", err)
			os.Exit(1)
		}
		log.Info("Демо пользователи созданы", "password", "password")
	}

	issuer := token.NewIssuer(token.Config{
		Secret: []byte(conf.Auth.Secret),
		Issuer: conf.Auth.Issuer,
		TTL:    conf.Auth.TokenTTL,
	})

	server := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(store, issuer, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Сервер запущен", slog.String("address", conf.Server.RunAddress), slog.String("env", conf.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Ошибка сервера", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Ошибка остановки сервера", "error", err)
		os.Exit(1)
	}
	log.Info("Сервер остановлен")
}
