package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"agroportal/internal/app/client/config"
	"agroportal/internal/utils/logger/slogpretty"
)

// New создает логгер под окружение: local - цветной вывод, dev - JSON с debug, prod - JSON с info
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal, "":
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

// Discard логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}

	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
