// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"agroportal/cmd/client/cmd/output"
	"agroportal/cmd/client/cmd/types"
	"agroportal/internal/app/client"
	"agroportal/internal/app/client/config"
	"agroportal/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "agroportal",
	Short: "AgroPortal - консольный клиент маркетплейса фермерских товаров",
	Long: `AgroPortal - клиент маркетплейса, который держит локальные копии корзины,
избранного, кошелька и уведомлений в согласии с сервером.

Изменения применяются сразу и отправляются на сервер в фоне. Сессия
сохраняется локально и восстанавливается при следующем запуске.`,
	PersistentPreRunE: setupApp,
	PersistentPostRun: shutdownApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Флаги командной строки важнее конфигурации
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	if debug {
		log = logger.New(cfg.Env)
	} else {
		log = logger.Discard()
	}
	output.SetJSON(jsonOutput)

	app, err = client.New(cfg, log, client.WithNotifier(output.Notifier{}))
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app.Start(ctx)

	cmd.SetContext(context.WithValue(ctx, types.ClientAppKey, app))
	return nil
}

func shutdownApp(_ *cobra.Command, _ []string) {
	if app != nil {
		app.Shutdown()
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".agroportal"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, err
		}
	}

	return config.Load(viper.GetViper())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "писать журнал в stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера AgroPortal")
}
