package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = "../../.env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultRunAddress = ":8080"
	defaultSecret     = "SecRetKey"
	defaultTokenTTL   = 24 * time.Hour
	defaultLogLevel   = "info"
	defaultIssuer     = "agroportal-dev"
)

type Config struct {
	Env    string
	Server server
	Auth   auth
	Logger logger
	Seed   bool
}

type server struct {
	RunAddress      string
	ShutdownTimeout time.Duration
}

type auth struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

type logger struct {
	LogLevel string
}

// MustLoad загружает конфигурацию сервера и паникует при ошибке
func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	cfg, err := Load(viper.GetViper())
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func Load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", EnvLocal)
	v.SetDefault("RUN_ADDRESS", defaultRunAddress)
	v.SetDefault("SECRET", defaultSecret)
	v.SetDefault("TOKEN_ISSUER", defaultIssuer)
	v.SetDefault("TOKEN_TTL", defaultTokenTTL)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("SEED_DEMO", true)

	cfg := &Config{
		Env: v.GetString("APP_ENV"),
		Server: server{
			RunAddress:      v.GetString("RUN_ADDRESS"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Auth: auth{
			Secret:   v.GetString("SECRET"),
			Issuer:   v.GetString("TOKEN_ISSUER"),
			TokenTTL: v.GetDuration("TOKEN_TTL"),
		},
		Logger: logger{LogLevel: v.GetString("LOG_LEVEL")},
		Seed:   v.GetBool("SEED_DEMO"),
	}

	if strings.TrimSpace(cfg.Auth.Secret) == "" {
		return nil, fmt.Errorf("secret не может быть пустым")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("token_ttl должен быть положительным")
	}
	return cfg, nil
}
