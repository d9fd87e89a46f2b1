package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	SessionBackendFile   = "file"
	SessionBackendSQLite = "sqlite"
)

const (
	defaultServerAddress       = "localhost:8080"
	defaultLogLevel            = "info"
	defaultEnv                 = EnvLocal
	defaultConfigDir           = ".agroportal"
	defaultSessionBackend      = SessionBackendFile
	defaultRequestTimeout      = 15 * time.Second
	defaultRateLimit           = 20
	defaultRateBurst           = 10
	defaultWalletPoll          = 5 * time.Second
	defaultNotificationPoll    = 30 * time.Second
	defaultWeatherPoll         = 30 * time.Minute
	defaultNotificationsPerReq = 20
	defaultWeatherLocation     = ""
)

type Config struct {
	Env                  string        `mapstructure:"app_env"`
	ServerAddress        string        `mapstructure:"server_address"`
	EnableTLS            bool          `mapstructure:"enable_tls"`
	LogLevel             string        `mapstructure:"log_level"`
	ConfigDir            string        `mapstructure:"config_dir"`
	SessionBackend       string        `mapstructure:"session_backend"`
	SessionPath          string        `mapstructure:"session_path"`
	DataPath             string        `mapstructure:"data_path"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	RateLimit            float64       `mapstructure:"rate_limit"`
	RateBurst            int           `mapstructure:"rate_burst"`
	WalletPoll           time.Duration `mapstructure:"wallet_poll_interval"`
	NotificationPoll     time.Duration `mapstructure:"notification_poll_interval"`
	WeatherPoll          time.Duration `mapstructure:"weather_poll_interval"`
	NotificationPageSize int           `mapstructure:"notification_page_size"`
	WeatherLocation      string        `mapstructure:"weather_location"`
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load собирает конфигурацию из .env, переменных окружения и значений по умолчанию
func Load(v *viper.Viper) (*Config, error) {
	loadDotEnv()

	v.AutomaticEnv()
	ApplyDefaults(v)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	sessionPath := v.GetString("SESSION_PATH")
	if sessionPath == "" {
		sessionPath = filepath.Join(configDir, "session.json")
	}
	dataPath := v.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "client.db")
	}

	cfg := &Config{
		Env:                  v.GetString("APP_ENV"),
		ServerAddress:        v.GetString("SERVER_ADDRESS"),
		EnableTLS:            v.GetBool("ENABLE_TLS"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		ConfigDir:            configDir,
		SessionBackend:       strings.ToLower(v.GetString("SESSION_BACKEND")),
		SessionPath:          sessionPath,
		DataPath:             dataPath,
		RequestTimeout:       v.GetDuration("REQUEST_TIMEOUT"),
		RateLimit:            v.GetFloat64("RATE_LIMIT"),
		RateBurst:            v.GetInt("RATE_BURST"),
		WalletPoll:           v.GetDuration("WALLET_POLL_INTERVAL"),
		NotificationPoll:     v.GetDuration("NOTIFICATION_POLL_INTERVAL"),
		WeatherPoll:          v.GetDuration("WEATHER_POLL_INTERVAL"),
		NotificationPageSize: v.GetInt("NOTIFICATION_PAGE_SIZE"),
		WeatherLocation:      v.GetString("WEATHER_LOCATION"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults выставляет значения по умолчанию
func ApplyDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("SESSION_BACKEND", defaultSessionBackend)
	v.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("RATE_BURST", defaultRateBurst)
	v.SetDefault("WALLET_POLL_INTERVAL", defaultWalletPoll)
	v.SetDefault("NOTIFICATION_POLL_INTERVAL", defaultNotificationPoll)
	v.SetDefault("WEATHER_POLL_INTERVAL", defaultWeatherPoll)
	v.SetDefault("NOTIFICATION_PAGE_SIZE", defaultNotificationsPerReq)
	v.SetDefault("WEATHER_LOCATION", defaultWeatherLocation)
}

func loadDotEnv() {
	// .env ищем рядом с местом запуска, затем уровнем выше
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.ServerAddress) == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	switch c.SessionBackend {
	case SessionBackendFile, SessionBackendSQLite:
	default:
		return fmt.Errorf("неизвестный session_backend: %q", c.SessionBackend)
	}
	if c.WalletPoll <= 0 || c.NotificationPoll <= 0 || c.WeatherPoll <= 0 {
		return fmt.Errorf("интервалы опроса должны быть положительными")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout должен быть положительным")
	}
	return nil
}

// BaseURL адрес сервера со схемой
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return strings.TrimRight(c.ServerAddress, "/")
	}
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + strings.TrimRight(c.ServerAddress, "/")
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
