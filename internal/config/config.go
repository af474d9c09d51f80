package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Database *DatabaseConfig `mapstructure:"database"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig selects the backing driver. "postgres" is the default,
// "sqlite" keeps the service self-contained for local development.
type DatabaseConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Load reads the yml file at path. Every key can be overridden by an
// environment variable prefixed with FAMILYMAP, e.g. FAMILYMAP_API_PORT.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("FAMILYMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})
	viper.WatchConfig()

	return conf, nil
}
