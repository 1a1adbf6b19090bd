// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or
// environment variables. It is passed explicitly into constructors; nothing
// reads the environment after startup.
type Config struct {
	Port           string `mapstructure:"PORT"`
	AdminToken     string `mapstructure:"ADMIN_TOKEN"`
	DBDriver       string `mapstructure:"DB_DRIVER"`
	DBPath         string `mapstructure:"DB_PATH"`
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	DBSSLMode      string `mapstructure:"DB_SSLMODE"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	FrontendDist   string `mapstructure:"FRONTEND_DIST"`
	ResumePath     string `mapstructure:"RESUME_PATH"`
	Env            string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from config.yml and
// environment variables, with development defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; environment variables and defaults apply.
	}

	v.SetDefault("PORT", "8080")
	v.SetDefault("ADMIN_TOKEN", "changeme")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "portfolio.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "portfolio")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("FRONTEND_DIST", "frontend/dist")
	v.SetDefault("RESUME_PATH", "static/resume.pdf")
	v.SetDefault("APP_ENV", "development")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.DBDriver != "sqlite" && config.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", config.DBDriver)
	}

	return &config, nil
}
