package configs

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

var AppConfig Config

// LoadConfig reads configs/config.yaml once at process start, with
// environment overrides. A missing connection string is a configuration
// error; nothing downstream can recover from it.
func LoadConfig() error {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "https://localhost:3000"})

	viper.AutomaticEnv()

	var fileLookupError viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &fileLookupError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if AppConfig.DB.DSN == "" {
		return errors.New("db.dsn is required")
	}
	return nil
}
