// Package config loads client configuration from the environment.
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

const envFile = ".env"

type Config struct {
	API struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"api"`
	HTTP struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"http"`
	Storage struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"storage"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

// New loads configuration: .env values fill the environment without
// overriding it, then viper binds env vars over typed defaults.
func New() (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://127.0.0.1:8000/api")
	v.SetDefault("http.timeout", 15*time.Second)
	v.SetDefault("storage.path", defaultStoragePath())
	v.SetDefault("logging.level", "info")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"api.base_url",
		"http.timeout",
		"storage.path",
		"logging.level",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "teamline.db"
	}
	return filepath.Join(home, ".teamline", "teamline.db")
}
