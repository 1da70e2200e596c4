package grader

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the grading service configuration. Values come from
// QUIZDECK_GRADER_* environment variables or an optional config file.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Model  ModelConfig  `mapstructure:"model"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ModelConfig struct {
	// MaxTokens bounds a single grading completion.
	MaxTokens int `mapstructure:"max_tokens"`
	// Temperature for grading. Low by default so grades are stable.
	Temperature float64 `mapstructure:"temperature"`
}

// Load reads configuration from the environment and, when path is
// non-empty, a YAML config file. Environment variables win.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8090")
	v.SetDefault("server.mode", "release")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("model.max_tokens", 1024)
	v.SetDefault("model.temperature", 0.2)

	v.SetEnvPrefix("QUIZDECK_GRADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
