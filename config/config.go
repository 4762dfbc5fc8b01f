package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log          Logger             `mapstructure:"logger"`
	API          API                `mapstructure:"api"`
	AlphaVantage AlphaVantageConfig `mapstructure:"alpha_vantage"`
	Gemini       GeminiConfig       `mapstructure:"gemini"`
	Analysis     AnalysisConfig     `mapstructure:"analysis"`
	Cache        Cache              `mapstructure:"cache"`
	Telegram     TelegramConfig     `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type AlphaVantageConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type GeminiConfig struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseModel           string        `mapstructure:"base_model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxOutputTokens     int           `mapstructure:"max_output_tokens"`
	Temperature         float64       `mapstructure:"temperature"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type AnalysisConfig struct {
	TrailingWindow    int `mapstructure:"trailing_window"`
	TrendWindow       int `mapstructure:"trend_window"`
	MaxHistoryEntries int `mapstructure:"max_history_entries"`
	MaxShowHistory    int `mapstructure:"max_show_history"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token"`
	TimeoutDuration           time.Duration `mapstructure:"timeout_duration"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second"`
	MaxUserRequestPerSecond   int           `mapstructure:"max_user_request_per_second"`
	RatelimitExpireDuration   time.Duration `mapstructure:"ratelimit_expire_duration"`
	RateLimitCleanupDuration  time.Duration `mapstructure:"rate_limit_cleanup_duration"`
}

func Load() (*Config, error) {
	// .env is optional, same as a local config.yaml.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")

	viper.SetDefault("api.port", 8080)

	viper.SetDefault("alpha_vantage.base_url", "https://www.alphavantage.co")
	viper.SetDefault("alpha_vantage.timeout", "10s")
	viper.SetDefault("alpha_vantage.max_request_per_minute", 5)

	viper.SetDefault("gemini.base_model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", "60s")
	viper.SetDefault("gemini.max_output_tokens", 1500)
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("gemini.max_request_per_minute", 10)

	viper.SetDefault("analysis.trailing_window", 12)
	viper.SetDefault("analysis.trend_window", 6)
	viper.SetDefault("analysis.max_history_entries", 50)
	viper.SetDefault("analysis.max_show_history", 5)

	viper.SetDefault("cache.default_expiration", "30m")
	viper.SetDefault("cache.cleanup_interval", "1h")

	viper.SetDefault("telegram.timeout_duration", "5m")
	viper.SetDefault("telegram.max_global_request_per_second", 30)
	viper.SetDefault("telegram.max_user_request_per_second", 1)
	viper.SetDefault("telegram.ratelimit_expire_duration", "10m")
	viper.SetDefault("telegram.rate_limit_cleanup_duration", "30m")
}
