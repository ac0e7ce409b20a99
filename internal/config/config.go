// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		TotalWords int `mapstructure:"total_words"`
		// "day" in production; "minute" compresses the spaced-repetition
		// schedule uniformly for verification runs.
		ReviewIntervalUnit string `mapstructure:"review_interval_unit"`
		MinDailyGoal       int    `mapstructure:"min_daily_goal"`
		MaxDailyGoal       int    `mapstructure:"max_daily_goal"`
		GroupMaxMembers    int    `mapstructure:"group_max_members"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled   bool   `mapstructure:"enabled"`
		SecretKey string `mapstructure:"secret_key"`
		// User id injected by the dev middleware when auth is disabled.
		DevUserID string `mapstructure:"dev_user_id"`
	} `mapstructure:"auth"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

// IntervalUnit returns the duration of one schedule unit.
func (c *Config) IntervalUnit() time.Duration {
	if c.App.ReviewIntervalUnit == "minute" {
		return time.Minute
	}
	return 24 * time.Hour
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("auth.secret_key", "AUTH_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	// Defaults for anything the file or the environment left unset.
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.App.TotalWords <= 0 {
		cfg.App.TotalWords = DefaultTotalWords
	}
	if cfg.App.ReviewIntervalUnit == "" {
		cfg.App.ReviewIntervalUnit = "day"
	}
	if cfg.App.MinDailyGoal <= 0 {
		cfg.App.MinDailyGoal = DefaultMinDailyGoal
	}
	if cfg.App.MaxDailyGoal <= 0 {
		cfg.App.MaxDailyGoal = DefaultMaxDailyGoal
	}
	if cfg.App.GroupMaxMembers <= 0 {
		cfg.App.GroupMaxMembers = DefaultGroupMaxMembers
	}
	if !viper.IsSet("auth.enabled") {
		cfg.Auth.Enabled = DefaultAuthEnabled
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Printf("Config loaded: port=%s total_words=%d interval_unit=%s auth=%t",
		cfg.Server.Port, cfg.App.TotalWords, cfg.App.ReviewIntervalUnit, cfg.Auth.Enabled)

	return &cfg, nil
}
