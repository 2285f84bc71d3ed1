// Package config loads application configuration from an optional YAML file
// and STUDYPULSE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rlopes/studypulse/internal/store"
)

// Config holds all configuration for the application.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Study    StudyConfig    `mapstructure:"study"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// DatabaseConfig holds storage configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StudyConfig holds the learner's planning inputs.
type StudyConfig struct {
	WeeklyHours float64 `mapstructure:"weekly_hours"`
}

// AnalysisConfig tunes the analysis components.
type AnalysisConfig struct {
	TrendWindowDays  int     `mapstructure:"trend_window_days"`
	AnomalyThreshold float64 `mapstructure:"anomaly_threshold"`
	LookbackDays     int     `mapstructure:"lookback_days"`
}

// Load reads configuration from the config file and environment variables.
// A missing config file is not an error; defaults and environment apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if dir := configDir(); dir != "" {
		viper.AddConfigPath(dir)
	}

	setDefaults()

	viper.SetEnvPrefix("STUDYPULSE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		dbPath = "studypulse.db"
	}
	viper.SetDefault("database.path", dbPath)

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("study.weekly_hours", 20.0)

	viper.SetDefault("analysis.trend_window_days", 7)
	viper.SetDefault("analysis.anomaly_threshold", 2.0)
	viper.SetDefault("analysis.lookback_days", 90)
}

// configDir resolves the config directory, honoring XDG_CONFIG_HOME.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "studypulse")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "studypulse")
}
