package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Portfolio struct {
		Symbols      []string `yaml:"symbols"`
		LookbackDays int      `yaml:"lookback_days"`
		RiskFreeRate float64  `yaml:"risk_free_rate"`
		DiagonalOnly bool     `yaml:"diagonal_only"`
		FullKelly    bool     `yaml:"full_kelly"`
	} `yaml:"portfolio"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Capital struct {
		Bankroll  float64 `yaml:"bankroll"`
		StateFile string  `yaml:"state_file"`
	} `yaml:"capital"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("KELLY_SYMBOLS"); v != "" {
		cfg.Portfolio.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("KELLY_LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Portfolio.LookbackDays = n
		}
	}
	if v := os.Getenv("KELLY_RISK_FREE_RATE"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Portfolio.RiskFreeRate = r
		}
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("KELLY_BANKROLL"); v != "" {
		if b, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Capital.Bankroll = b
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Portfolio.LookbackDays == 0 {
		cfg.Portfolio.LookbackDays = 126
	}
	if cfg.Portfolio.RiskFreeRate == 0 {
		cfg.Portfolio.RiskFreeRate = 0.05
	}
	if cfg.Capital.Bankroll == 0 {
		cfg.Capital.Bankroll = 10000
	}
	if cfg.Capital.StateFile == "" {
		cfg.Capital.StateFile = "data/capital_state.json"
	}
	if cfg.Schedule.WatchCron == "" {
		// Weekdays at 22:30 UTC, after the US close.
		cfg.Schedule.WatchCron = "0 30 22 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Portfolio.Symbols) == 0 {
		return fmt.Errorf("portfolio.symbols is required (or pass tickers as arguments)")
	}
	if c.Portfolio.LookbackDays < 2 {
		return fmt.Errorf("portfolio.lookback_days must be at least 2, got %d", c.Portfolio.LookbackDays)
	}
	if c.Capital.Bankroll <= 0 {
		return fmt.Errorf("capital.bankroll must be positive")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if sym := strings.ToUpper(strings.TrimSpace(part)); sym != "" {
			out = append(out, sym)
		}
	}
	return out
}
