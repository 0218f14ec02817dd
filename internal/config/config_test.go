package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Portfolio.LookbackDays != 126 {
		t.Errorf("lookback = %d, want default 126", cfg.Portfolio.LookbackDays)
	}
	if cfg.Portfolio.RiskFreeRate != 0.05 {
		t.Errorf("risk-free rate = %v, want default 0.05", cfg.Portfolio.RiskFreeRate)
	}
	if cfg.Capital.Bankroll != 10000 {
		t.Errorf("bankroll = %v, want default 10000", cfg.Capital.Bankroll)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
portfolio:
  symbols: [AAPL, MSFT]
  lookback_days: 252
  risk_free_rate: 0.03
  diagonal_only: true
database:
  sqlite_path: data/kelly.db
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Portfolio.Symbols) != 2 || cfg.Portfolio.Symbols[0] != "AAPL" {
		t.Errorf("symbols = %v, want [AAPL MSFT]", cfg.Portfolio.Symbols)
	}
	if cfg.Portfolio.LookbackDays != 252 {
		t.Errorf("lookback = %d, want 252", cfg.Portfolio.LookbackDays)
	}
	if !cfg.Portfolio.DiagonalOnly {
		t.Error("diagonal_only should be true")
	}
	if cfg.Database.SQLitePath != "data/kelly.db" {
		t.Errorf("sqlite path = %q", cfg.Database.SQLitePath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KELLY_SYMBOLS", "spy, qqq")
	t.Setenv("KELLY_RISK_FREE_RATE", "0.04")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Portfolio.Symbols) != 2 || cfg.Portfolio.Symbols[0] != "SPY" || cfg.Portfolio.Symbols[1] != "QQQ" {
		t.Errorf("symbols = %v, want upper-cased [SPY QQQ]", cfg.Portfolio.Symbols)
	}
	if cfg.Portfolio.RiskFreeRate != 0.04 {
		t.Errorf("risk-free rate = %v, want 0.04", cfg.Portfolio.RiskFreeRate)
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without symbols")
	}

	cfg.Portfolio.Symbols = []string{"AAPL"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Telegram.BotToken = "token-without-chat"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for telegram token without chat id")
	}
}
