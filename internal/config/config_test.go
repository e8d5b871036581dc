package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{DBPath: "./fintrack.db", Currency: "EUR"},
			wantErr: false,
		},
		{
			name:    "empty db path",
			config:  Config{DBPath: "", Currency: "EUR"},
			wantErr: true,
		},
		{
			name:    "blank currency",
			config:  Config{DBPath: "./fintrack.db", Currency: "  "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_CreatesDBDir(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		DBPath:   filepath.Join(dir, "nested", "fintrack.db"),
		Currency: "EUR",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FINTRACK_DB_PATH", "")
	t.Setenv("FINTRACK_CURRENCY", "")
	t.Setenv("FINTRACK_LOG_LEVEL", "")

	cfg := Load()
	if cfg.DBPath == "" {
		t.Fatal("expected a default database path")
	}
	if cfg.Currency == "" {
		t.Fatal("expected a default currency label")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("expected info default log level, got %v", cfg.LogLevel)
	}
}

func TestGetEnvLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Setenv("FINTRACK_LOG_LEVEL", tt.value)
		if got := getEnvLevel("FINTRACK_LOG_LEVEL", slog.LevelInfo); got != tt.want {
			t.Fatalf("getEnvLevel(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
