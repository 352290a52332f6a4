package config

import (
	"testing"

	"budgetapi/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestParseErrorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ErrorMode
		wantErr bool
	}{
		{"uniform", ErrorModeUniform, false},
		{"typed", ErrorModeTyped, false},
		{" Typed ", ErrorModeTyped, false},
		{"UNIFORM", ErrorModeUniform, false},
		{"strict", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseErrorMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")
		t.Setenv("PORT", "")
		t.Setenv("GIN_MODE", "")
		t.Setenv("ERROR_MODE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Env != "development" || cfg.Port != "8080" || cfg.GinMode != "release" {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
		if cfg.ErrorMode != ErrorModeUniform {
			t.Errorf("expected uniform error mode by default, got %q", cfg.ErrorMode)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("ERROR_MODE", "typed")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("expected port 9090, got %s", cfg.Port)
		}
		if cfg.ErrorMode != ErrorModeTyped {
			t.Errorf("expected typed, got %q", cfg.ErrorMode)
		}
		if Get() != cfg {
			t.Error("expected Get to return the last loaded config")
		}
	})

	t.Run("invalid_error_mode", func(t *testing.T) {
		t.Setenv("ERROR_MODE", "loose")

		if _, err := Load(); err == nil {
			t.Fatal("expected an error for an unknown ERROR_MODE")
		}
	})
}
