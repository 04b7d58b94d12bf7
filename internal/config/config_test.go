package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func setup(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.AutomaticEnv()
	SetDefaults()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	setup(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Backend != BackendChat {
		t.Fatalf("Backend = %q, want chat", cfg.Backend)
	}
	if cfg.GenerateTimeout != 30*time.Second {
		t.Fatalf("GenerateTimeout = %v, want 30s", cfg.GenerateTimeout)
	}
}

func TestLoadChatKeyFallback(t *testing.T) {
	setup(t)
	t.Setenv("API_KEY", "shared-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "shared-key" {
		t.Fatalf("APIKey = %q, want shared fallback", cfg.APIKey)
	}
}

func TestLoadGeminiRequiresKey(t *testing.T) {
	setup(t)
	t.Setenv("GENERATOR_BACKEND", BackendGemini)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for gemini backend without key")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "g-key" {
		t.Fatalf("APIKey = %q", cfg.APIKey)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	setup(t)
	t.Setenv("GENERATOR_BACKEND", "carrier-pigeon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
