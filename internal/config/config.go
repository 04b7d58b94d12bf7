// Package config resolves runtime configuration from the environment and
// viper-managed defaults.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Backend names for the generation service.
const (
	BackendChat   = "chat"
	BackendGemini = "gemini"
)

// Config contains everything the server and CLI need at runtime.
type Config struct {
	Port            string
	SiteName        string
	BaseURL         string
	Backend         string
	APIKey          string
	Model           string
	ChatEndpoint    string
	GenerateTimeout time.Duration
}

// SetDefaults registers the default configuration values with viper.
// Callers run it once before Load, after viper.AutomaticEnv is in effect.
func SetDefaults() {
	viper.SetDefault("port", "8080")
	viper.SetDefault("site_name", "Kaomoji World")
	viper.SetDefault("base_url", "http://localhost:8080")
	viper.SetDefault("generator_backend", BackendChat)
	viper.SetDefault("generator_model", "")
	viper.SetDefault("chat_endpoint", "")
	viper.SetDefault("generate_timeout", 30*time.Second)
}

// Load materializes a Config from viper. The generation API key comes from
// the backend's usual variable (OPENAI_API_KEY or GEMINI_API_KEY), with
// API_KEY as a shared fallback. The chat backend tolerates a missing key by
// serving stub output; the Gemini backend does not.
func Load() (Config, error) {
	cfg := Config{
		Port:            viper.GetString("port"),
		SiteName:        viper.GetString("site_name"),
		BaseURL:         viper.GetString("base_url"),
		Backend:         viper.GetString("generator_backend"),
		Model:           viper.GetString("generator_model"),
		ChatEndpoint:    viper.GetString("chat_endpoint"),
		GenerateTimeout: viper.GetDuration("generate_timeout"),
	}

	switch cfg.Backend {
	case BackendChat:
		cfg.APIKey = firstNonEmpty(viper.GetString("openai_api_key"), viper.GetString("api_key"))
	case BackendGemini:
		cfg.APIKey = firstNonEmpty(viper.GetString("gemini_api_key"), viper.GetString("api_key"))
		if cfg.APIKey == "" {
			return cfg, fmt.Errorf("generator_backend %q requires GEMINI_API_KEY", cfg.Backend)
		}
	default:
		return cfg, fmt.Errorf("unknown generator_backend %q (want %q or %q)", cfg.Backend, BackendChat, BackendGemini)
	}

	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = 30 * time.Second
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
