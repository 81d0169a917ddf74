// Package config loads service settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendSimulation = "simulation"
	BackendLoopia     = "loopia"
)

type Config struct {
	Server       ServerConfig
	Log          LogConfig
	Providers    ProvidersConfig
	Generation   GenerationConfig
	Fallback     FallbackConfig
	Availability AvailabilityConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type LogConfig struct {
	Level  string
	Format string
}

type ProvidersConfig struct {
	Default  string
	Gemini   GeminiConfig
	DeepSeek DeepSeekConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type DeepSeekConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GenerationConfig struct {
	Timeout time.Duration
}

type FallbackConfig struct {
	Enabled bool
}

type AvailabilityConfig struct {
	Backend        string
	AIAlternatives bool
	Loopia         LoopiaConfig
}

type LoopiaConfig struct {
	Username string
	Password string
	Endpoint string
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("providers.default", "gemini")
	v.SetDefault("providers.gemini.api_key", "")
	v.SetDefault("providers.gemini.model", "gemini-2.5-flash")
	v.SetDefault("providers.deepseek.api_key", "")
	v.SetDefault("providers.deepseek.model", "deepseek-reasoner")
	v.SetDefault("providers.deepseek.base_url", "https://api.deepseek.com")
	v.SetDefault("generation.timeout", "30s")
	v.SetDefault("fallback.enabled", true)
	v.SetDefault("availability.backend", BackendSimulation)
	v.SetDefault("availability.ai_alternatives", true)
	v.SetDefault("availability.loopia.username", "")
	v.SetDefault("availability.loopia.password", "")
	v.SetDefault("availability.loopia.endpoint", "")
}

// Conventional variable names that do not follow the NAMEGEN_ prefix.
var envAliases = map[string]string{
	"server.port":                  "PORT",
	"server.mode":                  "GIN_MODE",
	"providers.gemini.api_key":     "GEMINI_API_KEY",
	"providers.deepseek.api_key":   "DEEPSEEK_API_KEY",
	"availability.loopia.username": "LOOPIA_USERNAME",
	"availability.loopia.password": "LOOPIA_PASSWORD",
}

// Load reads a .env file when present, then merges defaults, the config file
// at path (optional) and environment variables, highest last.
func Load(path string) (*Config, error) {
	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("NAMEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for key, env := range envAliases {
		if err := v.BindEnv(key, "NAMEGEN_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
			Mode: v.GetString("server.mode"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Providers: ProvidersConfig{
			Default: strings.ToLower(v.GetString("providers.default")),
			Gemini: GeminiConfig{
				APIKey: v.GetString("providers.gemini.api_key"),
				Model:  v.GetString("providers.gemini.model"),
			},
			DeepSeek: DeepSeekConfig{
				APIKey:  v.GetString("providers.deepseek.api_key"),
				Model:   v.GetString("providers.deepseek.model"),
				BaseURL: v.GetString("providers.deepseek.base_url"),
			},
		},
		Generation: GenerationConfig{
			Timeout: v.GetDuration("generation.timeout"),
		},
		Fallback: FallbackConfig{
			Enabled: v.GetBool("fallback.enabled"),
		},
		Availability: AvailabilityConfig{
			Backend:        strings.ToLower(v.GetString("availability.backend")),
			AIAlternatives: v.GetBool("availability.ai_alternatives"),
			Loopia: LoopiaConfig{
				Username: v.GetString("availability.loopia.username"),
				Password: v.GetString("availability.loopia.password"),
				Endpoint: v.GetString("availability.loopia.endpoint"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected with a default.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("generation.timeout must be positive, got %s", c.Generation.Timeout)
	}
	switch c.Availability.Backend {
	case BackendSimulation:
	case BackendLoopia:
		if c.Availability.Loopia.Username == "" || c.Availability.Loopia.Password == "" {
			return errors.New("availability.backend loopia requires LOOPIA_USERNAME and LOOPIA_PASSWORD")
		}
	default:
		return fmt.Errorf("unknown availability.backend %q", c.Availability.Backend)
	}
	return nil
}
