package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile     = "config/config.yaml"
	DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/forecast"
)

type Config struct {
	App         AppConfig         `yaml:"app"`
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Sentry      SentryConfig      `yaml:"sentry"`
	OpenWeather OpenWeatherConfig `yaml:"openweather"`
	Provider    ProviderConfig    `yaml:"provider"`
}

type AppConfig struct {
	Name    string `split_words:"true" yaml:"name"`
	Version string `split_words:"true" yaml:"version"`
	Env     string `split_words:"true" yaml:"env"`
}

type ServerConfig struct {
	Port            string        `split_words:"true" yaml:"port"`
	ShutdownTimeout time.Duration `split_words:"true" yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `split_words:"true" yaml:"level"`
}

type SentryConfig struct {
	DSN string `split_words:"true" yaml:"dsn"`
}

// OpenWeatherConfig holds the forecast provider credential. An empty APIKey is a valid
// configuration: requests then fail with "Weather service not configured".
type OpenWeatherConfig struct {
	APIKey  string `split_words:"true" yaml:"api_key,omitempty"`
	BaseURL string `split_words:"true" yaml:"base_url"`
}

// ProviderConfig controls the outbound forecast call. Retries and the circuit breaker are off
// unless explicitly enabled.
type ProviderConfig struct {
	Timeout        time.Duration `split_words:"true" yaml:"timeout"`
	Retries        int           `split_words:"true" yaml:"retries"`
	Backoff        time.Duration `split_words:"true" yaml:"backoff"`
	MaxBackoff     time.Duration `split_words:"true" yaml:"max_backoff"`
	BreakerEnabled bool          `split_words:"true" yaml:"breaker_enabled"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// NewConfig loads .env (if any), then the YAML file named by CONFIG_FILE, then environment overrides.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = DefaultConfigFile
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func Defaults() Config {
	return Config{
		App: AppConfig{
			Name:    "widget-weather",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		OpenWeather: OpenWeatherConfig{
			BaseURL: DefaultOpenWeatherURL,
		},
		Provider: ProviderConfig{
			Timeout:    10 * time.Second,
			Backoff:    500 * time.Millisecond,
			MaxBackoff: 5 * time.Second,
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	if err := p.loadFromFile(&cnf); err != nil {
		return nil, err
	}

	// Environment wins over the file. No envconfig defaults here, so unset variables keep file values.
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return &cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if strings.TrimSpace(config.App.Name) == "" {
		return fmt.Errorf("app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server.port is required")
	}
	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log.level %q is not a valid level", config.Log.Level)
	}
	if strings.TrimSpace(config.OpenWeather.BaseURL) == "" {
		return fmt.Errorf("openweather.base_url is required")
	}
	if config.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive")
	}
	if config.Provider.Retries < 0 {
		return fmt.Errorf("provider.retries must not be negative")
	}
	if config.Provider.Retries > 0 && config.Provider.Backoff <= 0 {
		return fmt.Errorf("provider.backoff must be positive when retries are enabled")
	}
	if config.Provider.Retries > 0 && config.Provider.MaxBackoff <= 0 {
		return fmt.Errorf("provider.max_backoff must be positive when retries are enabled")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// ResilienceEnabled reports whether the provider client should be wrapped with retries or a breaker.
func (c *Config) ResilienceEnabled() bool {
	return c.Provider.Retries > 0 || c.Provider.BreakerEnabled
}
