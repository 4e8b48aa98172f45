package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

// Config is split into a Public half that is safe to log or bake into
// images and a Private half holding credentials. Both are read from yaml
// files in one folder; environment variables override file values, which is
// how deployments inject secrets.
type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ListenAddr      string   `yaml:"listen_addr" env:"FEEDBOARD_LISTEN_ADDR"`
	LogLevel        string   `yaml:"log_level" env:"FEEDBOARD_LOG_LEVEL"`
	LogJSON         bool     `yaml:"log_json" env:"FEEDBOARD_LOG_JSON"`
	Storage         string   `yaml:"storage" env:"FEEDBOARD_STORAGE"` // postgres | memory
	Events          string   `yaml:"events" env:"FEEDBOARD_EVENTS"`   // redis | none
	EventNamespace  string   `yaml:"event_namespace" env:"FEEDBOARD_EVENT_NAMESPACE"`
	PlatformAccount string   `yaml:"platform_account" env:"FEEDBOARD_PLATFORM_ACCOUNT"`
	AllowedOrigins  []string `yaml:"allowed_origins" env:"FEEDBOARD_ALLOWED_ORIGINS"`
	RateLimitRPS    float64  `yaml:"rate_limit_rps" env:"FEEDBOARD_RATE_LIMIT_RPS"`
	RateLimitBurst  int      `yaml:"rate_limit_burst" env:"FEEDBOARD_RATE_LIMIT_BURST"`
	// Held as a string like "10s" because yaml.v2 cannot decode duration
	// literals; validated at load time.
	ShutdownTimeout string `yaml:"shutdown_timeout" env:"FEEDBOARD_SHUTDOWN_TIMEOUT"`
}

type Private struct {
	Pg            Pg     `yaml:"pg"`
	Redis         Redis  `yaml:"redis"`
	OperatorToken string `yaml:"operator_token" env:"FEEDBOARD_OPERATOR_TOKEN"`
}

type Pg struct {
	Host     string `yaml:"host" env:"FEEDBOARD_PG_HOST"`
	Port     int    `yaml:"port" env:"FEEDBOARD_PG_PORT"`
	User     string `yaml:"user" env:"FEEDBOARD_PG_USER"`
	Password string `yaml:"password" env:"FEEDBOARD_PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"FEEDBOARD_PG_DBNAME"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"FEEDBOARD_REDIS_ADDR"`
	Password string `yaml:"password" env:"FEEDBOARD_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"FEEDBOARD_REDIS_DB"`
}

// Platform parses the configured fee account.
func (c *Config) Platform() (domain.Identity, error) {
	return domain.ParseIdentity(c.Public.PlatformAccount)
}

// ShutdownTimeout parses the graceful shutdown window. validate guarantees
// the value parses after MustLoad.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Public.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func (c *Config) applyDefaults() {
	if c.Public.ListenAddr == "" {
		c.Public.ListenAddr = ":8080"
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.Storage == "" {
		c.Public.Storage = "memory"
	}
	if c.Public.Events == "" {
		c.Public.Events = "none"
	}
	if c.Public.EventNamespace == "" {
		c.Public.EventNamespace = "dev"
	}
	if c.Public.RateLimitRPS == 0 {
		c.Public.RateLimitRPS = 5
	}
	if c.Public.RateLimitBurst == 0 {
		c.Public.RateLimitBurst = 10
	}
	if c.Public.ShutdownTimeout == "" {
		c.Public.ShutdownTimeout = "10s"
	}
}

func (c *Config) validate() error {
	if _, err := c.Platform(); err != nil {
		return fmt.Errorf("platform_account: %w", err)
	}
	switch c.Public.Storage {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage must be postgres or memory, got %q", c.Public.Storage)
	}
	switch c.Public.Events {
	case "redis", "none":
	default:
		return fmt.Errorf("events must be redis or none, got %q", c.Public.Events)
	}
	if _, err := time.ParseDuration(c.Public.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown_timeout: %w", err)
	}
	return nil
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides and panics on any problem. Config errors at startup
// have no sane fallback.
func MustLoad(configFolder string) *Config {
	var cfg Config
	mustLoadPath(path.Join(configFolder, "public.yaml"), &cfg.Public)
	mustLoadPath(path.Join(configFolder, "private.yaml"), &cfg.Private)

	if err := env.Parse(&cfg); err != nil {
		panic("can't parse environment overrides: " + err.Error())
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		panic("invalid config: " + err.Error())
	}
	return &cfg
}
