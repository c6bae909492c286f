// Package config handles loading and validation of application configuration
// from environment variables and an optional YAML configuration file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/diljithmon170/GK-Group/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minJWTLength = 32
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
	// Debug switches gin to debug mode and exposes error details in responses.
	Debug bool `mapstructure:"DEBUG" yaml:"debug"`
	// ServeStatic mounts StaticDir under /static. Production deployments
	// normally leave this to the reverse proxy.
	ServeStatic            bool   `mapstructure:"SERVE_STATIC" yaml:"serve_static"`
	StaticDir              string `mapstructure:"STATIC_DIR" yaml:"static_dir"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" yaml:"shutdown_timeout_seconds"`
}

// DatabaseConfig holds PostgreSQL database connection details.
type DatabaseConfig struct {
	Host           string `mapstructure:"HOST" yaml:"host"`
	Port           int    `mapstructure:"PORT" yaml:"port"`
	User           string `mapstructure:"USER" yaml:"user"`
	Password       string `mapstructure:"PASSWORD" yaml:"password"`
	Name           string `mapstructure:"NAME" yaml:"name"`
	SSLMode        string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
	MaxConnections int    `mapstructure:"MAX_CONNECTIONS" yaml:"max_connections"`
	ConnMaxLife    string `mapstructure:"CONN_MAX_LIFE" yaml:"conn_max_life"`
	RunMigrations  bool   `mapstructure:"RUN_MIGRATIONS" yaml:"run_migrations"`
}

// URL returns a postgres:// connection URL suitable for pgxpool and golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// ConnMaxLifetime parses ConnMaxLife, falling back to one hour.
func (c *DatabaseConfig) ConnMaxLifetime() time.Duration {
	d, err := time.ParseDuration(c.ConnMaxLife)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// RedisConfig holds Redis connection details. Redis backs the submission
// rate limiter only; the site runs without it when Enabled is false.
type RedisConfig struct {
	Enabled      bool   `mapstructure:"ENABLED" yaml:"enabled"`
	Address      string `mapstructure:"ADDRESS" yaml:"address"`
	Password     string `mapstructure:"PASSWORD" yaml:"password"`
	DB           int    `mapstructure:"DB" yaml:"db"`
	UseTLS       bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
	PoolSize     int    `mapstructure:"POOL_SIZE" yaml:"pool_size"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS" yaml:"min_idle_conns"`
}

// EmailConfig holds configuration for operator notification e-mails.
type EmailConfig struct {
	Enabled       bool   `mapstructure:"ENABLED" yaml:"enabled"`
	FromAddress   string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName      string `mapstructure:"FROM_NAME" yaml:"from_name"`
	NotifyAddress string `mapstructure:"NOTIFY_ADDRESS" yaml:"notify_address"`
	ResendAPIKey  string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
}

// AdminConfig holds the settings for the administrative review surface.
type AdminConfig struct {
	JWTSecret     string `mapstructure:"JWT_SECRET" yaml:"jwt_secret"`
	Issuer        string `mapstructure:"ISSUER" yaml:"issuer"`
	TokenTTLHours int    `mapstructure:"TOKEN_TTL_HOURS" yaml:"token_ttl_hours"`
}

// RateLimitConfig holds configuration for public form rate limiting.
type RateLimitConfig struct {
	SubmissionsPerWindow int `mapstructure:"SUBMISSIONS_PER_WINDOW" yaml:"submissions_per_window"`
	WindowSeconds        int `mapstructure:"WINDOW_SECONDS" yaml:"window_seconds"`
}

// ValidationConfig tunes the form validation rules.
type ValidationConfig struct {
	// StrictEmail adds an RFC 5322 address check on top of the "@" and "." rule.
	StrictEmail bool `mapstructure:"STRICT_EMAIL" yaml:"strict_email"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server     ServerConfig     `mapstructure:"SERVER" yaml:"server"`
	Database   DatabaseConfig   `mapstructure:"DATABASE" yaml:"database"`
	Redis      RedisConfig      `mapstructure:"REDIS" yaml:"redis"`
	Email      EmailConfig      `mapstructure:"EMAIL" yaml:"email"`
	Admin      AdminConfig      `mapstructure:"ADMIN" yaml:"admin"`
	RateLimit  RateLimitConfig  `mapstructure:"RATE_LIMIT" yaml:"rate_limit"`
	Validation ValidationConfig `mapstructure:"VALIDATION" yaml:"validation"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{})
	v.SetDefault("SERVER.DEBUG", false)
	v.SetDefault("SERVER.SERVE_STATIC", false)
	v.SetDefault("SERVER.STATIC_DIR", "./static")
	v.SetDefault("SERVER.SHUTDOWN_TIMEOUT_SECONDS", 15)
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "gk_group")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_CONNECTIONS", 5)
	v.SetDefault("DATABASE.CONN_MAX_LIFE", "1h")
	v.SetDefault("DATABASE.RUN_MIGRATIONS", true)
	v.SetDefault("REDIS.ENABLED", false)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("REDIS.POOL_SIZE", 3)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 1)
	v.SetDefault("EMAIL.ENABLED", false)
	v.SetDefault("EMAIL.FROM_ADDRESS", "")
	v.SetDefault("EMAIL.FROM_NAME", "GK Group Website")
	v.SetDefault("EMAIL.NOTIFY_ADDRESS", "")
	v.SetDefault("EMAIL.RESEND_API_KEY", "")
	v.SetDefault("ADMIN.JWT_SECRET", "")
	v.SetDefault("ADMIN.ISSUER", "gk-group-site")
	v.SetDefault("ADMIN.TOKEN_TTL_HOURS", 12)
	v.SetDefault("RATE_LIMIT.SUBMISSIONS_PER_WINDOW", 5)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 60)
	v.SetDefault("VALIDATION.STRICT_EMAIL", true)
}

// LoadConfig loads configuration using Viper: defaults, then an optional
// YAML file named by CONFIG_FILE, then environment variables. The result is
// validated before it is returned.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	setDefaults(v)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "APP_VERSION"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		{"SERVER.DEBUG", "DEBUG"},
		{"SERVER.SERVE_STATIC", "SERVE_STATIC"},
		{"SERVER.STATIC_DIR", "STATIC_DIR"},
		// Database config
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"DATABASE.RUN_MIGRATIONS", "DB_RUN_MIGRATIONS"},
		// Redis config
		{"REDIS.ENABLED", "REDIS_ENABLED"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		// Email config
		{"EMAIL.ENABLED", "EMAIL_ENABLED"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.NOTIFY_ADDRESS", "EMAIL_NOTIFY_ADDRESS"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		// Admin config
		{"ADMIN.JWT_SECRET", "ADMIN_JWT_SECRET"},
		{"ADMIN.ISSUER", "ADMIN_ISSUER"},
		{"ADMIN.TOKEN_TTL_HOURS", "ADMIN_TOKEN_TTL_HOURS"},
		// Rate limit config
		{"RATE_LIMIT.SUBMISSIONS_PER_WINDOW", "RATE_LIMIT_SUBMISSIONS_PER_WINDOW"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
		// Validation config
		{"VALIDATION.STRICT_EMAIL", "VALIDATION_STRICT_EMAIL"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"db_host", cfg.Database.Host,
		"allowed_origins", cfg.Server.AllowedOrigins,
		"trusted_proxies", cfg.Server.TrustedProxies,
		"serve_static", cfg.Server.ServeStatic,
		"redis_enabled", cfg.Redis.Enabled,
		"email_enabled", cfg.Email.Enabled,
	)
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unknown server environment %q", cfg.Server.Environment)
	}
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}
	if cfg.Server.ServeStatic && cfg.Server.StaticDir == "" {
		return fmt.Errorf("static dir is required when static serving is enabled")
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	if cfg.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if cfg.Database.Password == "" {
		log.Warn("Database password is not set. Ensure this is intended (e.g., using trusted auth).")
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis address is required when redis is enabled")
	}

	if len(cfg.Admin.JWTSecret) < minJWTLength {
		return fmt.Errorf("admin JWT secret must be at least %d characters long", minJWTLength)
	}
	if cfg.Admin.TokenTTLHours <= 0 {
		return fmt.Errorf("admin token TTL must be positive")
	}

	if err := validateEmailConfig(&cfg.Email); err != nil {
		return err
	}

	if cfg.RateLimit.SubmissionsPerWindow <= 0 {
		return fmt.Errorf("rate limit submissions per window must be positive")
	}
	if cfg.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate limit window seconds must be positive")
	}

	return nil
}

// validateEmailConfig validates the notification e-mail settings. A missing
// API key auto-disables notifications with a warning.
func validateEmailConfig(cfg *EmailConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.ResendAPIKey == "" {
		logger.GetLogger().Warn("Resend API key not set, auto-disabling contact notifications")
		cfg.Enabled = false
		return nil
	}
	if cfg.FromAddress == "" {
		return fmt.Errorf("email from address is required")
	}
	if cfg.NotifyAddress == "" {
		return fmt.Errorf("email notify address is required")
	}
	return nil
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
