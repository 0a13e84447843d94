package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// CallbackRateLimit caps screenshot callbacks per client per minute.
	CallbackRateLimit int `yaml:"callback_rate_limit" env:"SERVER_CALLBACK_RATE_LIMIT" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token settings. Tokens are issued elsewhere;
// this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"result-tracker"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ScreenshotConfig configures the remote screenshot service client.
// An empty Endpoint disables screenshot requests.
type ScreenshotConfig struct {
	Endpoint           string        `yaml:"endpoint"             env:"SCREENSHOT_ENDPOINT"`
	AccessToken        string        `yaml:"access_token"         env:"SCREENSHOT_ACCESS_TOKEN"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify" env:"SCREENSHOT_INSECURE_SKIP_VERIFY" env-default:"false"`
	Timeout            time.Duration `yaml:"timeout"              env:"SCREENSHOT_TIMEOUT"              env-default:"75s"`
	RetryDelay         time.Duration `yaml:"retry_delay"          env:"SCREENSHOT_RETRY_DELAY"          env-default:"0s"`

	// CallbackBaseURL is this service's public base URL; the screenshot
	// service posts results back to <base>/results/<id>/screenshot.
	CallbackBaseURL string `yaml:"callback_base_url" env:"SCREENSHOT_CALLBACK_BASE_URL"`
}

// Enabled reports whether a screenshot endpoint is configured.
func (c ScreenshotConfig) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// CallbackURL returns the callback address for the given result id, or ""
// when no base URL is configured.
func (c ScreenshotConfig) CallbackURL(resultID string) string {
	base := strings.TrimRight(strings.TrimSpace(c.CallbackBaseURL), "/")
	if base == "" {
		return ""
	}
	return base + "/results/" + resultID + "/screenshot"
}
