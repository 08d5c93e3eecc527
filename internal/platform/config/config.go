// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Time       TimeConfig       `koanf:"time"`
	Database   DatabaseConfig   `koanf:"database"`
	Auth       AuthConfig       `koanf:"auth"`
	Media      MediaConfig      `koanf:"media"`
	Pagination PaginationConfig `koanf:"pagination"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `koanf:"host"`
	Port               int           `koanf:"port"`
	ReadTimeout        time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout  time.Duration `koanf:"read_header_timeout"`
	WriteTimeout       time.Duration `koanf:"write_timeout"`
	IdleTimeout        time.Duration `koanf:"idle_timeout"`
	RequestTimeout     time.Duration `koanf:"request_timeout"`
	// HealthCheckTimeout bounds each dependency check on /health/ready.
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// TimeConfig holds the civil zone every wall-clock value is interpreted in.
type TimeConfig struct {
	Zone string `koanf:"zone"`
}

// DatabaseConfig selects and tunes the entity store.
type DatabaseConfig struct {
	// Driver is "memory" or "postgres".
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	Table           string        `koanf:"table"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	PingTimeout     time.Duration `koanf:"ping_timeout"`
}

// AuthConfig holds admin token and password settings.
type AuthConfig struct {
	JWTSecret  string          `koanf:"jwt_secret"`
	Issuer     string          `koanf:"issuer"`
	TokenTTL   time.Duration   `koanf:"token_ttl"`
	BcryptCost int             `koanf:"bcrypt_cost"`
	Bootstrap  BootstrapConfig `koanf:"bootstrap"`
}

// BootstrapConfig names the admin created at startup when it is missing.
// An empty email disables bootstrapping.
type BootstrapConfig struct {
	Email    string `koanf:"email"`
	Password string `koanf:"password"`
}

// Media storage backends.
const (
	MediaBackendHTTP = "http"
	MediaBackendS3   = "s3"
)

// MediaConfig configures image uploads and where they are stored. Backend
// "http" proxies to the media-storage service described by Client; "s3"
// writes straight to a bucket.
type MediaConfig struct {
	Enabled        bool         `koanf:"enabled"`
	Backend        string       `koanf:"backend"`
	MaxUploadBytes int64        `koanf:"max_upload_bytes"`
	AllowedTypes   []string     `koanf:"allowed_types"`
	Client         ClientConfig `koanf:"client"`
	S3             S3Config     `koanf:"s3"`
}

// S3Config holds bucket settings for the s3 media backend. Credentials come
// from the default AWS chain. Endpoint and UsePathStyle target
// S3-compatible stores such as MinIO. PublicBaseURL prefixes object keys in
// returned URLs.
type S3Config struct {
	Bucket        string `koanf:"bucket"`
	Region        string `koanf:"region"`
	Endpoint      string `koanf:"endpoint"`
	PublicBaseURL string `koanf:"public_base_url"`
	UsePathStyle  bool   `koanf:"use_path_style"`
}

// ClientConfig holds downstream HTTP client settings. APIKey, when set, is
// sent as X-API-Key on every request.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIKey         string               `koanf:"api_key"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PaginationConfig bounds list endpoint page sizes.
type PaginationConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}
