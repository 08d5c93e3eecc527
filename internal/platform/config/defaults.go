package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultBcryptCost     = 12
	defaultMaxUploadBytes = 5 << 20

	defaultPageSize    = 20
	defaultMaxPageSize = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                 "0.0.0.0",
		"server.port":                 defaultServerPort,
		"server.read_timeout":         "5s",
		"server.read_header_timeout":  "2s",
		"server.write_timeout":        "10s",
		"server.idle_timeout":         "120s",
		"server.request_timeout":      "30s",
		"server.health_check_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "restaurant-api",

		"time.zone": "America/Toronto",

		"database.driver":            "memory",
		"database.dsn":               "",
		"database.table":             "entities",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.ping_timeout":      "2s",

		"auth.jwt_secret":         "",
		"auth.issuer":             "restaurant-api",
		"auth.token_ttl":          "12h",
		"auth.bcrypt_cost":        defaultBcryptCost,
		"auth.bootstrap.email":    "",
		"auth.bootstrap.password": "",

		"media.enabled":                                false,
		"media.backend":                                MediaBackendHTTP,
		"media.max_upload_bytes":                       defaultMaxUploadBytes,
		"media.allowed_types":                          []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		"media.client.base_url":                        "http://localhost:8081",
		"media.client.api_key":                         "",
		"media.client.timeout":                         "30s",
		"media.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"media.client.retry.initial_interval":          "100ms",
		"media.client.retry.max_interval":              "10s",
		"media.client.retry.multiplier":                defaultRetryMultiplier,
		"media.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"media.client.circuit_breaker.timeout":         "30s",
		"media.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"media.client.rate_limit.requests_per_second":  0,
		"media.client.rate_limit.burst_size":           1,
		"media.s3.bucket":                              "",
		"media.s3.region":                              "us-east-1",
		"media.s3.endpoint":                            "",
		"media.s3.public_base_url":                     "",
		"media.s3.use_path_style":                      false,

		"pagination.default_page_size": defaultPageSize,
		"pagination.max_page_size":     defaultMaxPageSize,
	}
}
