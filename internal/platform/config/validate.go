package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// minJWTSecretLen is the shortest HS256 secret accepted.
const minJWTSecretLen = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Time.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.Media.validate(),
		c.Pagination.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.ReadHeaderTimeout < 0 || s.HealthCheckTimeout < 0 {
		errs = append(errs, errors.New("server.read_header_timeout and server.health_check_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (t *TimeConfig) validate() error {
	if t.Zone == "" {
		return errors.New("time.zone must not be empty")
	}
	if _, err := time.LoadLocation(t.Zone); err != nil {
		return fmt.Errorf("time.zone %q is not a known IANA zone: %w", t.Zone, err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case "memory":
		return nil
	case "postgres":
		if d.DSN == "" {
			errs = append(errs, errors.New("database.dsn must not be empty when driver is postgres"))
		}
		if d.Table == "" {
			errs = append(errs, errors.New("database.table must not be empty"))
		}
		if d.MaxOpenConns < 1 {
			errs = append(errs, fmt.Errorf("database.max_open_conns must be >= 1, got %d", d.MaxOpenConns))
		}
		if d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns {
			errs = append(errs, fmt.Errorf("database.max_idle_conns must be between 0 and max_open_conns, got %d",
				d.MaxIdleConns))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: memory, postgres; got %q", d.Driver))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretLen))
	}
	if a.Issuer == "" {
		errs = append(errs, errors.New("auth.issuer must not be empty"))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	// bcrypt accepts costs 4..31.
	if a.BcryptCost < 4 || a.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between 4 and 31, got %d", a.BcryptCost))
	}
	if a.Bootstrap.Email != "" && a.Bootstrap.Password == "" {
		errs = append(errs, errors.New("auth.bootstrap.password must not be empty when bootstrap email is set"))
	}

	return errors.Join(errs...)
}

func (m *MediaConfig) validate() error {
	if !m.Enabled {
		return nil
	}

	var errs []error

	if m.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("media.max_upload_bytes must be positive, got %d", m.MaxUploadBytes))
	}
	if len(m.AllowedTypes) == 0 {
		errs = append(errs, errors.New("media.allowed_types must not be empty"))
	}
	switch m.Backend {
	case MediaBackendHTTP:
		errs = append(errs, m.Client.validate("media.client"))
	case MediaBackendS3:
		errs = append(errs, m.S3.validate())
	default:
		errs = append(errs, fmt.Errorf("media.backend must be %q or %q, got %q",
			MediaBackendHTTP, MediaBackendS3, m.Backend))
	}

	return errors.Join(errs...)
}

func (s *S3Config) validate() error {
	var errs []error

	if s.Bucket == "" {
		errs = append(errs, errors.New("media.s3.bucket must not be empty"))
	}
	if s.Region == "" {
		errs = append(errs, errors.New("media.s3.region must not be empty"))
	}
	if s.Endpoint != "" {
		if u, err := url.Parse(s.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("media.s3.endpoint must be an absolute URL, got %q", s.Endpoint))
		}
	}
	if u, err := url.Parse(s.PublicBaseURL); s.PublicBaseURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("media.s3.public_base_url must be an absolute URL, got %q", s.PublicBaseURL))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	} else if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must be an absolute URL, got %q", prefix, cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is on", prefix))
	}

	return errors.Join(errs...)
}

func (p *PaginationConfig) validate() error {
	var errs []error

	if p.DefaultPageSize < 1 {
		errs = append(errs, fmt.Errorf("pagination.default_page_size must be >= 1, got %d", p.DefaultPageSize))
	}
	if p.MaxPageSize < p.DefaultPageSize {
		errs = append(errs, fmt.Errorf("pagination.max_page_size must be >= default_page_size, got %d", p.MaxPageSize))
	}

	return errors.Join(errs...)
}
