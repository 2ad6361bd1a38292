package core

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config contains all configuration options for a Web API client.
// The zero value of every protection knob keeps the client a plain one-shot
// request/response machine: no rate limiting, no circuit breaking.
type Config struct {
	// BaseURL is the venue's Web API address, e.g. "https://tt.example.com".
	// All endpoint paths are resolved relative to it.
	BaseURL string `json:"base_url" validate:"required,url"`

	// Credentials is the signing triple for private endpoints. A client
	// restricted to public market data may leave it empty.
	Credentials Credentials `json:"-"`

	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// RateLimitRequests and RateLimitPeriod bound outgoing request volume
	// when both are set. Zero disables the limiter.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`

	// Circuit breaker settings. Disabled unless CircuitBreakerEnabled is set.
	CircuitBreakerEnabled          bool          `json:"circuit_breaker_enabled"`
	CircuitBreakerFailThreshold    int           `json:"circuit_breaker_fail_threshold"`
	CircuitBreakerSuccessThreshold int           `json:"circuit_breaker_success_threshold"`
	CircuitBreakerTimeout          time.Duration `json:"circuit_breaker_timeout"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for the given base URL with a 10s timeout
// and every optional protection disabled.
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

var validate = validator.New()

// Validate checks the configuration and returns a ConfigurationError
// describing the first problem found.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return &ConfigurationError{Field: "BaseURL", Reason: "base address is required"}
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigurationError{Field: "BaseURL", Reason: "not an absolute URL"}
	}
	if err := validate.Struct(c); err != nil {
		return &ConfigurationError{Field: firstValidationField(err), Reason: err.Error()}
	}
	if (c.RateLimitRequests == 0) != (c.RateLimitPeriod == 0) {
		return &ConfigurationError{Field: "RateLimit", Reason: "requests and period must be set together"}
	}
	if c.CircuitBreakerEnabled {
		if c.CircuitBreakerFailThreshold <= 0 {
			return &ConfigurationError{Field: "CircuitBreakerFailThreshold", Reason: "must be positive when enabled"}
		}
		if c.CircuitBreakerSuccessThreshold <= 0 {
			return &ConfigurationError{Field: "CircuitBreakerSuccessThreshold", Reason: "must be positive when enabled"}
		}
		if c.CircuitBreakerTimeout <= 0 {
			return &ConfigurationError{Field: "CircuitBreakerTimeout", Reason: "must be positive when enabled"}
		}
	}
	return nil
}

func firstValidationField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return "Config"
}

// WithCredentials sets the signing triple and returns the config for chaining.
func (c *Config) WithCredentials(id, key, secret string) *Config {
	c.Credentials = Credentials{ID: id, Key: key, Secret: secret}
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit enables the request limiter and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}

// WithCircuitBreaker enables the circuit breaker and returns the config for chaining.
func (c *Config) WithCircuitBreaker(failThreshold, successThreshold int, timeout time.Duration) *Config {
	c.CircuitBreakerEnabled = true
	c.CircuitBreakerFailThreshold = failThreshold
	c.CircuitBreakerSuccessThreshold = successThreshold
	c.CircuitBreakerTimeout = timeout
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = strings.ToLower(level)
	return c
}
