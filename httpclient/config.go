package httpclient

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/ipconfigure/go-orchid/logger"
)

const (
	defaultConnectTimeout = 30 * time.Second
	defaultReadTimeout    = 30 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// ConnectTimeout bounds connection establishment. Defaults to 30s.
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`

	// ReadTimeout bounds the whole exchange, including reading the
	// response body. Defaults to 30s.
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`

	// Auth is the credential attached to every request. Nil means
	// unauthenticated. Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Tracer, if set, opens a span around every dispatch.
	Tracer trace.Tracer `yaml:"-" mapstructure:"-"`

	// Logger, if set, logs every dispatch at debug level.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultReadTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("httpclient: connect timeout must be positive")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("httpclient: read timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Timeouts broadcasts a single scalar to both timeout legs.
func (c *Config) Timeouts(d time.Duration) {
	c.ConnectTimeout = d
	c.ReadTimeout = d
}
