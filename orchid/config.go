package orchid

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ipconfigure/go-orchid/security"
)

// Config carries client settings in a form the config package can load
// from files and environment variables.
type Config struct {
	// Address of the Orchid Core VMS server (scheme://host[:port]).
	Address string `yaml:"address" mapstructure:"address" validate:"required,url"`

	// Username and Password form a basic credential. Both must be set to
	// take effect; the pair wins over BearerToken.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// BearerToken is an initial bearer credential.
	BearerToken string `yaml:"bearer_token" mapstructure:"bearer_token"`

	// ConnectTimeout and ReadTimeout for every request. Zero values fall
	// back to the dispatcher defaults (30s each).
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`

	// TLS settings for the transport.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks the configuration using struct tags.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("orchid: invalid config: %w", err)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NewFromConfig builds a client from a loaded configuration. Additional
// options are applied after the config-derived ones and may override them.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithTimeouts(cfg.ConnectTimeout, cfg.ReadTimeout),
	}
	if cfg.TLS != nil {
		base = append(base, WithTLS(cfg.TLS))
	}
	if cfg.BearerToken != "" {
		base = append(base, WithBearerToken(cfg.BearerToken))
	}
	if cfg.Username != "" && cfg.Password != "" {
		base = append(base, WithBasicAuth(cfg.Username, cfg.Password))
	}

	return New(cfg.Address, append(base, opts...)...)
}
