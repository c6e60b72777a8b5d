package microhttp

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultTimeout = 30 * time.Second

// Config configures a Client. It is copied at construction and never
// mutated afterwards, so a single Client is safe for concurrent use.
type Config struct {
	// BaseURL is the base URL request paths are resolved against. Required.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout applies to the default transport only. Defaults to 30s.
	// An injected Transport owns its own deadline policy.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request. Call-level
	// headers override them key-by-key.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Transport performs the network call. Defaults to a *http.Client
	// honoring Timeout.
	Transport Doer `yaml:"-" mapstructure:"-"`

	// OnError is invoked synchronously with every normalized failure before
	// the failure Result is returned. Its outcome never alters the Result.
	OnError func(*Error) `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks the configuration using struct tags.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("microhttp: invalid config: %w", err)
	}
	return nil
}

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())

		// Report yaml key names instead of Go field names.
		structValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return structValidator
}
