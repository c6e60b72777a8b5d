package microhttp

import "github.com/rs/zerolog"

// Option configures a Client beyond its Config.
type Option func(*Client)

// WithTransport injects the transport capability performing network calls.
func WithTransport(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.transport = d
		}
	}
}

// WithErrorObserver sets the callback invoked with every normalized failure.
func WithErrorObserver(fn func(*Error)) Option {
	return func(c *Client) {
		c.onError = fn
	}
}

// WithLogger sets the logger used for debug-level request diagnostics.
// Logging is disabled by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics enables Prometheus metrics for the client.
func WithMetrics(mc *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = mc
	}
}

// WithDefaultHeader adds a single client-level default header.
func WithDefaultHeader(key, value string) Option {
	return func(c *Client) {
		if c.config.Headers == nil {
			c.config.Headers = make(map[string]string)
		}
		c.config.Headers[key] = value
	}
}
