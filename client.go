package microhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client issues HTTP requests against a base URL and maps every outcome into
// a Result. It holds only immutable configuration and is safe for any number
// of concurrent calls.
type Client struct {
	config    Config
	base      *url.URL
	transport Doer
	logger    zerolog.Logger
	metrics   *MetricsCollector
	onError   func(*Error)
}

// New creates a Client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("microhttp: parse base url %q: %w", cfg.BaseURL, err)
	}

	c := &Client{
		config:    cfg,
		base:      base,
		transport: cfg.Transport,
		logger:    zerolog.Nop(),
		onError:   cfg.OnError,
	}
	if c.transport == nil {
		c.transport = defaultTransport(cfg)
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do dispatches the request and decodes the response into T. It always
// returns a Result and never a Go error: transport failures, non-2xx
// statuses, undecodable bodies, and guard rejections all surface as the
// failure branch. Malformed inputs (unparseable URL, unserializable body,
// unsupported query type) are programmer errors and panic.
func Do[T any](ctx context.Context, c *Client, req Request) Result[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	req.applyDefaults()
	requestID := uuid.NewString()

	ctx, span := startSpan(ctx, req, requestID)
	defer span.End()

	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		panic("microhttp: " + err.Error())
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", httpReq.URL.String()).
		Msg("dispatching request")

	start := time.Now()
	rawResp, err := c.transport.Do(httpReq)
	if err != nil {
		return fail[T](c, span, "transport", newTransportError(requestID, err))
	}

	resp, err := readResponse(rawResp)
	if err != nil {
		return fail[T](c, span, "transport", newTransportError(requestID, err))
	}

	c.metrics.RecordRequest(req.Method, resp.StatusCode, time.Since(start))
	spanStatus(span, resp.StatusCode)

	if !resp.IsSuccess() {
		return fail[T](c, span, "status", newStatusError(requestID, resp))
	}

	data, err := decodeResponse[T](resp)
	if err != nil {
		return fail[T](c, span, "decode", newDecodeError(requestID, resp, err))
	}

	if req.Guard != nil && !req.Guard(data) {
		return fail[T](c, span, "validation", newGuardError(requestID, resp))
	}

	span.SetStatus(codes.Ok, "")
	return succeed(data, resp)
}

// Do is the untyped convenience form; JSON bodies decode into generic
// containers (map[string]any, []any, etc).
func (c *Client) Do(ctx context.Context, req Request) Result[any] {
	return Do[any](ctx, c, req)
}

// buildRequest assembles the outbound *http.Request: merged headers,
// serialized body, resolved URL. Errors here are construction errors, not
// operational failures.
func (c *Client) buildRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	headers := mergeHeaders(c.config.Headers, req.Headers)

	body, bodyContentType, err := encodeBody(req.Body, headers.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	if req.Body != nil && body == nil {
		c.logger.Debug().
			Str("request_id", requestID).
			Str("content_type", headers.Get("Content-Type")).
			Msg("dropping body for unrecognized content type")
	}

	u, err := resolveURL(c.base, req.URL, req.Query)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, vs := range headers {
		httpReq.Header[k] = vs
	}
	if bodyContentType != "" {
		httpReq.Header.Set("Content-Type", bodyContentType)
	}
	if httpReq.Header.Get("X-Request-Id") == "" {
		httpReq.Header.Set("X-Request-Id", requestID)
	}

	return httpReq, nil
}

// fail normalizes one failure: it logs it, counts it, marks the span,
// notifies the observer, and produces the failure Result.
func fail[T any](c *Client, span trace.Span, kind string, e *Error) Result[T] {
	c.logger.Debug().
		Str("request_id", e.RequestID).
		Str("kind", kind).
		Err(e).
		Msg("request failed")
	c.metrics.RecordError(kind)
	spanError(span, e)

	if c.onError != nil {
		c.notifyObserver(e)
	}
	return Result[T]{Err: e}
}

// notifyObserver invokes the error observer, containing any panic so the
// side channel can never alter the returned Result.
func (c *Client) notifyObserver(e *Error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug().
				Str("request_id", e.RequestID).
				Interface("panic", r).
				Msg("error observer panicked")
		}
	}()
	c.onError(e)
}
