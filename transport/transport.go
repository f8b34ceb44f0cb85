package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restree"
	"github.com/kbukum/restree/logger"
	"github.com/kbukum/restree/version"
)

const (
	defaultTimeout = 30 * time.Second
	tracerName     = "github.com/kbukum/restree/transport"
)

// Config configures the default transport.
type Config struct {
	// Timeout is the per-request timeout. Defaults to 30s. Ignored when
	// HTTPClient is set.
	Timeout time.Duration

	// HTTPClient overrides the underlying client; use it to supply TLS
	// material, proxies, or retry-capable round trippers.
	HTTPClient *http.Client

	// UserAgent overrides the User-Agent header. Defaults to
	// version.UserAgent().
	UserAgent string

	// Logger receives debug logs for each request. Nil disables logging.
	Logger *logger.Logger

	// EnableTracing starts an OpenTelemetry span per request using the
	// globally registered tracer provider.
	EnableTracing bool
}

// New returns a restree.RequestFunc backed by net/http.
//
// Non-2xx responses are reported as a populated Result alongside a
// classification *Error, which restree forwards to the caller verbatim.
func New(cfg Config) restree.RequestFunc {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	var tracer trace.Tracer
	if cfg.EnableTracing {
		tracer = otel.Tracer(tracerName)
	}

	return func(ctx context.Context, req restree.Request) (*restree.Result, error) {
		if tracer != nil {
			var span trace.Span
			ctx, span = tracer.Start(ctx, "restree.request", trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("http.request.method", strings.ToUpper(req.Method)),
					attribute.String("url.full", req.URL),
				))
			defer span.End()
			res, err := execute(ctx, client, cfg.UserAgent, log, req)
			if res != nil {
				span.SetAttributes(attribute.Int("http.response.status_code", res.Status))
			}
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return res, err
		}
		return execute(ctx, client, cfg.UserAgent, log, req)
	}
}

// execute performs one HTTP round trip for a restree request.
func execute(ctx context.Context, client *http.Client, userAgent string, log *logger.Logger, req restree.Request) (*restree.Result, error) {
	httpReq, err := buildRequest(ctx, userAgent, req)
	if err != nil {
		return nil, err
	}

	log.Debug("request", logger.Fields(
		"method", req.Method,
		"url", req.URL,
		"request_id", httpReq.Header.Get("X-Request-Id"),
	))

	resp, err := client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &Error{Code: ErrCodeTimeout, Message: "request timed out", Err: err}
		}
		return nil, &Error{Code: ErrCodeConnection, Message: "connection failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Code: ErrCodeConnection, Message: "read response body", Err: err}
	}

	result := &restree.Result{Status: resp.StatusCode, Body: body}
	if classErr := classifyStatus(resp.StatusCode, body); classErr != nil {
		// Best-effort model decode so callers can inspect error payloads.
		if len(body) > 0 {
			var model any
			if jsonErr := json.Unmarshal(body, &model); jsonErr == nil {
				result.Model = model
			}
		}
		log.Debug("response", logger.Fields("status", resp.StatusCode, "error", classErr.Code.String()))
		return result, classErr
	}

	if len(body) > 0 {
		var model any
		if err := json.Unmarshal(body, &model); err != nil {
			return result, &Error{Status: resp.StatusCode, Code: ErrCodeDecode, Message: "decode response body", Body: body, Err: err}
		}
		result.Model = model
	}

	log.Debug("response", logger.Fields("status", resp.StatusCode))
	return result, nil
}

// buildRequest constructs the *http.Request: JSON body, query parameters,
// merged headers, and a request id.
func buildRequest(ctx context.Context, userAgent string, req restree.Request) (*http.Request, error) {
	var body io.Reader
	if req.Properties != nil {
		data, err := json.Marshal(req.Properties)
		if err != nil {
			return nil, &Error{Code: ErrCodeEncode, Message: "encode request body", Err: err}
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(req.Method), req.URL, body)
	if err != nil {
		return nil, &Error{Code: ErrCodeEncode, Message: "create request", Err: err}
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}
	if httpReq.Header.Get("X-Request-Id") == "" {
		httpReq.Header.Set("X-Request-Id", uuid.New().String())
	}

	return httpReq, nil
}
