package torque

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/dbs-cloud/torquectl/pkg/httpclient"
)

const (
	// DefaultAPIURL is the Torque portal endpoint used when no base URL
	// is configured.
	DefaultAPIURL = "https://portal.qtorque.io"

	// EnvAPIToken is the environment variable consulted when no explicit
	// API token is supplied.
	EnvAPIToken = "TORQUE_API_TOKEN"

	// requestTimeout is the hard per-request timeout. There is no retry.
	requestTimeout = 30 * time.Second

	tracerName = "torquectl/torque"
)

// ErrMissingToken is the configuration failure returned when no API token
// can be resolved from any source.
var ErrMissingToken = &ConfigurationError{
	Message: "API token must be provided either via 'api_token' parameter or 'TORQUE_API_TOKEN' environment variable",
}

// ResolveToken resolves an API token from an explicit value or, failing
// that, the TORQUE_API_TOKEN environment variable via the supplied lookup.
// A nil lookup means os.Getenv. The explicit value always wins.
func ResolveToken(explicit string, lookup func(string) string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if lookup == nil {
		lookup = os.Getenv
	}
	if tok := lookup(EnvAPIToken); tok != "" {
		return tok, nil
	}
	return "", ErrMissingToken
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// APIToken is the bearer token. Falls back to TORQUE_API_TOKEN when
	// empty; absence of both is a configuration error.
	APIToken string

	// APIURL is the base API URL. Defaults to DefaultAPIURL. Trailing
	// slashes are stripped.
	APIURL string

	// HTTPClient overrides the default HTTP client (useful for tests).
	HTTPClient *http.Client

	// Logger receives structured request logs. Defaults to slog.Default().
	Logger *slog.Logger

	// DryRun suppresses all network calls; invocations return synthetic
	// success results flagged as simulated.
	DryRun bool

	// LookupEnv overrides environment lookup during token resolution
	// (defaults to os.Getenv).
	LookupEnv func(string) string

	// UserAgent overrides the User-Agent header on outbound requests.
	UserAgent string
}

// Client invokes actions and workflows against the Torque API. Each call is
// a single synchronous request; the Client holds no mutable state and is
// safe for concurrent use.
type Client struct {
	apiURL string
	token  string
	http   *http.Client
	logger *slog.Logger
	dryRun bool
}

// NewClient creates a Torque API client. Token resolution happens here, so
// a missing credential fails fast with a ConfigurationError rather than
// surfacing later as an authentication failure.
func NewClient(opts ClientOptions) (*Client, error) {
	token, err := ResolveToken(opts.APIToken, opts.LookupEnv)
	if err != nil {
		return nil, err
	}

	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	apiURL = strings.TrimRight(apiURL, "/")

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hc := opts.HTTPClient
	if hc == nil {
		cfg := httpclient.DefaultConfig()
		cfg.Timeout = requestTimeout
		if opts.UserAgent != "" {
			cfg.UserAgent = opts.UserAgent
		}
		hc, err = httpclient.New(cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		apiURL: apiURL,
		token:  token,
		http:   hc,
		logger: logger,
		dryRun: opts.DryRun,
	}, nil
}

// APIURL returns the normalized base API URL.
func (c *Client) APIURL() string {
	return c.apiURL
}

// DryRun reports whether the client is in dry-run mode.
func (c *Client) DryRun() bool {
	return c.dryRun
}

// postJSON performs one POST against the Torque API and classifies the
// outcome. successStatuses carries the endpoint-specific success set (the
// action endpoint accepts 200/201, the environments endpoint also 202).
// genericMessage is the payload synthesized when a success response has an
// unparseable body. failurePhrase preserves the per-endpoint wording of the
// default error message.
func (c *Client) postJSON(ctx context.Context, operation, url string, body interface{}, successStatuses []int, genericMessage, failurePhrase string) (map[string]interface{}, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "torque."+operation)
	defer span.End()
	span.SetAttributes(attribute.String("torque.operation", operation))

	payload, err := json.Marshal(body)
	if err != nil {
		// Request bodies are built from plain maps and strings; this
		// is unreachable in practice but must not panic.
		span.SetStatus(codes.Error, err.Error())
		return nil, &TransportError{Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &TransportError{Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		recordRequest(operation, "error", time.Since(start))
		recordError(operation, errorTypeTransport)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("torque api call failed",
			slog.String("operation", operation),
			slog.String("url", httpclient.SanitizeURL(url)),
			slog.Any("error", err))
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)
	duration := time.Since(start)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if statusIn(resp.StatusCode, successStatuses) {
		recordRequest(operation, "success", duration)
		c.logger.Debug("torque api call succeeded",
			slog.String("operation", operation),
			slog.String("url", httpclient.SanitizeURL(url)),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", duration.Milliseconds()))

		var parsed map[string]interface{}
		if readErr == nil && json.Unmarshal(respBody, &parsed) == nil && parsed != nil {
			return parsed, nil
		}
		// A 2xx with a body we cannot read or parse is still a success.
		return map[string]interface{}{
			"status":  "success",
			"message": genericMessage,
		}, nil
	}

	recordRequest(operation, "error", duration)
	recordError(operation, errorTypeAPI)

	message := fmt.Sprintf("API call failed with status %d %s %s", resp.StatusCode, failurePhrase, http.StatusText(resp.StatusCode))
	if readErr == nil && len(respBody) > 0 {
		// Prefer the remote-supplied message. Anything that goes wrong
		// while mining the error body falls through to the default so
		// the original failure is never masked.
		var errPayload map[string]interface{}
		if json.Unmarshal(respBody, &errPayload) == nil {
			if m, ok := errPayload["message"].(string); ok && m != "" {
				message = m
			}
		}
	}

	span.SetStatus(codes.Error, message)
	c.logger.Warn("torque api call failed",
		slog.String("operation", operation),
		slog.String("url", httpclient.SanitizeURL(url)),
		slog.Int("status", resp.StatusCode),
		slog.String("message", message))

	return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
}

func statusIn(status int, set []int) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
