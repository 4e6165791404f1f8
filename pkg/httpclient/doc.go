// Package httpclient builds the HTTP client used for Torque API calls.
//
// The factory produces an *http.Client with:
//   - a hard request timeout (default 30s) and no retries; Torque action
//     and workflow invocations are not idempotent, so re-run policy belongs
//     to the calling pipeline, not this client
//   - TLS 1.2 minimum (TLS 1.3 preferred)
//   - a logging RoundTripper that injects a User-Agent and an
//     X-Correlation-ID header and emits structured request logs via
//     log/slog with sensitive query parameters redacted
//
// Example usage:
//
//	cfg := httpclient.DefaultConfig()
//	cfg.UserAgent = "torquectl/1.0"
//	client, err := httpclient.New(cfg)
//	if err != nil {
//	    return err
//	}
package httpclient
