package core

import (
	"net/http"
	"time"

	"github.com/JonMunkholm/culturize/internal/logging"
)

// LoggingTransport is an http.RoundTripper that logs every probe request
// at debug level, tagged with the run ID carried by the request context.
//
// Log fields:
//   - method: HTTP method (always HEAD for probes)
//   - url: Probed URL
//   - status: Response status code, 0 when no response arrived
//   - duration_ms: Round trip time in milliseconds
//   - error: Transport error, if any
type LoggingTransport struct {
	next http.RoundTripper
}

// NewLoggingTransport wraps next; a nil next uses http.DefaultTransport.
func NewLoggingTransport(next http.RoundTripper) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{next: next}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	args := []any{
		"method", req.Method,
		"url", req.URL.String(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logging.FromContext(req.Context()).Debug("probe", args...)

	return resp, err
}
