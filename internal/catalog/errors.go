package catalog

import (
	"context"
	"errors"
	"net"
	"strings"
)

var (
	// ErrConfiguration reports missing or unusable catalog credentials.
	// It is fatal at startup.
	ErrConfiguration = errors.New("catalog configuration error")

	// ErrInvalidBaseURL reports an empty or relative base URL.
	ErrInvalidBaseURL = errors.New("invalid catalog base url")

	// ErrUpstreamTransport reports a failure to reach the catalog service.
	ErrUpstreamTransport = errors.New("catalog upstream transport error")

	// ErrUpstreamStatus reports a non-2xx response from the catalog service.
	ErrUpstreamStatus = errors.New("catalog upstream status error")

	// ErrUpstreamParse reports a response body that is not JSON or lacks
	// the expected envelope shape.
	ErrUpstreamParse = errors.New("catalog upstream parse error")
)

// Failure kinds reported by Classify.
const (
	FailureTimeout   = "timeout"
	FailureDown      = "down"
	FailureStatus    = "status"
	FailureParse     = "parse"
	FailureTransport = "transport"
	FailureUnknown   = "error"
)

// Classify maps an upstream error onto a short failure kind for logs.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUpstreamParse):
		return FailureParse
	case errors.Is(err, ErrUpstreamStatus):
		return FailureStatus
	case errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	msg := err.Error()
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no route to host") ||
		strings.Contains(msg, "no such host") {
		return FailureDown
	}

	if errors.Is(err, ErrUpstreamTransport) {
		return FailureTransport
	}
	return FailureUnknown
}
