package platform

import (
	"adsync/internal/core/port"
	"adsync/internal/metrics"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// rateLimitCodes are platform error codes meaning the account or app hit
// the platform's own limits.
var rateLimitCodes = map[string]bool{
	"4":     true,
	"17":    true,
	"32":    true,
	"613":   true,
	"80004": true,
}

// rateLimitPhrases are matched case-insensitively against error messages,
// since the gateway often folds platform errors into plain text.
var rateLimitPhrases = []string{
	"rate limit",
	"too many calls",
	"too many requests",
	"request limit reached",
	"muitas requisições",
}

// classify maps a failed response to one of the port.ErrUpstream* kinds.
func classify(status int, env *envelope, msg string) error {
	if status == http.StatusTooManyRequests || rateLimitCodes[env.code()] || isRateLimitMessage(msg) {
		return port.ErrUpstreamRejected
	}
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return port.ErrUpstreamUnavailable
	}
	return port.ErrUpstreamFailed
}

func isRateLimitMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, p := range rateLimitPhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

func (g *HTTPGateway) retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return g.rejectedBackoff
}

func recordUpstreamError(op string, kind error) {
	metrics.UpstreamErrors.WithLabelValues(op, kindLabel(kind)).Inc()
}

func kindLabel(err error) string {
	var denied *port.AdmissionDeniedError
	switch {
	case errors.As(err, &denied):
		return "denied"
	case errors.Is(err, port.ErrUpstreamRejected):
		return "rejected"
	case errors.Is(err, port.ErrUpstreamUnavailable):
		return "unavailable"
	default:
		return "failed"
	}
}
