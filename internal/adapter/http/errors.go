package httpadapter

import (
	"adsync/internal/core/port"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
)

type errorBody struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	Field      string `json:"field,omitempty"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

// writeError maps err onto a status code and a JSON error body. Unknown
// errors are logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		denied *port.AdmissionDeniedError
		valErr *port.ValidationError
	)
	switch {
	// checked first: a platform quota denial wraps an admission error
	case errors.Is(err, port.ErrUpstreamRejected):
		secs := 0
		if d, ok := port.RetryAfter(err); ok {
			secs = port.Seconds(d)
		}
		if secs > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(secs))
		}
		writeJSON(w, http.StatusTooManyRequests, errorBody{
			Error:      "the advertising platform is rate limiting this account, try again later",
			Code:       "upstream_rate_limited",
			RetryAfter: secs,
		})
	case errors.As(err, &denied):
		d := denied.Decision
		secs := d.ResetSeconds()
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.Itoa(secs))
		w.Header().Set("Retry-After", strconv.Itoa(secs))
		writeJSON(w, http.StatusTooManyRequests, errorBody{Error: err.Error(), Code: "rate_limited", RetryAfter: secs})
	case errors.Is(err, port.ErrUpstreamUnavailable):
		logger.Warn("upstream unavailable", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "the advertising platform is unavailable", Code: "upstream_unavailable"})
	case errors.Is(err, port.ErrUpstreamFailed):
		logger.Warn("upstream error", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error(), Code: "upstream_error"})
	case errors.Is(err, port.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found", Code: "not_found"})
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: valErr.Error(), Code: "validation_failed", Field: valErr.Field})
	case errors.Is(err, port.ErrNotSynchronized):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Code: "not_synchronized"})
	case errors.Is(err, port.ErrOwnershipConflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: "campaign is already linked elsewhere", Code: "conflict"})
	default:
		logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error", Code: "internal"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encoding should rarely fail and the status is already sent
	_ = json.NewEncoder(w).Encode(v)
}
