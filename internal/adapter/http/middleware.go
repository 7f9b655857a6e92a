package httpadapter

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// PrincipalHeader carries the principal id in development setups where
// AUTH_ALLOW_HEADER is enabled. It is ignored when a bearer token is sent.
const PrincipalHeader = "X-Principal-Id"

type principalKey struct{}

func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey{}).(domain.Principal)
	return p
}

var errUnauthenticated = errors.New("authentication required")

// authenticate resolves the request principal. Failed attempts count
// against the auth policy keyed by client address.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.principal(r)
		if err != nil {
			h.rejectAuth(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
	})
}

func (h *Handler) principal(r *http.Request) (domain.Principal, error) {
	if authz := strings.TrimSpace(r.Header.Get("Authorization")); authz != "" {
		token, ok := bearerToken(authz)
		if !ok {
			return domain.Principal{}, errors.New("malformed authorization header")
		}
		return authenticateJWT(token, h.auth.JWTSecret)
	}
	if h.auth.AllowHeader {
		if id := strings.TrimSpace(r.Header.Get(PrincipalHeader)); id != "" {
			return domain.Principal{ID: id, Source: "header"}, nil
		}
	}
	return domain.Principal{}, errUnauthenticated
}

func (h *Handler) rejectAuth(w http.ResponseWriter, r *http.Request, cause error) {
	d, err := h.svc.Admitter.Admit(r.Context(), clientIP(r), port.PolicyAuth)
	if err == nil {
		setRateLimitHeaders(w, d)
		if err = d.Err(); err != nil {
			h.logger.Debug("auth attempts throttled", slog.String("client", clientIP(r)))
			writeError(w, r, h.logger, err)
			return
		}
	} else {
		h.logger.Error("auth admission failed", slog.Any("error", err))
	}
	h.logger.Debug("authentication failed", slog.String("client", clientIP(r)), slog.Any("error", cause))
	writeJSON(w, http.StatusUnauthorized, errorBody{Error: errUnauthenticated.Error(), Code: "unauthorized"})
}

type claims struct {
	jwt.RegisteredClaims
}

func authenticateJWT(token, secret string) (domain.Principal, error) {
	if strings.TrimSpace(secret) == "" {
		return domain.Principal{}, errors.New("jwt secret not configured")
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	c := &claims{}
	parsed, err := parser.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return domain.Principal{}, err
	}
	if !parsed.Valid {
		return domain.Principal{}, errors.New("invalid token")
	}
	if c.Subject == "" {
		return domain.Principal{}, errors.New("subject claim required")
	}
	return domain.Principal{ID: c.Subject, Source: "jwt"}, nil
}

func bearerToken(authz string) (string, bool) {
	parts := strings.Fields(authz)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// clientIP returns the host part of RemoteAddr, which RealIP has already
// replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// admit gates the route with policy, keyed by the request principal.
func (h *Handler) admit(policy string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := h.svc.Admitter.Admit(r.Context(), principalFrom(r.Context()).ID, policy)
			if err != nil {
				writeError(w, r, h.logger, err)
				return
			}
			setRateLimitHeaders(w, d)
			if err = d.Err(); err != nil {
				writeError(w, r, h.logger, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func setRateLimitHeaders(w http.ResponseWriter, d port.Decision) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
