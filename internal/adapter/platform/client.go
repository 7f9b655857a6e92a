package platform

import (
	"adsync/internal/config/configs"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxResponseSize caps how much of a gateway response is read (10MB).
const maxResponseSize = 10 * 1024 * 1024

// listLimit is the page cap passed to the gateway's list endpoint.
const listLimit = 1000

// Options configures an HTTPGateway. Zero values fall back to defaults.
type Options struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
	Logger      *slog.Logger

	ListTimeout      time.Duration
	StatusTimeout    time.Duration
	DuplicateTimeout time.Duration
	DetailsTimeout   time.Duration
	CreateTimeout    time.Duration

	// RejectedBackoff is the retry hint attached to rejections that do not
	// carry one.
	RejectedBackoff time.Duration
}

// OptionsFromConfig maps the platform configuration section.
func OptionsFromConfig(cfg configs.Platform, logger *slog.Logger) Options {
	return Options{
		BaseURL:          cfg.BaseURL,
		AccessToken:      cfg.AccessToken,
		Logger:           logger,
		ListTimeout:      cfg.ListTimeout,
		StatusTimeout:    cfg.StatusTimeout,
		DuplicateTimeout: cfg.DuplicateTimeout,
		DetailsTimeout:   cfg.DetailsTimeout,
		CreateTimeout:    cfg.CreateTimeout,
		RejectedBackoff:  cfg.RejectedBackoff,
	}
}

// HTTPGateway implements port.PlatformGateway against the platform
// gateway's JSON API.
type HTTPGateway struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger

	listTimeout      time.Duration
	statusTimeout    time.Duration
	duplicateTimeout time.Duration
	detailsTimeout   time.Duration
	createTimeout    time.Duration
	rejectedBackoff  time.Duration
}

var _ port.PlatformGateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway client.
func NewHTTPGateway(opts Options) *HTTPGateway {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		// Per call timeouts come from the request context.
		httpClient = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPGateway{
		baseURL:          baseURL,
		token:            strings.TrimSpace(opts.AccessToken),
		httpClient:       httpClient,
		logger:           logger,
		listTimeout:      orDefault(opts.ListTimeout, 10*time.Second),
		statusTimeout:    orDefault(opts.StatusTimeout, 10*time.Second),
		duplicateTimeout: orDefault(opts.DuplicateTimeout, 15*time.Second),
		detailsTimeout:   orDefault(opts.DetailsTimeout, 10*time.Second),
		createTimeout:    orDefault(opts.CreateTimeout, 30*time.Second),
		rejectedBackoff:  orDefault(opts.RejectedBackoff, 120*time.Second),
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// ListCampaigns returns every campaign of the connected account. Entries
// that cannot be decoded are returned with an empty ID so the caller can
// count them as failures.
func (g *HTTPGateway) ListCampaigns(ctx context.Context, includeDrafts bool) ([]port.ExternalCampaign, error) {
	const op = "list campaigns"
	ctx, cancel := context.WithTimeout(ctx, g.listTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("include_drafts", strconv.FormatBool(includeDrafts))
	q.Set("limit", strconv.Itoa(listLimit))

	env, err := g.do(ctx, op, http.MethodGet, "/api/campaigns/?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	campaigns := make([]port.ExternalCampaign, 0, len(env.Campaigns))
	for i, raw := range env.Campaigns {
		c, ok := decodeCampaign(raw)
		if !ok {
			g.logger.Warn("undecodable campaign in platform list", slog.Int("index", i))
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// GetCampaign returns one campaign with its ad sets and ads.
func (g *HTTPGateway) GetCampaign(ctx context.Context, externalID string) (*port.ExternalCampaign, error) {
	const op = "get campaign"
	ctx, cancel := context.WithTimeout(ctx, g.detailsTimeout)
	defer cancel()

	env, err := g.do(ctx, op, http.MethodGet, "/api/campaigns/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, err
	}
	c, ok := decodeCampaign(env.Campaign)
	if !ok || c.ID == "" {
		return nil, g.fail(op, port.ErrUpstreamFailed, 0, fmt.Errorf("response has no campaign"))
	}
	return &c, nil
}

// SetStatus changes the status of a campaign on the platform.
func (g *HTTPGateway) SetStatus(ctx context.Context, externalID string, status domain.Status) error {
	const op = "set status"
	ctx, cancel := context.WithTimeout(ctx, g.statusTimeout)
	defer cancel()

	body := map[string]string{"status": string(status)}
	_, err := g.do(ctx, op, http.MethodPatch, "/api/campaigns/"+url.PathEscape(externalID)+"/status", body)
	return err
}

// Duplicate copies a campaign on the platform, shallow and paused, and
// returns the id of the copy.
func (g *HTTPGateway) Duplicate(ctx context.Context, externalID, nameSuffix string) (string, error) {
	const op = "duplicate campaign"
	ctx, cancel := context.WithTimeout(ctx, g.duplicateTimeout)
	defer cancel()

	body := map[string]any{
		"name_suffix":   nameSuffix,
		"deep_copy":     false,
		"status_option": string(domain.StatusPaused),
	}
	env, err := g.do(ctx, op, http.MethodPost, "/api/campaigns/"+url.PathEscape(externalID)+"/duplicate", body)
	if err != nil {
		return "", err
	}
	id := optString(env.CampaignID)
	if id == nil || *id == "" {
		return "", g.fail(op, port.ErrUpstreamFailed, 0, fmt.Errorf("response has no campaign id"))
	}
	return *id, nil
}

// CreateCampaign creates a campaign on the platform and returns its id.
func (g *HTTPGateway) CreateCampaign(ctx context.Context, in port.ExternalCampaignInput) (string, error) {
	const op = "create campaign"
	ctx, cancel := context.WithTimeout(ctx, g.createTimeout)
	defer cancel()

	body := map[string]any{
		"name":      in.Name,
		"objective": in.Objective,
		"status":    string(in.Status),
	}
	if in.DailyBudget != nil {
		body["daily_budget"] = *in.DailyBudget
	}
	if in.LifetimeBudget != nil {
		body["lifetime_budget"] = *in.LifetimeBudget
	}
	env, err := g.do(ctx, op, http.MethodPost, "/api/campaigns/", body)
	if err != nil {
		return "", err
	}
	id := optString(env.CampaignID)
	if id == nil || *id == "" {
		return "", g.fail(op, port.ErrUpstreamFailed, 0, fmt.Errorf("response has no campaign id"))
	}
	return *id, nil
}

// do sends one request and decodes the gateway envelope. Every failure is
// returned as a *port.UpstreamError.
func (g *HTTPGateway) do(ctx context.Context, op, method, path string, payload any) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, g.fail(op, port.ErrUpstreamUnavailable, 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, g.fail(op, port.ErrUpstreamUnavailable, 0, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (decodeErr == nil && env.failed()) {
		msg := env.message()
		if decodeErr != nil || msg == "" {
			msg = truncate(strings.TrimSpace(string(data)), 200)
		}
		kind := classify(resp.StatusCode, &env, msg)
		var retry time.Duration
		if kind == port.ErrUpstreamRejected {
			retry = g.retryAfter(resp)
		}
		return nil, g.fail(op, kind, retry, fmt.Errorf("status %d: %s", resp.StatusCode, msg))
	}
	if decodeErr != nil {
		return nil, g.fail(op, port.ErrUpstreamFailed, 0, fmt.Errorf("decode response: %w", decodeErr))
	}
	return &env, nil
}

func (g *HTTPGateway) fail(op string, kind error, retry time.Duration, err error) error {
	upErr := &port.UpstreamError{Op: op, Kind: kind, RetryAfter: retry, Err: err}
	recordUpstreamError(op, kind)
	g.logger.Warn("platform call failed", slog.String("op", op), slog.Any("error", upErr))
	return upErr
}
