package platform

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, h http.HandlerFunc, mod ...func(*Options)) *HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts := Options{
		BaseURL:     srv.URL,
		AccessToken: "token-1",
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, m := range mod {
		m(&opts)
	}
	return NewHTTPGateway(opts)
}

func TestListCampaignsDecodesLeniently(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/campaigns/", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_drafts"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		_, _ = io.WriteString(w, `{
			"success": true,
			"campaigns": [
				{"id": "120", "name": "Spring", "status": "ACTIVE", "effective_status": "ACTIVE",
				 "daily_budget": "5000", "adsets": {"data": [
					{"id": 9001, "name": "Set", "status": "PAUSED", "ads": [{"id": "a1", "name": "Ad"}]}
				 ]}},
				{"id": 121, "objective": "OUTCOME_SALES", "lifetime_budget": 12345},
				"garbage",
				{"name": "no id"}
			]
		}`)
	})

	got, err := gw.ListCampaigns(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "120", got[0].ID)
	assert.Equal(t, "Spring", *got[0].Name)
	assert.Equal(t, "ACTIVE", *got[0].EffectiveStatus)
	assert.JSONEq(t, `"5000"`, string(got[0].DailyBudget))
	require.Len(t, got[0].AdSets, 1)
	assert.Equal(t, "9001", got[0].AdSets[0].ID)
	require.Len(t, got[0].AdSets[0].Ads, 1)
	assert.Equal(t, "a1", got[0].AdSets[0].Ads[0].ID)

	assert.Equal(t, "121", got[1].ID)
	assert.Nil(t, got[1].Name)
	assert.Nil(t, got[1].EffectiveStatus)
	assert.JSONEq(t, `12345`, string(got[1].LifetimeBudget))

	assert.Empty(t, got[2].ID)
	assert.Empty(t, got[3].ID)
}

func TestGetCampaignAttachesCampaignLevelAds(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns/120", r.URL.Path)
		_, _ = io.WriteString(w, `{"success": true, "campaign": {
			"id": "120", "name": "Spring",
			"adsets": [{"id": "s1"}, {"id": "s2"}],
			"ads": [{"id": "a1", "adset_id": "s2"}, {"id": "a2", "adset_id": "unknown"}]
		}}`)
	})

	got, err := gw.GetCampaign(context.Background(), "120")
	require.NoError(t, err)
	require.Len(t, got.AdSets, 2)
	assert.Empty(t, got.AdSets[0].Ads)
	require.Len(t, got.AdSets[1].Ads, 1)
	assert.Equal(t, "a1", got.AdSets[1].Ads[0].ID)
}

func TestSetStatusSendsPatch(t *testing.T) {
	var body map[string]string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/campaigns/120/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	require.NoError(t, gw.SetStatus(context.Background(), "120", domain.StatusPaused))
	assert.Equal(t, map[string]string{"status": "PAUSED"}, body)
}

func TestDuplicateReturnsNewID(t *testing.T) {
	var body map[string]any
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/campaigns/120/duplicate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success": true, "campaign_id": 555}`)
	})

	id, err := gw.Duplicate(context.Background(), "120", " - Copy 2")
	require.NoError(t, err)
	assert.Equal(t, "555", id)
	assert.Equal(t, " - Copy 2", body["name_suffix"])
	assert.Equal(t, false, body["deep_copy"])
	assert.Equal(t, "PAUSED", body["status_option"])
}

func TestCreateCampaignSendsMinorUnits(t *testing.T) {
	var body map[string]any
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success": true, "campaign_id": "777"}`)
	})

	daily := int64(2550)
	id, err := gw.CreateCampaign(context.Background(), port.ExternalCampaignInput{
		Name:        "New",
		Objective:   "OUTCOME_TRAFFIC",
		Status:      domain.StatusPaused,
		DailyBudget: &daily,
	})
	require.NoError(t, err)
	assert.Equal(t, "777", id)
	assert.Equal(t, float64(2550), body["daily_budget"])
	assert.NotContains(t, body, "lifetime_budget")
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		header    map[string]string
		body      string
		wantKind  error
		wantRetry time.Duration
	}{
		{
			name:      "http 429 with retry header",
			status:    http.StatusTooManyRequests,
			header:    map[string]string{"Retry-After": "30"},
			body:      `{"detail": "slow down"}`,
			wantKind:  port.ErrUpstreamRejected,
			wantRetry: 30 * time.Second,
		},
		{
			name:      "platform limit folded into success false",
			status:    http.StatusOK,
			body:      `{"success": false, "error": "(#17) User request limit reached"}`,
			wantKind:  port.ErrUpstreamRejected,
			wantRetry: 120 * time.Second,
		},
		{
			name:      "platform error code",
			status:    http.StatusBadRequest,
			body:      `{"success": false, "error": {"message": "Application limit", "code": 4}}`,
			wantKind:  port.ErrUpstreamRejected,
			wantRetry: 120 * time.Second,
		},
		{
			name:      "localized rate limit text",
			status:    http.StatusInternalServerError,
			body:      `{"detail": "Muitas requisições, tente mais tarde"}`,
			wantKind:  port.ErrUpstreamRejected,
			wantRetry: 120 * time.Second,
		},
		{
			name:     "invalid parameter",
			status:   http.StatusInternalServerError,
			body:     `{"detail": "Invalid parameter"}`,
			wantKind: port.ErrUpstreamFailed,
		},
		{
			name:     "gateway down",
			status:   http.StatusServiceUnavailable,
			body:     `<html>unavailable</html>`,
			wantKind: port.ErrUpstreamUnavailable,
		},
		{
			name:     "undecodable success",
			status:   http.StatusOK,
			body:     `not json`,
			wantKind: port.ErrUpstreamFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := gw.SetStatus(context.Background(), "1", domain.StatusActive)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var up *port.UpstreamError
			require.True(t, errors.As(err, &up))
			assert.Equal(t, "set status", up.Op)
			assert.Equal(t, tt.wantRetry, up.RetryAfter)
		})
	}
}

func TestTimeoutIsUnavailable(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, func(o *Options) {
		o.ListTimeout = 50 * time.Millisecond
	})

	_, err := gw.ListCampaigns(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	gw := NewHTTPGateway(Options{BaseURL: addr, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	_, err := gw.Duplicate(context.Background(), "1", " - Copy")
	assert.ErrorIs(t, err, port.ErrUpstreamUnavailable)
}
