package usecase

import (
	"adsync/internal/adapter/memory"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/core/port/mocks"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func externalCampaign(i int) port.ExternalCampaign {
	return port.ExternalCampaign{
		ID:              strconv.Itoa(1000 + i),
		Name:            ptr("Campaign " + strconv.Itoa(i)),
		Objective:       ptr("OUTCOME_TRAFFIC"),
		Status:          ptr("ACTIVE"),
		EffectiveStatus: ptr("ACTIVE"),
		DailyBudget:     json.RawMessage(`"5000"`),
	}
}

func externalList(n int) []port.ExternalCampaign {
	list := make([]port.ExternalCampaign, n)
	for i := range list {
		list[i] = externalCampaign(i)
	}
	return list
}

func TestSyncAllToleratesMalformedItem(t *testing.T) {
	store := memory.NewCampaignStore()
	gw := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	list := externalList(164)
	bad := externalCampaign(999)
	bad.DailyBudget = json.RawMessage(`"not a number"`)
	list = append(list[:80], append([]port.ExternalCampaign{bad}, list[80:]...)...)

	adm.EXPECT().Admit(mock.Anything, "alice", port.PolicySync).Return(allowed(port.PolicySync), nil)
	gw.EXPECT().ListCampaigns(mock.Anything, true).Return(list, nil)

	res, err := NewSyncUseCase(store, gw, adm, discardLogger()).SyncAll(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 164, res.Synced)
	assert.Equal(t, 165, res.Total)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "1999")

	n, err := store.Count(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 164, n)
}

func TestSyncAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCampaignStore()
	gw := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	adm.EXPECT().Admit(mock.Anything, "alice", port.PolicySync).Return(allowed(port.PolicySync), nil)
	gw.EXPECT().ListCampaigns(mock.Anything, true).Return(externalList(20), nil)

	uc := NewSyncUseCase(store, gw, adm, discardLogger())

	first, err := uc.SyncAll(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 20, first.Changed)
	before, _, err := store.List(ctx, "alice", port.CampaignFilter{})
	require.NoError(t, err)

	second, err := uc.SyncAll(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 20, second.Synced)
	assert.Zero(t, second.Changed)
	after, _, err := store.List(ctx, "alice", port.CampaignFilter{})
	require.NoError(t, err)

	assert.ElementsMatch(t, before, after)
}

func TestSyncAllMapsStatusAndBudget(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCampaignStore()
	gw := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	draft := externalCampaign(1)
	draft.Status, draft.EffectiveStatus = ptr("ACTIVE"), ptr("IN_PROCESS")
	draft.DailyBudget = json.RawMessage(`12345`)
	draft.AdSets = []port.ExternalAdSet{{
		ID: "s1", Name: ptr("Set"), Status: ptr("PAUSED"),
		Ads: []port.ExternalAd{{ID: "a1", EffectiveStatus: ptr("ADSET_PAUSED")}},
	}}

	adm.EXPECT().Admit(mock.Anything, "alice", port.PolicySync).Return(allowed(port.PolicySync), nil)
	gw.EXPECT().ListCampaigns(mock.Anything, true).Return([]port.ExternalCampaign{draft}, nil)

	_, err := NewSyncUseCase(store, gw, adm, discardLogger()).SyncAll(ctx, alice)
	require.NoError(t, err)

	page, _, err := store.List(ctx, "alice", port.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, page, 1)
	// Unrecognised effective status never maps to ACTIVE.
	assert.Equal(t, domain.StatusPaused, page[0].Status)
	assert.Equal(t, "123.45", page[0].DailyBudget.Decimal.String())
	assert.False(t, page[0].LifetimeBudget.Valid)

	got, err := store.Get(ctx, "alice", page[0].ID)
	require.NoError(t, err)
	require.Len(t, got.AdSets, 1)
	assert.Equal(t, domain.StatusPaused, got.AdSets[0].Status)
	require.Len(t, got.AdSets[0].Ads, 1)
	assert.Equal(t, domain.StatusPaused, got.AdSets[0].Ads[0].Status)
}

func TestSyncAllRecordsPerItemFailures(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCampaignStore()
	gw := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	// 1000 already belongs to bob.
	seed(t, store, "bob", "1000", "Bob's")

	list := externalList(3)
	list[2].ID = ""

	adm.EXPECT().Admit(mock.Anything, "alice", port.PolicySync).Return(allowed(port.PolicySync), nil)
	gw.EXPECT().ListCampaigns(mock.Anything, true).Return(list, nil)

	res, err := NewSyncUseCase(store, gw, adm, discardLogger()).SyncAll(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Synced)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "1000")
	assert.Contains(t, res.Errors[1], "#3")
	assert.Contains(t, res.Errors[1], "missing id")
}

func TestSyncAllDeniedBeforeUpstream(t *testing.T) {
	gw := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	adm.EXPECT().Admit(mock.Anything, "alice", port.PolicySync).Return(denied(port.PolicySync), nil)

	_, err := NewSyncUseCase(memory.NewCampaignStore(), gw, adm, discardLogger()).SyncAll(context.Background(), alice)

	var de *port.AdmissionDeniedError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 42, de.Decision.ResetSeconds())
}

func TestSyncAllUpstreamFailureAbortsRun(t *testing.T) {
	store := memory.NewCampaignStore()
	gw := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	upErr := &port.UpstreamError{Op: "list campaigns", Kind: port.ErrUpstreamUnavailable, Err: context.DeadlineExceeded}
	adm.EXPECT().Admit(mock.Anything, "alice", port.PolicySync).Return(allowed(port.PolicySync), nil)
	gw.EXPECT().ListCampaigns(mock.Anything, true).Return(nil, upErr)

	res, err := NewSyncUseCase(store, gw, adm, discardLogger()).SyncAll(context.Background(), alice)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, port.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, port.ErrUpstreamRejected)
}

func TestErrorListTruncates(t *testing.T) {
	var l errorList
	for i := 0; i < maxErrorsShown+5; i++ {
		l.add("item %d: %s", i, string(make([]byte, 300)))
	}
	got := l.list()
	require.Len(t, got, maxErrorsShown+1)
	assert.Equal(t, "and 5 more errors", got[maxErrorsShown])
	assert.LessOrEqual(t, len([]rune(got[0])), maxErrorLen+3)
	assert.Equal(t, maxErrorsShown+5, l.len())
}
