package platform

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/core/port/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdmittedGatewayDelegatesWhenAllowed(t *testing.T) {
	next := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	adm.EXPECT().Admit(mock.Anything, "act_1", "platform").
		Return(port.Decision{Policy: "platform", Allowed: true, Limit: 60, Remaining: 59}, nil)
	next.EXPECT().SetStatus(mock.Anything, "120", domain.StatusPaused).Return(nil)

	gw := NewAdmittedGateway(next, adm, "act_1", "platform")
	require.NoError(t, gw.SetStatus(context.Background(), "120", domain.StatusPaused))
}

func TestAdmittedGatewayStopsWhenDenied(t *testing.T) {
	next := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)

	adm.EXPECT().Admit(mock.Anything, "act_1", "platform").
		Return(port.Decision{Policy: "platform", Limit: 60, ResetAfter: 12 * time.Second}, nil)

	gw := NewAdmittedGateway(next, adm, "act_1", "platform")
	_, err := gw.Duplicate(context.Background(), "120", " - Copy")

	require.ErrorIs(t, err, port.ErrUpstreamRejected)
	var up *port.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, "duplicate campaign", up.Op)
	assert.Equal(t, 12*time.Second, up.RetryAfter)
	retry, ok := port.RetryAfter(err)
	require.True(t, ok)
	assert.Equal(t, 12*time.Second, retry)
	next.AssertNotCalled(t, "Duplicate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmittedGatewayPropagatesAdmitterError(t *testing.T) {
	next := mocks.NewMockPlatformGateway(t)
	adm := mocks.NewMockAdmitter(t)
	boom := errors.New("unknown policy")

	adm.EXPECT().Admit(mock.Anything, "act_1", "platform").Return(port.Decision{}, boom)

	gw := NewAdmittedGateway(next, adm, "act_1", "platform")
	_, err := gw.ListCampaigns(context.Background(), true)
	assert.ErrorIs(t, err, boom)
}
