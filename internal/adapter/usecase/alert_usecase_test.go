package usecase

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/core/port/mocks"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAlertListDefaultsPage(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	repo.EXPECT().
		ListAlerts(mock.Anything, "alice", port.AlertFilter{UnreadOnly: true, Limit: DefaultPageSize}).
		Return([]domain.Alert{{Title: "a"}}, port.AlertCounts{Total: 4, Unread: 1}, nil)

	page, err := NewAlertUseCase(repo).List(context.Background(), alice, port.AlertFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, page.Alerts, 1)
	assert.Equal(t, 1, page.Counts.Unread)
	assert.Equal(t, DefaultPageSize, page.Limit)
}

func TestAlertMarkReadIsOwnerScoped(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	id := uuid.New()
	repo.EXPECT().MarkAlertRead(mock.Anything, "bob", id).Return(port.ErrNotFound)

	err := NewAlertUseCase(repo).MarkRead(context.Background(), bob, id)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
