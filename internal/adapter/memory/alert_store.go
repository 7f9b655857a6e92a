package memory

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AlertStore implements port.AlertRepository.
type AlertStore struct {
	mu     sync.RWMutex
	alerts []domain.Alert
	now    func() time.Time
}

var _ port.AlertRepository = (*AlertStore)(nil)

func NewAlertStore() *AlertStore {
	return &AlertStore{now: func() time.Time { return time.Now().UTC() }}
}

// CreateAlert stores a, filling ID and CreatedAt when unset.
func (s *AlertStore) CreateAlert(_ context.Context, a *domain.Alert) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, *a)
	return nil
}

// ListAlerts returns the owner's alerts newest first. Counts ignore the
// UnreadOnly filter.
func (s *AlertStore) ListAlerts(_ context.Context, ownerID string, filter port.AlertFilter) ([]domain.Alert, port.AlertCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts port.AlertCounts
	matched := make([]domain.Alert, 0)
	for _, a := range s.alerts {
		if a.OwnerID != ownerID {
			continue
		}
		counts.Total++
		if !a.Read {
			counts.Unread++
		}
		if filter.UnreadOnly && a.Read {
			continue
		}
		matched = append(matched, a)
	}
	slices.SortStableFunc(matched, func(a, b domain.Alert) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return page(matched, filter.Limit, filter.Offset), counts, nil
}

// MarkAlertRead implements port.AlertRepository.
func (s *AlertStore) MarkAlertRead(_ context.Context, ownerID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id && s.alerts[i].OwnerID == ownerID {
			s.alerts[i].Read = true
			return nil
		}
	}
	return port.ErrNotFound
}
