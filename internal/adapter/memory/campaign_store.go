// Package memory provides map backed implementations of the store ports.
// It serves single process deployments (STORE_DRIVER=memory) and tests.
package memory

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStore implements port.CampaignRepository. All access goes through
// one mutex, so every method is atomic with respect to the others.
type CampaignStore struct {
	mu         sync.RWMutex
	campaigns  map[uuid.UUID]*domain.Campaign
	byExternal map[string]uuid.UUID
	now        func() time.Time
}

var _ port.CampaignRepository = (*CampaignStore)(nil)

// NewCampaignStore returns an empty store.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{
		campaigns:  make(map[uuid.UUID]*domain.Campaign),
		byExternal: make(map[string]uuid.UUID),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// UpsertSynced implements port.CampaignRepository.
func (s *CampaignStore) UpsertSynced(_ context.Context, c *domain.Campaign) (bool, error) {
	if c.ExternalID == nil || *c.ExternalID == "" {
		return false, port.NewValidationError("external_id", "required for synced campaigns")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id, ok := s.byExternal[*c.ExternalID]
	if !ok {
		stored := clone(c)
		if stored.ID == uuid.Nil {
			stored.ID = uuid.New()
		}
		stored.Origin = domain.OriginSynced
		stored.CreatedAt, stored.UpdatedAt = now, now
		for i := range stored.AdSets {
			newAdSet(&stored.AdSets[i], stored.ID, now)
		}
		s.campaigns[stored.ID] = stored
		s.byExternal[*stored.ExternalID] = stored.ID
		*c = *clone(stored)
		return true, nil
	}

	stored := s.campaigns[id]
	if stored.OwnerID != c.OwnerID {
		return false, port.ErrOwnershipConflict
	}

	changed := false
	if stored.Name != c.Name ||
		stored.Objective != c.Objective ||
		stored.Status != c.Status ||
		stored.Origin != domain.OriginSynced ||
		!sameDecimal(stored.DailyBudget, c.DailyBudget) ||
		!sameDecimal(stored.LifetimeBudget, c.LifetimeBudget) {
		stored.Name = c.Name
		stored.Objective = c.Objective
		stored.Status = c.Status
		stored.Origin = domain.OriginSynced
		stored.DailyBudget = c.DailyBudget
		stored.LifetimeBudget = c.LifetimeBudget
		stored.UpdatedAt = now
		changed = true
	}
	for _, in := range c.AdSets {
		if mergeAdSet(stored, in, now) {
			changed = true
		}
	}

	*c = *clone(stored)
	return changed, nil
}

// mergeAdSet upserts one ad set of a stored campaign by external id. Ad
// sets and ads missing from the input are kept.
func mergeAdSet(parent *domain.Campaign, in domain.AdSet, now time.Time) bool {
	if in.ExternalID == nil {
		return false
	}
	i := slices.IndexFunc(parent.AdSets, func(s domain.AdSet) bool {
		return s.ExternalID != nil && *s.ExternalID == *in.ExternalID
	})
	if i < 0 {
		set := cloneAdSet(in)
		newAdSet(&set, parent.ID, now)
		parent.AdSets = append(parent.AdSets, set)
		return true
	}

	set := &parent.AdSets[i]
	changed := false
	if set.Name != in.Name || set.Status != in.Status || !sameDecimal(set.DailyBudget, in.DailyBudget) {
		set.Name, set.Status, set.DailyBudget = in.Name, in.Status, in.DailyBudget
		set.UpdatedAt = now
		changed = true
	}
	for _, ad := range in.Ads {
		if ad.ExternalID == nil {
			continue
		}
		j := slices.IndexFunc(set.Ads, func(a domain.Ad) bool {
			return a.ExternalID != nil && *a.ExternalID == *ad.ExternalID
		})
		if j < 0 {
			ad.ID, ad.AdSetID, ad.UpdatedAt = uuid.New(), set.ID, now
			ad.ExternalID = cloneString(ad.ExternalID)
			set.Ads = append(set.Ads, ad)
			changed = true
			continue
		}
		if set.Ads[j].Name != ad.Name || set.Ads[j].Status != ad.Status {
			set.Ads[j].Name, set.Ads[j].Status, set.Ads[j].UpdatedAt = ad.Name, ad.Status, now
			changed = true
		}
	}
	return changed
}

func newAdSet(set *domain.AdSet, campaignID uuid.UUID, now time.Time) {
	set.ID, set.CampaignID, set.UpdatedAt = uuid.New(), campaignID, now
	for j := range set.Ads {
		set.Ads[j].ID, set.Ads[j].AdSetID, set.Ads[j].UpdatedAt = uuid.New(), set.ID, now
	}
}

// Create implements port.CampaignRepository.
func (s *CampaignStore) Create(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[c.ID]; ok {
		return port.NewValidationError("id", "already exists")
	}
	if c.ExternalID != nil {
		if _, ok := s.byExternal[*c.ExternalID]; ok {
			return port.ErrOwnershipConflict
		}
		s.byExternal[*c.ExternalID] = c.ID
	}
	s.campaigns[c.ID] = clone(c)
	return nil
}

// Get implements port.CampaignRepository.
func (s *CampaignStore) Get(_ context.Context, ownerID string, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok || c.OwnerID != ownerID {
		return nil, port.ErrNotFound
	}
	return clone(c), nil
}

// List implements port.CampaignRepository. Campaigns are ordered by most
// recently updated first. List results carry no ad sets.
func (s *CampaignStore) List(_ context.Context, ownerID string, filter port.CampaignFilter) ([]domain.Campaign, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]domain.Campaign, 0)
	for _, c := range s.campaigns {
		if c.OwnerID != ownerID || !statusMatches(c.Status, filter.Statuses) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		row := *c
		row.AdSets = nil
		matched = append(matched, row)
	}
	slices.SortFunc(matched, func(a, b domain.Campaign) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	total := len(matched)
	return page(matched, filter.Limit, filter.Offset), total, nil
}

func statusMatches(st domain.Status, want []domain.Status) bool {
	if len(want) == 0 {
		return st != domain.StatusArchived
	}
	return slices.Contains(want, st)
}

// UpdateStatus implements port.CampaignRepository.
func (s *CampaignStore) UpdateStatus(_ context.Context, ownerID string, id uuid.UUID, status domain.Status, at time.Time) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok || c.OwnerID != ownerID {
		return nil, port.ErrNotFound
	}
	c.Status, c.UpdatedAt = status, at
	return clone(c), nil
}

// UpdateStatusBatch implements port.CampaignRepository. Ids that do not
// exist or belong to another owner are skipped.
func (s *CampaignStore) UpdateStatusBatch(_ context.Context, ownerID string, ids []uuid.UUID, status domain.Status, at time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(ids))
	n := 0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		c, ok := s.campaigns[id]
		if !ok || c.OwnerID != ownerID {
			continue
		}
		c.Status, c.UpdatedAt = status, at
		n++
	}
	return n, nil
}

// MarkSynced implements port.CampaignRepository.
func (s *CampaignStore) MarkSynced(_ context.Context, ownerID string, id uuid.UUID, externalID string, at time.Time) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok || c.OwnerID != ownerID {
		return nil, port.ErrNotFound
	}
	if other, taken := s.byExternal[externalID]; taken && other != id {
		return nil, port.ErrOwnershipConflict
	}
	if c.ExternalID != nil {
		delete(s.byExternal, *c.ExternalID)
	}
	ext := externalID
	c.ExternalID, c.Origin, c.UpdatedAt = &ext, domain.OriginSynced, at
	s.byExternal[externalID] = id
	return clone(c), nil
}

// Count implements port.CampaignRepository.
func (s *CampaignStore) Count(_ context.Context, ownerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, c := range s.campaigns {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func sameDecimal(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	items = items[max(offset, 0):]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func clone(c *domain.Campaign) *domain.Campaign {
	out := *c
	out.ExternalID = cloneString(c.ExternalID)
	if c.AdSets != nil {
		out.AdSets = make([]domain.AdSet, len(c.AdSets))
		for i, s := range c.AdSets {
			out.AdSets[i] = cloneAdSet(s)
		}
	}
	return &out
}

func cloneAdSet(s domain.AdSet) domain.AdSet {
	s.ExternalID = cloneString(s.ExternalID)
	if s.Ads != nil {
		ads := make([]domain.Ad, len(s.Ads))
		for i, a := range s.Ads {
			a.ExternalID = cloneString(a.ExternalID)
			ads[i] = a
		}
		s.Ads = ads
	}
	return s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
