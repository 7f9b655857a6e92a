package usecase

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/money"
	"adsync/internal/core/port"
	"errors"
	"fmt"
	"strings"
)

var errMissingID = errors.New("missing id")

// fromExternal converts a platform campaign into the local shape. Statuses
// go through the status mapper and budgets are converted to major units.
// Every optional field may be absent.
func fromExternal(ownerID string, ext *port.ExternalCampaign) (*domain.Campaign, error) {
	id := strings.TrimSpace(ext.ID)
	if id == "" {
		return nil, errMissingID
	}
	daily, err := money.FromMinor(ext.DailyBudget)
	if err != nil {
		return nil, fmt.Errorf("daily_budget: %w", err)
	}
	lifetime, err := money.FromMinor(ext.LifetimeBudget)
	if err != nil {
		return nil, fmt.Errorf("lifetime_budget: %w", err)
	}

	c := &domain.Campaign{
		OwnerID:        ownerID,
		ExternalID:     &id,
		Origin:         domain.OriginSynced,
		Name:           value(ext.Name),
		Objective:      value(ext.Objective),
		Status:         domain.MapStatus(ext.Status, ext.EffectiveStatus),
		DailyBudget:    daily,
		LifetimeBudget: lifetime,
	}

	for _, es := range ext.AdSets {
		setID := strings.TrimSpace(es.ID)
		if setID == "" {
			continue
		}
		budget, err := money.FromMinor(es.DailyBudget)
		if err != nil {
			return nil, fmt.Errorf("ad set %s daily_budget: %w", setID, err)
		}
		set := domain.AdSet{
			ExternalID:  &setID,
			Name:        value(es.Name),
			Status:      domain.MapStatus(es.Status, es.EffectiveStatus),
			DailyBudget: budget,
		}
		for _, ea := range es.Ads {
			adID := strings.TrimSpace(ea.ID)
			if adID == "" {
				continue
			}
			set.Ads = append(set.Ads, domain.Ad{
				ExternalID: &adID,
				Name:       value(ea.Name),
				Status:     domain.MapStatus(ea.Status, ea.EffectiveStatus),
			})
		}
		c.AdSets = append(c.AdSets, set)
	}
	return c, nil
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
