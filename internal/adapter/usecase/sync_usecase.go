package usecase

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/metrics"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SyncUseCase is the reconciler. It mirrors every platform campaign of the
// connected account into the store and implements port.SyncUseCase.
type SyncUseCase struct {
	campaigns port.CampaignRepository
	gateway   port.PlatformGateway
	adm       port.Admitter
	logger    *slog.Logger
}

var _ port.SyncUseCase = (*SyncUseCase)(nil)

// NewSyncUseCase wires the reconciler.
func NewSyncUseCase(campaigns port.CampaignRepository, gateway port.PlatformGateway, adm port.Admitter, logger *slog.Logger) *SyncUseCase {
	return &SyncUseCase{campaigns: campaigns, gateway: gateway, adm: adm, logger: logger}
}

// SyncAll implements port.SyncUseCase. It does not emit alerts: an
// unchanged platform list leaves the store untouched.
func (u *SyncUseCase) SyncAll(ctx context.Context, p domain.Principal) (*port.SyncResult, error) {
	d, err := u.adm.Admit(ctx, p.ID, port.PolicySync)
	if err != nil {
		return nil, err
	}
	if err = d.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { metrics.SyncDuration.Observe(time.Since(start).Seconds()) }()

	external, err := u.gateway.ListCampaigns(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list platform campaigns: %w", err)
	}

	res := &port.SyncResult{Total: len(external), Admission: d}
	var errs errorList
	for i := range external {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		changed, err := u.syncOne(ctx, p, &external[i])
		if err != nil {
			metrics.SyncItems.WithLabelValues("failed").Inc()
			ref := external[i].ID
			if ref == "" {
				ref = fmt.Sprintf("#%d", i+1)
			}
			errs.add("campaign %s: %v", ref, err)
			u.logger.Warn("campaign sync failed",
				slog.String("principal", p.ID),
				slog.String("campaign", ref),
				slog.Any("error", err))
			continue
		}
		metrics.SyncItems.WithLabelValues("synced").Inc()
		res.Synced++
		if changed {
			res.Changed++
		}
	}
	res.Errors = errs.list()

	u.logger.Info("sync finished",
		slog.String("principal", p.ID),
		slog.Int("total", res.Total),
		slog.Int("synced", res.Synced),
		slog.Int("changed", res.Changed),
		slog.Int("errors", errs.len()),
		slog.Duration("took", time.Since(start)))
	return res, nil
}

func (u *SyncUseCase) syncOne(ctx context.Context, p domain.Principal, ext *port.ExternalCampaign) (bool, error) {
	c, err := fromExternal(p.ID, ext)
	if err != nil {
		return false, err
	}
	return u.campaigns.UpsertSynced(ctx, c)
}
