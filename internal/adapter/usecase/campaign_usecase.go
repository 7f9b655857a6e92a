package usecase

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/money"
	"adsync/internal/core/port"
	"adsync/internal/metrics"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxCopies bounds one duplicate request.
	MaxCopies = 200

	DefaultPageSize = 50
	MaxPageSize     = 200
)

// CampaignUseCase is the mutation relay plus the owner scoped reads. It
// implements port.CampaignUseCase.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	notifier  port.Notifier
	gateway   port.PlatformGateway
	adm       port.Admitter
	logger    *slog.Logger
	now       func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase wires the relay.
func NewCampaignUseCase(campaigns port.CampaignRepository, notifier port.Notifier, gateway port.PlatformGateway, adm port.Admitter, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns: campaigns,
		notifier:  notifier,
		gateway:   gateway,
		adm:       adm,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetStatus implements port.CampaignUseCase. The platform call is best
// effort: when it fails the local status is still written and the next
// sync or a retried SetStatus converges the platform.
func (u *CampaignUseCase) SetStatus(ctx context.Context, p domain.Principal, id uuid.UUID, status domain.Status) (*domain.Campaign, error) {
	if !status.Settable() {
		return nil, port.NewValidationError("status", "must be one of ACTIVE, PAUSED, ARCHIVED")
	}
	c, err := u.campaigns.Get(ctx, p.ID, id)
	if err != nil {
		return nil, err
	}

	var upstreamErr error
	if ext, ok := c.Upstream(); ok {
		if upstreamErr = u.gateway.SetStatus(ctx, ext, status); upstreamErr != nil {
			u.logger.Warn("platform status change failed, applying locally",
				slog.String("campaign", c.ID.String()),
				slog.String("external_id", ext),
				slog.String("status", string(status)),
				slog.Any("error", upstreamErr))
		}
	}

	updated, err := u.campaigns.UpdateStatus(ctx, p.ID, id, status, u.now())
	if err != nil {
		return nil, err
	}

	if upstreamErr != nil {
		notify(ctx, u.notifier, u.logger, updated, domain.AlertWarning, domain.PriorityHigh,
			fmt.Sprintf("Campaign %s locally", statusVerb(status)),
			fmt.Sprintf("%q was %s here but the platform did not confirm it. The change will be retried on the next sync.",
				updated.Name, statusVerb(status)))
	} else {
		notify(ctx, u.notifier, u.logger, updated, domain.AlertSuccess, domain.PriorityMedium,
			fmt.Sprintf("Campaign %s", statusVerb(status)),
			fmt.Sprintf("%q is now %s.", updated.Name, status))
	}
	return updated, nil
}

func statusVerb(s domain.Status) string {
	switch s {
	case domain.StatusActive:
		return "activated"
	case domain.StatusPaused:
		return "paused"
	case domain.StatusArchived:
		return "archived"
	default:
		return "updated"
	}
}

// Duplicate implements port.CampaignUseCase. Copies are created one by one
// and each failed copy is recorded without stopping the others. It fails
// only when no copy could be created.
func (u *CampaignUseCase) Duplicate(ctx context.Context, p domain.Principal, id uuid.UUID, copies int) (*port.DuplicateResult, error) {
	if copies < 1 || copies > MaxCopies {
		return nil, port.NewValidationError("count", fmt.Sprintf("must be between 1 and %d", MaxCopies))
	}
	src, err := u.campaigns.Get(ctx, p.ID, id)
	if err != nil {
		return nil, err
	}
	ext, ok := src.Upstream()
	if !ok {
		return nil, port.ErrNotSynchronized
	}

	res := &port.DuplicateResult{Campaigns: make([]domain.Campaign, 0, copies)}
	var (
		errs    errorList
		lastErr error
	)
	for i := 1; i <= copies; i++ {
		if err = ctx.Err(); err != nil {
			errs.add("copy %d: %v", i, err)
			lastErr = err
			break
		}
		c, err := u.duplicateOnce(ctx, p, src, ext, nameSuffix(i, copies))
		if err != nil {
			metrics.DuplicateCopies.WithLabelValues("failed").Inc()
			errs.add("copy %d: %v", i, err)
			lastErr = err
			u.logger.Warn("campaign copy failed",
				slog.String("campaign", src.ID.String()),
				slog.Int("copy", i),
				slog.Any("error", err))
			continue
		}
		metrics.DuplicateCopies.WithLabelValues("created").Inc()
		res.CreatedCount++
		res.Campaigns = append(res.Campaigns, *c)
		notify(ctx, u.notifier, u.logger, c, domain.AlertSuccess, domain.PriorityLow,
			"Campaign duplicated",
			fmt.Sprintf("%q was copied as %q.", src.Name, c.Name))
	}
	res.Errors = errs.list()

	if res.CreatedCount == 0 {
		notify(ctx, u.notifier, u.logger, src, domain.AlertError, domain.PriorityHigh,
			"Duplication failed",
			fmt.Sprintf("No copy of %q could be created.", src.Name))
		return res, fmt.Errorf("duplicate campaign: no copy created: %w", lastErr)
	}
	if errs.len() > 0 {
		notify(ctx, u.notifier, u.logger, src, domain.AlertWarning, domain.PriorityMedium,
			"Duplication partially failed",
			fmt.Sprintf("%d of %d copies of %q were created.", res.CreatedCount, copies, src.Name))
	}
	return res, nil
}

func (u *CampaignUseCase) duplicateOnce(ctx context.Context, p domain.Principal, src *domain.Campaign, ext, suffix string) (*domain.Campaign, error) {
	newID, err := u.gateway.Duplicate(ctx, ext, suffix)
	if err != nil {
		return nil, err
	}

	// The copy exists upstream from here on. It starts as a paused clone of
	// the source and details overlay whatever fields they carry.
	c := &domain.Campaign{
		OwnerID:        p.ID,
		ExternalID:     &newID,
		Origin:         domain.OriginSynced,
		Name:           src.Name + suffix,
		Objective:      src.Objective,
		Status:         domain.StatusPaused,
		DailyBudget:    src.DailyBudget,
		LifetimeBudget: src.LifetimeBudget,
	}
	details, err := u.gateway.GetCampaign(ctx, newID)
	if err != nil {
		u.logger.Debug("copy details unavailable, using source fields",
			slog.String("external_id", newID),
			slog.Any("error", err))
	} else if err = overlayDetails(c, details); err != nil {
		u.logger.Warn("copy details unusable, using source fields",
			slog.String("external_id", newID),
			slog.Any("error", err))
	}

	if _, err = u.campaigns.UpsertSynced(ctx, c); err != nil {
		return nil, fmt.Errorf("store copy %s: %w", newID, err)
	}
	return c, nil
}

// overlayDetails copies the fields present in ext onto c. Absent fields
// keep the value c already has. c is left untouched on error.
func overlayDetails(c *domain.Campaign, ext *port.ExternalCampaign) error {
	if ext == nil {
		return nil
	}
	detail := *ext
	if strings.TrimSpace(detail.ID) == "" {
		detail.ID = *c.ExternalID
	}
	d, err := fromExternal(c.OwnerID, &detail)
	if err != nil {
		return err
	}
	if strings.TrimSpace(d.Name) != "" {
		c.Name = d.Name
	}
	if strings.TrimSpace(d.Objective) != "" {
		c.Objective = d.Objective
	}
	if ext.Status != nil || ext.EffectiveStatus != nil {
		c.Status = d.Status
	}
	if d.DailyBudget.Valid {
		c.DailyBudget = d.DailyBudget
	}
	if d.LifetimeBudget.Valid {
		c.LifetimeBudget = d.LifetimeBudget
	}
	if len(d.AdSets) > 0 {
		c.AdSets = d.AdSets
	}
	return nil
}

func nameSuffix(i, copies int) string {
	if copies == 1 {
		return " - Copy"
	}
	return fmt.Sprintf(" - Copy %d", i)
}

// Create implements port.CampaignUseCase. A platform failure keeps the
// campaign as LOCAL so it can be published later.
func (u *CampaignUseCase) Create(ctx context.Context, p domain.Principal, in port.CreateCampaignInput) (*domain.Campaign, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, port.NewValidationError("name", "required")
	}
	status := in.Status
	if status == "" {
		status = domain.StatusPaused
	}
	if status != domain.StatusActive && status != domain.StatusPaused {
		return nil, port.NewValidationError("status", "must be ACTIVE or PAUSED")
	}

	now := u.now()
	c := &domain.Campaign{
		ID:             uuid.New(),
		OwnerID:        p.ID,
		Origin:         domain.OriginLocal,
		Name:           name,
		Objective:      strings.TrimSpace(in.Objective),
		Status:         status,
		DailyBudget:    in.DailyBudget,
		LifetimeBudget: in.LifetimeBudget,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	input, err := externalInput(c)
	if err != nil {
		return nil, err
	}

	extID, upstreamErr := u.gateway.CreateCampaign(ctx, input)
	if upstreamErr == nil {
		c.ExternalID = &extID
		c.Origin = domain.OriginSynced
	} else {
		u.logger.Warn("platform create failed, keeping campaign local",
			slog.String("principal", p.ID),
			slog.Any("error", upstreamErr))
	}

	if err = u.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}

	if upstreamErr != nil {
		notify(ctx, u.notifier, u.logger, c, domain.AlertWarning, domain.PriorityMedium,
			"Campaign saved locally",
			fmt.Sprintf("%q could not be created on the platform. Publish it once the platform is reachable.", c.Name))
	} else {
		notify(ctx, u.notifier, u.logger, c, domain.AlertSuccess, domain.PriorityLow,
			"Campaign created",
			fmt.Sprintf("%q was created on the platform.", c.Name))
	}
	return c, nil
}

// Publish implements port.CampaignUseCase. It counts against the
// sensitive admission policy.
func (u *CampaignUseCase) Publish(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Campaign, error) {
	d, err := u.adm.Admit(ctx, p.ID, port.PolicySensitive)
	if err != nil {
		return nil, err
	}
	if err = d.Err(); err != nil {
		return nil, err
	}

	c, err := u.campaigns.Get(ctx, p.ID, id)
	if err != nil {
		return nil, err
	}
	if c.Origin == domain.OriginSynced {
		return nil, port.NewValidationError("id", "campaign is already published")
	}
	input, err := externalInput(c)
	if err != nil {
		return nil, err
	}

	extID, err := u.gateway.CreateCampaign(ctx, input)
	if err != nil {
		u.logger.Warn("platform publish failed",
			slog.String("campaign", c.ID.String()),
			slog.Any("error", err))
		notify(ctx, u.notifier, u.logger, c, domain.AlertError, domain.PriorityHigh,
			"Publish failed",
			fmt.Sprintf("%q could not be published on the platform. Try again later.", c.Name))
		return nil, fmt.Errorf("publish campaign: %w", err)
	}

	updated, err := u.campaigns.MarkSynced(ctx, p.ID, id, extID, u.now())
	if err != nil {
		return nil, err
	}
	notify(ctx, u.notifier, u.logger, updated, domain.AlertSuccess, domain.PriorityMedium,
		"Campaign published",
		fmt.Sprintf("%q now exists on the platform.", updated.Name))
	return updated, nil
}

func externalInput(c *domain.Campaign) (port.ExternalCampaignInput, error) {
	daily, err := money.ToMinor(c.DailyBudget)
	if err != nil {
		return port.ExternalCampaignInput{}, port.NewValidationError("dailyBudget", err.Error())
	}
	lifetime, err := money.ToMinor(c.LifetimeBudget)
	if err != nil {
		return port.ExternalCampaignInput{}, port.NewValidationError("lifetimeBudget", err.Error())
	}
	return port.ExternalCampaignInput{
		Name:           c.Name,
		Objective:      c.Objective,
		Status:         c.Status,
		DailyBudget:    daily,
		LifetimeBudget: lifetime,
	}, nil
}

// Get implements port.CampaignUseCase.
func (u *CampaignUseCase) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Campaign, error) {
	return u.campaigns.Get(ctx, p.ID, id)
}

// List implements port.CampaignUseCase.
func (u *CampaignUseCase) List(ctx context.Context, p domain.Principal, filter port.CampaignFilter) (*port.CampaignPage, error) {
	for _, st := range filter.Statuses {
		if !st.Valid() {
			return nil, port.NewValidationError("status", fmt.Sprintf("unknown status %q", st))
		}
	}
	filter.Limit, filter.Offset = pageBounds(filter.Limit, filter.Offset)

	campaigns, total, err := u.campaigns.List(ctx, p.ID, filter)
	if err != nil {
		return nil, err
	}
	return &port.CampaignPage{
		Campaigns: campaigns,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}, nil
}

func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return min(limit, MaxPageSize), max(offset, 0)
}
