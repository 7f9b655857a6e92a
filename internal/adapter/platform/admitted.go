package platform

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
)

// AdmittedGateway gates every outbound call through the admission
// controller, keyed by the connected account, so bursts of user actions
// cannot exhaust the platform quota.
type AdmittedGateway struct {
	next   port.PlatformGateway
	adm    port.Admitter
	key    string
	policy string
}

var _ port.PlatformGateway = (*AdmittedGateway)(nil)

// NewAdmittedGateway wraps next. key is usually the ad account id.
func NewAdmittedGateway(next port.PlatformGateway, adm port.Admitter, key, policy string) *AdmittedGateway {
	return &AdmittedGateway{next: next, adm: adm, key: key, policy: policy}
}

// admit reports an exhausted account quota as an upstream rejection so
// callers never confuse it with their own admission policies.
func (g *AdmittedGateway) admit(ctx context.Context, op string) error {
	d, err := g.adm.Admit(ctx, g.key, g.policy)
	if err != nil {
		return err
	}
	if denied := d.Err(); denied != nil {
		recordUpstreamError(op, denied)
		return &port.UpstreamError{
			Op:         op,
			Kind:       port.ErrUpstreamRejected,
			RetryAfter: d.ResetAfter,
			Err:        denied,
		}
	}
	return nil
}

func (g *AdmittedGateway) ListCampaigns(ctx context.Context, includeDrafts bool) ([]port.ExternalCampaign, error) {
	if err := g.admit(ctx, "list campaigns"); err != nil {
		return nil, err
	}
	return g.next.ListCampaigns(ctx, includeDrafts)
}

func (g *AdmittedGateway) GetCampaign(ctx context.Context, externalID string) (*port.ExternalCampaign, error) {
	if err := g.admit(ctx, "get campaign"); err != nil {
		return nil, err
	}
	return g.next.GetCampaign(ctx, externalID)
}

func (g *AdmittedGateway) SetStatus(ctx context.Context, externalID string, status domain.Status) error {
	if err := g.admit(ctx, "set status"); err != nil {
		return err
	}
	return g.next.SetStatus(ctx, externalID, status)
}

func (g *AdmittedGateway) Duplicate(ctx context.Context, externalID, nameSuffix string) (string, error) {
	if err := g.admit(ctx, "duplicate campaign"); err != nil {
		return "", err
	}
	return g.next.Duplicate(ctx, externalID, nameSuffix)
}

func (g *AdmittedGateway) CreateCampaign(ctx context.Context, in port.ExternalCampaignInput) (string, error) {
	if err := g.admit(ctx, "create campaign"); err != nil {
		return "", err
	}
	return g.next.CreateCampaign(ctx, in)
}
