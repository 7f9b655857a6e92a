package httpadapter

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createCampaignRequest struct {
	Name           string           `json:"name" validate:"required,max=255"`
	Objective      string           `json:"objective" validate:"required,oneof=OUTCOME_AWARENESS OUTCOME_TRAFFIC OUTCOME_ENGAGEMENT OUTCOME_LEADS OUTCOME_APP_PROMOTION OUTCOME_SALES"`
	Status         string           `json:"status" validate:"omitempty,oneof=ACTIVE PAUSED"`
	DailyBudget    *decimal.Decimal `json:"dailyBudget" validate:"required_without=LifetimeBudget"`
	LifetimeBudget *decimal.Decimal `json:"lifetimeBudget" validate:"required_without=DailyBudget"`
}

func (r createCampaignRequest) input() (port.CreateCampaignInput, error) {
	in := port.CreateCampaignInput{
		Name:      strings.TrimSpace(r.Name),
		Objective: r.Objective,
		Status:    domain.Status(r.Status),
	}
	for _, b := range []struct {
		field string
		v     *decimal.Decimal
		dst   *decimal.NullDecimal
	}{
		{"dailyBudget", r.DailyBudget, &in.DailyBudget},
		{"lifetimeBudget", r.LifetimeBudget, &in.LifetimeBudget},
	} {
		if b.v == nil {
			continue
		}
		if !b.v.IsPositive() {
			return in, port.NewValidationError(b.field, "must be greater than zero")
		}
		*b.dst = decimal.NewNullDecimal(*b.v)
	}
	return in, nil
}

type updateCampaignRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=ACTIVE PAUSED ARCHIVED"`
}

type duplicateRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=200"`
}

type bulkRequest struct {
	CampaignIDs []string `json:"campaignIds" validate:"required,min=1,max=500,dive,uuid"`
	Action      string   `json:"action" validate:"required,oneof=ACTIVE PAUSED ARCHIVED"`
}

type listCampaignsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=ACTIVE PAUSED ARCHIVED DRAFT PREPAUSED all"`
	Search string `query:"search" validate:"max=255"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int    `query:"offset" validate:"min=0"`
}

func (q listCampaignsQuery) filter() port.CampaignFilter {
	f := port.CampaignFilter{Search: strings.TrimSpace(q.Search), Limit: q.Limit, Offset: q.Offset}
	// "all" is the dashboard default: every status except ARCHIVED, which
	// must be asked for explicitly.
	if q.Status != "" && q.Status != "all" {
		f.Statuses = []domain.Status{domain.Status(q.Status)}
	}
	return f
}

type listAlertsQuery struct {
	UnreadOnly bool `query:"unread"`
	Limit      int  `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset     int  `query:"offset" validate:"min=0"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = fld.Tag.Get("query")
		}
		return name
	})
	return v
}

// validationError turns the first validator failure into a port error so
// that every bad request shares one response shape.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return port.NewValidationError("", err.Error())
	}
	fe := fieldErrs[0]
	return port.NewValidationError(fieldPath(fe), validationMessage(fe))
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "required_without":
		return "required when " + lowerFirst(fe.Param()) + " is missing"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "must be a valid id"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

type campaignResponse struct {
	ID             string          `json:"id"`
	ExternalID     *string         `json:"externalId"`
	Origin         string          `json:"origin"`
	Name           string          `json:"name"`
	Objective      string          `json:"objective"`
	Status         string          `json:"status"`
	DailyBudget    *string         `json:"dailyBudget"`
	LifetimeBudget *string         `json:"lifetimeBudget"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	AdSets         []adSetResponse `json:"adSets,omitempty"`
}

type adSetResponse struct {
	ID          string       `json:"id"`
	ExternalID  *string      `json:"externalId"`
	Name        string       `json:"name"`
	Status      string       `json:"status"`
	DailyBudget *string      `json:"dailyBudget"`
	Ads         []adResponse `json:"ads"`
}

type adResponse struct {
	ID         string  `json:"id"`
	ExternalID *string `json:"externalId"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
}

// budget renders money as a decimal string so no precision is lost in
// JSON number handling on the client.
func budget(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:             c.ID.String(),
		ExternalID:     c.ExternalID,
		Origin:         string(c.Origin),
		Name:           c.Name,
		Objective:      c.Objective,
		Status:         string(c.Status),
		DailyBudget:    budget(c.DailyBudget),
		LifetimeBudget: budget(c.LifetimeBudget),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	for _, as := range c.AdSets {
		asr := adSetResponse{
			ID:          as.ID.String(),
			ExternalID:  as.ExternalID,
			Name:        as.Name,
			Status:      string(as.Status),
			DailyBudget: budget(as.DailyBudget),
			Ads:         make([]adResponse, 0, len(as.Ads)),
		}
		for _, ad := range as.Ads {
			asr.Ads = append(asr.Ads, adResponse{
				ID:         ad.ID.String(),
				ExternalID: ad.ExternalID,
				Name:       ad.Name,
				Status:     string(ad.Status),
			})
		}
		resp.AdSets = append(resp.AdSets, asr)
	}
	return resp
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for i := range cs {
		out = append(out, toCampaignResponse(&cs[i]))
	}
	return out
}

type pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type campaignListResponse struct {
	Campaigns  []campaignResponse `json:"campaigns"`
	Pagination pagination         `json:"pagination"`
}

type alertResponse struct {
	ID           string     `json:"id"`
	Kind         string     `json:"type"`
	Priority     string     `json:"priority"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	CampaignID   *uuid.UUID `json:"campaignId"`
	CampaignName string     `json:"campaignName,omitempty"`
	Read         bool       `json:"read"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type alertPagination struct {
	Total       int `json:"total"`
	UnreadCount int `json:"unreadCount"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
}

type alertListResponse struct {
	Alerts     []alertResponse `json:"alerts"`
	Pagination alertPagination `json:"pagination"`
}

type syncResponse struct {
	Synced  int      `json:"synced"`
	Total   int      `json:"total"`
	Changed int      `json:"changed"`
	Errors  []string `json:"errors,omitempty"`
}

type duplicateResponse struct {
	Success      bool               `json:"success"`
	CreatedCount int                `json:"createdCount"`
	Campaigns    []campaignResponse `json:"campaigns"`
	Errors       []string           `json:"errors,omitempty"`
}

type bulkResponse struct {
	Success      bool   `json:"success"`
	UpdatedCount int    `json:"updatedCount"`
	Action       string `json:"action"`
	Message      string `json:"message"`
}
