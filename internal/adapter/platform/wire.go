package platform

import (
	"adsync/internal/core/port"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// envelope is the response shape shared by every gateway endpoint. Only
// the fields relevant to the called endpoint are present.
type envelope struct {
	Success    *bool             `json:"success"`
	Error      json.RawMessage   `json:"error"`
	Detail     json.RawMessage   `json:"detail"`
	ErrorCode  json.RawMessage   `json:"error_code"`
	Campaigns  []json.RawMessage `json:"campaigns"`
	Campaign   json.RawMessage   `json:"campaign"`
	CampaignID json.RawMessage   `json:"campaign_id"`
}

func (e *envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

// message returns the human readable error carried by the envelope. The
// gateway uses "error" (a string or a platform error object) or "detail".
func (e *envelope) message() string {
	for _, raw := range []json.RawMessage{e.Error, e.Detail} {
		if s := optString(raw); s != nil && *s != "" {
			return *s
		}
		var obj struct {
			Message string `json:"message"`
			Code    any    `json:"code"`
		}
		if len(raw) > 0 && raw[0] == '{' && json.Unmarshal(raw, &obj) == nil && obj.Message != "" {
			if obj.Code != nil {
				return fmt.Sprintf("%s (code %v)", obj.Message, obj.Code)
			}
			return obj.Message
		}
	}
	return ""
}

// code returns the platform error code when one is present.
func (e *envelope) code() string {
	if s := optString(e.ErrorCode); s != nil {
		return *s
	}
	var obj struct {
		Code json.RawMessage `json:"code"`
	}
	if len(e.Error) > 0 && e.Error[0] == '{' && json.Unmarshal(e.Error, &obj) == nil {
		if s := optString(obj.Code); s != nil {
			return *s
		}
	}
	return ""
}

// decodeCampaign leniently decodes one platform campaign. Every field is
// optional; ids may arrive as strings or numbers. The bool is false when
// raw is not a JSON object.
func decodeCampaign(raw json.RawMessage) (port.ExternalCampaign, bool) {
	fields, ok := object(raw)
	if !ok {
		return port.ExternalCampaign{}, false
	}

	c := port.ExternalCampaign{
		ID:              deref(optString(fields["id"])),
		Name:            optString(fields["name"]),
		Objective:       optString(fields["objective"]),
		Status:          optString(fields["status"]),
		EffectiveStatus: optString(fields["effective_status"]),
		DailyBudget:     fields["daily_budget"],
		LifetimeBudget:  fields["lifetime_budget"],
	}

	index := map[string]int{}
	for _, r := range edge(fields["adsets"]) {
		s, ok := decodeAdSet(r)
		if !ok || s.ID == "" {
			continue
		}
		index[s.ID] = len(c.AdSets)
		c.AdSets = append(c.AdSets, s)
	}

	// Campaign level ads reference their ad set by id.
	for _, r := range edge(fields["ads"]) {
		adFields, ok := object(r)
		if !ok {
			continue
		}
		i, ok := index[deref(optString(adFields["adset_id"]))]
		if !ok {
			continue
		}
		if ad, ok := decodeAd(r); ok && ad.ID != "" {
			c.AdSets[i].Ads = append(c.AdSets[i].Ads, ad)
		}
	}
	return c, true
}

func decodeAdSet(raw json.RawMessage) (port.ExternalAdSet, bool) {
	fields, ok := object(raw)
	if !ok {
		return port.ExternalAdSet{}, false
	}
	s := port.ExternalAdSet{
		ID:              deref(optString(fields["id"])),
		Name:            optString(fields["name"]),
		Status:          optString(fields["status"]),
		EffectiveStatus: optString(fields["effective_status"]),
		DailyBudget:     fields["daily_budget"],
	}
	for _, r := range edge(fields["ads"]) {
		if ad, ok := decodeAd(r); ok && ad.ID != "" {
			s.Ads = append(s.Ads, ad)
		}
	}
	return s, true
}

func decodeAd(raw json.RawMessage) (port.ExternalAd, bool) {
	fields, ok := object(raw)
	if !ok {
		return port.ExternalAd{}, false
	}
	return port.ExternalAd{
		ID:              deref(optString(fields["id"])),
		Name:            optString(fields["name"]),
		Status:          optString(fields["status"]),
		EffectiveStatus: optString(fields["effective_status"]),
	}, true
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// edge accepts either a plain array or a {"data": [...]} connection.
func edge(raw json.RawMessage) []json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if raw[0] == '[' {
		if json.Unmarshal(raw, &items) == nil {
			return items
		}
		return nil
	}
	var conn struct {
		Data []json.RawMessage `json:"data"`
	}
	if raw[0] == '{' && json.Unmarshal(raw, &conn) == nil {
		return conn.Data
	}
	return nil
}

// optString reads a JSON string or number as text. Anything else,
// including null, yields nil.
func optString(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	switch {
	case raw[0] == '"':
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return nil
		}
		return &s
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		var n json.Number
		if json.Unmarshal(raw, &n) != nil {
			return nil
		}
		s := n.String()
		return &s
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}
