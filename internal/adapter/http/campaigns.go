package httpadapter

import (
	"adsync/internal/core/domain"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Sync.SyncAll(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	setRateLimitHeaders(w, res.Admission)
	writeJSON(w, http.StatusOK, syncResponse{
		Synced:  res.Synced,
		Total:   res.Total,
		Changed: res.Changed,
		Errors:  res.Errors,
	})
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q   listCampaignsQuery
		err error
	)
	q.Status = strings.TrimSpace(r.URL.Query().Get("status"))
	if strings.EqualFold(q.Status, "all") {
		q.Status = "all"
	} else {
		q.Status = strings.ToUpper(q.Status)
	}
	q.Search = r.URL.Query().Get("search")
	if q.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if q.Offset, err = queryInt(r, "offset"); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err = h.validateStruct(q); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	page, err := h.svc.Campaigns.List(r.Context(), principalFrom(r.Context()), q.filter())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, campaignListResponse{
		Campaigns: toCampaignResponses(page.Campaigns),
		Pagination: pagination{
			Total:   page.Total,
			Limit:   page.Limit,
			Offset:  page.Offset,
			HasMore: page.Offset+len(page.Campaigns) < page.Total,
		},
	})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	c, err := h.svc.Campaigns.Create(r.Context(), principalFrom(r.Context()), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	c, err := h.svc.Campaigns.Get(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleUpdateCampaign changes the status when one is given. A body without
// status is a no-op that returns the campaign unchanged.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	var req updateCampaignRequest
	if err = h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	p := principalFrom(r.Context())
	var c *domain.Campaign
	if req.Status == nil {
		c, err = h.svc.Campaigns.Get(r.Context(), p, id)
	} else {
		c, err = h.svc.Campaigns.SetStatus(r.Context(), p, id, domain.Status(*req.Status))
	}
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleArchiveCampaign is a soft delete.
func (h *Handler) handleArchiveCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	c, err := h.svc.Campaigns.SetStatus(r.Context(), principalFrom(r.Context()), id, domain.StatusArchived)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	var req duplicateRequest
	if err = h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	res, err := h.svc.Campaigns.Duplicate(r.Context(), principalFrom(r.Context()), id, req.Count)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	status := http.StatusCreated
	if len(res.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, duplicateResponse{
		Success:      res.CreatedCount > 0,
		CreatedCount: res.CreatedCount,
		Campaigns:    toCampaignResponses(res.Campaigns),
		Errors:       res.Errors,
	})
}

func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	c, err := h.svc.Campaigns.Publish(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	ids := make([]uuid.UUID, 0, len(req.CampaignIDs))
	for _, s := range req.CampaignIDs {
		// validated by the dive,uuid tag
		ids = append(ids, uuid.MustParse(s))
	}

	res, err := h.svc.Bulk.ApplyBulk(r.Context(), principalFrom(r.Context()), ids, domain.Status(req.Action))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, bulkResponse{
		Success:      true,
		UpdatedCount: res.UpdatedCount,
		Action:       string(res.Action),
		Message:      fmt.Sprintf("%d campaign(s) set to %s", res.UpdatedCount, res.Action),
	})
}
