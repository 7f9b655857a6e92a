package httpadapter

import (
	"adsync/internal/core/port"
	"net/http"
)

func (h *Handler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	var (
		q   listAlertsQuery
		err error
	)
	if q.UnreadOnly, err = queryBool(r, "unread"); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
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

	page, err := h.svc.Alerts.List(r.Context(), principalFrom(r.Context()), port.AlertFilter{
		UnreadOnly: q.UnreadOnly,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	resp := alertListResponse{
		Alerts: make([]alertResponse, 0, len(page.Alerts)),
		Pagination: alertPagination{
			Total:       page.Counts.Total,
			UnreadCount: page.Counts.Unread,
			Limit:       page.Limit,
			Offset:      page.Offset,
		},
	}
	for _, a := range page.Alerts {
		resp.Alerts = append(resp.Alerts, alertResponse{
			ID:           a.ID.String(),
			Kind:         string(a.Kind),
			Priority:     string(a.Priority),
			Title:        a.Title,
			Message:      a.Message,
			CampaignID:   a.CampaignID,
			CampaignName: a.CampaignName,
			Read:         a.Read,
			CreatedAt:    a.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleMarkAlertRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err = h.svc.Alerts.MarkRead(r.Context(), principalFrom(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
