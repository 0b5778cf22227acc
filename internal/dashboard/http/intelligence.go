package http

import (
	"errors"
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type IntelligenceHandler struct {
	IntelligenceService *service.IntelligenceService
}

func toIntelligenceDTO(item domain.IntelligenceItem) dashsdk.IntelligenceItem {
	return dashsdk.IntelligenceItem{
		ID:        item.ID,
		Type:      item.Type,
		Severity:  item.Severity,
		Message:   item.Message,
		ClientID:  item.ClientID,
		CreatedAt: item.CreatedAt,
	}
}

// HandleFeed godoc
//
//	@Summary		Intelligence Feed
//	@Description	List unresolved advisories, newest first.
//	@Tags			Intelligence
//	@Produce		json
//	@Success		200	{array}		dashsdk.IntelligenceItem
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/intelligence [get].
func (h *IntelligenceHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	feed, err := h.IntelligenceService.Feed(ctx)
	if err != nil {
		log.Error("failed to load intelligence feed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to load feed")
		return
	}

	out := make([]dashsdk.IntelligenceItem, 0, len(feed))
	for _, item := range feed {
		out = append(out, toIntelligenceDTO(item))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleResolve godoc
//
//	@Summary		Resolve Advisory
//	@Description	Mark an advisory handled. Resolving an already-resolved advisory is a
//	@Description	harmless no-op; the response says whether this call changed anything.
//	@Tags			Intelligence
//	@Produce		json
//	@Param			id	path		string	true	"Advisory id"
//	@Success		200	{object}	dashsdk.ResolveResponse
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/intelligence/{id}/resolve [post].
func (h *IntelligenceHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	changed, err := h.IntelligenceService.Resolve(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrIntelligenceNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Advisory not found")
			return
		}
		log.Error("failed to resolve advisory", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to resolve advisory")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.ResolveResponse{Resolved: changed})
}

// HandleChurn godoc
//
//	@Summary		Churn Report
//	@Description	List churn risk reports, high risk first.
//	@Tags			Intelligence
//	@Produce		json
//	@Success		200	{array}		dashsdk.ChurnRisk
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/intelligence/churn [get].
func (h *IntelligenceHandler) HandleChurn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	report, err := h.IntelligenceService.ChurnReport(ctx)
	if err != nil {
		log.Error("failed to load churn report", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to load churn report")
		return
	}

	out := make([]dashsdk.ChurnRisk, 0, len(report))
	for _, risk := range report {
		out = append(out, dashsdk.ChurnRisk{
			ID:          risk.ID,
			ClientID:    risk.ClientID,
			RiskLevel:   risk.RiskLevel,
			RiskFactors: risk.RiskFactors,
			Message:     risk.Message,
			CreatedAt:   risk.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
