package http

import (
	"encoding/json"
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// HandleStats godoc
//
//	@Summary		Dashboard Statistics
//	@Description	The admin dashboard rollup: active clients, revenue series, pending
//	@Description	alerts and team adherence. Components that fail to load degrade to
//	@Description	their zero values instead of failing the payload.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	dashsdk.DashboardStats
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/stats [get].
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stats, err := h.StatsService.DashboardStats(ctx)
	if err != nil {
		log.Error("failed to assemble dashboard stats", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to assemble stats")
		return
	}

	out := dashsdk.DashboardStats{
		ActiveClients:  stats.ActiveClients,
		MonthlyRevenue: stats.MonthlyRevenue,
		PendingAlerts:  stats.PendingAlerts,
		TeamAdherence:  stats.TeamAdherence,
	}
	for _, p := range stats.RevenueByPlan {
		out.RevenueByPlan = append(out.RevenueByPlan, dashsdk.RevenuePlan(p))
	}
	for _, p := range stats.RevenueOverTime {
		out.RevenueOverTime = append(out.RevenueOverTime, dashsdk.RevenuePoint(p))
	}
	for _, p := range stats.RevenueByYear {
		out.RevenueByYear = append(out.RevenueByYear, dashsdk.RevenuePoint(p))
	}
	for _, d := range stats.TeamAdherenceDetails {
		out.TeamAdherenceDetails = append(out.TeamAdherenceDetails, dashsdk.CoachAdherence(d))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRevenueImport godoc
//
//	@Summary		Import Revenue Series
//	@Description	Atomically replace the stored revenue series with a fresh billing
//	@Description	export. The by-plan series must arrive sorted by revenue descending;
//	@Description	its first row is what the dashboard shows as the top performing plan.
//	@Tags			Stats
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dashsdk.RevenueImportRequest	true	"Revenue series"
//	@Success		204
//	@Failure		400	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/revenue/import [post].
func (h *StatsHandler) HandleRevenueImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.RevenueImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	imp := service.RevenueImport{}
	for _, p := range req.ByPlan {
		imp.ByPlan = append(imp.ByPlan, domain.RevenuePlan(p))
	}
	for _, p := range req.OverTime {
		imp.OverTime = append(imp.OverTime, domain.RevenuePoint(p))
	}
	for _, p := range req.ByYear {
		imp.ByYear = append(imp.ByYear, domain.RevenuePoint(p))
	}

	if err := h.StatsService.ImportRevenue(ctx, imp); err != nil {
		log.Error("revenue import failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Revenue import failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
