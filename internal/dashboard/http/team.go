package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/aggregate"
	"github.com/peakform/coachdesk/internal/dashboard/roster"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type TeamHandler struct {
	TeamService *service.TeamService
}

func toCoachDTO(l aggregate.CoachLoad) dashsdk.Coach {
	return dashsdk.Coach{
		ID:             l.Coach.ID,
		Name:           l.Coach.Name,
		Email:          l.Coach.Email,
		Role:           l.Coach.Role,
		Status:         l.Coach.Status,
		Rating:         l.Coach.Rating,
		Specialization: l.Coach.Specialization,
		ImageURL:       l.Coach.ImageURL,
		ClientCount:    l.ClientCount,
		LoadPercentage: l.LoadPercentage,
		InactiveRate:   l.InactiveRate,
	}
}

// HandleList godoc
//
//	@Summary		Team Roster
//	@Description	List every coach with their roster load figures. Supports search,
//	@Description	status filters (pending, active, suspended) and name sorting.
//	@Tags			Team
//	@Produce		json
//	@Param			search	query		string	false	"Case-insensitive name/email substring"
//	@Param			status	query		string	false	"Status filter"
//	@Param			sort	query		string	false	"Sort option (a-z, z-a)"
//	@Success		200		{array}		dashsdk.Coach
//	@Failure		403		{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/coaches [get].
func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := roster.CoachQuery{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Sort:   r.URL.Query().Get("sort"),
	}

	loads, err := h.TeamService.ListCoaches(ctx, q)
	if err != nil {
		log.Error("failed to list coaches", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list coaches")
		return
	}

	out := make([]dashsdk.Coach, 0, len(loads))
	for _, l := range loads {
		out = append(out, toCoachDTO(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Coach Detail
//	@Description	Fetch one coach with their load figures.
//	@Tags			Team
//	@Produce		json
//	@Param			id	path		string	true	"Coach id"
//	@Success		200	{object}	dashsdk.Coach
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/coaches/{id} [get].
func (h *TeamHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	load, err := h.TeamService.GetCoach(ctx, r.PathValue("id"))
	if err != nil {
		writeTeamError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCoachDTO(load))
}

// HandleStats godoc
//
//	@Summary		Team Statistics
//	@Description	Organisation-wide rollups: average coach rating, client totals and retention.
//	@Tags			Team
//	@Produce		json
//	@Success		200	{object}	dashsdk.TeamStats
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/team/stats [get].
func (h *TeamHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stats, err := h.TeamService.TeamStats(ctx)
	if err != nil {
		log.Error("failed to compute team stats", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to compute team stats")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.TeamStats{
		AverageRating: stats.AverageRating,
		TotalClients:  stats.TotalClients,
		ActiveClients: stats.ActiveClients,
		RetentionRate: stats.RetentionRate,
	})
}

// HandleApprove godoc
//
//	@Summary		Approve Coach
//	@Description	Activate a coach account created via invitation redemption.
//	@Tags			Team
//	@Produce		json
//	@Param			id	path	string	true	"Coach id"
//	@Success		204
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Failure		409	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/coaches/{id}/approve [post].
func (h *TeamHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.TeamService.ApproveCoach(ctx, r.PathValue("id")); err != nil {
		writeTeamError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReject godoc
//
//	@Summary		Reject Coach
//	@Description	Suspend a pending coach account.
//	@Tags			Team
//	@Produce		json
//	@Param			id	path	string	true	"Coach id"
//	@Success		204
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Failure		409	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/coaches/{id}/reject [post].
func (h *TeamHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.TeamService.RejectCoach(ctx, r.PathValue("id")); err != nil {
		writeTeamError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeTeamError(ctx context.Context, w http.ResponseWriter, err error) {
	log := slogx.FromContext(ctx)

	switch {
	case errors.Is(err, service.ErrCoachNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Coach not found")
	case errors.Is(err, service.ErrCoachNotPending):
		httpx.WriteError(w, http.StatusConflict, "conflict", "Coach is not awaiting approval")
	default:
		log.Error("team request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Request failed")
	}
}
