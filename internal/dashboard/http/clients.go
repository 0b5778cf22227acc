package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/peakform/coachdesk/internal/dashboard/roster"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type ClientsHandler struct {
	RosterService *service.RosterService
}

func viewerFrom(ctx context.Context) service.Viewer {
	return service.Viewer{
		CoachID: httpx.CoachIDFromCtx(ctx),
		Role:    httpx.RoleFromCtx(ctx),
	}
}

func toClientDTO(v service.ClientView) dashsdk.Client {
	out := dashsdk.Client{
		ID:                  v.ID,
		FullName:            v.FullName,
		Email:               v.Email,
		Status:              v.Status,
		CoachID:             v.CoachID,
		PackageName:         v.PackageName,
		SubscriptionEndDate: v.SubscriptionEndDate,
		ActiveSubscription:  v.ActiveSubscription,
		OnboardingCallDone:  v.OnboardingCallDone,
		WorkoutPlanLink:     v.WorkoutPlanLink,
		InitialWeight:       v.InitialWeight,
		WeightKG:            v.WeightKG,
		AttentionNeeded:     v.AttentionNeeded,
		ExpiringSoon:        v.ExpiringSoon,
		NewLeadWithoutPlan:  v.NewLeadWithoutPlan,
	}
	if v.Adherence != nil {
		out.Adherence = &dashsdk.Adherence{
			Score:      v.Adherence.Score,
			Improving:  v.Adherence.Improving,
			ComputedAt: v.Adherence.ComputedAt,
		}
	}
	return out
}

// HandleList godoc
//
//	@Summary		Client Roster
//	@Description	List the caller's client roster. Admins and head coaches see every client;
//	@Description	coaches see only their own. Supports free-text search, status filters
//	@Description	(all, active, inactive, lead, no-call, no-plan) and sorting (a-z, z-a, newest).
//	@Tags			Clients
//	@Produce		json
//	@Param			search	query		string	false	"Case-insensitive name/email substring"
//	@Param			status	query		string	false	"Status filter"
//	@Param			sort	query		string	false	"Sort option"
//	@Success		200		{array}		dashsdk.Client
//	@Failure		401		{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := roster.Query{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Sort:   r.URL.Query().Get("sort"),
	}

	views, err := h.RosterService.ListClients(ctx, viewerFrom(ctx), q)
	if err != nil {
		log.Error("failed to list clients", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list clients")
		return
	}

	out := make([]dashsdk.Client, 0, len(views))
	for _, v := range views {
		out = append(out, toClientDTO(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCoachClients godoc
//
//	@Summary		Coach Roster
//	@Description	List one coach's client roster with adherence decoration. Admins and
//	@Description	head coaches may read any roster; a coach may only read their own.
//	@Tags			Clients
//	@Produce		json
//	@Param			id		path		string	true	"Coach id"
//	@Param			search	query		string	false	"Case-insensitive name/email substring"
//	@Param			status	query		string	false	"Status filter"
//	@Param			sort	query		string	false	"Sort option"
//	@Success		200		{array}		dashsdk.Client
//	@Failure		403		{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/coaches/{id}/clients [get].
func (h *ClientsHandler) HandleCoachClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := roster.Query{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Sort:   r.URL.Query().Get("sort"),
	}

	views, err := h.RosterService.ListClientsForCoach(ctx, viewerFrom(ctx), r.PathValue("id"), q)
	if err != nil {
		writeClientError(ctx, w, err)
		return
	}

	out := make([]dashsdk.Client, 0, len(views))
	for _, v := range views {
		out = append(out, toClientDTO(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCoachAdherence godoc
//
//	@Summary		Coach Adherence Scores
//	@Description	Stored adherence scores for one coach's roster, keyed by client id.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string	true	"Coach id"
//	@Success		200	{object}	map[string]dashsdk.Adherence
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/coaches/{id}/adherence [get].
func (h *ClientsHandler) HandleCoachAdherence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scores, err := h.RosterService.CoachAdherence(ctx, viewerFrom(ctx), r.PathValue("id"))
	if err != nil {
		writeClientError(ctx, w, err)
		return
	}

	out := make(map[int64]dashsdk.Adherence, len(scores))
	for id, score := range scores {
		out[id] = dashsdk.Adherence{
			Score:      score.Score,
			Improving:  score.Improving,
			ComputedAt: score.ComputedAt,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Client Detail
//	@Description	Fetch a single client. Coaches can only read clients on their own roster.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		int	true	"Client id"
//	@Success		200	{object}	dashsdk.Client
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid client id")
		return
	}

	view, err := h.RosterService.GetClient(ctx, viewerFrom(ctx), id)
	if err != nil {
		writeClientError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientDTO(view))
}

// HandleStatus godoc
//
//	@Summary		Update Client Status
//	@Description	Move a client between lifecycle statuses (active, inactive, paused, lead, new_lead, pending).
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Client id"
//	@Param			request	body		dashsdk.ClientStatusRequest	true	"New status"
//	@Success		200		{object}	dashsdk.Client
//	@Failure		400		{object}	dashsdk.ErrorResponse
//	@Failure		403		{object}	dashsdk.ErrorResponse
//	@Failure		404		{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/clients/{id}/status [put].
func (h *ClientsHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid client id")
		return
	}

	var req dashsdk.ClientStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	viewer := viewerFrom(ctx)
	if err := h.RosterService.UpdateClientStatus(ctx, viewer, id, req.Status); err != nil {
		writeClientError(ctx, w, err)
		return
	}

	view, err := h.RosterService.GetClient(ctx, viewer, id)
	if err != nil {
		writeClientError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientDTO(view))
}

func writeClientError(ctx context.Context, w http.ResponseWriter, err error) {
	log := slogx.FromContext(ctx)

	switch {
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Client not found")
	case errors.Is(err, service.ErrNotYourClient):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "Client is not on your roster")
	case errors.Is(err, service.ErrNotYourRoster):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "Roster belongs to a different coach")
	case errors.Is(err, service.ErrInvalidStatus):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid client status")
	case errors.Is(err, service.ErrCheckInNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Check-in not found")
	default:
		log.Error("client request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Request failed")
	}
}
