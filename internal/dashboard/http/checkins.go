package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
)

type CheckInsHandler struct {
	RosterService *service.RosterService
}

func toCheckInDTO(c domain.CheckIn) dashsdk.CheckIn {
	return dashsdk.CheckIn{
		ID:       c.ID,
		ClientID: c.ClientID,
		Date:     c.Date,
		Weight:   c.Weight,
		Calories: c.Calories,
		Reviewed: c.Reviewed,
	}
}

// HandleList godoc
//
//	@Summary		Client Check-In History
//	@Description	List a client's check-ins, newest first.
//	@Tags			CheckIns
//	@Produce		json
//	@Param			id	path		int	true	"Client id"
//	@Success		200	{array}		dashsdk.CheckIn
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/clients/{id}/checkins [get].
func (h *CheckInsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid client id")
		return
	}

	list, err := h.RosterService.ListCheckIns(ctx, viewerFrom(ctx), id)
	if err != nil {
		writeClientError(ctx, w, err)
		return
	}

	out := make([]dashsdk.CheckIn, 0, len(list))
	for _, c := range list {
		out = append(out, toCheckInDTO(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Record Check-In
//	@Description	Store a new check-in for a roster client.
//	@Tags			CheckIns
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Client id"
//	@Param			request	body		dashsdk.CheckInRequest	true	"Check-in data"
//	@Success		201		{object}	dashsdk.CheckIn
//	@Failure		400		{object}	dashsdk.ErrorResponse
//	@Failure		403		{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/clients/{id}/checkins [post].
func (h *CheckInsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid client id")
		return
	}

	var req dashsdk.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	c := domain.CheckIn{
		ClientID: id,
		Weight:   req.Weight,
		Calories: req.Calories,
	}
	if req.Date != nil {
		c.Date = *req.Date
	}

	created, err := h.RosterService.RecordCheckIn(ctx, viewerFrom(ctx), c)
	if err != nil {
		writeClientError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCheckInDTO(created))
}

// HandleReview godoc
//
//	@Summary		Review Check-In
//	@Description	Mark a check-in as reviewed by the coach.
//	@Tags			CheckIns
//	@Produce		json
//	@Param			id		path	int		true	"Client id"
//	@Param			checkin	path	string	true	"Check-in id"
//	@Success		204
//	@Failure		403	{object}	dashsdk.ErrorResponse
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/clients/{id}/checkins/{checkin}/review [post].
func (h *CheckInsHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid client id")
		return
	}

	if err := h.RosterService.ReviewCheckIn(ctx, viewerFrom(ctx), id, r.PathValue("checkin")); err != nil {
		writeClientError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
