package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type InviteMintHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Mint Coach Invitation
//	@Description	Create a single-use invitation for a new coach. The raw token is returned
//	@Description	exactly once and also emailed to the invitee. Admin only.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.InviteMintRequest	true	"Invitation request"
//	@Success		200		{object}	dashsdk.InviteMintResponse
//	@Failure		400		{object}	dashsdk.ErrorResponse
//	@Failure		409		{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.InviteMintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	var expiresAt time.Time
	if req.ExpiresAt != 0 {
		expiresAt = time.Unix(req.ExpiresAt, 0).UTC()
	}

	token, inv, err := h.InvitationService.MintInvitation(
		ctx,
		req.Email,
		req.Role,
		httpx.CoachIDFromCtx(ctx),
		expiresAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid role")
		case errors.Is(err, service.ErrInvalidInvitation):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid invitation parameters")
		case errors.Is(err, service.ErrCoachAlreadyExists):
			httpx.WriteError(w, http.StatusConflict, "conflict", "A coach with this email already exists")
		default:
			log.Error("failed to mint invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.InviteMintResponse{
		InvitationID: inv.ID,
		InviteToken:  token,
		ExpiresAt:    inv.ExpiresAt.Unix(),
	})
}
