package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type InviteRedeemHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Coach Invitation
//	@Description	Exchange an invitation token for a new coach account. The signup email
//	@Description	must match the invited address; the token is single use. The account
//	@Description	starts pending until an admin approves it.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.InviteRedeemRequest	true	"Redemption request"
//	@Success		201		{object}	dashsdk.InviteRedeemResponse
//	@Failure		400		{object}	dashsdk.ErrorResponse
//	@Failure		409		{object}	dashsdk.ErrorResponse
//	@Failure		410		{object}	dashsdk.ErrorResponse
//	@Router			/v1/invitations/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.InviteRedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	coach, err := h.InvitationService.RedeemInvitation(ctx, req.Token, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInvitation):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "token, name and email are required")
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Invitation not found")
		case errors.Is(err, service.ErrInvitationUsed):
			httpx.WriteError(w, http.StatusConflict, "invitation_used", "Invitation has already been used")
		case errors.Is(err, service.ErrInvitationExpired):
			httpx.WriteError(w, http.StatusGone, "invitation_expired", "Invitation has expired")
		case errors.Is(err, service.ErrEmailMismatch):
			httpx.WriteError(w, http.StatusBadRequest, "email_mismatch", "Invitation was issued for a different email")
		case errors.Is(err, service.ErrCoachAlreadyExists):
			httpx.WriteError(w, http.StatusConflict, "conflict", "A coach with this email already exists")
		default:
			log.Error("failed to redeem invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to redeem invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, dashsdk.InviteRedeemResponse{
		CoachID: coach.ID,
		Role:    coach.Role,
		Status:  coach.Status,
	})
}
