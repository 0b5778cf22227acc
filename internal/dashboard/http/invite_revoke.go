package http

import (
	"errors"
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type InviteRevokeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Coach Invitation
//	@Description	Expire a pending invitation so its token can never be redeemed.
//	@Description	Used and already-expired invitations are rejected untouched. Admin only.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation id"
//	@Success		204
//	@Failure		404	{object}	dashsdk.ErrorResponse
//	@Failure		409	{object}	dashsdk.ErrorResponse
//	@Failure		410	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/revoke [post].
func (h *InviteRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.InvitationService.RevokeInvitation(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Invitation not found")
		case errors.Is(err, service.ErrInvitationUsed):
			httpx.WriteError(w, http.StatusConflict, "invitation_used", "Invitation has already been used")
		case errors.Is(err, service.ErrInvitationExpired):
			httpx.WriteError(w, http.StatusGone, "invitation_expired", "Invitation has already expired")
		case errors.Is(err, service.ErrInvitationNotActive):
			httpx.WriteError(w, http.StatusConflict, "conflict", "Invitation is no longer pending")
		default:
			log.Error("failed to revoke invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to revoke invitation")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
