package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type PreferencesHandler struct {
	PreferencesService *service.PreferencesService
}

// HandleGet godoc
//
//	@Summary		Dashboard Preferences
//	@Description	Return the caller's saved dashboard preferences, or the defaults when
//	@Description	nothing has been saved yet.
//	@Tags			Preferences
//	@Produce		json
//	@Success		200	{object}	dashsdk.Preference
//	@Failure		401	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/preferences [get].
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, err := h.PreferencesService.Get(ctx, httpx.CoachIDFromCtx(ctx))
	if err != nil {
		log.Error("failed to load preferences", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to load preferences")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.Preference{
		Theme:       p.Theme,
		SidebarOpen: p.SidebarOpen,
	})
}

// HandlePut godoc
//
//	@Summary		Save Dashboard Preferences
//	@Description	Persist the caller's dashboard preferences (theme, sidebar state).
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.Preference	true	"Preferences"
//	@Success		200		{object}	dashsdk.Preference
//	@Failure		400		{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/preferences [put].
func (h *PreferencesHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.Preference
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	saved, err := h.PreferencesService.Save(ctx, domain.Preference{
		CoachID:     httpx.CoachIDFromCtx(ctx),
		Theme:       req.Theme,
		SidebarOpen: req.SidebarOpen,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid theme")
			return
		}
		log.Error("failed to save preferences", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to save preferences")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.Preference{
		Theme:       saved.Theme,
		SidebarOpen: saved.SidebarOpen,
	})
}
