package http

import (
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database connection. Returns 503 while
//	@Description	the service cannot serve traffic.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dashsdk.ReadyResponse
//	@Failure		503	{object}	dashsdk.ReadyResponse
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := dashsdk.ReadyResponse{Status: "ok", Database: "ok"}
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = "error: " + err.Error()
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, resp)
	}
}
