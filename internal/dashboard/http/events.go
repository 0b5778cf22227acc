package http

import (
	"encoding/json"
	"net/http"

	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

type EventsHandler struct {
	Hub *events.Hub
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Event Stream
//	@Description	Server-sent event stream of dashboard changes (roster updates,
//	@Description	invitation transitions, intelligence items). Each message is a JSON
//	@Description	event with a kind and payload.
//	@Tags			Events
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"event stream"
//	@Failure		401	{object}	dashsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/events [get].
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cancel := h.Hub.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				log.Warn("failed to encode event", "err", err)
				continue
			}
			if _, err := w.Write([]byte("event: " + ev.Kind + "\ndata: " + string(data) + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
