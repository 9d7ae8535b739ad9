package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zano-5702/worktime-backend-go/internal/handler/http/response"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/sse"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/validator"
)

type EventHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	hub *sse.Hub
}

func NewEventHandler(hub *sse.Hub) EventHandler {
	return &eventHandlerImpl{
		hub: hub,
	}
}

// Stream handles the SSE connection for live session events of one employee.
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	employeeKey := r.URL.Query().Get("employee")
	if validator.IsEmpty(employeeKey) {
		response.BadRequest(w, "employee query parameter is required", nil)
		return
	}

	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(employeeKey)
	defer cleanup()

	// Send initial connection event
	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"employee\":%q}\n\n", employeeKey)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			// Send keepalive ping
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
