package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/handler/http/response"
	trackingService "github.com/zano-5702/worktime-backend-go/internal/service/tracking"
)

type SignalHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
}

type signalHandlerImpl struct {
	debouncer *trackingService.Debouncer
}

func NewSignalHandler(debouncer *trackingService.Debouncer) SignalHandler {
	return &signalHandlerImpl{
		debouncer: debouncer,
	}
}

// Ingest accepts one raw geofence observation from the location feed. The
// signal is acknowledged immediately; the transition, if any, happens after
// the stabilization delay.
func (h *signalHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	var req tracking.SignalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode signal payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.TimestampMs == 0 {
		req.TimestampMs = time.Now().UnixMilli()
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.debouncer.OnRawValue(r.Context(), req.DeviceKey, req.RawValue(), req.TimestampMs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Accepted(w, "Signal accepted")
}
