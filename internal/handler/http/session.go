package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/handler/http/response"
)

type SessionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SetDescription(w http.ResponseWriter, r *http.Request)
	WorkLog(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	trackingService tracking.Service
}

func NewSessionHandler(trackingService tracking.Service) SessionHandler {
	return &sessionHandlerImpl{
		trackingService: trackingService,
	}
}

// List implements SessionHandler.
func (h *sessionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.trackingService.ActiveSessions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sessions)
}

// SetDescription implements SessionHandler.
func (h *sessionHandlerImpl) SetDescription(w http.ResponseWriter, r *http.Request) {
	deviceKey := chi.URLParam(r, "deviceKey")

	var req tracking.WorkDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.trackingService.SetWorkDescription(r.Context(), deviceKey, req.Description); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work description updated", nil)
}

// WorkLog implements SessionHandler.
func (h *sessionHandlerImpl) WorkLog(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 1000 {
			response.BadRequest(w, "limit must be an integer between 1 and 1000", nil)
			return
		}
		limit = parsed
	}

	entries, err := h.trackingService.WorkLog(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}
