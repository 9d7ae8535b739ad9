package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zano-5702/worktime-backend-go/internal/handler/http/response"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/validator"
	aggregateService "github.com/zano-5702/worktime-backend-go/internal/service/aggregate"
)

type AggregateHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type aggregateHandlerImpl struct {
	aggregateService *aggregateService.Service
}

func NewAggregateHandler(svc *aggregateService.Service) AggregateHandler {
	return &aggregateHandlerImpl{
		aggregateService: svc,
	}
}

// Get returns the bucket totals of one employee, optionally filtered by
// period kind.
func (h *aggregateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeKey := chi.URLParam(r, "employeeKey")
	if validator.IsEmpty(employeeKey) {
		response.BadRequest(w, "employeeKey is required", nil)
		return
	}

	period := r.URL.Query().Get("period")
	if period != "" && !validator.IsInSlice(period, aggregateService.Periods) {
		response.BadRequest(w, "period must be one of day, week, month, year", nil)
		return
	}

	buckets, err := h.aggregateService.Buckets(r.Context(), employeeKey, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, buckets)
}
