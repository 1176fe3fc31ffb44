package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"accountease/internal/core/apperror"
	"accountease/internal/domain/reports"
	"accountease/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles report generation and the shared filter state.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
	filters *reports.FilterState
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service, filters *reports.FilterState) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
		filters:     filters,
	}
}

// Generate handles GET /reports/:type
// The report covers the shared filter's current range.
func (h *ReportsHandler) Generate(c *gin.Context) {
	typ, err := reports.ParseType(c.Param("type"))
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.Generate(c.Request.Context(), typ, h.filters.Current())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// GenerateBatch handles POST /reports/generate
// All report types are generated concurrently; a failed type surfaces in
// the errors map without sinking the rest of the batch.
func (h *ReportsHandler) GenerateBatch(c *gin.Context) {
	var req dto.GenerateRequest
	if c.Request.ContentLength > 0 && !h.BindJSON(c, &req) {
		return
	}

	filter := h.filters.Current()
	if req.Filter != nil {
		resolved, err := resolveFilter(*req.Filter)
		if err != nil {
			h.Error(c, err)
			return
		}
		filter = resolved
	}

	batch, err := h.service.GenerateBatch(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromBatch(batch))
}

// GetFilter handles GET /reports/filter
func (h *ReportsHandler) GetFilter(c *gin.Context) {
	h.OK(c, h.filters.Current())
}

// SetFilter handles PUT /reports/filter
// Named timeframes are resolved server-side; custom ranges carry their
// dates verbatim.
func (h *ReportsHandler) SetFilter(c *gin.Context) {
	var req dto.FilterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tf, err := reports.ParseTimeframe(req.Timeframe)
	if err != nil {
		h.Error(c, err)
		return
	}

	var filter reports.Filter
	if tf == reports.TimeframeCustom {
		if req.StartDate == nil || req.EndDate == nil {
			h.Error(c, apperror.NewInvalidArgument("custom timeframe requires startDate and endDate"))
			return
		}
		filter, err = h.filters.SetCustomRange(*req.StartDate, *req.EndDate)
	} else {
		filter, err = h.filters.SetTimeframe(tf)
	}
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, filter)
}

// resolveFilter builds a one-off filter without touching the shared state.
func resolveFilter(req dto.FilterRequest) (reports.Filter, error) {
	tf, err := reports.ParseTimeframe(req.Timeframe)
	if err != nil {
		return reports.Filter{}, err
	}

	if tf == reports.TimeframeCustom {
		if req.StartDate == nil || req.EndDate == nil {
			return reports.Filter{}, apperror.NewInvalidArgument("custom timeframe requires startDate and endDate")
		}
		if req.StartDate.After(*req.EndDate) {
			return reports.Filter{}, apperror.NewInvalidArgument("startDate is after endDate")
		}
		return reports.Filter{Timeframe: tf, Start: *req.StartDate, End: *req.EndDate}, nil
	}

	start, end := reports.ResolveTimeframe(tf, time.Now())
	return reports.Filter{Timeframe: tf, Start: start, End: end}, nil
}
