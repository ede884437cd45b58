package handler

import (
	"net/http"
	"time"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/service"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/httputil"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	service *service.ReportService
	logger  *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc *service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: svc,
		logger:  log,
	}
}

// Range reports aggregated hours over an inclusive date range
func (h *ReportHandler) Range(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRangeQuery(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	report, err := h.service.Range(r.Context(), start, end)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, report)
}

// Utilization reports per-project utilization for one month
func (h *ReportHandler) Utilization(w http.ResponseWriter, r *http.Request) {
	monthKey, err := parseMonthQuery(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	utilizations, err := h.service.Utilization(r.Context(), monthKey)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, utilizations)
}

// Users reports per-user totals for one month
func (h *ReportHandler) Users(w http.ResponseWriter, r *http.Request) {
	monthKey, err := parseMonthQuery(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	summaries, err := h.service.UserSummaries(r.Context(), monthKey)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, summaries)
}

func parseRangeQuery(r *http.Request) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("start query parameter must be formatted YYYY-MM-DD")
	}

	end, err = time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("end query parameter must be formatted YYYY-MM-DD")
	}

	return start, end, nil
}
