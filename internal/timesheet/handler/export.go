package handler

import (
	"fmt"
	"net/http"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/service"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/httputil"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles workbook download endpoints
type ExportHandler struct {
	service *service.ExportService
	logger  *logger.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(svc *service.ExportService, log *logger.Logger) *ExportHandler {
	return &ExportHandler{
		service: svc,
		logger:  log,
	}
}

// Projects serves the per-project workbook for one month
func (h *ExportHandler) Projects(w http.ResponseWriter, r *http.Request) {
	monthKey, err := parseMonthQuery(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	buf, filename, err := h.service.ProjectsExport(r.Context(), monthKey, httputil.GetUserID(r.Context()))
	if err != nil {
		h.logger.Error().Err(err).Str("month", monthKey).Msg("failed to generate projects export")
		httputil.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.Write(buf.Bytes())
}

// Users serves the per-user workbook for an inclusive date range
func (h *ExportHandler) Users(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRangeQuery(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	buf, filename, err := h.service.UsersExport(r.Context(), start, end, httputil.GetUserID(r.Context()))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to generate users export")
		httputil.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.Write(buf.Bytes())
}
