package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/service"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/httputil"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// TimesheetHandler handles weekly hour entry endpoints
type TimesheetHandler struct {
	service *service.TimesheetService
	logger  *logger.Logger
}

// NewTimesheetHandler creates a new timesheet handler
func NewTimesheetHandler(svc *service.TimesheetService, log *logger.Logger) *TimesheetHandler {
	return &TimesheetHandler{
		service: svc,
		logger:  log,
	}
}

// SaveWeekRequest is the request body for saving a week of hours
type SaveWeekRequest struct {
	ProjectID  string  `json:"project_id" validate:"required,uuid"`
	Year       int     `json:"year" validate:"required,gte=2000,lte=2100"`
	WeekNumber int     `json:"week_number" validate:"required,gte=1,lte=53"`
	Monday     float64 `json:"monday" validate:"gte=0,lte=24,halfhour"`
	Tuesday    float64 `json:"tuesday" validate:"gte=0,lte=24,halfhour"`
	Wednesday  float64 `json:"wednesday" validate:"gte=0,lte=24,halfhour"`
	Thursday   float64 `json:"thursday" validate:"gte=0,lte=24,halfhour"`
	Friday     float64 `json:"friday" validate:"gte=0,lte=24,halfhour"`
	Submit     bool    `json:"submit"`
}

// SaveWeek stores a week of hours for the authenticated user
func (h *TimesheetHandler) SaveWeek(w http.ResponseWriter, r *http.Request) {
	var req SaveWeekRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	record, err := h.service.SaveWeek(r.Context(), httputil.GetUserID(r.Context()), service.SaveWeekInput{
		ProjectID:  req.ProjectID,
		Year:       req.Year,
		WeekNumber: req.WeekNumber,
		Hours: domain.DayHours{
			Monday:    req.Monday,
			Tuesday:   req.Tuesday,
			Wednesday: req.Wednesday,
			Thursday:  req.Thursday,
			Friday:    req.Friday,
		},
		Submit: req.Submit,
	})
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, record)
}

// GetWeek lists the authenticated user's records for one week
func (h *TimesheetHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	year, week, err := parseWeekQuery(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	records, err := h.service.GetWeek(r.Context(), httputil.GetUserID(r.Context()), year, week)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, records)
}

// GetMonth builds the authenticated user's view of one calendar month
func (h *TimesheetHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	monthKey, err := parseMonthQuery(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	view, err := h.service.GetMonth(r.Context(), httputil.GetUserID(r.Context()), monthKey)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, view)
}

func parseWeekQuery(r *http.Request) (year, week int, err error) {
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, errors.BadRequest("year query parameter is required")
	}

	week, err = strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 || week > 53 {
		return 0, 0, errors.BadRequest("week query parameter must be between 1 and 53")
	}

	return year, week, nil
}

func parseMonthQuery(r *http.Request) (string, error) {
	monthKey := r.URL.Query().Get("month")
	if _, err := time.Parse("2006-01", monthKey); err != nil {
		return "", errors.BadRequest("month query parameter must be formatted YYYY-MM")
	}
	return monthKey, nil
}
