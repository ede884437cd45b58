package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/service"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/httputil"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// ApprovalHandler handles the review workflow endpoints
type ApprovalHandler struct {
	service *service.ApprovalService
	logger  *logger.Logger
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(svc *service.ApprovalService, log *logger.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		service: svc,
		logger:  log,
	}
}

// RejectRequest carries the mandatory rejection reason
type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Pending lists submitted weeks awaiting review
func (h *ApprovalHandler) Pending(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListPending(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, groups)
}

// ApproveWeek approves a submitted week
func (h *ApprovalHandler) ApproveWeek(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.service.ApproveWeek(r.Context(), id, httputil.GetUserID(r.Context()))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, record)
}

// RejectWeek rejects a submitted week
func (h *ApprovalHandler) RejectWeek(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RejectRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	record, err := h.service.RejectWeek(r.Context(), id, httputil.GetUserID(r.Context()), req.Reason)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, record)
}

// ApproveMonth approves one month bucket of a week
func (h *ApprovalHandler) ApproveMonth(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	monthKey := chi.URLParam(r, "monthKey")

	record, err := h.service.ApproveMonth(r.Context(), id, monthKey, httputil.GetUserID(r.Context()))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, record)
}

// RejectMonth rejects one month bucket of a week
func (h *ApprovalHandler) RejectMonth(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	monthKey := chi.URLParam(r, "monthKey")

	var req RejectRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	record, err := h.service.RejectMonth(r.Context(), id, monthKey, httputil.GetUserID(r.Context()), req.Reason)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, record)
}
