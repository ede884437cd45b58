package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/notify/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/httputil"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

// NotificationHandler handles in-app notification endpoints
type NotificationHandler struct {
	repo   *repository.NotificationRepository
	logger *logger.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(repo *repository.NotificationRepository, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		repo:   repo,
		logger: log,
	}
}

// List lists the authenticated user's notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.repo.ListForRecipient(r.Context(), httputil.GetUserID(r.Context()), unreadOnly)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, notifications)
}

// UnreadCount returns the authenticated user's unread notification count
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.repo.UnreadCount(r.Context(), httputil.GetUserID(r.Context()))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]int64{"unread": count})
}

// MarkRead marks one of the authenticated user's notifications as read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.MarkRead(r.Context(), id, httputil.GetUserID(r.Context())); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}
