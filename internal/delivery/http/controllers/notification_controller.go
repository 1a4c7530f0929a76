package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

// GetUserNotifications godoc
// @Summary Derive notifications for a user's active future events
// @Description Classifies every active future event the user attends into a reminder (starts within 24h) or upcoming notification. Nothing is persisted; an empty set returns 200 with an empty list.
// @Tags notifications
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains user_id, total_notifications, notifications"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (store unavailable)"
// @Router /social/notifications/user/{userID} [get]
func (c *NotificationController) GetUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "userID")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid userID")
		return
	}

	// The evaluation instant is captured once per request and threaded through
	// every classification.
	result, err := c.Service.UserNotifications(r.Context(), userID, time.Now())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// GetRemindersDue godoc
// @Summary Sweep events starting within 24 hours with their attendee contacts
// @Description Intended for periodic invocation by an external scheduler. Read-only; groups attendance rows per event with attendee contact records.
// @Tags notifications
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains total_events and events_needing_reminders"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (store unavailable)"
// @Router /social/notifications/reminders [get]
func (c *NotificationController) GetRemindersDue(w http.ResponseWriter, r *http.Request) {
	result, err := c.Service.RemindersDue(r.Context(), time.Now())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
