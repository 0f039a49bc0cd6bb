package http

import (
	"errors"
	"net/http"

	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

// HandleList returns the caller's inbox.
//
//	@Summary		List notifications
//	@Description	Returns the caller's notifications, newest first, capped at 50, along with the unread count.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	campussdk.NotificationsResponse	"Inbox"
//	@Failure		401	{object}	campussdk.ErrorResponse			"Invalid or missing token"
//	@Router			/notifications [get].
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)

	notifications, err := h.NotificationService.List(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list notifications", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}
	unread, err := h.NotificationService.UnreadCount(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to count unread", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]campussdk.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toSDKNotification(n))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, campussdk.NotificationsResponse{
		Notifications: out,
		UnreadCount:   unread,
	})
}

// HandleUnreadCount returns just the unread counter.
//
//	@Summary		Count unread notifications
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	campussdk.NotificationsResponse	"Unread count only"
//	@Failure		401	{object}	campussdk.ErrorResponse			"Invalid or missing token"
//	@Router			/notifications/unread/count [get].
func (h *NotificationsHandler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	unread, err := h.NotificationService.UnreadCount(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to count unread", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, campussdk.NotificationsResponse{UnreadCount: unread})
}

// HandleMarkRead marks one notification read.
//
//	@Summary		Mark a notification read
//	@Description	Flips the read flag on one of the caller's notifications. Notifications belonging to someone else are indistinguishable from missing ones.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Notification id"
//	@Success		200	{object}	campussdk.StatusResponse	"Marked"
//	@Failure		401	{object}	campussdk.ErrorResponse		"Invalid or missing token"
//	@Failure		404	{object}	campussdk.ErrorResponse		"Not found or not owned"
//	@Router			/notifications/{id}/read [put].
func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.NotificationService.MarkRead(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			campussdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to mark notification read", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.StatusResponse{Status: "ok"})
}

// HandleMarkAllRead marks the whole inbox read.
//
//	@Summary		Mark all notifications read
//	@Description	Flips the read flag on every unread notification of the caller. Safe to repeat.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	campussdk.StatusResponse	"Marked"
//	@Failure		401	{object}	campussdk.ErrorResponse		"Invalid or missing token"
//	@Router			/notifications/read-all [put].
func (h *NotificationsHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.NotificationService.MarkAllRead(ctx, httpx.UserIDFromContext(ctx)); err != nil {
		slogx.FromContext(ctx).Error("failed to mark all read", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.StatusResponse{Status: "ok"})
}
