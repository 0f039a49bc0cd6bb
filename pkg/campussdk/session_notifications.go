package campussdk

import (
	"context"
	"net/http"
)

// ListNotifications returns the caller's inbox, newest first, together with
// the unread count.
func (s *Session) ListNotifications(ctx context.Context) (*NotificationsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/notifications", nil, nil)
	if err != nil {
		return nil, err
	}

	var inbox NotificationsResponse
	if err := decodeJSON(resp, &inbox, http.StatusOK); err != nil {
		return nil, err
	}

	return &inbox, nil
}

// UnreadCount returns just the caller's unread counter.
func (s *Session) UnreadCount(ctx context.Context) (int, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/notifications/unread/count", nil, nil)
	if err != nil {
		return 0, err
	}

	var out NotificationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return 0, err
	}

	return out.UnreadCount, nil
}

// MarkNotificationRead marks one of the caller's notifications read. A
// notification belonging to someone else reads as not found.
func (s *Session) MarkNotificationRead(ctx context.Context, notificationID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/notifications/"+notificationID+"/read", nil, nil)
	if err != nil {
		return err
	}

	var status StatusResponse
	return decodeJSON(resp, &status, http.StatusOK)
}

// MarkAllNotificationsRead marks the caller's whole inbox read. Safe to
// repeat.
func (s *Session) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
	if err != nil {
		return err
	}

	var status StatusResponse
	return decodeJSON(resp, &status, http.StatusOK)
}
