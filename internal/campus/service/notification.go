package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
	"github.com/campusconnect/campuscore/pkg/idx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

var ErrNotificationNotFound = errors.New("notification_not_found")

// DefaultListLimit caps how many notifications a single list call returns.
const DefaultListLimit = 50

// NotificationService fans events out to per-recipient inbox records and
// serves each recipient's inbox.
type NotificationService struct {
	Store store.Store
}

// Fanout describes one event to deliver to an audience.
type Fanout struct {
	Department string // "all" reaches every active identity
	Title      string
	Message    string
	Type       string
	EntityID   string
}

// NotifyAudience materialises one inbox record per active member of the
// department. An empty audience is a no-op. Errors are returned so the caller
// can decide whether delivery failure matters; for notices it does not.
func (s *NotificationService) NotifyAudience(ctx context.Context, f Fanout) (int, error) {
	l := slogx.FromContext(ctx)

	recipients, err := s.Store.Users().ListActiveByDepartment(ctx, f.Department)
	if err != nil {
		return 0, err
	}
	if len(recipients) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	batch := make([]domain.Notification, 0, len(recipients))
	for _, r := range recipients {
		batch = append(batch, domain.Notification{
			ID:          idx.New().String(),
			RecipientID: r.ID,
			Title:       f.Title,
			Message:     f.Message,
			Type:        f.Type,
			EntityID:    f.EntityID,
			CreatedAt:   now,
		})
	}

	if err := s.Store.Notifications().CreateBatch(ctx, batch); err != nil {
		return 0, err
	}

	l.Debug("notifications fanned out",
		slog.String("department", f.Department),
		slog.String("type", f.Type),
		slog.Int("recipients", len(batch)),
	)
	return len(batch), nil
}

// List returns the recipient's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	return s.Store.Notifications().ListByRecipient(ctx, recipientID, DefaultListLimit)
}

// UnreadCount returns how many notifications the recipient has not read yet.
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.Store.Notifications().CountUnread(ctx, recipientID)
}

// MarkRead marks one notification read. Asking for a notification that does
// not exist and for one that belongs to someone else are indistinguishable.
func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	err := s.Store.Notifications().MarkRead(ctx, id, recipientID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

// MarkAllRead marks the recipient's whole inbox read. Idempotent.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.Store.Notifications().MarkAllRead(ctx, recipientID)
}
