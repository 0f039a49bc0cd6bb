package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
)

type notificationsRepo struct {
	db dbtx
}

// CreateBatch inserts every record in one multi-row INSERT. SQLite has a
// bound-parameter ceiling of 32k so very large audiences are chunked.
const notificationBatchSize = 500

func (r *notificationsRepo) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	for start := 0; start < len(ns); start += notificationBatchSize {
		end := min(start+notificationBatchSize, len(ns))
		if err := r.insertChunk(ctx, ns[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *notificationsRepo) insertChunk(ctx context.Context, ns []domain.Notification) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO notifications
		(id, recipient_id, title, message, type, entity_id, read, created_at)
		VALUES `)

	args := make([]any, 0, len(ns)*8)
	for i, n := range ns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args, n.ID, n.RecipientID, n.Title, n.Message, n.Type,
			mapStringNull(n.EntityID), n.Read, n.CreatedAt)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return mapConflict(err)
}

func (r *notificationsRepo) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recipient_id, title, message, type, entity_id, read, created_at
		FROM notifications
		WHERE recipient_id = ?
		ORDER BY created_at DESC
		LIMIT ?`, recipientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var entityID sql.NullString
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Title, &n.Message,
			&n.Type, &entityID, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.EntityID = mapNullString(entityID)
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationsRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = ? AND read = 0`,
		recipientID).Scan(&count)
	return count, err
}

// MarkRead is scoped to the recipient so one user can never flip another
// user's notification. A foreign id and a non-owned id both come back as
// ErrNotFound.
func (r *notificationsRepo) MarkRead(ctx context.Context, id, recipientID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ? AND recipient_id = ?`,
		id, recipientID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *notificationsRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE recipient_id = ? AND read = 0`,
		recipientID)
	return err
}

func (r *notificationsRepo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE read = 1 AND created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
