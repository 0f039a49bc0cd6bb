package domain

import "time"

// Notification event types.
const (
	NotificationNotice  = "notice"
	NotificationPost    = "post"
	NotificationComment = "comment"
	NotificationSystem  = "system"
)

// Notification is one undelivered-or-read message for one recipient. Records
// are immutable except for the read flag, which only ever moves false -> true.
type Notification struct {
	ID          string
	RecipientID string
	Title       string
	Message     string
	Type        string
	EntityID    string // related entity (e.g. notice id); may be empty
	Read        bool
	CreatedAt   time.Time
}
