package store

import (
	"context"
	"errors"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	FacultyRequests() FacultyRequests
	Notifications() Notifications
	Notices() Notices
	StudentUIDs() StudentUIDs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. This is the recommended way to run
	// multi-step writes (e.g. registration plus its faculty request).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername matches the handle case-insensitively.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists on a duplicate username or a duplicate UID.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateStatus sets the approval status and bumps updated_at.
	UpdateStatus(ctx context.Context, userID, status string) error

	// UpdateRoleAndStatus applies an approval decision in one write.
	UpdateRoleAndStatus(ctx context.Context, userID, role, status string) error

	// ListActiveByDepartment returns id-only user rows with status=active.
	// Department "all" matches every department.
	ListActiveByDepartment(ctx context.Context, department string) ([]domain.User, error)

	// IsEmpty returns true if there are no users (bootstrap check).
	IsEmpty(ctx context.Context) (bool, error)
}

type FacultyRequests interface {
	// CreateRequest inserts a new pending request.
	CreateRequest(ctx context.Context, r domain.FacultyRequest) error

	// GetRequestByID returns a request by id.
	GetRequestByID(ctx context.Context, id string) (domain.FacultyRequest, error)

	// GetRequestByUsername returns the request for a handle, matched
	// case-insensitively. Used for the at-most-one-request existence check.
	GetRequestByUsername(ctx context.Context, username string) (domain.FacultyRequest, error)

	// ListRequests returns all requests, newest first.
	ListRequests(ctx context.Context) ([]domain.FacultyRequest, error)

	// SetDecision records a review outcome on a still-pending request.
	// Returns ErrNotFound if the request does not exist or was already
	// decided; callers distinguish the two by loading the request first.
	SetDecision(ctx context.Context, id, status, reviewedBy string, reviewedAt time.Time) error
}

type Notifications interface {
	// CreateBatch inserts all records in a single batch. An empty batch is
	// a no-op, not an error.
	CreateBatch(ctx context.Context, ns []domain.Notification) error

	// ListByRecipient returns the recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications for a recipient.
	CountUnread(ctx context.Context, recipientID string) (int, error)

	// MarkRead flips the read flag on one notification, only if it belongs
	// to the given recipient. Returns ErrNotFound otherwise.
	MarkRead(ctx context.Context, id, recipientID string) error

	// MarkAllRead flips the read flag on every unread notification of the
	// recipient. Idempotent.
	MarkAllRead(ctx context.Context, recipientID string) error

	// DeleteReadBefore removes read notifications created before the cutoff
	// (housekeeping). Returns the number of rows removed.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Notices interface {
	// CreateNotice inserts a new notice.
	CreateNotice(ctx context.Context, n domain.Notice) error

	// GetNoticeByID returns a notice by id.
	GetNoticeByID(ctx context.Context, id string) (domain.Notice, error)

	// ListByDepartment returns notices for a department plus the "all"
	// scope, newest first. Department "all" returns everything.
	ListByDepartment(ctx context.Context, department string, limit int) ([]domain.Notice, error)
}

type StudentUIDs interface {
	// AddUID inserts an allow-list entry. Returns ErrAlreadyExists on a
	// duplicate identifier.
	AddUID(ctx context.Context, u domain.StudentUID) error

	// GetUID returns an allow-list entry by identifier.
	GetUID(ctx context.Context, uid string) (domain.StudentUID, error)

	// DeactivateUID marks an identifier inactive so it can no longer be
	// used to register. Returns ErrNotFound for unknown identifiers.
	DeactivateUID(ctx context.Context, uid string) error
}
