package domain

import "time"

// Faculty request statuses. A request moves pending -> approved or
// pending -> rejected exactly once; the decision also mutates the
// corresponding User's role and status.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// FacultyRequest is one pending promotion from registered user to approved
// faculty. The requester's public fields are denormalized so the review list
// renders without joining back to users.
type FacultyRequest struct {
	ID         string
	UserID     string
	Username   string
	FirstName  string
	LastName   string
	Department string
	Status     string
	ReviewedBy string // admin identity id; empty while pending
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
