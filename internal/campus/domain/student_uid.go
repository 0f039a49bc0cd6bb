package domain

import "time"

// StudentUID statuses within the registration allow-list.
const (
	UIDActive   = "active"
	UIDInactive = "inactive"
)

// StudentUID is one entry of the registration allow-list: a college-issued
// identifier a student must present to register. An identifier may be bound
// to at most one identity, ever.
type StudentUID struct {
	UID        string
	Department string
	Year       string
	Status     string
	CreatedAt  time.Time
}
