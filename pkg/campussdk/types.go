package campussdk

import "time"

// ErrorResponse is the JSON shape of an APIError on the wire. Used by the
// client for unmarshaling.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// RegisterRequest is the registration submission. Role selects the flow:
// "student" requires UID and Year and activates immediately when the
// identifier checks out; "faculty" parks the identity for admin review.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	UID        string `json:"uid,omitempty"`
	Year       string `json:"year,omitempty"`
}

// LoginRequest carries handle and password. The handle matches
// case-insensitively.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest carries the token to exchange. Expired tokens are accepted
// as long as the signature still verifies.
type RefreshRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned by register, login and refresh. Token is empty
// when the identity cannot authenticate yet (pending faculty).
type AuthResponse struct {
	Token string `json:"token,omitempty"`
	User  User   `json:"user"`
}

// User is the public view of an identity. Password material never appears.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Year       string    `json:"year,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// FacultyRequest is one entry of the admin review queue.
type FacultyRequest struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Username   string     `json:"username"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Department string     `json:"department"`
	Status     string     `json:"status"`
	ReviewedBy string     `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// FacultyRequestsResponse wraps the review queue.
type FacultyRequestsResponse struct {
	Requests []FacultyRequest `json:"requests"`
}

// Notification is one inbox record.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	EntityID  string    `json:"entity_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationsResponse wraps the inbox listing.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// CreateNoticeRequest publishes an announcement. Department "all" reaches
// every active identity.
type CreateNoticeRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Department string `json:"department"`
}

// Notice is one published announcement.
type Notice struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// NoticesResponse wraps a department feed, newest first.
type NoticesResponse struct {
	Notices []Notice `json:"notices"`
}

// AddUIDRequest adds one entry to the student registration allow-list.
type AddUIDRequest struct {
	UID        string `json:"uid"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

// StudentUID is one allow-list entry.
type StudentUID struct {
	UID        string    `json:"uid"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// BootstrapRequest creates the very first admin on an empty system. The
// token must match the server's configured bootstrap token.
type BootstrapRequest struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BootstrapResponse returns the new admin's id.
type BootstrapResponse struct {
	AdminID string `json:"admin_id"`
}

// StatusResponse is returned by simple state-changing endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies on readyz.
type HealthChecks struct {
	Database string `json:"database"`
}
