package domain

import "time"

// Notice is one published announcement. Department scopes the audience:
// "all" reaches every active identity, anything else only that department.
type Notice struct {
	ID         string
	Title      string
	Content    string
	AuthorID   string
	Department string
	CreatedAt  time.Time
}
