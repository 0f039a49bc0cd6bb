package domain

import "time"

// Roles an identity can hold. The synthetic developer identity used by the
// dev-login bypass also reports RoleAdmin.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// Approval statuses. Students are active from creation; faculty start pending
// and are moved by an admin decision. Rejected identities can never log in.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

// DepartmentAll is the administrative scope covering every department. It is
// valid on admin identities and as a notice/notification audience filter,
// never on students or faculty.
const DepartmentAll = "all"

// Departments lists the college's departments.
var Departments = []string{"aiml", "comp", "extc", "elect", "civil", "mech"}

// Years of study for student identities.
var Years = []string{"FE", "SE", "TE", "BE", "NA"}

// User is one registered person: student, faculty or admin.
type User struct {
	ID           string
	Username     string // stored as typed, matched case-insensitively
	PasswordHash string // argon2id PHC string
	FirstName    string
	LastName     string
	Department   string
	Role         string
	UID          string // college-issued student identifier; empty for non-students
	Year         string // student year of study; empty for non-students
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsApproved reports whether the identity may authenticate and act.
func (u User) IsApproved() bool { return u.Status == StatusActive }

// ValidDepartment reports whether dept names a real department.
// allowAll additionally accepts the administrative "all" scope.
func ValidDepartment(dept string, allowAll bool) bool {
	if allowAll && dept == DepartmentAll {
		return true
	}
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// ValidYear reports whether year names a valid year of study.
func ValidYear(year string) bool {
	for _, y := range Years {
		if y == year {
			return true
		}
	}
	return false
}
