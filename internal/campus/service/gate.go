package service

import "github.com/campusconnect/campuscore/internal/campus/domain"

// Action names a privileged operation for the authorization gate.
type Action string

const (
	ActionCreatePost           Action = "create_post"
	ActionCreateNotice         Action = "create_notice"
	ActionManageFacultyRequest Action = "manage_faculty_requests"
	ActionManageUIDs           Action = "manage_uids"
	ActionEditResource         Action = "edit_or_delete_resource"
)

// DeveloperHandle is reserved for the dev-login bypass identity and can never
// be registered.
const DeveloperHandle = "dev"

// CanPerform is the single authorization gate. ownerID is the id of the
// resource owner for ownership-scoped actions; pass "" otherwise.
//
// The rules are deliberately small:
//   - admins can do everything
//   - faculty can publish notices and posts
//   - students can publish posts
//   - everyone can edit or delete their own resources, admins anyone's
//
// A non-approved identity can do nothing at all.
func CanPerform(u domain.User, action Action, ownerID string) bool {
	if !u.IsApproved() {
		return false
	}
	if u.Role == domain.RoleAdmin {
		return true
	}

	switch action {
	case ActionCreatePost:
		return u.Role == domain.RoleStudent || u.Role == domain.RoleFaculty
	case ActionCreateNotice:
		return u.Role == domain.RoleFaculty
	case ActionManageFacultyRequest, ActionManageUIDs:
		return false
	case ActionEditResource:
		return ownerID != "" && u.ID == ownerID
	default:
		return false
	}
}
