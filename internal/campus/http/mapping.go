package http

import (
	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/pkg/campussdk"
)

func toSDKUser(u domain.User) campussdk.User {
	return campussdk.User{
		ID:         u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Role:       u.Role,
		Year:       u.Year,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
	}
}

func toSDKFacultyRequest(fr domain.FacultyRequest) campussdk.FacultyRequest {
	return campussdk.FacultyRequest{
		ID:         fr.ID,
		UserID:     fr.UserID,
		Username:   fr.Username,
		FirstName:  fr.FirstName,
		LastName:   fr.LastName,
		Department: fr.Department,
		Status:     fr.Status,
		ReviewedBy: fr.ReviewedBy,
		ReviewedAt: fr.ReviewedAt,
		CreatedAt:  fr.CreatedAt,
	}
}

func toSDKNotification(n domain.Notification) campussdk.Notification {
	return campussdk.Notification{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		EntityID:  n.EntityID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func toSDKNotice(n domain.Notice) campussdk.Notice {
	return campussdk.Notice{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		AuthorID:   n.AuthorID,
		Department: n.Department,
		CreatedAt:  n.CreatedAt,
	}
}
