package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
)

var (
	ErrUIDExists   = errors.New("uid_exists")
	ErrUIDNotFound = errors.New("uid_not_found")
)

// UIDService administers the student registration allow-list.
type UIDService struct {
	Store store.Store
}

// Add inserts an allow-list entry.
func (s *UIDService) Add(ctx context.Context, uid, department, year string) (domain.StudentUID, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return domain.StudentUID{}, ErrInvalidUID
	}
	if !domain.ValidDepartment(department, false) {
		return domain.StudentUID{}, ErrInvalidDepartment
	}
	if !domain.ValidYear(year) {
		return domain.StudentUID{}, ErrInvalidYear
	}

	entry := domain.StudentUID{
		UID:        uid,
		Department: department,
		Year:       year,
		Status:     domain.UIDActive,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Store.StudentUIDs().AddUID(ctx, entry); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.StudentUID{}, ErrUIDExists
		}
		return domain.StudentUID{}, err
	}
	return entry, nil
}

// Deactivate retires an allow-list entry so it can no longer be used to
// register. Identities already bound to it are unaffected.
func (s *UIDService) Deactivate(ctx context.Context, uid string) error {
	err := s.Store.StudentUIDs().DeactivateUID(ctx, strings.TrimSpace(uid))
	if errors.Is(err, store.ErrNotFound) {
		return ErrUIDNotFound
	}
	return err
}
