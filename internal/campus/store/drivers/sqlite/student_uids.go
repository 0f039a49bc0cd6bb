package sqlite

import (
	"context"

	"github.com/campusconnect/campuscore/internal/campus/domain"
)

type studentUIDsRepo struct {
	db dbtx
}

func (r *studentUIDsRepo) AddUID(ctx context.Context, u domain.StudentUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO student_uids (uid, department, year, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.UID, u.Department, u.Year, u.Status, u.CreatedAt)
	return mapConflict(err)
}

func (r *studentUIDsRepo) GetUID(ctx context.Context, uid string) (domain.StudentUID, error) {
	var u domain.StudentUID
	err := r.db.QueryRowContext(ctx, `
		SELECT uid, department, year, status, created_at
		FROM student_uids WHERE uid = ?`, uid).
		Scan(&u.UID, &u.Department, &u.Year, &u.Status, &u.CreatedAt)
	if err != nil {
		return domain.StudentUID{}, mapNotFound(err)
	}
	return u, nil
}

func (r *studentUIDsRepo) DeactivateUID(ctx context.Context, uid string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE student_uids SET status = ? WHERE uid = ?`,
		domain.UIDInactive, uid)
	if err != nil {
		return err
	}
	return requireRows(res)
}
