package sqlite

import (
	"context"

	"github.com/campusconnect/campuscore/internal/campus/domain"
)

type noticesRepo struct {
	db dbtx
}

func (r *noticesRepo) CreateNotice(ctx context.Context, n domain.Notice) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notices (id, title, content, author_id, department, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, n.AuthorID, n.Department, n.CreatedAt)
	return mapConflict(err)
}

func (r *noticesRepo) GetNoticeByID(ctx context.Context, id string) (domain.Notice, error) {
	var n domain.Notice
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, content, author_id, department, created_at
		FROM notices WHERE id = ?`, id).
		Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID, &n.Department, &n.CreatedAt)
	if err != nil {
		return domain.Notice{}, mapNotFound(err)
	}
	return n, nil
}

// ListByDepartment returns a department's feed. Everyone sees the "all"
// scope on top of their own department; asking for "all" returns everything.
func (r *noticesRepo) ListByDepartment(ctx context.Context, department string, limit int) ([]domain.Notice, error) {
	query := `
		SELECT id, title, content, author_id, department, created_at
		FROM notices`
	args := []any{}
	if department != domain.DepartmentAll {
		query += ` WHERE department IN (?, ?)`
		args = append(args, department, domain.DepartmentAll)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []domain.Notice
	for rows.Next() {
		var n domain.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID,
			&n.Department, &n.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}
