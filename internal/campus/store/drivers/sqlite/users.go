package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, password_hash, first_name, last_name,
	department, role, uid, year, status, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	// username is COLLATE NOCASE, so the comparison is case-insensitive.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, first_name, last_name,
			department, role, uid, year, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.FirstName, u.LastName,
		u.Department, u.Role, mapStringNull(u.UID), mapStringNull(u.Year),
		u.Status, u.CreatedAt, u.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdateStatus(ctx context.Context, userID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *usersRepo) UpdateRoleAndStatus(ctx context.Context, userID, role, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET role = ?, status = ?, updated_at = ? WHERE id = ?`,
		role, status, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *usersRepo) ListActiveByDepartment(ctx context.Context, department string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE status = ?`
	args := []any{domain.StatusActive}
	if department != domain.DepartmentAll {
		query += ` AND department = ?`
		args = append(args, department)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var uid, year sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.Department, &u.Role, &uid, &year, &u.Status,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.UID = mapNullString(uid)
	u.Year = mapNullString(year)
	return u, nil
}

func scanUserRows(rows *sql.Rows) (domain.User, error) {
	var u domain.User
	var uid, year sql.NullString
	err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.Department, &u.Role, &uid, &year, &u.Status,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.UID = mapNullString(uid)
	u.Year = mapNullString(year)
	return u, nil
}

// requireRows converts a zero-row UPDATE into ErrNotFound.
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
