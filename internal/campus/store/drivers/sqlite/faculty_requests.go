package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
)

type facultyRequestsRepo struct {
	db dbtx
}

const facultyRequestColumns = `id, user_id, username, first_name, last_name,
	department, status, reviewed_by, reviewed_at, created_at, updated_at`

func (r *facultyRequestsRepo) CreateRequest(ctx context.Context, fr domain.FacultyRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO faculty_requests (id, user_id, username, first_name,
			last_name, department, status, reviewed_by, reviewed_at,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fr.ID, fr.UserID, fr.Username, fr.FirstName, fr.LastName,
		fr.Department, fr.Status, mapStringNull(fr.ReviewedBy), fr.ReviewedAt,
		fr.CreatedAt, fr.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *facultyRequestsRepo) GetRequestByID(ctx context.Context, id string) (domain.FacultyRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+facultyRequestColumns+` FROM faculty_requests WHERE id = ?`, id)
	return scanFacultyRequest(row)
}

func (r *facultyRequestsRepo) GetRequestByUsername(ctx context.Context, username string) (domain.FacultyRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+facultyRequestColumns+` FROM faculty_requests WHERE username = ?`, username)
	return scanFacultyRequest(row)
}

func (r *facultyRequestsRepo) ListRequests(ctx context.Context) ([]domain.FacultyRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+facultyRequestColumns+` FROM faculty_requests
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.FacultyRequest
	for rows.Next() {
		var fr domain.FacultyRequest
		var reviewedBy sql.NullString
		var reviewedAt sql.NullTime
		if err := rows.Scan(&fr.ID, &fr.UserID, &fr.Username, &fr.FirstName,
			&fr.LastName, &fr.Department, &fr.Status, &reviewedBy,
			&reviewedAt, &fr.CreatedAt, &fr.UpdatedAt); err != nil {
			return nil, err
		}
		fr.ReviewedBy = mapNullString(reviewedBy)
		if reviewedAt.Valid {
			t := reviewedAt.Time
			fr.ReviewedAt = &t
		}
		requests = append(requests, fr)
	}
	return requests, rows.Err()
}

// SetDecision only touches a row that is still pending, which makes the
// pending -> decided transition atomic at the database level. A request that
// was already decided matches zero rows and surfaces as ErrNotFound.
func (r *facultyRequestsRepo) SetDecision(ctx context.Context, id, status, reviewedBy string, reviewedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE faculty_requests
		SET status = ?, reviewed_by = ?, reviewed_at = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		status, reviewedBy, reviewedAt, reviewedAt, id, domain.RequestPending)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func scanFacultyRequest(row *sql.Row) (domain.FacultyRequest, error) {
	var fr domain.FacultyRequest
	var reviewedBy sql.NullString
	var reviewedAt sql.NullTime
	err := row.Scan(&fr.ID, &fr.UserID, &fr.Username, &fr.FirstName,
		&fr.LastName, &fr.Department, &fr.Status, &reviewedBy, &reviewedAt,
		&fr.CreatedAt, &fr.UpdatedAt)
	if err != nil {
		return domain.FacultyRequest{}, mapNotFound(err)
	}
	fr.ReviewedBy = mapNullString(reviewedBy)
	if reviewedAt.Valid {
		t := reviewedAt.Time
		fr.ReviewedAt = &t
	}
	return fr, nil
}
