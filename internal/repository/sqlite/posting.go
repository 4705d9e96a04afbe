package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dev-devfero/talaash/pkg/models"
)

func (r *SQLiteRepo) CreatePosting(ctx context.Context, p *models.JobPosting) error {
	if p == nil {
		return fmt.Errorf("posting is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO job_postings (id, company, position, description, work_location, salary, work_type, poster_email, deadline, created_by, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Company, p.Position, p.Description, p.WorkLocation, p.Salary, p.WorkType, p.PosterEmail, p.Deadline, p.CreatedBy, p.Created)
	return err
}

func (r *SQLiteRepo) ListPostings(ctx context.Context) ([]models.JobPosting, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, company, position, description, work_location, salary, work_type, poster_email, deadline, created_by, created FROM job_postings ORDER BY created DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.JobPosting
	for rows.Next() {
		var p models.JobPosting
		if err := rows.Scan(&p.ID, &p.Company, &p.Position, &p.Description, &p.WorkLocation, &p.Salary, &p.WorkType, &p.PosterEmail, &p.Deadline, &p.CreatedBy, &p.Created); err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

// MaxDeadline returns the maximum deadline across all postings, or "" when
// the table is empty. Deadlines are stored as YYYY-MM-DD text, so MAX is the
// calendar maximum.
func (r *SQLiteRepo) MaxDeadline(ctx context.Context) (string, error) {
	row := r.conn.QueryRow(ctx, `SELECT MAX(deadline) FROM job_postings`)
	var max sql.NullString
	if err := row.Scan(&max); err != nil {
		return "", err
	}
	if !max.Valid {
		return "", nil
	}

	return max.String, nil
}
