package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dev-devfero/talaash/pkg/models"
)

// CreateCV stores the résumé fields as a single JSON document next to the
// PDF payload so the record round-trips exactly as it was saved.
func (r *SQLiteRepo) CreateCV(ctx context.Context, c *models.CVRecord) error {
	if c == nil {
		return fmt.Errorf("cv record is nil")
	}

	if c.Created == 0 {
		c.Created = now()
	}
	fields, err := marshalCVFields(c)
	if err != nil {
		return fmt.Errorf("marshal cv fields: %w", err)
	}

	_, err = r.conn.Exec(ctx, `INSERT INTO cv_records (id, user_id, fields_json, pdf_base64, created) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, fields, c.PDFBase64, c.Created)
	return err
}

func (r *SQLiteRepo) LatestByUser(ctx context.Context, userID string) (*models.CVRecord, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, fields_json, pdf_base64, created FROM cv_records WHERE user_id = ? ORDER BY created DESC, rowid DESC LIMIT 1`, userID)

	var (
		id, uid, fields string
		pdf             sql.NullString
		created         int64
	)
	if err := row.Scan(&id, &uid, &fields, &pdf, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	var c models.CVRecord
	if err := json.Unmarshal([]byte(fields), &c); err != nil {
		return nil, fmt.Errorf("unmarshal cv fields: %w", err)
	}
	c.ID = id
	c.UserID = uid
	c.Created = created
	if pdf.Valid {
		c.PDFBase64 = pdf.String
	}

	return &c, nil
}

// marshalCVFields serializes the résumé document without the columns stored
// separately (id, user_id, pdf_base64, created).
func marshalCVFields(c *models.CVRecord) (string, error) {
	doc := *c
	doc.ID = ""
	doc.UserID = ""
	doc.PDFBase64 = ""
	doc.Created = 0

	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
