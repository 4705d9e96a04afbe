package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dev-devfero/talaash/pkg/models"
)

func (r *SQLiteRepo) CreateAccount(ctx context.Context, a *models.Account) error {
	if a == nil {
		return fmt.Errorf("account is nil")
	}

	if a.Created == 0 {
		a.Created = now()
	}
	_, err := r.conn.Exec(ctx, `INSERT INTO accounts (id, name, email, password_hash, created) VALUES (?, ?, ?, ?, ?)`, a.ID, a.Name, a.Email, a.PasswordHash, a.Created)
	return err
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, created FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *SQLiteRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, created FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	var pw sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &pw, &a.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		a.PasswordHash = pw.String
	}

	return &a, nil
}
