package sqlite

import (
	"time"

	"github.com/dev-devfero/talaash/internal/db"
	"github.com/dev-devfero/talaash/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn *db.DB
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.AccountRepo = (*SQLiteRepo)(nil)
var _ repository.PostingRepo = (*SQLiteRepo)(nil)
var _ repository.CVRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB) *SQLiteRepo {
	return &SQLiteRepo{conn: conn}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
