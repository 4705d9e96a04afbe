package db_test

import (
	"context"
	"testing"

	dbfs "github.com/dev-devfero/talaash/db"
	"github.com/dev-devfero/talaash/internal/db"
)

// Note: this test uses an in-memory sqlite database to validate idempotent
// behavior of Migrate against the embedded migrations.
func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()

	// create in-memory DB
	d, err := db.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	// Run Migrate using the embedded migrations included in package db
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	// Run again to ensure idempotency
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	// verify schema_migrations has at least one entry (embedded migrations applied)
	var count int
	row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan schema_migrations count: %v", err)
	}
	if count < 1 {
		t.Fatalf("expected at least 1 migration recorded, got %d", count)
	}

	// verify the tables from the embedded migrations exist
	for _, table := range []string{"accounts", "job_postings", "cv_records"} {
		var name string
		r := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table)
		if err := r.Scan(&name); err != nil {
			t.Fatalf("expected %s table exists: %v", table, err)
		}
	}
}
