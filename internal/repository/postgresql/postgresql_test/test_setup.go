package postgresqltest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/opsboard/kpi-backend-go/internal/pkg/database"
)

var testDB *database.DB

// testInit connects to the test database, skipping the suite when no
// TEST_DATABASE_URL is configured.
func testInit(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres integration tests")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	ensureSchema(t)
}

func ensureSchema(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			team_id UUID NOT NULL,
			matricule INTEGER NOT NULL,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (team_id, matricule)
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_aggregates (
			id UUID PRIMARY KEY,
			team_id UUID NOT NULL,
			category TEXT NOT NULL,
			month_key DATE NOT NULL,
			kpi_value INTEGER NOT NULL,
			monthly_target INTEGER NOT NULL,
			employees JSONB,
			incidents JSONB,
			formulas JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (team_id, category, month_key)
		)`,
	}

	for _, stmt := range statements {
		if _, err := testDB.Exec(ctx, stmt); err != nil {
			t.Fatalf("failed to ensure schema: %v", err)
		}
	}
}

func truncateTables(t *testing.T, ctx context.Context, tables ...string) {
	t.Helper()

	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}
