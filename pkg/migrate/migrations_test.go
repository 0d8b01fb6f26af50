package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nmoralesv/shopdesk-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestOrdersMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_orders_table.sql")

	checks := []string{
		"CREATE TYPE order_status AS ENUM ('active', 'completed', 'cancelled')",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
		"total_amount numeric(12,2)",
		"CREATE INDEX IF NOT EXISTS idx_orders_seller_created_at",
		"CREATE INDEX IF NOT EXISTS idx_orders_seller_status",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSellersMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_sellers_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS sellers",
		"profile_complete boolean NOT NULL DEFAULT false",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_sellers_email",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestProductsMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"price numeric(12,2)",
		"CREATE INDEX IF NOT EXISTS idx_products_seller_is_active",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
