package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/ghuser/communityhub/pkg/logger"
)

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), "://not a url", logger.Discard())
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewPool_UnreachableHost(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://user:pw@localhost:1/none?sslmode=disable&connect_timeout=1", logger.Discard())
	if err == nil {
		t.Fatal("expected error when Postgres is unreachable, got nil")
	}
}

// Integration tests: skipped unless DEFINITION_DATABASE_URL is set.
func TestDatabaseIntegration(t *testing.T) {
	dsn := os.Getenv("DEFINITION_DATABASE_URL")
	if dsn == "" {
		t.Skip("DEFINITION_DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	d, err := NewPool(ctx, dsn, logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer d.Close()

	t.Run("Ping_Success", func(t *testing.T) {
		if err := d.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("WithTx_RollsBackOnError", func(t *testing.T) {
		sentinel := errors.New("abort")
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "SELECT 1"); err != nil {
				return err
			}
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel error, got %v", err)
		}
	})

	t.Run("WithTx_Commits", func(t *testing.T) {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, "SELECT 1")
			return err
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
