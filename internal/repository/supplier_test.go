package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/daydreamers/ops-backend/gen/ent"
)

func newMemClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRollbackKeepsOriginalCause(t *testing.T) {
	ctx := context.Background()
	client := newMemClient(t)
	cause := errors.New("quantity below zero")

	// Plain path: revert succeeds, the cause comes back unchanged.
	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if got := rollback(tx, cause); got != cause {
		t.Fatalf("rollback altered the cause: %v", got)
	}

	// A committed tx cannot be rolled back; the revert failure must be
	// reported without displacing the cause.
	tx, err = client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	got := rollback(tx, cause)
	if !errors.Is(got, cause) {
		t.Fatalf("cause lost: %v", got)
	}
	if got == cause {
		t.Fatal("revert failure not reported alongside the cause")
	}
}
