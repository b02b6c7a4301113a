package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xxxsen/todod/internal/repo"
)

// OpenTestDB connects to the mongo instance named by TEST_MONGO_URI
// and hands back a dropped-on-cleanup database. Tests that need a real
// store skip when the variable is unset.
func OpenTestDB(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping mongo test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, closer, err := repo.Open(ctx, uri, "todod_test")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := db.Drop(ctx); err != nil {
		t.Fatalf("drop test db: %v", err)
	}
	if err := repo.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return db, func() {
		dropCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(dropCtx)
		closer()
	}
}
