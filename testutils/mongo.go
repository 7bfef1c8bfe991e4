package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"levelup/config"

	"go.mongodb.org/mongo-driver/mongo"
)

// SetupTestDB connects to the MongoDB named by TEST_MONGO_URI and returns a
// scratch database plus a cleanup that drops it. Tests are skipped when the
// variable is unset.
func SetupTestDB(t *testing.T) (*mongo.Database, func()) {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping MongoDB integration test")
	}

	cfg := config.LoadDatabaseConfig()
	cfg.URI = uri
	cfg.DatabaseName = "levelup_test"
	cfg.MinPoolSize = 0

	client, err := cfg.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	db := client.Database(cfg.DatabaseName)

	cleanup := func() {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := db.Drop(ctx); err != nil {
			t.Logf("Warning: Failed to drop test database %s: %v", cfg.DatabaseName, err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: Failed to disconnect: %v", err)
		}
	}

	return db, cleanup
}
