package indexes_test

import (
	"testing"

	"github.com/dalemusser/devlink/internal/app/system/indexes"
	"github.com/dalemusser/devlink/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesExpectedIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"users":    {"uniq_email"},
		"profiles": {"uniq_user_id"},
		"posts":    {"feed_created_at", "by_author"},
	}

	for coll, wanted := range expected {
		cur, err := db.Collection(coll).Indexes().List(ctx)
		if err != nil {
			t.Fatalf("List %s indexes failed: %v", coll, err)
		}

		names := make(map[string]bool)
		for cur.Next(ctx) {
			var idx bson.M
			if err := cur.Decode(&idx); err != nil {
				continue
			}
			if name, ok := idx["name"].(string); ok {
				names[name] = true
			}
		}
		_ = cur.Close(ctx)

		for _, name := range wanted {
			if !names[name] {
				t.Errorf("expected index %q to exist on %s collection", name, coll)
			}
		}
	}
}

func TestEnsureAll_UniqueEmailEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := db.Collection("users").InsertOne(ctx, bson.M{"email": "dup@test.com"})
	if err != nil {
		t.Fatalf("Insert user failed: %v", err)
	}

	_, err = db.Collection("users").InsertOne(ctx, bson.M{"email": "dup@test.com"})
	if err == nil {
		t.Error("expected duplicate key error for unique index on users.email")
	}
}

func TestEnsureAll_UniqueProfileOwnerEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := db.Collection("profiles").InsertOne(ctx, bson.M{"user_id": "u1"})
	if err != nil {
		t.Fatalf("Insert profile failed: %v", err)
	}

	_, err = db.Collection("profiles").InsertOne(ctx, bson.M{"user_id": "u1"})
	if err == nil {
		t.Error("expected duplicate key error for unique index on profiles.user_id")
	}
}
