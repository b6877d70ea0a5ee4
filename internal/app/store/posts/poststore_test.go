package poststore_test

import (
	"sync"
	"testing"

	poststore "github.com/dalemusser/devlink/internal/app/store/posts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/post"
	"github.com/dalemusser/devlink/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func identity(name string) post.Identity {
	return post.Identity{ID: primitive.NewObjectID(), Name: name}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := identity("Ada Lovelace")
	created, err := store.Create(ctx, author, "hello world")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.AuthorName != "Ada Lovelace" {
		t.Errorf("AuthorName: got %q", created.AuthorName)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	loaded, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded.Text != "hello world" {
		t.Errorf("Text: got %q", loaded.Text)
	}
	if loaded.Likes == nil || loaded.Comments == nil {
		t.Error("expected likes and comments to round-trip as empty slices")
	}
}

func TestStore_Create_EmptyText(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, identity("Ada"), "   "); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStore_GetByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestStore_List_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := identity("Ada")
	for _, text := range []string{"first", "second", "third"} {
		if _, err := store.Create(ctx, author, text); err != nil {
			t.Fatalf("Create(%q) failed: %v", text, err)
		}
	}

	posts, err := store.List(ctx, primitive.NilObjectID, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("posts: got %d, want 3", len(posts))
	}
	if posts[0].Text != "third" || posts[2].Text != "first" {
		t.Errorf("feed not newest-first: %q %q %q", posts[0].Text, posts[1].Text, posts[2].Text)
	}
}

func TestStore_List_Paged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := identity("Ada")
	for _, text := range []string{"a", "b", "c", "d"} {
		if _, err := store.Create(ctx, author, text); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	page1, err := store.List(ctx, primitive.NilObjectID, 2)
	if err != nil {
		t.Fatalf("List page 1 failed: %v", err)
	}
	if len(page1) != 2 {
		t.Fatalf("page 1: got %d posts", len(page1))
	}

	page2, err := store.List(ctx, page1[len(page1)-1].ID, 2)
	if err != nil {
		t.Fatalf("List page 2 failed: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("page 2: got %d posts", len(page2))
	}
	if page2[0].ID == page1[0].ID || page2[0].ID == page1[1].ID {
		t.Error("page 2 overlaps page 1")
	}
}

func TestStore_Like_DuplicateRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p, err := store.Create(ctx, identity("Ada"), "like me")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	u := primitive.NewObjectID()

	if _, err := store.Like(ctx, p.ID, u); err != nil {
		t.Fatalf("first Like failed: %v", err)
	}
	if _, err := store.Like(ctx, p.ID, u); apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict on second like, got %v", err)
	}

	loaded, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(loaded.Likes) != 1 {
		t.Errorf("likes: got %d, want 1", len(loaded.Likes))
	}
}

func TestStore_Like_ConcurrentDistinctUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p, err := store.Create(ctx, identity("Ada"), "popular")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	const users = 8
	var wg sync.WaitGroup
	errs := make([]error, users)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Like(ctx, p.ID, primitive.NewObjectID())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Like %d failed: %v", i, err)
		}
	}

	loaded, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(loaded.Likes) != users {
		t.Errorf("likes after concurrent writes: got %d, want %d (lost update)", len(loaded.Likes), users)
	}
}

func TestStore_Unlike_WithoutLike(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p, err := store.Create(ctx, identity("Ada"), "never liked")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Unlike(ctx, p.ID, primitive.NewObjectID()); apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestStore_Comments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p, err := store.Create(ctx, identity("Ada"), "discuss")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	commenter := identity("Grace")

	withOne, err := store.AddComment(ctx, p.ID, commenter, "first!")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	withTwo, err := store.AddComment(ctx, p.ID, commenter, "second!")
	if err != nil {
		t.Fatalf("second AddComment failed: %v", err)
	}
	if len(withTwo.Comments) != 2 || withTwo.Comments[0].Text != "second!" {
		t.Errorf("comments not newest-first: %v", withTwo.Comments)
	}

	// Someone else cannot remove Grace's comment.
	target := withOne.Comments[0].ID
	if _, err := store.RemoveComment(ctx, p.ID, primitive.NewObjectID(), target); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	// Grace can.
	after, err := store.RemoveComment(ctx, p.ID, commenter.ID, target)
	if err != nil {
		t.Fatalf("RemoveComment failed: %v", err)
	}
	if len(after.Comments) != 1 || after.Comments[0].Text != "second!" {
		t.Errorf("comments after removal: %v", after.Comments)
	}

	// Unknown comment id.
	if _, err := store.RemoveComment(ctx, p.ID, commenter.ID, "nope"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestStore_Delete_AuthorOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := identity("Ada")
	p, err := store.Create(ctx, author, "mine")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, p.ID, primitive.NewObjectID()); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err := store.Delete(ctx, p.ID, author.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, p.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("post still present after delete: %v", err)
	}
}
