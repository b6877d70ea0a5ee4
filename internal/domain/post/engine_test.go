package post

import (
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testEngine returns an engine with a fixed clock and sequential ids so
// assertions are deterministic.
func testEngine() Engine {
	n := 0
	return Engine{
		Now: func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		},
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func author() Identity {
	return Identity{ID: primitive.NewObjectID(), Name: "Ada Lovelace", Avatar: "https://example.com/a.png"}
}

func TestNew(t *testing.T) {
	e := testEngine()
	a := author()

	p, err := e.New(a, "first post")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.AuthorID != a.ID {
		t.Errorf("AuthorID: got %v, want %v", p.AuthorID, a.ID)
	}
	if p.AuthorName != a.Name || p.AuthorAvatar != a.Avatar {
		t.Errorf("author snapshot not copied: %q %q", p.AuthorName, p.AuthorAvatar)
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if len(p.Likes) != 0 || len(p.Comments) != 0 {
		t.Error("expected empty likes and comments")
	}
}

func TestNew_EmptyText(t *testing.T) {
	e := testEngine()

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := e.New(author(), text); apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("New(%q): expected validation error, got %v", text, err)
		}
	}
}

func TestLike_SecondLikeConflicts(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	u := primitive.NewObjectID()

	p, err := e.Like(p, u)
	if err != nil {
		t.Fatalf("first Like failed: %v", err)
	}

	same, err := e.Like(p, u)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict on second like, got %v", err)
	}
	if count := likeCount(same, u); count != 1 {
		t.Errorf("likes for user: got %d, want 1", count)
	}
}

func TestLike_Ordering(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	u1, u2 := primitive.NewObjectID(), primitive.NewObjectID()

	p, _ = e.Like(p, u1)
	p, _ = e.Like(p, u2)

	// Most recent first.
	if p.Likes[0].UserID != u2 || p.Likes[1].UserID != u1 {
		t.Errorf("likes not in most-recent-first order: %v", p.Likes)
	}
}

func TestUnlike_WithoutLike(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	u := primitive.NewObjectID()

	got, err := e.Unlike(p, u)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(got.Likes) != len(p.Likes) {
		t.Error("state changed on rejected unlike")
	}
}

func TestUnlike_PreservesOrder(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	u1, u2, u3 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	p, _ = e.Like(p, u1)
	p, _ = e.Like(p, u2)
	p, _ = e.Like(p, u3)

	p, err := e.Unlike(p, u2)
	if err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if len(p.Likes) != 2 || p.Likes[0].UserID != u3 || p.Likes[1].UserID != u1 {
		t.Errorf("remaining likes out of order: %v", p.Likes)
	}
}

func TestLikeUnlikeLike_Roundtrip(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	u := primitive.NewObjectID()

	var err error
	if p, err = e.Like(p, u); err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if p, err = e.Unlike(p, u); err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if p, err = e.Like(p, u); err != nil {
		t.Fatalf("re-Like failed: %v", err)
	}
	if count := likeCount(p, u); count != 1 {
		t.Errorf("likes for user after roundtrip: got %d, want 1", count)
	}
}

func TestAddComment(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	commenter := Identity{ID: primitive.NewObjectID(), Name: "Grace Hopper"}

	p, first, err := e.AddComment(p, commenter, "nice")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	p, second, err := e.AddComment(p, commenter, "very nice")
	if err != nil {
		t.Fatalf("second AddComment failed: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("comment ids not distinct: %q", first.ID)
	}
	if len(p.Comments) != 2 {
		t.Fatalf("comments: got %d, want 2", len(p.Comments))
	}
	// Latest first.
	if p.Comments[0].ID != second.ID || p.Comments[1].ID != first.ID {
		t.Error("comments not in most-recent-first order")
	}
	if p.Comments[0].AuthorName != "Grace Hopper" {
		t.Errorf("comment author snapshot: got %q", p.Comments[0].AuthorName)
	}
	if p.Comments[0].CreatedAt.IsZero() {
		t.Error("expected comment CreatedAt to be set")
	}
}

func TestAddComment_EmptyText(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")

	_, _, err := e.AddComment(p, author(), "  ")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRemoveComment_OwnershipPerComment(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	owner := Identity{ID: primitive.NewObjectID(), Name: "Owner"}
	other := primitive.NewObjectID()

	p, c, _ := e.AddComment(p, owner, "mine")

	got, err := e.RemoveComment(p, other, c.ID)
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if len(got.Comments) != 1 {
		t.Error("comments changed on rejected removal")
	}

	got, err = e.RemoveComment(p, owner.ID, c.ID)
	if err != nil {
		t.Fatalf("owner removal failed: %v", err)
	}
	if len(got.Comments) != 0 {
		t.Errorf("comments after removal: got %d, want 0", len(got.Comments))
	}
}

func TestRemoveComment_Missing(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")

	_, err := e.RemoveComment(p, primitive.NewObjectID(), "no-such-id")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestRemoveComment_PreservesSiblings(t *testing.T) {
	e := testEngine()
	p, _ := e.New(author(), "hello")
	u := Identity{ID: primitive.NewObjectID()}

	p, c1, _ := e.AddComment(p, u, "one")
	p, c2, _ := e.AddComment(p, u, "two")
	p, c3, _ := e.AddComment(p, u, "three")

	p, err := e.RemoveComment(p, u.ID, c2.ID)
	if err != nil {
		t.Fatalf("RemoveComment failed: %v", err)
	}
	if len(p.Comments) != 2 || p.Comments[0].ID != c3.ID || p.Comments[1].ID != c1.ID {
		t.Errorf("sibling order not preserved: %v", p.Comments)
	}
}

func TestAuthorizeDelete(t *testing.T) {
	e := testEngine()
	a := author()
	p, _ := e.New(a, "hello")

	if err := e.AuthorizeDelete(p, primitive.NewObjectID()); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("expected unauthorized for non-author, got %v", err)
	}
	if err := e.AuthorizeDelete(p, a.ID); err != nil {
		t.Errorf("author delete rejected: %v", err)
	}
}

func likeCount(p models.Post, u primitive.ObjectID) int {
	n := 0
	for _, l := range p.Likes {
		if l.UserID == u {
			n++
		}
	}
	return n
}
