package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test identity record with the given name.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     name,
		FullNameCI:   text.Fold(name),
		Email:        email,
		PasswordHash: "$2a$10$test-not-a-real-hash",
		Avatar:       "https://gravatar.com/avatar/test",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreatePost creates a post authored by the given user.
func (f *Fixtures) CreatePost(ctx context.Context, author models.User, postText string) models.Post {
	f.t.Helper()

	p := models.Post{
		ID:           primitive.NewObjectID(),
		AuthorID:     author.ID,
		AuthorName:   author.FullName,
		AuthorAvatar: author.Avatar,
		Text:         postText,
		Likes:        []models.Like{},
		Comments:     []models.Comment{},
		CreatedAt:    time.Now().UTC(),
		Version:      1,
	}

	if _, err := f.db.Collection("posts").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	return p
}

// CreateProfile creates a minimal profile owned by the given user.
func (f *Fixtures) CreateProfile(ctx context.Context, owner models.User, status string, skills []string) models.Profile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Profile{
		ID:         primitive.NewObjectID(),
		UserID:     owner.ID,
		Status:     status,
		Skills:     skills,
		Experience: []models.Experience{},
		Education:  []models.Education{},
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}

	if _, err := f.db.Collection("profiles").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}
