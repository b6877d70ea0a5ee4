// internal/app/store/posts/poststore.go

// Package poststore is the persistence gateway for the Post aggregate.
// Every mutation is a read-modify-write: load the whole document, apply a
// pure engine mutation, and replace the document guarded by its version
// field. A concurrent writer bumps the version first, the replace matches
// nothing, and the loop retries from a fresh read.
package poststore

import (
	"context"
	"errors"

	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/dalemusser/devlink/internal/domain/post"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// casAttempts bounds the read-modify-write retry loop. Exhaustion maps to
// the persistence error kind.
const casAttempts = 5

type Store struct {
	c      *mongo.Collection
	engine post.Engine
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts"), engine: post.NewEngine()}
}

// NewWithEngine lets tests pin the engine's clock and id source.
func NewWithEngine(db *mongo.Database, e post.Engine) *Store {
	return &Store{c: db.Collection("posts"), engine: e}
}

// Create inserts a new post authored by the given identity.
func (s *Store) Create(ctx context.Context, author post.Identity, text string) (models.Post, error) {
	p, err := s.engine.New(author, text)
	if err != nil {
		return models.Post{}, err
	}
	p.ID = primitive.NewObjectID()
	p.Version = 1
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, apperr.Persistence("insert post", err)
	}
	return p, nil
}

// GetByID loads a post by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var p models.Post
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Post{}, apperr.NotFound("post not found")
		}
		return models.Post{}, apperr.Persistence("load post", err)
	}
	return p, nil
}

// List returns posts newest-first. A zero afterID starts from the top;
// otherwise results continue strictly after that id. limit <= 0 means no
// limit.
func (s *Store) List(ctx context.Context, afterID primitive.ObjectID, limit int64) ([]models.Post, error) {
	filter := bson.M{}
	if !afterID.IsZero() {
		filter["_id"] = bson.M{"$lt": afterID}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Persistence("list posts", err)
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, apperr.Persistence("decode posts", err)
	}
	return posts, nil
}

// Delete removes the post if requesterID is its author.
func (s *Store) Delete(ctx context.Context, id, requesterID primitive.ObjectID) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.engine.AuthorizeDelete(p, requesterID); err != nil {
		return err
	}
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperr.Persistence("delete post", err)
	}
	return nil
}

// Like appends a like for userID, rejecting duplicates.
func (s *Store) Like(ctx context.Context, id, userID primitive.ObjectID) (models.Post, error) {
	return s.mutate(ctx, id, func(p models.Post) (models.Post, error) {
		return s.engine.Like(p, userID)
	})
}

// Unlike removes userID's like, rejecting unlike-without-like.
func (s *Store) Unlike(ctx context.Context, id, userID primitive.ObjectID) (models.Post, error) {
	return s.mutate(ctx, id, func(p models.Post) (models.Post, error) {
		return s.engine.Unlike(p, userID)
	})
}

// AddComment prepends a comment authored by the given identity.
func (s *Store) AddComment(ctx context.Context, id primitive.ObjectID, author post.Identity, text string) (models.Post, error) {
	return s.mutate(ctx, id, func(p models.Post) (models.Post, error) {
		p, _, err := s.engine.AddComment(p, author, text)
		return p, err
	})
}

// RemoveComment removes userID's own comment by id.
func (s *Store) RemoveComment(ctx context.Context, id, userID primitive.ObjectID, commentID string) (models.Post, error) {
	return s.mutate(ctx, id, func(p models.Post) (models.Post, error) {
		return s.engine.RemoveComment(p, userID, commentID)
	})
}

// mutate runs the load → apply → compare-and-swap loop. The replace filter
// matches both _id and the version read, so a lost race leaves the document
// untouched and the loop retries on fresh state. Domain rejections from
// apply abort immediately; only version conflicts retry.
func (s *Store) mutate(ctx context.Context, id primitive.ObjectID, apply func(models.Post) (models.Post, error)) (models.Post, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		p, err := s.GetByID(ctx, id)
		if err != nil {
			return models.Post{}, err
		}

		next, err := apply(p)
		if err != nil {
			return models.Post{}, err
		}

		readVersion := p.Version
		next.Version = readVersion + 1

		res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id, "version": readVersion}, next)
		if err != nil {
			return models.Post{}, apperr.Persistence("save post", err)
		}
		if res.MatchedCount == 1 {
			return next, nil
		}
		// Version moved under us; go around.
	}
	return models.Post{}, apperr.Persistence("post update conflict not resolved", nil)
}
