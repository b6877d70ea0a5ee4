// internal/domain/post/engine.go

// Package post holds the pure mutation rules for the Post aggregate:
// like/unlike toggling, comment authorship, and delete authorization.
// Every function takes the current aggregate state plus a command and
// returns the new state or a typed rejection; nothing here touches storage.
package post

import (
	"strings"
	"time"

	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is the denormalized author snapshot copied into posts and
// comments at creation time. Later changes to the identity record do not
// propagate back into existing posts.
type Identity struct {
	ID     primitive.ObjectID
	Name   string
	Avatar string
}

// Engine applies post mutations. Now and NewID are injectable so tests can
// pin timestamps and entry ids.
type Engine struct {
	Now   func() time.Time
	NewID func() string
}

// NewEngine returns an Engine with the wall clock and UUID entry ids.
func NewEngine() Engine {
	return Engine{Now: time.Now, NewID: uuid.NewString}
}

// New builds a fresh post for the given author.
func (e Engine) New(author Identity, text string) (models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return models.Post{}, apperr.Validation("text is required")
	}
	return models.Post{
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         text,
		Likes:        []models.Like{},
		Comments:     []models.Comment{},
		CreatedAt:    e.Now().UTC(),
	}, nil
}

// Like prepends a like entry for userID. A second like by the same user is
// rejected, never duplicated.
func (e Engine) Like(p models.Post, userID primitive.ObjectID) (models.Post, error) {
	if p.HasLike(userID) {
		return p, apperr.Conflict("already liked")
	}
	p.Likes = append([]models.Like{{UserID: userID}}, p.Likes...)
	return p, nil
}

// Unlike removes userID's like entry, preserving the order of the rest.
// Unliking a post that was never liked is a conflict, not a no-op.
func (e Engine) Unlike(p models.Post, userID primitive.ObjectID) (models.Post, error) {
	if !p.HasLike(userID) {
		return p, apperr.Conflict("not liked")
	}
	kept := make([]models.Like, 0, len(p.Likes)-1)
	for _, l := range p.Likes {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	p.Likes = kept
	return p, nil
}

// AddComment prepends a new comment authored by the given identity and
// returns the updated post together with the created comment.
func (e Engine) AddComment(p models.Post, author Identity, text string) (models.Post, models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return p, models.Comment{}, apperr.Validation("text is required")
	}
	c := models.Comment{
		ID:           e.NewID(),
		UserID:       author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         text,
		CreatedAt:    e.Now().UTC(),
	}
	p.Comments = append([]models.Comment{c}, p.Comments...)
	return p, c, nil
}

// RemoveComment removes the comment with commentID. Ownership is checked
// against the comment's author, not the post's: users may only remove their
// own comments.
func (e Engine) RemoveComment(p models.Post, userID primitive.ObjectID, commentID string) (models.Post, error) {
	c := p.FindComment(commentID)
	if c == nil {
		return p, apperr.NotFound("comment does not exist")
	}
	if c.UserID != userID {
		return p, apperr.Unauthorized("user not authorized")
	}
	kept := make([]models.Comment, 0, len(p.Comments)-1)
	for _, existing := range p.Comments {
		if existing.ID != commentID {
			kept = append(kept, existing)
		}
	}
	p.Comments = kept
	return p, nil
}

// AuthorizeDelete checks that requesterID owns the post. Only the author
// may delete a post.
func (e Engine) AuthorizeDelete(p models.Post, requesterID primitive.ObjectID) error {
	if p.AuthorID != requesterID {
		return apperr.Unauthorized("user not authorized")
	}
	return nil
}
