// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a feed post together with its embedded likes and comments.
// The whole document is loaded, mutated, and replaced as one unit; Version
// is the optimistic-concurrency token bumped on every replace.
//
// AuthorName and AuthorAvatar are snapshots of the author's identity record
// taken at creation time. They are intentionally NOT kept in sync with later
// identity changes.
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID     primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorName   string             `bson:"author_name" json:"author_name"`
	AuthorAvatar string             `bson:"author_avatar,omitempty" json:"author_avatar,omitempty"`
	Text         string             `bson:"text" json:"text"`

	// Newest-first: mutations prepend, so Likes[0]/Comments[0] are latest.
	Likes    []Like    `bson:"likes" json:"likes"`
	Comments []Comment `bson:"comments" json:"comments"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Version   int64     `bson:"version" json:"-"`
}

// Like records that a user likes the parent post. At most one entry per
// user id may exist within a post.
type Like struct {
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
}

// Comment is a user comment embedded in a post. ID is unique within the
// parent post and stable across mutations of sibling comments.
type Comment struct {
	ID           string             `bson:"id" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	AuthorName   string             `bson:"author_name" json:"author_name"`
	AuthorAvatar string             `bson:"author_avatar,omitempty" json:"author_avatar,omitempty"`
	Text         string             `bson:"text" json:"text"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// HasLike reports whether userID already has a like entry on the post.
func (p *Post) HasLike(userID primitive.ObjectID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// FindComment returns the comment with the given id, or nil.
func (p *Post) FindComment(id string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i]
		}
	}
	return nil
}
