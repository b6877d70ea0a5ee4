// internal/app/features/posts/handler.go
package posts

import (
	"context"

	poststore "github.com/dalemusser/devlink/internal/app/store/posts"
	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/dalemusser/devlink/internal/domain/post"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PostStore is the slice of the posts gateway this feature consumes.
type PostStore interface {
	Create(ctx context.Context, author post.Identity, text string) (models.Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	List(ctx context.Context, afterID primitive.ObjectID, limit int64) ([]models.Post, error)
	Delete(ctx context.Context, id, requesterID primitive.ObjectID) error
	Like(ctx context.Context, id, userID primitive.ObjectID) (models.Post, error)
	Unlike(ctx context.Context, id, userID primitive.ObjectID) (models.Post, error)
	AddComment(ctx context.Context, id primitive.ObjectID, author post.Identity, text string) (models.Post, error)
	RemoveComment(ctx context.Context, id, userID primitive.ObjectID, commentID string) (models.Post, error)
}

// Handler owns all post feed handlers.
type Handler struct {
	Store PostStore
	Log   *zap.Logger
}

// NewHandler constructs a posts Handler backed by the Mongo store.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: poststore.New(db),
		Log:   logger,
	}
}
