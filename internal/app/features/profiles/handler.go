// internal/app/features/profiles/handler.go

// Package profiles serves the developer profile API: the partial upsert,
// the public directory, experience and education histories, account
// deletion, and the GitHub repo lookup.
package profiles

import (
	"context"

	"github.com/dalemusser/devlink/internal/app/github"
	profilestore "github.com/dalemusser/devlink/internal/app/store/profiles"
	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/dalemusser/devlink/internal/domain/profile"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ProfileStore is the slice of the profiles gateway this feature consumes.
type ProfileStore interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, userID primitive.ObjectID, f profile.UpsertFields) (models.Profile, error)
	AddExperience(ctx context.Context, userID primitive.ObjectID, in profile.ExperienceInput) (models.Profile, error)
	RemoveExperience(ctx context.Context, userID primitive.ObjectID, expID string) (models.Profile, error)
	AddEducation(ctx context.Context, userID primitive.ObjectID, in profile.EducationInput) (models.Profile, error)
	RemoveEducation(ctx context.Context, userID primitive.ObjectID, eduID string) (models.Profile, error)
	DeleteWithUser(ctx context.Context, userID primitive.ObjectID) error
}

// RepoLister fetches a GitHub user's public repositories.
type RepoLister interface {
	ListRepos(ctx context.Context, username string) ([]github.Repo, error)
}

// Handler owns all profile handlers.
type Handler struct {
	Store ProfileStore
	Repos RepoLister
	Log   *zap.Logger
}

// NewHandler constructs a profiles Handler backed by the Mongo store and
// the GitHub API client.
func NewHandler(db *mongo.Database, githubToken string, logger *zap.Logger) *Handler {
	return &Handler{
		Store: profilestore.New(db),
		Repos: github.New(githubToken),
		Log:   logger,
	}
}
