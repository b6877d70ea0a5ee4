// internal/app/features/auth/handler.go

// Package auth serves registration, login, logout, and the current-user
// lookup. Identity travels in a signed session cookie; handlers downstream
// read it from request context.
package auth

import (
	"context"

	userstore "github.com/dalemusser/devlink/internal/app/store/users"
	sysauth "github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/dalemusser/devlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserStore is the slice of the users gateway this feature consumes.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
}

// Handler owns the auth handlers.
type Handler struct {
	Users      UserStore
	SessionMgr *sysauth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs an auth Handler backed by the Mongo user store.
func NewHandler(db *mongo.Database, sessionMgr *sysauth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      userstore.New(db),
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}
