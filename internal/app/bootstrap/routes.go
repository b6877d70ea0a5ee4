// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/devlink/internal/app/features/auth"
	healthfeature "github.com/dalemusser/devlink/internal/app/features/health"
	postsfeature "github.com/dalemusser/devlink/internal/app/features/posts"
	profilesfeature "github.com/dalemusser/devlink/internal/app/features/profiles"
	"github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The router carries the session
// middleware globally so every handler can read the current user from
// request context, then mounts the health endpoint and the three API
// areas: auth, posts, and profiles.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Registration and sessions
	authHandler := authfeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	r.Route("/api/auth", authHandler.MountRoutes)

	// Post feed
	postsHandler := postsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/api/posts", postsHandler.MountRoutes)

	// Developer profiles
	profilesHandler := profilesfeature.NewHandler(deps.MongoDatabase, appCfg.GithubToken, logger)
	r.Route("/api/profile", profilesHandler.MountRoutes)

	return r, nil
}
