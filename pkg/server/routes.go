package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/zorgdesk/zorgcmd/internal"
	"github.com/zorgdesk/zorgcmd/pkg/auth"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	if appState.Config.Server.MaxRequestSize > 0 {
		router.Use(middleware.RequestSize(appState.Config.Server.MaxRequestSize))
	}
	router.Use(middleware.Heartbeat("/healthz"))

	if appState.Config.Auth.Required {
		log.Info("JWT authentication required")
		router.Use(auth.JWTVerifier(appState.Config))
		router.Use(jwtauth.Authenticator)
	}

	if appState.Config.RateLimit.Enabled && appState.Config.RateLimit.RequestsPerMinute > 0 {
		router.Use(RateLimit(NewCacheRateLimitStore(), appState.Config.RateLimit.RequestsPerMinute))
	}

	router.Route("/api/v1", func(r chi.Router) {
		// Command classification routes
		r.Post("/classify", ClassifyHandler(appState))
		r.Get("/history", GetHistoryHandler(appState))
		// Schedule-related routes
		r.Get("/schedule", GetScheduleHandler(appState))
		// Conversational action routes
		r.Post("/chat/actions", ParseChatActionsHandler(appState))
	})

	return router
}
