package app

import (
	"context"

	"github.com/saradorri/rpsarena/internal/http"
	"github.com/saradorri/rpsarena/internal/http/handlers"
	"github.com/saradorri/rpsarena/internal/http/middleware"
	"github.com/saradorri/rpsarena/internal/infrastructure/auth"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	scoreHandler *handlers.ScoreHandler,
	statsHandler *handlers.StatsHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	db *gorm.DB,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, authHandler, scoreHandler, statsHandler, errorHandler, log, db, port)
}

// registerServer hooks the HTTP server into the fx lifecycle
func registerServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return log.Sync()
		},
	})
}
