package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rpsarena/internal/http/handlers"
	"github.com/saradorri/rpsarena/internal/http/middleware"
	"github.com/saradorri/rpsarena/internal/infrastructure/auth"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	jwtService   auth.JWTService
	authHandler  *handlers.AuthHandler
	scoreHandler *handlers.ScoreHandler
	statsHandler *handlers.StatsHandler
	errorHandler *middleware.ErrorHandler
	db           *gorm.DB
	port         string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	scoreHandler *handlers.ScoreHandler,
	statsHandler *handlers.StatsHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	db *gorm.DB,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:       router,
		jwtService:   jwtService,
		authHandler:  authHandler,
		scoreHandler: scoreHandler,
		statsHandler: statsHandler,
		errorHandler: errorHandler,
		db:           db,
		port:         port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Rock Paper Scissors API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"POST /api/auth/signup": "Register account",
				"POST /api/auth/login":  "Log in",
				"POST /api/scores":      "Save player score",
				"GET /api/leaderboard":  "Get leaderboard",
				"GET /api/player/:id":   "Get player stats",
				"GET /api/stats":        "Get global stats",
			},
		})
	})

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	s.router.GET("/health/db", s.dbHealth)

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", s.authHandler.Signup)
			authRoutes.POST("/login", s.authHandler.Login)
		}

		scores := api.Group("/scores")
		scores.Use(middleware.JWTMiddleware(s.jwtService))
		{
			scores.POST("", s.scoreHandler.Save)
		}

		api.GET("/leaderboard", s.statsHandler.Leaderboard)
		api.GET("/player/name/:name", s.statsHandler.PlayerByName)
		api.GET("/player/:id", s.statsHandler.PlayerByID)
		api.GET("/stats", s.statsHandler.GlobalStats)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})
}

// dbHealth reports database connectivity. The server keeps running in a
// degraded state when the database is down.
func (s *Server) dbHealth(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DEGRADED", "connected": false})
		return
	}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DEGRADED", "connected": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "connected": true})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
