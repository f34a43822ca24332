// Package main RPS Arena API
//
// RPS Arena is the backend for a casual rock-paper-scissors game: accounts,
// score saves and a leaderboard over persisted player aggregates. Gameplay
// itself runs client-side; the server folds reported batches into cumulative
// player statistics and projects read-only views over them.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/saradorri/rpsarena/docs"
	"github.com/saradorri/rpsarena/internal/app"
)

// @title RPS Arena API Service
// @version 1.0
// @description Backend for a casual rock-paper-scissors game: accounts, score saves and a leaderboard.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
