package app

import (
	"github.com/saradorri/rpsarena/internal/config"
	"github.com/saradorri/rpsarena/internal/http/middleware"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log, config.GetEnvironment())
}
