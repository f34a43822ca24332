package app

import (
	"github.com/saradorri/rpsarena/internal/config"
	"github.com/saradorri/rpsarena/internal/infrastructure/database"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InitDatabase opens the database connection pool. In production an
// unavailable database does not abort startup: the service comes up degraded
// and requests fail until the database returns.
func (a *application) InitDatabase(log *logger.Logger) (*gorm.DB, error) {
	dbConfig := &database.Config{
		Host:            a.config.Database.Host,
		Port:            a.config.Database.Port,
		User:            a.config.Database.User,
		Password:        a.config.Database.Password,
		Name:            a.config.Database.Name,
		SSLMode:         a.config.Database.SSLMode,
		MaxIdleConns:    a.config.Database.MaxIdleConns,
		MaxOpenConns:    a.config.Database.MaxOpenConns,
		ConnMaxLifetime: a.config.Database.ConnMaxLifetime,
	}
	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		if config.GetEnvironment() == "production" {
			log.Warn("database unavailable, continuing without connection", zap.Error(err))
			return nil, nil
		}
		return nil, err
	}
	return db.GetDB(), nil
}
