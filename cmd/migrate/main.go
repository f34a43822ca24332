// Schema migration runner. Applies the SQL pairs under migrations/ against
// the configured postgres database.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/viper"

	"github.com/saradorri/rpsarena/internal/config"
)

func main() {
	var (
		configPath     = flag.String("config", "./config", "Path to config directory")
		env            = flag.String("env", config.GetEnvironment(), "Environment (development, production)")
		migrationsPath = flag.String("path", "./migrations", "Path to migration files")
		action         = flag.String("action", "up", "Migration action: up, down")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := checkMigrationsPath(*migrationsPath); err != nil {
		log.Fatalf("%v", err)
	}

	m, err := migrate.New(
		fmt.Sprintf("file://%s", *migrationsPath),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.Name,
			cfg.Database.SSLMode,
		),
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}
	defer m.Close()

	switch *action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate up: %v", err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate down: %v", err)
		}
		fmt.Println("Migrations rolled back")
	default:
		log.Fatalf("Unknown action: %s. Valid actions: up, down", *action)
	}
}

// loadConfig loads configuration from file
func loadConfig(configPath, env string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &cfg, nil
}

// checkMigrationsPath verifies the migrations directory holds SQL files
func checkMigrationsPath(migrationsPath string) error {
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsPath)
	}

	return nil
}
