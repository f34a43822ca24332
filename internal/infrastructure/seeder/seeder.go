package seeder

import (
	"fmt"
	"time"

	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/infrastructure/auth"
)

// Seeder populates the database with development fixtures
type Seeder struct {
	playerRepo domain.PlayerRepository
}

// NewSeeder creates a new seeder
func NewSeeder(playerRepo domain.PlayerRepository) *Seeder {
	return &Seeder{playerRepo: playerRepo}
}

type seedPlayer struct {
	email      string
	playerName string
	password   string
	totalGames int
	totalWins  int
	streak     int
	maxStreak  int
	bestScore  int
}

var seedPlayers = []seedPlayer{
	{email: "ada@example.com", playerName: "Ada", password: "password123", totalGames: 60, totalWins: 34, streak: 3, maxStreak: 9, bestScore: 21},
	{email: "grace@example.com", playerName: "Grace", password: "password123", totalGames: 42, totalWins: 18, streak: 0, maxStreak: 5, bestScore: 14},
	{email: "linus@example.com", playerName: "Linus", password: "password123", totalGames: 25, totalWins: 11, streak: 1, maxStreak: 4, bestScore: 8},
	{email: "casual@example.com", playerName: "Casual", totalGames: 5, totalWins: 1, maxStreak: 1, bestScore: 1},
}

// Seed creates the fixture players, skipping any email that already exists
func (s *Seeder) Seed() error {
	for _, sp := range seedPlayers {
		existing, err := s.playerRepo.GetByEmail(sp.email)
		if err != nil {
			return fmt.Errorf("failed to check existing player %s: %w", sp.email, err)
		}
		if existing != nil {
			fmt.Printf("Player %s already exists, skipping\n", sp.email)
			continue
		}

		player := &domain.Player{
			Email:         sp.email,
			PlayerName:    sp.playerName,
			TotalGames:    sp.totalGames,
			TotalWins:     sp.totalWins,
			CurrentStreak: sp.streak,
			MaxStreak:     sp.maxStreak,
			BestScore:     sp.bestScore,
			LastPlayed:    time.Now(),
		}
		if sp.password != "" {
			hash, err := auth.HashPassword(sp.password)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", sp.email, err)
			}
			player.PasswordHash = hash
		}

		if err := s.playerRepo.Create(player); err != nil {
			return fmt.Errorf("failed to create player %s: %w", sp.email, err)
		}
		fmt.Printf("Created player %s (%s)\n", sp.playerName, sp.email)
	}
	return nil
}
