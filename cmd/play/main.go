// Terminal client for RPS Arena. Plays rock-paper-scissors against a random
// opponent, keeps a local snapshot of the running score on disk, and can push
// the totals to the API once logged in.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saradorri/rpsarena/internal/client"
	"github.com/saradorri/rpsarena/internal/domain"
)

const revealDelay = 600 * time.Millisecond

// snapshot is the locally persisted game state
type snapshot struct {
	UserScore     int                `json:"userScore"`
	CompScore     int                `json:"compScore"`
	TotalGames    int                `json:"totalGames"`
	TotalWins     int                `json:"totalWins"`
	CurrentStreak int                `json:"currentStreak"`
	MaxStreak     int                `json:"maxStreak"`
	GameHistory   domain.GameHistory `json:"gameHistory"`
	PlayerName    string             `json:"playerName"`
	IsLoggedIn    bool               `json:"isLoggedIn"`
	JWTToken      string             `json:"jwtToken"`
}

func (s *snapshot) winRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return math.Round(float64(s.TotalWins)/float64(s.TotalGames)*100*100) / 100
}

func (s *snapshot) record(result domain.Outcome, user, comp domain.Move, now time.Time) {
	s.TotalGames++
	switch result {
	case domain.OutcomeWin:
		s.UserScore++
		s.TotalWins++
		s.CurrentStreak++
		s.MaxStreak = max(s.MaxStreak, s.CurrentStreak)
	case domain.OutcomeLose:
		s.CompScore++
		s.CurrentStreak = 0
	}
	s.GameHistory = s.GameHistory.Append(domain.GameRecord{
		UserChoice: user,
		CompChoice: comp,
		Result:     result,
		Timestamp:  now,
	})
}

func (s *snapshot) reset() {
	s.UserScore = 0
	s.CompScore = 0
	s.TotalGames = 0
	s.TotalWins = 0
	s.CurrentStreak = 0
	s.MaxStreak = 0
	s.GameHistory = nil
}

func loadSnapshot(path string) *snapshot {
	s := &snapshot{}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, s); err != nil {
		fmt.Fprintf(os.Stderr, "warning: snapshot unreadable, starting fresh: %v\n", err)
		return &snapshot{}
	}
	return s
}

func saveSnapshot(path string, s *snapshot) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
	}
}

func defaultSnapshotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rpsarena.json"
	}
	return filepath.Join(home, ".rpsarena", "state.json")
}

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "API base URL")
	statePath := flag.String("state", defaultSnapshotPath(), "path of the local state file")
	flag.Parse()

	api := client.New(*serverURL)
	state := loadSnapshot(*statePath)
	if state.JWTToken != "" {
		api.SetToken(state.JWTToken)
	}

	fmt.Println("RPS Arena")
	if state.IsLoggedIn && state.PlayerName != "" {
		fmt.Printf("Welcome back, %s!\n", state.PlayerName)
	}
	fmt.Println(`Type "help" for commands.`)

	// playing guards against overlapping games while the reveal delay runs;
	// input is read synchronously so it only trips on queued move lines.
	playing := false

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])

		switch cmd {
		case "r", "rock":
			playRound(state, domain.MoveRock, &playing)
		case "p", "paper":
			playRound(state, domain.MovePaper, &playing)
		case "s", "scissors":
			playRound(state, domain.MoveScissors, &playing)
		case "score":
			printScore(state)
		case "reset":
			state.reset()
			fmt.Println("Scores reset.")
		case "signup":
			doSignup(api, state, fields[1:])
		case "login":
			doLogin(api, state, fields[1:])
		case "logout":
			state.IsLoggedIn = false
			state.JWTToken = ""
			api.SetToken("")
			fmt.Println("Logged out.")
		case "save":
			doSave(api, state)
		case "board":
			doBoard(api, fields[1:])
		case "stats":
			doStats(api)
		case "help":
			printHelp()
		case "quit", "exit", "q":
			saveSnapshot(*statePath, state)
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command %q. Type \"help\".\n", cmd)
		}

		saveSnapshot(*statePath, state)
	}
	saveSnapshot(*statePath, state)
}

func playRound(state *snapshot, move domain.Move, playing *bool) {
	if *playing {
		fmt.Println("Hold on, the current game is still running.")
		return
	}
	*playing = true
	defer func() { *playing = false }()

	comp := domain.RandomMove()
	fmt.Printf("You picked %s...\n", move)
	time.Sleep(revealDelay)

	result := domain.Resolve(move, comp)
	state.record(result, move, comp, time.Now())

	switch result {
	case domain.OutcomeWin:
		fmt.Printf("Opponent picked %s. You win!\n", comp)
	case domain.OutcomeLose:
		fmt.Printf("Opponent picked %s. You lose.\n", comp)
	default:
		fmt.Printf("Opponent picked %s too. Draw.\n", comp)
	}
	printScore(state)
}

func printScore(state *snapshot) {
	fmt.Printf("You %d : %d Opponent | games %d | wins %d | win rate %.2f%% | streak %d (best %d)\n",
		state.UserScore, state.CompScore, state.TotalGames, state.TotalWins,
		state.winRate(), state.CurrentStreak, state.MaxStreak)
}

func doSignup(api *client.Client, state *snapshot, args []string) {
	if len(args) != 3 {
		fmt.Println("Usage: signup <email> <name> <password>")
		return
	}
	resp, err := api.Signup(args[0], args[1], args[2])
	if err != nil {
		fmt.Printf("Signup failed: %v\n", err)
		return
	}
	state.PlayerName = resp.Player.PlayerName
	state.IsLoggedIn = true
	state.JWTToken = resp.Token
	fmt.Printf("Account created. Welcome, %s!\n", resp.Player.PlayerName)
}

func doLogin(api *client.Client, state *snapshot, args []string) {
	if len(args) < 1 || len(args) > 3 {
		fmt.Println("Usage: login <email> [name] [password]")
		return
	}
	email := args[0]
	name, password := "", ""
	if len(args) >= 2 {
		name = args[1]
	}
	if len(args) == 3 {
		password = args[2]
	}
	resp, err := api.Login(email, name, password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return
	}
	state.PlayerName = resp.Player.PlayerName
	state.IsLoggedIn = true
	state.JWTToken = resp.Token
	fmt.Printf("Logged in as %s (best score %d, %d wins over %d games).\n",
		resp.Player.PlayerName, resp.Player.BestScore, resp.Player.TotalWins, resp.Player.TotalGames)
}

func doSave(api *client.Client, state *snapshot) {
	if !state.IsLoggedIn {
		fmt.Println("Log in first to save your score.")
		return
	}
	resp, err := api.SaveScore(client.ScoreRequest{
		Score:         state.UserScore,
		TotalGames:    state.TotalGames,
		TotalWins:     state.TotalWins,
		WinRate:       state.winRate(),
		CurrentStreak: state.CurrentStreak,
		MaxStreak:     state.MaxStreak,
		GameHistory:   state.GameHistory,
	})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			state.IsLoggedIn = false
			state.JWTToken = ""
			api.SetToken("")
			fmt.Println("Session expired, please log in again.")
			return
		}
		fmt.Printf("Save failed: %v\n", err)
		return
	}
	fmt.Printf("%s (session %d)\n", resp.Message, resp.SessionID)
}

func doBoard(api *client.Client, args []string) {
	sortBy := "bestScore"
	if len(args) > 0 {
		sortBy = args[0]
	}
	resp, err := api.Leaderboard(10, sortBy)
	if err != nil {
		fmt.Printf("Leaderboard unavailable: %v\n", err)
		return
	}
	fmt.Printf("Top players by %s (%d total):\n", sortBy, resp.TotalPlayers)
	for i, entry := range resp.Leaderboard {
		fmt.Printf("%2d. %-20s best %4d  wins %4d  games %4d  streak %3d  %d%%\n",
			i+1, entry.PlayerName, entry.BestScore, entry.TotalWins,
			entry.TotalGames, entry.MaxStreak, entry.WinRate)
	}
}

func doStats(api *client.Client) {
	resp, err := api.GlobalStats()
	if err != nil {
		fmt.Printf("Stats unavailable: %v\n", err)
		return
	}
	st := resp.Stats
	fmt.Printf("Players: %d | games played: %d | wins: %d\n", st.TotalPlayers, st.TotalGames, st.TotalWins)
	if st.TopPlayer != nil {
		fmt.Printf("Top player: %s (best score %d)\n", st.TopPlayer.PlayerName, st.TopPlayer.BestScore)
	}
	if len(st.RecentPlayers) > 0 {
		fmt.Println("Recently active:")
		for _, p := range st.RecentPlayers {
			fmt.Printf("  %s (%s)\n", p.PlayerName, p.LastPlayed.Format(time.RFC822))
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  r | p | s            play rock / paper / scissors
  score                show the current tally
  reset                reset the local scores
  signup <email> <name> <password>
  login <email> [name] [password]
  logout               drop the local session
  save                 push totals to the server (requires login)
  board [sortBy]       leaderboard (bestScore, totalWins, totalGames, maxStreak)
  stats                global stats
  quit                 save and exit`)
}
