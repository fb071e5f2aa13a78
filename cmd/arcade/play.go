package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/minesweeper"
	"github.com/vovakirdan/mini-arcade/internal/games/tetris"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Minesweeper controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Open cell
  F            - Flag / unflag
  C            - Open around a satisfied number

Tetris controls:
  Left/Right   - Move piece
  Up/X/Z       - Rotate
  Down         - Soft drop
  Space        - Hard drop

Common:
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back to menu (when paused or over)
  Q/Ctrl+C     - Quit

Minesweeper difficulty options:
  easy    - 9x9, 10 mines
  medium  - 16x16, 40 mines
  hard    - 30x16, 99 mines
Without --difficulty a selector is shown.

Examples:
  arcade play tetris
  arcade play minesweeper
  arcade play minesweeper --difficulty hard
  arcade play minesweeper_medium
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Minesweeper board: easy, medium, hard")
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// prepareGame applies per-game settings and resolves the ID to start.
// An empty ID means the user backed out of a selector.
func prepareGame(gameID string, cfg core.RuntimeConfig) (string, error) {
	family := gameID
	if info, ok := registry.Info(gameID); ok && info.IsVariant() {
		family = info.Parent
	}

	switch family {
	case tetris.GameID:
		tetris.SetConfigPath(flagConfig)

	case minesweeper.GameID:
		minesweeper.SetConfigPath(flagConfig)

		// A variant ID already names its board.
		if gameID != minesweeper.GameID {
			return gameID, nil
		}
		if flagDifficulty != "" {
			d, err := config.ParseDifficulty(flagDifficulty)
			if err != nil {
				return "", err
			}
			return minesweeper.IDFor(d), nil
		}

		msCfg, err := config.LoadMinesweeper(flagConfig)
		if err != nil {
			return "", err
		}
		d, err := tui.RunDifficultySelector(msCfg, cfg)
		if err != nil || d == nil {
			return "", err
		}
		return minesweeper.IDFor(*d), nil
	}

	return gameID, nil
}

// openStore opens the scores database, or returns nil so games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	gameID, err := prepareGame(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if gameID == "" {
		return
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	log.Debug("starting game", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)

	store := openStore()

	// Run the game
	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
