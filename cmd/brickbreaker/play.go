package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/auth"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/platform/console"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var (
	flagUser    string
	flagBackend string
	flagSound   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Log in and play",
	Long: `Open the login screen, then the dashboard, then the game.

Controls:
  Left/Right, A/D  - Move paddle
  Space/P/Esc      - Pause
  R                - Restart
  Enter            - Play again after game over
  B                - Back to the dashboard (paused or game over)
  Q/Ctrl+C         - Quit
  Mouse            - Click the PAUSE button and overlay buttons

Backends:
  tui      - Bubble Tea interface with login and dashboard (default)
  console  - Bare tcell game loop; requires --user

Examples:
  brickbreaker play
  brickbreaker play --user alice
  brickbreaker play --user alice --backend console --sound
  brickbreaker play --difficulty easy --config ./my-brickbreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUser, "user", "", "Log in as this user (password is prompted)")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Front end: tui or console")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.brickbreaker/brickbreaker.log", "Log file (the terminal is busy drawing the game)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagBackend != "tui" && flagBackend != "console" {
		return fmt.Errorf("unknown backend %q (want tui or console)", flagBackend)
	}
	if flagBackend == "console" && flagUser == "" {
		return fmt.Errorf("the console backend needs --user")
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, "brickbreaker")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	accounts := auth.NewService(store)

	var identity *core.Identity
	if flagUser != "" {
		password, err := readPassword(fmt.Sprintf("Password for %s: ", flagUser))
		if err != nil {
			return err
		}
		id, err := accounts.Authenticate(flagUser, password)
		if err != nil {
			return err
		}
		identity = &id
	}

	var sound *audio.SoundManager
	if flagSound {
		sound = audio.NewSoundManager(0.5)
		if err := sound.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	w, h := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "backend", flagBackend, "db", flagDBPath, "difficulty", cfg.Difficulty.Preset)

	if flagBackend == "console" {
		return playConsole(cfg, store, *identity, rt, sound, logger)
	}

	svc := tui.Services{
		Config:   cfg,
		Store:    store,
		Auth:     accounts,
		Accounts: accounts,
		Logger:   logger,
		Sound:    sound,
	}
	return tui.Run(svc, rt, identity)
}

func playConsole(cfg config.Config, store brickbreaker.Leaderboard, id core.Identity, rt core.RuntimeConfig, sound *audio.SoundManager, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if rt.Seed == 0 {
		rt.Seed = uint64(time.Now().UnixNano())
	}
	game := brickbreaker.New(cfg,
		brickbreaker.WithLeaderboard(store, id),
		brickbreaker.WithLogger(logger.With("user", id.Username)),
	)
	return console.NewRunner(screen, game, sound, logger).Run(ctx, rt)
}
