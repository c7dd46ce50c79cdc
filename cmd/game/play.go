package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/stomp/internal/application/game"
	"github.com/younwookim/stomp/internal/application/scene/playing"
	"github.com/younwookim/stomp/internal/infrastructure/config"
	"github.com/younwookim/stomp/internal/infrastructure/sink"
	"github.com/younwookim/stomp/internal/infrastructure/storage"
)

var (
	flagStage   string
	flagPlayers int
	flagRecord  string
	flagWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a stage",
	Long: `Open a window and play a stage.

Controls:
  Player 1   A/D move, W/Space jump, Left Shift run, F fire
  Player 2   Arrows move, Up jump, Right Shift run, Enter fire
  Esc        Pause
  F5         Save recording
  R          Restart (after game over or stage clear)
  Q          Quit (when paused or finished)

Examples:
  game play
  game play --stage flat --players 2
  game play --record run.json
  game play --config ./configs --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStage, "stage", "demo", "Stage to play")
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of local players (1 or 2)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload physics and entity tuning when --config files change")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return err
	}
	stage, err := loader.LoadStage(flagStage)
	if err != nil {
		return err
	}

	opts := playing.Options{
		Players:    flagPlayers,
		RecordPath: flagRecord,
		Audio:      sink.NewLogAudio(logger),
		Logger:     logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer func() { _ = store.Close() }()
		opts.Scores = store
	}

	if flagWatch {
		if flagConfigDir == "" {
			logger.Warn("--watch needs --config; built-in configs cannot change")
		} else {
			reloads, stop, err := watchConfig(flagConfigDir, logger)
			if err != nil {
				return err
			}
			defer stop()
			opts.Reloads = reloads
		}
	}

	scene, err := playing.New(cfg, stage, opts)
	if err != nil {
		return err
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, logger)
	g.SetDT(1.0 / float64(display.Framerate))

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("stomp - " + stage.Name)
	ebiten.SetTPS(display.Framerate)

	logger.Info("starting", "stage", stage.ID, "players", flagPlayers)
	return ebiten.RunGame(g)
}

// watchConfig reloads the full game config whenever a file under dir
// changes. Invalid edits are logged and skipped.
func watchConfig(dir string, logger *log.Logger) (<-chan *config.GameConfig, func(), error) {
	watcher, err := config.NewWatcher(dir)
	if err != nil {
		return nil, nil, err
	}

	reloads := make(chan *config.GameConfig, 1)
	go func() {
		defer close(reloads)
		loader := config.NewLoader(dir)
		for {
			select {
			case path, ok := <-watcher.Events:
				if !ok {
					return
				}
				cfg, err := loader.LoadAll()
				if err != nil {
					logger.Error("config reload failed", "file", path, "err", err)
					continue
				}
				// Keep only the newest config if the game has not caught up
				select {
				case <-reloads:
				default:
				}
				reloads <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("config watcher", "err", err)
			}
		}
	}()

	return reloads, func() { _ = watcher.Close() }, nil
}
