package replay

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

// ErrNoPlayers is returned for a recording without player slots
var ErrNoPlayers = errors.New("replay has no players")

// PlayerResult is the state of one player when a simulation ends
type PlayerResult struct {
	Slot   int
	Score  int
	Lives  int
	Coins  int
	Tier   entity.PowerTier
	X, Y   float64
	Active bool
}

// Result summarizes a headless simulation
type Result struct {
	Stage     string
	Frames    int
	Completed bool
	GameOver  bool
	Players   []PlayerResult
}

// Runner re-simulates recorded input without a window
type Runner struct {
	cfg    *config.GameConfig
	stage  *config.StageConfig
	logger *log.Logger
}

// NewRunner creates a runner for stage under cfg
func NewRunner(cfg *config.GameConfig, stage *config.StageConfig, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, stage: stage, logger: logger}
}

// outcome is the GameFlow of a headless run
type outcome struct {
	world     *system.World
	completed bool
	over      bool
}

func (o *outcome) GameOver(*entity.Player) {
	if o.world.AllPlayersOut() {
		o.over = true
	}
}

func (o *outcome) RespawnPlayer(*entity.Player) {}

func (o *outcome) LevelComplete(*entity.Player) {
	o.completed = true
}

// Run plays data from the first frame. The simulation stops early when the
// stage is cleared or every player is out, as the interactive game does.
func (r *Runner) Run(data ReplayData) (*Result, error) {
	if data.Players <= 0 {
		return nil, ErrNoPlayers
	}
	if r.stage == nil {
		return nil, fmt.Errorf("runner: %w", config.ErrInvalid)
	}
	if data.Stage != "" && data.Stage != r.stage.ID && r.logger != nil {
		r.logger.Warn("replay recorded on a different stage", "recorded", data.Stage, "stage", r.stage.ID)
	}

	dt := data.DT
	if dt <= 0 {
		dt = r.defaultDT()
	}

	flow := &outcome{}
	world := system.NewWorld(r.cfg, entity.Services{Flow: flow}, r.logger)
	flow.world = world
	if err := system.LoadStage(r.stage, world, data.Players); err != nil {
		return nil, fmt.Errorf("failed to load stage: %w", err)
	}

	replayer := NewReplayer(data)
	for !flow.completed && !flow.over {
		inputs, ok := replayer.GetInput()
		if !ok {
			break
		}
		world.Tick(inputs, dt)
	}

	res := &Result{
		Stage:     r.stage.ID,
		Frames:    replayer.CurrentFrame(),
		Completed: flow.completed,
		GameOver:  flow.over,
	}
	for _, p := range world.Players() {
		res.Players = append(res.Players, PlayerResult{
			Slot:   p.Slot,
			Score:  p.Score,
			Lives:  p.Lives,
			Coins:  p.Coins,
			Tier:   p.Tier,
			X:      p.Position.X,
			Y:      p.Position.Y,
			Active: p.Active,
		})
	}
	if r.logger != nil {
		r.logger.Info("replay finished", "stage", res.Stage, "frames", res.Frames,
			"completed", res.Completed, "gameOver", res.GameOver)
	}
	return res, nil
}

func (r *Runner) defaultDT() float64 {
	if r.cfg != nil && r.cfg.Physics != nil && r.cfg.Physics.Display.Framerate > 0 {
		return 1.0 / float64(r.cfg.Physics.Display.Framerate)
	}
	return 1.0 / 60.0
}
