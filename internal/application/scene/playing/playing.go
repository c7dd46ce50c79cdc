// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/stomp/internal/application/replay"
	"github.com/younwookim/stomp/internal/application/scene"
	"github.com/younwookim/stomp/internal/application/state"
	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
	"github.com/younwookim/stomp/internal/infrastructure/sink"
)

// ScoreSaver persists a final score for a stage
type ScoreSaver interface {
	SaveScore(stage string, score int) (int64, error)
}

// Options configures a Playing scene. Zero values are usable.
type Options struct {
	Players    int
	RecordPath string
	Scores     ScoreSaver
	Audio      entity.Audio
	Logger     *log.Logger
	// Reloads delivers configuration reloaded off the game loop;
	// it is drained between frames
	Reloads <-chan *config.GameConfig
}

// Playing is the main gameplay scene. It is the GameFlow of its world.
type Playing struct {
	stageCfg *config.StageConfig
	world    *system.World
	input    *system.InputSystem
	tally    *sink.ScoreTally
	state    state.GameState
	players  int
	screenW  int
	screenH  int
	dt       float64
	camX     float64
	camY     float64
	bg       color.RGBA

	scores      ScoreSaver
	scoresSaved bool
	logger      *log.Logger
	reloads     <-chan *config.GameConfig

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene on stageCfg.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, opts Options) (*Playing, error) {
	if cfg == nil || cfg.Physics == nil {
		cfg = &config.GameConfig{Physics: config.DefaultPhysicsConfig(), Entities: config.DefaultEntitiesConfig()}
	}
	if stageCfg == nil {
		return nil, fmt.Errorf("playing: no stage: %w", config.ErrInvalid)
	}
	players := opts.Players
	if players <= 0 {
		players = 1
	}
	input := system.NewInputSystem(nil)
	if players > input.Slots() {
		return nil, fmt.Errorf("playing: %d players but only %d bound input slots", players, input.Slots())
	}
	audio := opts.Audio
	if audio == nil {
		audio = sink.NewLogAudio(opts.Logger)
	}

	display := cfg.Physics.Display
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	p := &Playing{
		stageCfg:       stageCfg,
		input:          input,
		tally:          sink.NewScoreTally(),
		players:        players,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		dt:             1.0 / float64(framerate),
		bg:             parseColor(stageCfg.Background, colorBG),
		scores:         opts.Scores,
		logger:         opts.Logger,
		reloads:        opts.Reloads,
		recordFilename: opts.RecordPath,
	}
	p.world = system.NewWorld(cfg, entity.Services{Audio: audio, Score: p.tally, Flow: p}, opts.Logger)

	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

// load (re)builds the stage and starts a fresh recording
func (p *Playing) load() error {
	p.world.Clear()
	p.tally.Reset()
	p.scoresSaved = false
	p.state = state.StatePlaying
	if err := system.LoadStage(p.stageCfg, p.world, p.players); err != nil {
		return fmt.Errorf("playing: %w", err)
	}
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.stageCfg.ID, p.players, p.dt)
		p.info("recording enabled", "file", p.recordFilename, "players", p.players)
	}
	p.updateCamera()
	return nil
}

// Update proceeds the game state (implements scene.Scene).
// The world always advances by the fixed timestep so recordings replay exactly.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.drainReloads()

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.setState(state.StatePaused)
			return nil, nil
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		p.step(p.input.Poll(p.players))
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.setState(state.StatePlaying)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
	case state.StateGameOver, state.StateStageClear:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return nil, scene.ErrQuit
		}
	}

	return nil, nil // nil = stay on this scene
}

// step records and simulates one frame of input
func (p *Playing) step(inputs []entity.Input) {
	if p.recorder != nil {
		p.recorder.RecordFrame(inputs)
	}
	p.world.Tick(inputs, p.dt)
	p.updateCamera()
}

func (p *Playing) restart() error {
	p.saveRecording()
	p.info("restarting stage", "stage", p.stageCfg.ID)
	return p.load()
}

func (p *Playing) drainReloads() {
	if p.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				return
			}
			p.Reload(cfg)
		default:
			return
		}
	}
}

// Reload applies new configuration between frames
func (p *Playing) Reload(cfg *config.GameConfig) {
	if cfg == nil || cfg.Physics == nil {
		return
	}
	p.world.Reload(cfg)
	p.info("config reloaded", "gravity", cfg.Physics.Physics.Gravity)
}

func (p *Playing) setState(next state.GameState) {
	if p.state == next || !p.state.CanTransitionTo(next) {
		return
	}
	if p.logger != nil {
		p.logger.Debug("state change", "from", p.state, "to", next)
	}
	p.state = next
}

// GameOver implements entity.GameFlow. The session ends once every player is out.
func (p *Playing) GameOver(player *entity.Player) {
	p.info("player out", "slot", player.Slot, "score", player.Score)
	if !p.world.AllPlayersOut() {
		return
	}
	p.endSession(state.StateGameOver)
}

// RespawnPlayer implements entity.GameFlow
func (p *Playing) RespawnPlayer(player *entity.Player) {
	p.info("player respawned", "slot", player.Slot, "lives", player.Lives)
}

// LevelComplete implements entity.GameFlow
func (p *Playing) LevelComplete(player *entity.Player) {
	if p.state.Final() {
		return
	}
	p.info("stage clear", "stage", p.stageCfg.ID, "slot", player.Slot)
	p.endSession(state.StateStageClear)
}

func (p *Playing) endSession(final state.GameState) {
	p.setState(final)
	p.saveScores()
	p.saveRecording()
}

// saveScores stores every player's final score once per session
func (p *Playing) saveScores() {
	if p.scores == nil || p.scoresSaved {
		return
	}
	p.scoresSaved = true
	for _, player := range p.world.Players() {
		if player.Score <= 0 {
			continue
		}
		if _, err := p.scores.SaveScore(p.stageCfg.ID, player.Score); err != nil {
			if p.logger != nil {
				p.logger.Error("failed to save score", "slot", player.Slot, "err", err)
			}
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	err := p.recorder.Save(filename)
	switch {
	case errors.Is(err, replay.ErrEmptyRecording):
	case err != nil:
		if p.logger != nil {
			p.logger.Error("failed to save recording", "file", filename, "err", err)
		}
	default:
		p.info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

func (p *Playing) info(msg string, keyvals ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, keyvals...)
	}
}

// updateCamera centres the view on the first active player, clamped to the stage
func (p *Playing) updateCamera() {
	var target *entity.Player
	for _, player := range p.world.Players() {
		if player.Active {
			target = player
			break
		}
	}
	if target == nil {
		return
	}
	c := target.Center()
	p.camX = clamp(c.X-float64(p.screenW)/2, 0, float64(p.stageCfg.Size.Width-p.screenW))
	p.camY = clamp(c.Y-float64(p.screenH)/2, 0, float64(p.stageCfg.Size.Height-p.screenH))
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.info("stage start", "stage", p.stageCfg.ID, "players", p.players)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// State returns the current session state
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the simulated world
func (p *Playing) World() *system.World {
	return p.world
}

// TotalScore returns every point awarded this session
func (p *Playing) TotalScore() int {
	return p.tally.Total()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
