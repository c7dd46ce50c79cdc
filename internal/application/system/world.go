package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

// World ties the engine to the entities living in it. It is the Spawner
// and PlayerRegistry every entity sees through its Services.
type World struct {
	engine   *Engine
	services *entity.Services
	players  []*entity.Player
	logger   *log.Logger
}

// NewWorld creates an empty world. svc supplies the audio, score and game
// flow collaborators; the world fills in spawner, registry, tuning and logger.
func NewWorld(cfg *config.GameConfig, svc entity.Services, logger *log.Logger) *World {
	var physics *config.PhysicsConfig
	if cfg != nil {
		physics = cfg.Physics
	}

	w := &World{
		engine: NewEngine(physics, logger),
		logger: logger,
	}
	tuning := TuningFrom(cfg)
	svc.Spawner = w
	svc.Players = w
	svc.Tuning = &tuning
	svc.Logger = logger
	w.services = &svc
	return w
}

// Engine returns the underlying physics engine
func (w *World) Engine() *Engine {
	return w.engine
}

// Services returns the collaborators handed to entities created by this world
func (w *World) Services() *entity.Services {
	return w.services
}

// Spawn adds an entity created during gameplay
func (w *World) Spawn(e entity.Entity) {
	if err := w.engine.AddDynamicBody(e); err != nil && w.logger != nil {
		w.logger.Warn("spawn rejected", "err", err)
	}
}

// SpawnKind builds an enemy or item of kind at pos and adds it
func (w *World) SpawnKind(kind entity.Kind, pos cp.Vector) (entity.Entity, error) {
	e, err := entity.Spawn(kind, pos, w.services)
	if err != nil {
		return nil, err
	}
	if err := w.engine.AddDynamicBody(e); err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", kind, err)
	}
	return e, nil
}

// AddTile adds a static tile of type t with its top-left at pos
func (w *World) AddTile(t entity.TileType, pos, size cp.Vector, contents entity.Kind) (*entity.Tile, error) {
	tile := entity.NewTile(t, pos, size, contents, w.services)
	if err := w.engine.AddStaticBody(tile); err != nil {
		return nil, err
	}
	return tile, nil
}

// AddPlayer creates the player for the next free slot at spawn
func (w *World) AddPlayer(spawn cp.Vector) *entity.Player {
	p := entity.NewPlayer(len(w.players), spawn, w.services)
	w.players = append(w.players, p)
	_ = w.engine.AddDynamicBody(p)
	return p
}

// Players returns every player ever added, including those out of lives
func (w *World) Players() []*entity.Player {
	return w.players
}

// Player returns the player in slot, or nil
func (w *World) Player(slot int) *entity.Player {
	if slot < 0 || slot >= len(w.players) {
		return nil
	}
	return w.players[slot]
}

// AllPlayersOut reports whether every player has run out of lives
func (w *World) AllPlayersOut() bool {
	if len(w.players) == 0 {
		return false
	}
	for _, p := range w.players {
		if p.Active {
			return false
		}
	}
	return true
}

// Tick runs one frame. inputs[i] drives the player in slot i; missing
// slots get a neutral input.
func (w *World) Tick(inputs []entity.Input, dt float64) {
	for i, p := range w.players {
		var in entity.Input
		if i < len(inputs) {
			in = inputs[i]
		}
		p.SetInput(in)
	}
	w.engine.Update(dt)
	w.engine.Step(dt)
}

// Reload applies new configuration. Physics takes effect on the next step;
// entity tuning applies to entities created afterwards.
func (w *World) Reload(cfg *config.GameConfig) {
	if cfg == nil {
		return
	}
	w.engine.SetConfig(cfg.Physics)
	tuning := TuningFrom(cfg)
	w.services.Tuning = &tuning
}

// Clear removes every body and player
func (w *World) Clear() {
	w.engine.ClearAll()
	w.players = nil
}

// TuningFrom converts loaded configuration into entity tuning.
// Nil sections fall back to the defaults.
func TuningFrom(cfg *config.GameConfig) entity.Tuning {
	phys := config.DefaultPhysicsConfig()
	ents := config.DefaultEntitiesConfig()
	if cfg != nil && cfg.Physics != nil {
		phys = cfg.Physics
	}
	if cfg != nil && cfg.Entities != nil {
		ents = cfg.Entities
	}

	return entity.Tuning{
		Player: entity.PlayerTuning{
			Width:             ents.Player.Width,
			SmallHeight:       ents.Player.SmallHeight,
			BigHeight:         ents.Player.BigHeight,
			WalkSpeed:         phys.Movement.WalkSpeed,
			RunSpeed:          phys.Movement.RunSpeed,
			Acceleration:      phys.Movement.Acceleration,
			Friction:          phys.Movement.Friction,
			AirControl:        phys.Movement.AirControl,
			JumpSpeed:         phys.Jump.Speed,
			RunJumpBonus:      phys.Jump.RunBonus,
			JumpCut:           phys.Jump.CutMultiplier,
			CoyoteTime:        phys.Jump.CoyoteTime,
			JumpBuffer:        phys.Jump.JumpBuffer,
			StompBounce:       phys.Combat.StompBounce,
			StompJumpBoost:    phys.Combat.StompJumpBoost,
			Lives:             phys.Combat.Lives,
			InvincibilityTime: phys.Combat.InvincibilityTime,
			FireballCap:       phys.Combat.FireballCap,
			FireballCooldown:  phys.Combat.FireballCooldown,
		},
		Walker:   entity.WalkerTuning(ents.Enemies.Walker),
		Shell:    entity.ShellTuning(ents.Enemies.Shell),
		Lurker:   entity.LurkerTuning(ents.Enemies.Lurker),
		Item:     entity.ItemTuning(ents.Items),
		Fireball: entity.FireballTuning(ents.Fireball),
		Tile:     entity.TileTuning(ents.Tiles),
	}
}
